package request

import (
	"encoding/json"
	"testing"

	"solar_portal/internal/domain/entities"
)

func TestSubmitProjectRequest_ToDraft(t *testing.T) {
	var r SubmitProjectRequest
	body := `{"address":{"street":"1 Main St","city":"Austin","county":"Travis"},"energy_bill":180.5,"roof_type_id":"roof-metal","wants_battery":true}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	d := r.ToDraft()
	if d.Address != (entities.Address{Street: "1 Main St", City: "Austin", County: "Travis"}) {
		t.Fatalf("unexpected address: %+v", d.Address)
	}
	if d.EnergyBill != 180.5 || d.RoofTypeID != "roof-metal" || !d.WantsBattery {
		t.Fatalf("unexpected draft: %+v", d)
	}
}

func TestEditProjectRequest_ToEdit(t *testing.T) {
	var r EditProjectRequest
	if err := json.Unmarshal([]byte(`{"notes":"south facing","energy_bill":99}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	e := r.ToEdit()
	if e.Notes == nil || *e.Notes != "south facing" {
		t.Fatalf("expected notes to be set: %+v", e)
	}
	if e.EnergyBill == nil || *e.EnergyBill != 99 {
		t.Fatalf("expected energy bill to be set: %+v", e)
	}
	if e.Address != nil || e.RoofTypeID != nil || e.WantsBattery != nil {
		t.Fatalf("absent fields must stay nil: %+v", e)
	}

	if !(EditProjectRequest{}).ToEdit().Empty() {
		t.Fatalf("empty request must produce an empty edit")
	}
}

func TestQuoteRequest_ToInput(t *testing.T) {
	without := 41000.0
	r := QuoteRequest{
		QuoteID:             "q-1",
		Price:               50000,
		PriceWithoutBattery: &without,
		SystemSizeKW:        8.2,
		PanelModelID:        "panel-1",
		InverterModelID:     "inv-1",
		BatteryModelID:      "bat-1",
	}

	in := r.ToInput()
	if in.QuoteID != "q-1" || in.Price != 50000 || in.SystemSizeKW != 8.2 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.PriceWithoutBattery == nil || *in.PriceWithoutBattery != 41000 {
		t.Fatalf("unexpected price without battery: %v", in.PriceWithoutBattery)
	}
	if in.PanelModelID != "panel-1" || in.InverterModelID != "inv-1" || in.BatteryModelID != "bat-1" {
		t.Fatalf("unexpected equipment: %+v", in)
	}
}

func TestShareContactRequest_ResolveInstallerID(t *testing.T) {
	if got := (ShareContactRequest{InstallerID: "  installer-1 "}).ResolveInstallerID(); got != "installer-1" {
		t.Fatalf("expected trimmed id, got %q", got)
	}
}
