package request

import (
	"strings"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/domain/lifecycle"
)

type AddressRequest struct {
	Street string `json:"street" binding:"required"`
	City   string `json:"city" binding:"required"`
	County string `json:"county" binding:"required"`
}

func (a AddressRequest) ToEntity() entities.Address {
	return entities.Address{Street: a.Street, City: a.City, County: a.County}
}

// SubmitProjectRequest is the homeowner's project form.
type SubmitProjectRequest struct {
	Address      AddressRequest `json:"address" binding:"required"`
	EnergyBill   float64        `json:"energy_bill" binding:"required"`
	RoofTypeID   string         `json:"roof_type_id" binding:"required"`
	Notes        string         `json:"notes"`
	WantsBattery bool           `json:"wants_battery"`
	PhotoRef     string         `json:"photo_ref"`
}

func (r SubmitProjectRequest) ToDraft() lifecycle.ProjectDraft {
	return lifecycle.ProjectDraft{
		Address:      r.Address.ToEntity(),
		EnergyBill:   r.EnergyBill,
		RoofTypeID:   r.RoofTypeID,
		Notes:        r.Notes,
		WantsBattery: r.WantsBattery,
		PhotoRef:     r.PhotoRef,
	}
}

// EditProjectRequest only touches the fields present in the body.
type EditProjectRequest struct {
	Address      *AddressRequest `json:"address"`
	EnergyBill   *float64        `json:"energy_bill"`
	RoofTypeID   *string         `json:"roof_type_id"`
	Notes        *string         `json:"notes"`
	WantsBattery *bool           `json:"wants_battery"`
	PhotoRef     *string         `json:"photo_ref"`
}

func (r EditProjectRequest) ToEdit() lifecycle.ProjectEdit {
	edit := lifecycle.ProjectEdit{
		EnergyBill:   r.EnergyBill,
		RoofTypeID:   r.RoofTypeID,
		Notes:        r.Notes,
		WantsBattery: r.WantsBattery,
		PhotoRef:     r.PhotoRef,
	}
	if r.Address != nil {
		addr := r.Address.ToEntity()
		edit.Address = &addr
	}
	return edit
}

type ApproveProjectRequest struct {
	PhotoRef string `json:"photo_ref"`
}

type ShareContactRequest struct {
	InstallerID string `json:"installer_id" binding:"required"`
}

func (r ShareContactRequest) ResolveInstallerID() string {
	return strings.TrimSpace(r.InstallerID)
}

type QuoteRequest struct {
	QuoteID                   string   `json:"quote_id"`
	Price                     float64  `json:"price" binding:"required"`
	PriceWithoutBattery       *float64 `json:"price_without_battery"`
	SystemSizeKW              float64  `json:"system_size_kw" binding:"required"`
	PanelModelID              string   `json:"panel_model_id" binding:"required"`
	InverterModelID           string   `json:"inverter_model_id" binding:"required"`
	BatteryModelID            string   `json:"battery_model_id"`
	Warranty                  string   `json:"warranty"`
	EstimatedAnnualProduction float64  `json:"estimated_annual_production"`
}

func (r QuoteRequest) ToInput() lifecycle.QuoteInput {
	return lifecycle.QuoteInput{
		QuoteID:                   r.QuoteID,
		Price:                     r.Price,
		PriceWithoutBattery:       r.PriceWithoutBattery,
		SystemSizeKW:              r.SystemSizeKW,
		PanelModelID:              r.PanelModelID,
		InverterModelID:           r.InverterModelID,
		BatteryModelID:            r.BatteryModelID,
		Warranty:                  r.Warranty,
		EstimatedAnnualProduction: r.EstimatedAnnualProduction,
	}
}

type AcceptOfferRequest struct {
	QuoteID string `json:"quote_id" binding:"required"`
}

type MarkAsSignedRequest struct {
	FinalPrice float64 `json:"final_price" binding:"required"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}
