package entities

import "math"

// Fixed split applied to every quote's total price.
const (
	EquipmentShare = 0.65
	LaborShare     = 0.30
	PermitsShare   = 0.05
)

type CostBreakdown struct {
	Equipment float64 `json:"equipment"`
	Labor     float64 `json:"labor"`
	Permits   float64 `json:"permits"`
}

func (c CostBreakdown) Total() float64 {
	return roundCents(c.Equipment + c.Labor + c.Permits)
}

// Quote is one installer's offer on a project. Its ID is scoped to the project.
type Quote struct {
	ID                        string        `json:"id"`
	InstallerID               string        `json:"installer_id"`
	Price                     float64       `json:"price"`
	PriceWithoutBattery       *float64      `json:"price_without_battery,omitempty"`
	SystemSizeKW              float64       `json:"system_size_kw"`
	PanelModelID              string        `json:"panel_model_id"`
	InverterModelID           string        `json:"inverter_model_id"`
	BatteryModelID            string        `json:"battery_model_id,omitempty"`
	Warranty                  string        `json:"warranty"`
	EstimatedAnnualProduction float64       `json:"estimated_annual_production"`
	CostBreakdown             CostBreakdown `json:"cost_breakdown"`
}

// DeriveCostBreakdown splits a total price 65/30/5. Equipment and labor are
// rounded to cents and permits takes the remainder, so the parts always sum
// to the total.
func DeriveCostBreakdown(totalPrice float64) CostBreakdown {
	equipment := roundCents(totalPrice * EquipmentShare)
	labor := roundCents(totalPrice * LaborShare)
	return CostBreakdown{
		Equipment: equipment,
		Labor:     labor,
		Permits:   roundCents(totalPrice - equipment - labor),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
