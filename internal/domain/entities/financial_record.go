package entities

import "time"

type FinancialRecordStatus string

const (
	FinancialRecordStatusPending FinancialRecordStatus = "pending"
	FinancialRecordStatusPaid    FinancialRecordStatus = "paid"
)

// FinancialRecord is the platform commission owed on one signed deal.
//
// CommissionRate is the rate in effect at signing; changing the global rate
// later never touches existing records.
type FinancialRecord struct {
	ID               string                `json:"id"`
	ProjectID        string                `json:"project_id"`
	ProjectCity      string                `json:"project_city"`
	InstallerID      string                `json:"installer_id"`
	FinalPrice       float64               `json:"final_price"`
	CommissionRate   float64               `json:"commission_rate"`
	CommissionAmount float64               `json:"commission_amount"`
	Status           FinancialRecordStatus `json:"status"`
	SignedAt         time.Time             `json:"signed_at"`
	PaidAt           *time.Time            `json:"paid_at,omitempty"`
	PaymentReference string                `json:"payment_reference,omitempty"`
}
