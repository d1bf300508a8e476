package response

import (
	"time"

	"solar_portal/internal/domain/entities"
)

type FinancialRecordResponse struct {
	ID               string     `json:"id"`
	ProjectID        string     `json:"project_id"`
	ProjectCity      string     `json:"project_city"`
	InstallerID      string     `json:"installer_id"`
	FinalPrice       float64    `json:"final_price"`
	CommissionRate   float64    `json:"commission_rate"`
	CommissionAmount float64    `json:"commission_amount"`
	Status           string     `json:"status"`
	SignedAt         time.Time  `json:"signed_at"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	PaymentReference string     `json:"payment_reference,omitempty"`
}

func FromFinancialRecord(r entities.FinancialRecord) FinancialRecordResponse {
	return FinancialRecordResponse{
		ID:               r.ID,
		ProjectID:        r.ProjectID,
		ProjectCity:      r.ProjectCity,
		InstallerID:      r.InstallerID,
		FinalPrice:       r.FinalPrice,
		CommissionRate:   r.CommissionRate,
		CommissionAmount: r.CommissionAmount,
		Status:           string(r.Status),
		SignedAt:         r.SignedAt,
		PaidAt:           r.PaidAt,
		PaymentReference: r.PaymentReference,
	}
}

func FromFinancialRecords(rs []entities.FinancialRecord) []FinancialRecordResponse {
	out := make([]FinancialRecordResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromFinancialRecord(r))
	}
	return out
}

type CommissionRateResponse struct {
	Rate float64 `json:"rate"`
}

type CommissionPaymentResponse struct {
	PaymentID string    `json:"payment_id"`
	RecordID  string    `json:"record_id"`
	ProjectID string    `json:"project_id"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromCommissionPayment(p entities.CommissionPayment) CommissionPaymentResponse {
	return CommissionPaymentResponse{
		PaymentID:    p.ID,
		RecordID:     p.RecordID,
		ProjectID:    p.ProjectID,
		Amount:       p.Amount,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.ProviderPayloadRaw),
		MPPayload:    p.ProviderPayload,
	}
}

func FromCommissionPayments(ps []entities.CommissionPayment) []CommissionPaymentResponse {
	out := make([]CommissionPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromCommissionPayment(p))
	}
	return out
}

// CollectionResponse pairs the provider attempt with the record state after it.
type CollectionResponse struct {
	Payment CommissionPaymentResponse `json:"payment"`
	Record  FinancialRecordResponse   `json:"record"`
}
