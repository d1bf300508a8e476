package entities

import (
	"encoding/json"
	"time"
)

type CommissionPaymentStatus string

const (
	CommissionPaymentStatusPending  CommissionPaymentStatus = "pending"
	CommissionPaymentStatusApproved CommissionPaymentStatus = "approved"
	CommissionPaymentStatusDenied   CommissionPaymentStatus = "denied"
)

// CommissionPayment is one attempt to collect a financial record's commission
// through the payment provider.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (record_id-index): record_id
//
// ProviderPayloadRaw keeps the provider response body as returned;
// ProviderPayload is the parsed form used for debugging.
type CommissionPayment struct {
	ID        string                  `json:"id"`
	RecordID  string                  `json:"record_id"`
	ProjectID string                  `json:"project_id"`
	Amount    float64                 `json:"amount"`
	Date      time.Time               `json:"date"`
	Status    CommissionPaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any  `json:"provider_payload,omitempty"`
}
