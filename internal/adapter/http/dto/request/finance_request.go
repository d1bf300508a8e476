package request

type CommissionRateRequest struct {
	Rate float64 `json:"rate" binding:"required"`
}

// MarkCollectedRequest records a commission settled outside the payment
// provider. Reference is the bank transfer id, if any.
type MarkCollectedRequest struct {
	Reference string `json:"reference"`
}
