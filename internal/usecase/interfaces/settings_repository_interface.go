package interfaces

import "context"

// ISettingsRepository holds platform settings. A zero rate means unset.
type ISettingsRepository interface {
	GetCommissionRate(ctx context.Context) (float64, error)
	SetCommissionRate(ctx context.Context, rate float64) error
}
