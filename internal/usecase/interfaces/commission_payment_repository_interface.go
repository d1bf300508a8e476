package interfaces

import (
	"context"

	"solar_portal/internal/domain/entities"
)

// ICommissionPaymentRepository stores provider responses for commission
// collection attempts, one item per provider payment.
type ICommissionPaymentRepository interface {
	Create(ctx context.Context, p entities.CommissionPayment) (entities.CommissionPayment, error)
	GetByID(ctx context.Context, id string) (entities.CommissionPayment, error)
	ListByRecordID(ctx context.Context, recordID string) ([]entities.CommissionPayment, error)
}
