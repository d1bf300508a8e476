package interfaces

import (
	"context"

	"solar_portal/internal/domain/entities"
)

// INotificationDelivery pushes an already persisted notification to the
// recipient (email, live channel). Delivery is best-effort.
type INotificationDelivery interface {
	Deliver(ctx context.Context, n entities.Notification, recipient entities.User) error
}
