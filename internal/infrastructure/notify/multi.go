package notify

import (
	"context"
	"errors"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/usecase/interfaces"
)

// Channels delivers through every configured channel. One channel failing
// does not stop the others; all failures are returned joined.
type Channels []interfaces.INotificationDelivery

var _ interfaces.INotificationDelivery = Channels(nil)

func (c Channels) Deliver(ctx context.Context, n entities.Notification, recipient entities.User) error {
	var errs []error
	for _, ch := range c {
		if err := ch.Deliver(ctx, n, recipient); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
