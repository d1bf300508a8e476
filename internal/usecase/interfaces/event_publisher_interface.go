package interfaces

import (
	"context"

	"solar_portal/internal/domain/events"
)

type IEventPublisher interface {
	Publish(ctx context.Context, evs []events.Event) error
}
