package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const pushChannelPrefix = "notifications:"

// PushChannel returns the pub/sub channel a user's live session listens on.
func PushChannel(userID string) string {
	return pushChannelPrefix + userID
}

// RedisPusher publishes each notification as JSON on the recipient's channel.
// Nobody listening is not an error; the stored copy is the source of truth.
type RedisPusher struct {
	rdb redis.Cmdable
}

var _ interfaces.INotificationDelivery = (*RedisPusher)(nil)

func NewRedisPusher(rdb redis.Cmdable) *RedisPusher {
	return &RedisPusher{rdb: rdb}
}

func (p *RedisPusher) Deliver(ctx context.Context, n entities.Notification, recipient entities.User) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	if err := p.rdb.Publish(ctx, PushChannel(recipient.ID), payload).Err(); err != nil {
		return fmt.Errorf("publish notification %s: %w", n.ID, err)
	}
	return nil
}
