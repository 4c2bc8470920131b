package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// NotificationDedup guards against double-sending a notification email,
// backed by Redis. Key format: notify:<booking_id>:<recipient>
type NotificationDedup struct {
	client *redis.Client
}

func NewNotificationDedup(client *redis.Client) *NotificationDedup {
	return &NotificationDedup{client: client}
}

// IsDuplicate reports whether this notification was already delivered.
func (d *NotificationDedup) IsDuplicate(ctx context.Context, bookingID, recipient string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(bookingID, recipient)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this notification has been delivered (expires after dedupTTL).
func (d *NotificationDedup) Mark(ctx context.Context, bookingID, recipient string) error {
	return d.client.Set(ctx, d.key(bookingID, recipient), "1", dedupTTL).Err()
}

func (d *NotificationDedup) key(bookingID, recipient string) string {
	return fmt.Sprintf("notify:%s:%s", bookingID, recipient)
}
