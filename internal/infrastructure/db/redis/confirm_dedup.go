package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Confirmed sessions are remembered long enough to outlive any plausible
// double-submit or page refresh; afterwards the key expires on its own.
const confirmTTL = 24 * time.Hour

// ConfirmDedup tracks checkout sessions whose order email has already been
// sent, so the confirm endpoint is idempotent per session.
// Key format: payment:confirm:<session_id>
type ConfirmDedup struct {
	client *redis.Client
}

// NewConfirmDedup creates a ConfirmDedup wrapping the given Redis client.
func NewConfirmDedup(client *redis.Client) *ConfirmDedup {
	return &ConfirmDedup{client: client}
}

// Seen reports whether this checkout session was already confirmed.
func (d *ConfirmDedup) Seen(ctx context.Context, sessionID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("confirm dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this session's order email went out (expires after confirmTTL).
func (d *ConfirmDedup) Mark(ctx context.Context, sessionID string) error {
	return d.client.Set(ctx, d.key(sessionID), "1", confirmTTL).Err()
}

func (d *ConfirmDedup) key(sessionID string) string {
	return "payment:confirm:" + sessionID
}
