package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedemptionDeduper guards against a QR code being scanned twice in quick
// succession (reader bounce or replayed request). A key is set per student
// after each successful redemption and expires after the window.
// Key format: redeem:<identificacion>
type RedemptionDeduper struct {
	client *redis.Client
	window time.Duration
}

// NewRedemptionDeduper creates a deduper with the given scan window.
func NewRedemptionDeduper(client *redis.Client, window time.Duration) *RedemptionDeduper {
	return &RedemptionDeduper{client: client, window: window}
}

// IsDuplicate reports whether a redemption for this student happened inside
// the scan window.
func (d *RedemptionDeduper) IsDuplicate(ctx context.Context, identificacion string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(identificacion)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records a successful redemption for this student.
func (d *RedemptionDeduper) Mark(ctx context.Context, identificacion string) error {
	return d.client.Set(ctx, d.key(identificacion), "1", d.window).Err()
}

func (d *RedemptionDeduper) key(identificacion string) string {
	return "redeem:" + identificacion
}
