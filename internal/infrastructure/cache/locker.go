package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Locker hands out short-lived SetNX locks. The settlement path uses it to
// narrow the window between the ledger existence check and the insert; the
// unique transaction index remains the authoritative guard, so a lost or
// expired lock costs nothing but a duplicate-key round trip.
type Locker struct{ rdb *redis.Client }

func NewLocker(rdb *redis.Client) *Locker { return &Locker{rdb: rdb} }

func (l *Locker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.rdb.SetNX(ctx, key, "1", ttl).Result()
}

func (l *Locker) Release(ctx context.Context, key string) error {
	return l.rdb.Del(ctx, key).Err()
}
