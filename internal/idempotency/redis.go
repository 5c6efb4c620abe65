package idempotency

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/BookingWebhook/internal/domain"
)

const (
	keyPrefix     = "booking-webhook:delivery:"
	pendingPrefix = "pending:"
)

// RedisGuard remembers which booking id a webhook delivery was assigned so a
// redelivered call does not write a second ledger row. The stored value is
// "pending:<id>" until Confirm replaces it with the bare id.
type RedisGuard struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisGuard(client redis.UniversalClient, ttl time.Duration) *RedisGuard {
	return &RedisGuard{client: client, ttl: ttl}
}

// Claim binds deliveryKey to bookingID. When the key is already bound it
// returns the earlier id with Owned unset.
func (g *RedisGuard) Claim(ctx context.Context, deliveryKey, bookingID string) (domain.DeliveryClaim, error) {
	key := keyPrefix + deliveryKey

	ok, err := g.client.SetNX(ctx, key, pendingPrefix+bookingID, g.ttl).Result()
	if err != nil {
		return domain.DeliveryClaim{}, fmt.Errorf("claim delivery: %w", err)
	}
	if ok {
		return domain.DeliveryClaim{BookingID: bookingID, Owned: true}, nil
	}

	existing, err := g.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		// expired between SETNX and GET
		return g.Claim(ctx, deliveryKey, bookingID)
	}
	if err != nil {
		return domain.DeliveryClaim{}, fmt.Errorf("read delivery: %w", err)
	}

	id, pending := strings.CutPrefix(existing, pendingPrefix)
	return domain.DeliveryClaim{BookingID: id, Confirmed: !pending}, nil
}

// Confirm records that bookingID reached the ledger.
func (g *RedisGuard) Confirm(ctx context.Context, deliveryKey, bookingID string) error {
	if err := g.client.Set(ctx, keyPrefix+deliveryKey, bookingID, g.ttl).Err(); err != nil {
		return fmt.Errorf("confirm delivery: %w", err)
	}
	return nil
}

func (g *RedisGuard) Release(ctx context.Context, deliveryKey string) error {
	if err := g.client.Del(ctx, keyPrefix+deliveryKey).Err(); err != nil {
		return fmt.Errorf("release delivery: %w", err)
	}
	return nil
}

func (g *RedisGuard) Close() error {
	return g.client.Close()
}
