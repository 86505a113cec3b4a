// Package dedup remembers inbound email Message-IDs in Redis so re-delivered
// messages are dispatched once.
//
// A message is first claimed with a short-lived "pending" mark and only marked
// "done" after it was processed. A re-delivery that races a pending claim is
// told so, instead of being dropped as a duplicate of work that may still fail.
package dedup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

const (
	// DefaultTTL is used when the configured TTL is not positive.
	DefaultTTL = 72 * time.Hour
	// PendingTTL bounds a claim whose holder died before completing.
	PendingTTL = 5 * time.Minute

	keyPrefix = "crm:inbound:seen:"

	statePending = "pending"
	stateDone    = "done"
)

// Filter tracks which messages have already been processed per organization.
type Filter struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewFilter creates a dedup filter backed by Redis.
func NewFilter(rdb redis.Cmdable, ttl time.Duration) *Filter {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Filter{rdb: rdb, ttl: ttl}
}

// Claim reserves messageID for the caller. It reports DeliveryNew when the
// caller now owns the message, DeliveryInFlight when another claim is still
// pending and DeliveryDone when the message was completed earlier.
func (f *Filter) Claim(ctx context.Context, orgID uuid.UUID, messageID string) (domain.DeliveryState, error) {
	k := key(orgID, messageID)
	set, err := f.rdb.SetNX(ctx, k, statePending, min(PendingTTL, f.ttl)).Result()
	if err != nil {
		return domain.DeliveryNew, fmt.Errorf("dedup SETNX: %w", err)
	}
	if set {
		return domain.DeliveryNew, nil
	}

	state, err := f.rdb.Get(ctx, k).Result()
	switch {
	case errors.Is(err, redis.Nil):
		// Released between the two calls; the releasing attempt may retry.
		return domain.DeliveryInFlight, nil
	case err != nil:
		return domain.DeliveryNew, fmt.Errorf("dedup GET: %w", err)
	case state == stateDone:
		return domain.DeliveryDone, nil
	default:
		return domain.DeliveryInFlight, nil
	}
}

// Complete marks a claimed message as processed for the full TTL.
func (f *Filter) Complete(ctx context.Context, orgID uuid.UUID, messageID string) error {
	if err := f.rdb.Set(ctx, key(orgID, messageID), stateDone, f.ttl).Err(); err != nil {
		return fmt.Errorf("dedup SET: %w", err)
	}
	return nil
}

// Forget releases a claim so a failed message can be retried.
func (f *Filter) Forget(ctx context.Context, orgID uuid.UUID, messageID string) error {
	if err := f.rdb.Del(ctx, key(orgID, messageID)).Err(); err != nil {
		return fmt.Errorf("dedup DEL: %w", err)
	}
	return nil
}

func key(orgID uuid.UUID, messageID string) string {
	return keyPrefix + orgID.String() + ":" + messageID
}

// NewClient opens a Redis client and pings it.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}
