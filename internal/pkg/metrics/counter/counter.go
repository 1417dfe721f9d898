package counter

import (
	"context"
	"strconv"

	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
)

const shopCountersKey = "shop:counters"

// Counter fields
const (
	CheckoutSessions  = "checkout_sessions"
	OrdersRedirect    = "orders_redirect"
	OrdersWebhook     = "orders_webhook"
	WebhookDeliveries = "webhook_deliveries"
)

// Store keeps activity counters in a Redis hash. A nil Store or a nil client
// turns every call into a no-op so callers never depend on the cache.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Incr bumps field by one. Errors are logged, never returned.
func (s *Store) Incr(ctx context.Context, field string) {
	if s == nil || s.client == nil {
		return
	}
	if err := s.client.HIncrBy(ctx, shopCountersKey, field, 1).Err(); err != nil {
		fiberlog.Debugf("[Counter] increment %s failed: %v", field, err)
	}
}

// All returns every counter. Missing counters are reported as zero.
func (s *Store) All(ctx context.Context) (map[string]int64, error) {
	out := map[string]int64{
		CheckoutSessions:  0,
		OrdersRedirect:    0,
		OrdersWebhook:     0,
		WebhookDeliveries: 0,
	}
	if s == nil || s.client == nil {
		return out, nil
	}

	data, err := s.client.HGetAll(ctx, shopCountersKey).Result()
	if err != nil {
		return nil, err
	}
	for k, v := range data {
		n, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			continue
		}
		out[k] = n
	}
	return out, nil
}

// Reset drops all counters.
func (s *Store) Reset(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Del(ctx, shopCountersKey).Err()
}
