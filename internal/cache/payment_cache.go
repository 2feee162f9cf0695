package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/guardianpro/guardianpro-api/internal/models"
)

// paymentCacheTTL bounds how stale a cached verify lookup can be. Payments
// only transition once (pending -> completed/failed), and the processing
// path invalidates the entry, so a short TTL is enough.
const paymentCacheTTL = 5 * time.Minute

// PaymentCache caches payment verify lookups keyed by reference number.
type PaymentCache struct {
	redis *RedisClient
}

// NewPaymentCache creates a new PaymentCache.
func NewPaymentCache(redis *RedisClient) *PaymentCache {
	return &PaymentCache{redis: redis}
}

func (c *PaymentCache) key(reference string) string {
	return fmt.Sprintf("payment:ref:%s", reference)
}

// Get returns the cached payment for a reference, or nil on miss or decode
// failure. Cache errors are swallowed; the caller falls back to the database.
func (c *PaymentCache) Get(ctx context.Context, reference string) *models.Payment {
	raw, err := c.redis.Get(ctx, c.key(reference))
	if err != nil {
		return nil
	}
	var p models.Payment
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil
	}
	return &p
}

// Set stores a payment under its reference number.
func (c *PaymentCache) Set(ctx context.Context, p *models.Payment) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, c.key(p.ReferenceNumber), string(raw), paymentCacheTTL)
}

// Invalidate drops the cached entry for a reference, called after a status
// update so verify never serves the superseded pending row.
func (c *PaymentCache) Invalidate(ctx context.Context, reference string) error {
	return c.redis.Delete(ctx, c.key(reference))
}
