package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// CaptchaStore is a redis-backed implementation of base64Captcha.Store so
// captcha challenges survive restarts and work across replicas.
type CaptchaStore struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewCaptchaStore creates a CaptchaStore with the given challenge TTL.
func NewCaptchaStore(redis *RedisClient, ttl time.Duration) *CaptchaStore {
	return &CaptchaStore{redis: redis, ttl: ttl}
}

func (s *CaptchaStore) key(id string) string {
	return fmt.Sprintf("captcha:%s", id)
}

// Set stores the answer for a challenge ID.
func (s *CaptchaStore) Set(id string, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.redis.Set(ctx, s.key(id), value, s.ttl)
}

// Get returns the stored answer, optionally clearing it.
func (s *CaptchaStore) Get(id string, clear bool) string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	value, err := s.redis.Get(ctx, s.key(id))
	if err != nil {
		return ""
	}
	if clear {
		if err := s.redis.Delete(ctx, s.key(id)); err != nil {
			log.Warn().Err(err).Str("captcha_id", id).Msg("Failed to clear captcha answer")
		}
	}
	return value
}

// Verify checks an answer against the stored challenge. Challenges are single
// use: a correct answer always clears the entry.
func (s *CaptchaStore) Verify(id, answer string, clear bool) bool {
	stored := s.Get(id, clear)
	if stored == "" {
		return false
	}
	return strings.EqualFold(stored, answer)
}
