package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guardianpro/guardianpro-api/internal/cache"
	"github.com/guardianpro/guardianpro-api/internal/repository"
)

// PaymentExpiryWorker periodically fails payments that have been stuck in
// pending longer than the configured max age.
type PaymentExpiryWorker struct {
	paymentRepo  *repository.PaymentRepository
	paymentCache *cache.PaymentCache
	interval     time.Duration
	maxAge       time.Duration
}

// NewPaymentExpiryWorker constructs a PaymentExpiryWorker.
func NewPaymentExpiryWorker(
	paymentRepo *repository.PaymentRepository,
	paymentCache *cache.PaymentCache,
	interval time.Duration,
	maxAge time.Duration,
) *PaymentExpiryWorker {
	return &PaymentExpiryWorker{
		paymentRepo:  paymentRepo,
		paymentCache: paymentCache,
		interval:     interval,
		maxAge:       maxAge,
	}
}

// Start begins the periodic expiry loop until context is canceled.
func (w *PaymentExpiryWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Dur("max_age", w.maxAge).Msg("Starting payment expiry worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Payment expiry worker stopped")
			return
		}
	}
}

func (w *PaymentExpiryWorker) run(ctx context.Context) {
	references, err := w.paymentRepo.ExpireStalePending(w.maxAge)
	if err != nil {
		log.Error().Err(err).Msg("Failed to expire stale payments")
		return
	}
	if len(references) == 0 {
		return
	}

	log.Info().Int("count", len(references)).Msg("Expired stale pending payments")
	if w.paymentCache == nil {
		return
	}
	for _, ref := range references {
		// Respect cancellation between items
		select {
		case <-ctx.Done():
			return
		default:
			if err := w.paymentCache.Invalidate(ctx, ref); err != nil {
				log.Warn().Err(err).Str("reference", ref).Msg("Failed to invalidate expired payment cache")
			}
		}
	}
}
