// internal/application/canceller.go
package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/domain"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/ports"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/telemetry"
)

const cancelReasonStale = "stale"

type CancellerConfig struct {
	StaleAfter time.Duration
	Page       int
	Size       int
}

// Canceller cancels orders left in CREATED for longer than StaleAfter.
type Canceller struct {
	requests  ports.RequestRepositoryPort
	publisher ports.EventPublisherPort
	cfg       CancellerConfig
	logger    *zap.Logger
	now       func() time.Time
}

func NewCanceller(requests ports.RequestRepositoryPort, publisher ports.EventPublisherPort, cfg CancellerConfig, logger *zap.Logger) *Canceller {
	return &Canceller{
		requests:  requests,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Run processes one page of stale orders and returns how many were
// canceled. Failures are logged; a failing order does not stop the page.
func (c *Canceller) Run(ctx context.Context) int {
	now := c.now()
	cutoff := now.Add(-c.cfg.StaleAfter)

	stale, err := c.requests.FindStaleRequests(ctx, cutoff, c.cfg.Page, c.cfg.Size)
	if err != nil {
		c.logger.Error("failed to load stale requests", zap.Time("cutoff", cutoff), zap.Error(err))
		return 0
	}

	canceled := 0
	for _, r := range stale {
		if !r.IsStale(now, c.cfg.StaleAfter) {
			continue
		}
		if err := r.Cancel(now); err != nil {
			c.logger.Warn("skipping request", zap.String("request_id", r.ID), zap.Error(err))
			continue
		}
		if err := c.requests.UpdateRequest(ctx, r); err != nil {
			c.logger.Error("failed to cancel stale request", zap.String("request_id", r.ID), zap.Error(err))
			continue
		}
		canceled++
		telemetry.RecordRequestCanceled(cancelReasonStale)
		c.publish(ctx, r, now)
	}

	c.logger.Info("stale request sweep finished",
		zap.Int("found", len(stale)),
		zap.Int("canceled", canceled))
	return canceled
}

func (c *Canceller) publish(ctx context.Context, r *domain.Request, now time.Time) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.Publish(ctx, domain.NewRequestEvent(domain.EventRequestCanceled, r, now)); err != nil {
		c.logger.Warn("failed to publish request event", zap.String("request_id", r.ID), zap.Error(err))
	}
}
