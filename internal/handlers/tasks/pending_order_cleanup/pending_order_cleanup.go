package pending_order_cleanup

import (
	"context"
	"time"

	"foodnow/pkg/logger"
)

type Service interface {
	CancelStalePending(ctx context.Context, maxAge time.Duration) (int64, error)
}

// PendingOrderCleanup cancels orders a restaurant never reacted to, so they do
// not sit in pending forever.
type PendingOrderCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	maxAge   time.Duration
}

func NewPendingOrderCleanup(log logger.Logger, service Service, interval, maxAge time.Duration) *PendingOrderCleanup {
	return &PendingOrderCleanup{
		log:      log,
		service:  service,
		interval: interval,
		maxAge:   maxAge,
	}
}

func (p *PendingOrderCleanup) TTL() time.Duration {
	return p.interval
}

func (p *PendingOrderCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	cancelled, err := p.service.CancelStalePending(ctxWithTimeout, p.maxAge)

	if cancelled > 0 {
		p.log.With(
			logger.NewField("cancelled_orders", cancelled),
		).Info("pending order cleanup")
	}

	return err
}

func (p *PendingOrderCleanup) Info() string {
	return "pending order cleanup"
}
