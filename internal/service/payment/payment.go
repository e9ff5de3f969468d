package payment

import (
	"context"
	"errors"
	"fmt"

	"foodnow/internal/entities"
)

type Service struct {
	statusFactory HandlerFactory
}

func New(statusFactory HandlerFactory) *Service {
	return &Service{
		statusFactory: statusFactory,
	}
}

// ProcessPaymentEvent maps one payment-gateway event onto a system-actor order
// transition. Events with statuses we do not act on are skipped, not errored,
// so the consumer can acknowledge them.
func (s *Service) ProcessPaymentEvent(ctx context.Context, event entities.PaymentEvent) error {
	if event.OrderID == "" {
		return ErrMissingOrderID
	}

	executeFn, err := s.statusFactory.GetHandler(event.Status)
	if err != nil {
		if errors.Is(err, ErrUndefinedStatus) {
			return nil
		}
		return err
	}

	if err := executeFn(ctx, event.OrderID); err != nil {
		return fmt.Errorf("handle %s payment for order %s: %w", event.Status, event.OrderID, err)
	}

	return nil
}
