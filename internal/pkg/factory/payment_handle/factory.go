package payment_handle

import (
	"context"
	"fmt"

	"foodnow/internal/entities"
	"foodnow/internal/service/orderstatus"
	"foodnow/internal/service/payment"
)

type TransitionService interface {
	RequestTransition(ctx context.Context, req orderstatus.TransitionRequest) (*entities.Order, error)
}

type StatusHandlerFactory struct {
	statusEngine TransitionService
}

func NewStatusHandlerFactory(statusEngine TransitionService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		statusEngine: statusEngine,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.PaymentStatusType) (payment.ExecuteFn, error) {
	switch status {
	case entities.PaymentSuccess:
		return f.successHandler, nil
	case entities.PaymentFailed:
		return f.failedHandler, nil
	case entities.PaymentAbandoned:
		return f.abandonedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", payment.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) successHandler(ctx context.Context, orderID string) error {
	_, err := f.statusEngine.RequestTransition(ctx, orderstatus.TransitionRequest{
		OrderID:   orderID,
		Status:    entities.OrderConfirmed,
		ActorRole: entities.ActorSystem,
	})
	if err != nil {
		return fmt.Errorf("confirm paid order %s: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) failedHandler(ctx context.Context, orderID string) error {
	return f.cancel(ctx, orderID, "Payment failed")
}

func (f *StatusHandlerFactory) abandonedHandler(ctx context.Context, orderID string) error {
	return f.cancel(ctx, orderID, "Payment abandoned")
}

func (f *StatusHandlerFactory) cancel(ctx context.Context, orderID, reason string) error {
	_, err := f.statusEngine.RequestTransition(ctx, orderstatus.TransitionRequest{
		OrderID:   orderID,
		Status:    entities.OrderCancelled,
		ActorRole: entities.ActorSystem,
		Reason:    reason,
	})
	if err != nil {
		return fmt.Errorf("cancel unpaid order %s: %w", orderID, err)
	}
	return nil
}
