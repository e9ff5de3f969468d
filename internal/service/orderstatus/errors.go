package orderstatus

import (
	"errors"
	"fmt"

	"foodnow/internal/entities"
)

var (
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrInvalidActorRole = errors.New("invalid actor role")

	ErrOrderNotFound     = errors.New("order not found")
	ErrUnauthorized      = errors.New("actor scope does not own the order")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrStatusConflict    = errors.New("order status changed concurrently")
)

// InvalidTransitionError carries both ends of a rejected transition so callers
// can log them; it is never shown verbatim to end users.
type InvalidTransitionError struct {
	Current   entities.OrderStatusType
	Requested entities.OrderStatusType
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.Current, e.Requested)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
