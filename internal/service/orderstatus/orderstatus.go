package orderstatus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"foodnow/internal/entities"
)

const defaultCancellationReason = "Order declined by restaurant"

type Engine struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Engine {
	return &Engine{
		repository: repository,
		txManager:  txManager,
	}
}

type TransitionRequest struct {
	OrderID   string
	Status    entities.OrderStatusType
	ActorRole entities.ActorRole
	ScopeID   string
	Reason    string
}

// RequestTransition moves an order one step along the transition table on
// behalf of an actor. On success exactly one tracking event is appended and
// exactly one status timestamp is set; on any failure nothing is persisted.
func (e *Engine) RequestTransition(ctx context.Context, req TransitionRequest) (*entities.Order, error) {
	if !isValidOrderID(req.OrderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidStatus(req.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}
	if !isValidActorRole(req.ActorRole) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidActorRole, req.ActorRole)
	}

	var updated *entities.Order
	err := e.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := e.repository.GetByID(ctx, req.OrderID)
		if err != nil {
			return fmt.Errorf("get order %s: %w", req.OrderID, err)
		}

		if err := checkScope(order, req.ActorRole, req.ScopeID); err != nil {
			return err
		}

		if !canTransition(order.Status, req.Status) || !roleAllows(req.ActorRole, order.Status, req.Status) {
			return &InvalidTransitionError{Current: order.Status, Requested: req.Status}
		}

		now := time.Now().UTC()
		update := buildStatusUpdate(order, req, now)

		updated, err = e.repository.UpdateStatus(ctx, update)
		if err != nil {
			if errors.Is(err, ErrStatusConflict) {
				// lost the race: surface whatever status won
				return e.lostRaceError(ctx, req)
			}
			return fmt.Errorf("update order %s status: %w", req.OrderID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// GetOrder returns an order with its full tracking history.
func (e *Engine) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := e.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}

	return order, nil
}

// CancelStalePending cancels, as the system actor, every order that has been
// sitting in pending since before maxAge ago. Orders that change status
// mid-sweep are skipped, not errored.
func (e *Engine) CancelStalePending(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-maxAge)

	orderIDs, err := e.repository.ListPendingOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("list stale pending orders: %w", err)
	}

	var cancelled int64
	for _, orderID := range orderIDs {
		_, err := e.RequestTransition(ctx, TransitionRequest{
			OrderID:   orderID,
			Status:    entities.OrderCancelled,
			ActorRole: entities.ActorSystem,
			Reason:    "Order not confirmed in time",
		})
		if err != nil {
			if errors.Is(err, ErrInvalidTransition) || errors.Is(err, ErrOrderNotFound) {
				continue
			}
			return cancelled, fmt.Errorf("cancel stale order %s: %w", orderID, err)
		}
		cancelled++
	}

	return cancelled, nil
}

func checkScope(order *entities.Order, role entities.ActorRole, scopeID string) error {
	switch role {
	case entities.ActorRestaurant:
		if order.RestaurantID != scopeID {
			return ErrUnauthorized
		}
	case entities.ActorRider:
		if scopeID == "" {
			return ErrUnauthorized
		}
	case entities.ActorSystem:
	}
	return nil
}

func buildStatusUpdate(order *entities.Order, req TransitionRequest, now time.Time) entities.StatusUpdate {
	update := entities.StatusUpdate{
		OrderID:        order.ID,
		ExpectedStatus: order.Status,
		NewStatus:      req.Status,
	}

	message := fmt.Sprintf("Order %s by %s", req.Status, req.ActorRole)

	switch req.Status {
	case entities.OrderConfirmed:
		update.ConfirmedAt = pointer.To(now)
	case entities.OrderPreparing:
		update.StartedPreparingAt = pointer.To(now)
	case entities.OrderReady:
		update.ReadyAt = pointer.To(now)
	case entities.OrderPickedUp:
		update.PickedUpAt = pointer.To(now)
		update.RiderID = pointer.To(req.ScopeID)
	case entities.OrderCancelled:
		reason := req.Reason
		if reason == "" {
			reason = defaultCancellationReason
		}
		update.CancelledAt = pointer.To(now)
		update.CancellationReason = pointer.To(reason)
		message = fmt.Sprintf("Order cancelled: %s", reason)
	}

	update.Event = entities.TrackingEvent{
		Status:    req.Status,
		Timestamp: now,
		Message:   message,
		Location:  req.ActorRole.String(),
		UpdatedBy: req.ActorRole,
	}

	return update
}

func (e *Engine) lostRaceError(ctx context.Context, req TransitionRequest) error {
	current, err := e.repository.GetByID(ctx, req.OrderID)
	if err != nil {
		return &InvalidTransitionError{Requested: req.Status}
	}
	return &InvalidTransitionError{Current: current.Status, Requested: req.Status}
}
