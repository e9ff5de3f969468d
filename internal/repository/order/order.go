package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"foodnow/internal/entities"
	"foodnow/internal/repository"
	"foodnow/internal/service/orderstatus"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, restaurant_id, customer_id, status, total_amount, item_count,
		delivery_area, tracking_updates, confirmed_at, started_preparing_at,
		ready_at, picked_up_at, cancelled_at, cancellation_reason, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&orderModel.ID,
		&orderModel.RestaurantID,
		&orderModel.CustomerID,
		&orderModel.Status,
		&orderModel.TotalAmount,
		&orderModel.ItemCount,
		&orderModel.DeliveryArea,
		&orderModel.TrackingUpdates,
		&orderModel.ConfirmedAt,
		&orderModel.StartedPreparingAt,
		&orderModel.ReadyAt,
		&orderModel.PickedUpAt,
		&orderModel.CancelledAt,
		&orderModel.CancellationReason,
		&orderModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderstatus.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	orderEntity, err := ToDomain(&orderModel)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}
	return orderEntity, nil
}

// UpdateStatus applies the transition in a single conditional UPDATE. The
// status filter in the WHERE clause is what makes concurrent writers safe:
// whichever statement matches the row first wins, the loser updates zero rows
// and gets ErrStatusConflict.
func (r *Repository) UpdateStatus(ctx context.Context, update entities.StatusUpdate) (*entities.Order, error) {
	eventJSON, err := json.Marshal([]TrackingEventDB{FromDomainEvent(update.Event)})
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	builder := qb.
		Update("orders").
		Set("status", update.NewStatus.String()).
		Set("tracking_updates", sq.Expr("tracking_updates || ?::jsonb", eventJSON))

	if update.ConfirmedAt != nil {
		builder = builder.Set("confirmed_at", update.ConfirmedAt)
	}
	if update.StartedPreparingAt != nil {
		builder = builder.Set("started_preparing_at", update.StartedPreparingAt)
	}
	if update.ReadyAt != nil {
		builder = builder.Set("ready_at", update.ReadyAt)
	}
	if update.PickedUpAt != nil {
		builder = builder.Set("picked_up_at", update.PickedUpAt)
	}
	if update.CancelledAt != nil {
		builder = builder.Set("cancelled_at", update.CancelledAt)
	}
	if update.CancellationReason != nil {
		builder = builder.Set("cancellation_reason", update.CancellationReason)
	}
	if update.RiderID != nil {
		builder = builder.Set("rider_id", update.RiderID)
	}

	builder = builder.
		Where(sq.Eq{"id": update.OrderID, "status": update.ExpectedStatus.String()}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&orderModel.ID,
		&orderModel.RestaurantID,
		&orderModel.CustomerID,
		&orderModel.Status,
		&orderModel.TotalAmount,
		&orderModel.ItemCount,
		&orderModel.DeliveryArea,
		&orderModel.TrackingUpdates,
		&orderModel.ConfirmedAt,
		&orderModel.StartedPreparingAt,
		&orderModel.ReadyAt,
		&orderModel.PickedUpAt,
		&orderModel.CancelledAt,
		&orderModel.CancellationReason,
		&orderModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMiss(ctx, update.OrderID)
		}
		// an actor id that fails the rider foreign key is an actor we do not know
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, orderstatus.ErrUnauthorized
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderEntity, err := ToDomain(&orderModel)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}
	return orderEntity, nil
}

// classifyMiss tells a vanished order apart from a lost race after the
// conditional UPDATE matched nothing.
func (r *Repository) classifyMiss(ctx context.Context, orderID string) error {
	query := `
		SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)
	`

	var exists bool
	if err := r.querier.QueryRow(ctx, query, orderID).Scan(&exists); err != nil {
		return fmt.Errorf("unexpected order repository update error: %w", err)
	}
	if !exists {
		return orderstatus.ErrOrderNotFound
	}
	return orderstatus.ErrStatusConflict
}

func (r *Repository) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]string, error) {
	query := `
		SELECT id
		FROM orders
		WHERE status = 'pending' AND created_at < $1
		ORDER BY created_at ASC
	`

	rows, err := r.querier.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list pending error: %w", err)
	}
	defer rows.Close()

	var orderIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected order repository list pending error: %w", err)
		}
		orderIDs = append(orderIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list pending error: %w", err)
	}

	return orderIDs, nil
}
