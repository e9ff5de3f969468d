package rider

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"foodnow/internal/entities"
	"foodnow/internal/service/matching"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetRiderByID(ctx context.Context, riderID string) (*entities.Rider, error) {
	query := `
		SELECT id, name, phone, status, last_latitude, last_longitude, created_at, updated_at
		FROM riders
		WHERE id = $1
	`

	var riderModel RiderDB
	err := r.querier.QueryRow(ctx, query, riderID).Scan(
		&riderModel.ID,
		&riderModel.Name,
		&riderModel.Phone,
		&riderModel.Status,
		&riderModel.LastLatitude,
		&riderModel.LastLongitude,
		&riderModel.CreatedAt,
		&riderModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, matching.ErrRiderNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository get error: %w", err)
	}

	return ToDomain(&riderModel), nil
}

func (r *Repository) ListAvailableOrders(ctx context.Context, limit int) ([]entities.AvailableOrder, error) {
	query := `
		SELECT
			o.id, o.restaurant_id, rs.name, rs.latitude, rs.longitude,
			o.delivery_area, o.item_count, o.total_amount, o.created_at
		FROM orders o
		JOIN restaurants rs ON rs.id = o.restaurant_id
		WHERE o.status = 'ready' AND o.rider_id IS NULL
		ORDER BY o.created_at ASC
		LIMIT $1
	`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository list orders error: %w", err)
	}
	defer rows.Close()

	var orders []entities.AvailableOrder
	for rows.Next() {
		var orderModel AvailableOrderDB
		err := rows.Scan(
			&orderModel.OrderID,
			&orderModel.RestaurantID,
			&orderModel.RestaurantName,
			&orderModel.Latitude,
			&orderModel.Longitude,
			&orderModel.DeliveryArea,
			&orderModel.ItemCount,
			&orderModel.TotalAmount,
			&orderModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected rider repository list orders error: %w", err)
		}
		orders = append(orders, ToAvailableOrderDomain(&orderModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected rider repository list orders error: %w", err)
	}

	return orders, nil
}
