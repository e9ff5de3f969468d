//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matching_test
package matching

import (
	"context"

	"foodnow/internal/entities"
)

type Repository interface {
	GetRiderByID(ctx context.Context, riderID string) (*entities.Rider, error)

	// ListAvailableOrders returns ready, unassigned orders joined with their
	// restaurant's coordinates, oldest first.
	ListAvailableOrders(ctx context.Context, limit int) ([]entities.AvailableOrder, error)
}
