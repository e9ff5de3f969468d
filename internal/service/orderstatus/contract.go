//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderstatus_test
package orderstatus

import (
	"context"
	"time"

	"foodnow/internal/entities"
)

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Repository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)

	// UpdateStatus persists the new status, its timestamp column and the
	// appended tracking event in a single write guarded by
	// update.ExpectedStatus. It returns ErrStatusConflict when the order's
	// status no longer matches the expectation.
	UpdateStatus(ctx context.Context, update entities.StatusUpdate) (*entities.Order, error)

	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]string, error)
}
