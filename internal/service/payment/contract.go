//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"foodnow/internal/entities"
)

type (
	ExecuteFn      func(ctx context.Context, orderID string) error
	HandlerFactory interface {
		GetHandler(status entities.PaymentStatusType) (ExecuteFn, error)
	}
)
