//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_available_orders_get_test
package rider_available_orders_get

import (
	"context"

	"foodnow/internal/entities"
	"foodnow/internal/service/matching"
	"foodnow/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	FindCandidates(ctx context.Context, riderID string, riderLocation *entities.GeoPoint, opts matching.Options) ([]entities.OrderCandidate, error)
}
