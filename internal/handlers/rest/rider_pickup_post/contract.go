//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_pickup_post_test
package rider_pickup_post

import (
	"context"

	"foodnow/internal/entities"
	"foodnow/internal/service/orderstatus"
	"foodnow/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RequestTransition(ctx context.Context, req orderstatus.TransitionRequest) (*entities.Order, error)
}
