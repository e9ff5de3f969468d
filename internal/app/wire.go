//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"foodnow/internal/handlers/tasks/pending_order_cleanup"
	"foodnow/internal/pkg/config"
	"foodnow/internal/pkg/factory/payment_handle"

	orderRepo "foodnow/internal/repository/order"
	riderRepo "foodnow/internal/repository/rider"
	matchingService "foodnow/internal/service/matching"
	orderstatusService "foodnow/internal/service/orderstatus"
	paymentService "foodnow/internal/service/payment"

	"foodnow/pkg/logger"
	"foodnow/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,
		providePendingMaxAge,
		provideMatchingConfig,

		provideOrderRepository,
		provideRiderRepository,

		provideOrderStatusEngine,
		provideMatchingScorer,

		providePendingOrderCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrderStatus), new(*orderstatusService.Engine)),
		wire.Bind(new(ServiceMatching), new(*matchingService.Scorer)),

		wire.Bind(new(orderstatusService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(matchingService.Repository), new(*riderRepo.Repository)),

		wire.Bind(new(orderstatusService.TxManager), new(*tx.Manager)),

		wire.Bind(new(pending_order_cleanup.Service), new(*orderstatusService.Engine)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp wires the payment events worker
// (cmd/worker-payment-status-changed).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideOrderStatusEngine,

		provideStatusHandlerFabric,
		providePaymentService,

		wire.Bind(new(orderstatusService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderstatusService.TxManager), new(*tx.Manager)),
		wire.Bind(new(payment_handle.TransitionService), new(*orderstatusService.Engine)),
		wire.Bind(new(paymentService.HandlerFactory), new(*payment_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
