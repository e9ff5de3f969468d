package app

import (
	"context"
	"time"

	"foodnow/internal/entities"
	order_get "foodnow/internal/handlers/rest/order_get"
	order_status_post "foodnow/internal/handlers/rest/order_status_post"
	rider_available_orders_get "foodnow/internal/handlers/rest/rider_available_orders_get"
	rider_pickup_post "foodnow/internal/handlers/rest/rider_pickup_post"
	"foodnow/internal/handlers/tasks/pending_order_cleanup"
	"foodnow/internal/pkg/config"
	"foodnow/internal/pkg/factory/payment_handle"

	orderRepo "foodnow/internal/repository/order"
	riderRepo "foodnow/internal/repository/rider"
	matchingService "foodnow/internal/service/matching"
	orderstatusService "foodnow/internal/service/orderstatus"
	paymentService "foodnow/internal/service/payment"

	"foodnow/pkg/background"
	"foodnow/pkg/logger"
	"foodnow/pkg/querier"
	"foodnow/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	CleanupInterval time.Duration
	PendingMaxAge   time.Duration
)

type Application struct {
	ServiceOrderStatus ServiceOrderStatus
	ServiceMatching    ServiceMatching
	BackgroundWorkers  *background.Worker
}

type ServiceOrderStatus interface {
	order_status_post.Service
	rider_pickup_post.Service
	order_get.Service
}

type ServiceMatching interface {
	rider_available_orders_get.Service
}

type KafkaWorkerApp struct {
	PaymentService *paymentService.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideRiderRepository(querier *querier.Querier) *riderRepo.Repository {
	return riderRepo.New(querier)
}

func provideOrderStatusEngine(
	repository orderstatusService.Repository,
	txManager orderstatusService.TxManager,
) *orderstatusService.Engine {
	return orderstatusService.New(repository, txManager)
}

func provideMatchingConfig(cfg *config.Config) matchingService.Config {
	return matchingService.Config{
		EarningsRate:       cfg.Matching.EarningsRate,
		MinutesPerKm:       cfg.Matching.MinutesPerKm,
		PrepMinutes:        cfg.Matching.PrepMinutes,
		MinEstimateMinutes: cfg.Matching.MinEstimateMinutes,
		DefaultLocation: entities.GeoPoint{
			Latitude:  cfg.Matching.DefaultLatitude,
			Longitude: cfg.Matching.DefaultLongitude,
		},
		MaxDistanceKm: cfg.Matching.MaxDistanceKm,
		MaxCandidates: cfg.Matching.MaxCandidates,
		PoolLimit:     cfg.Matching.PoolLimit,
	}
}

func provideMatchingScorer(
	repository matchingService.Repository,
	cfg matchingService.Config,
) *matchingService.Scorer {
	return matchingService.New(repository, cfg)
}

func provideStatusHandlerFabric(engine payment_handle.TransitionService) *payment_handle.StatusHandlerFactory {
	return payment_handle.NewStatusHandlerFactory(engine)
}

func providePaymentService(handlerFactory paymentService.HandlerFactory) *paymentService.Service {
	return paymentService.New(handlerFactory)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.PendingOrderCleanupInterval)
}

func providePendingMaxAge(cfg *config.Config) PendingMaxAge {
	return PendingMaxAge(cfg.Tasks.PendingOrderMaxAge)
}

func providePendingOrderCleanupTask(
	log logger.Logger,
	orderStatusService pending_order_cleanup.Service,
	interval CleanupInterval,
	maxAge PendingMaxAge,
) *pending_order_cleanup.PendingOrderCleanup {
	return pending_order_cleanup.NewPendingOrderCleanup(log, orderStatusService, time.Duration(interval), time.Duration(maxAge))
}

func provideTaskList(
	pendingOrderCleanupTask *pending_order_cleanup.PendingOrderCleanup,
) []background.Task {
	return []background.Task{
		pendingOrderCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
