package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/alerting-gov/broadcast-api/internal/cap"
	"github.com/alerting-gov/broadcast-api/internal/config"
	"github.com/alerting-gov/broadcast-api/internal/repository"
)

type Service struct {
	Broadcast BroadcastService
	Failover  FailoverService
	Delivery  DeliveryStatusService
	Health    HealthService
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	schemaValidator cap.SchemaValidator,
	logger *zap.Logger,
) *Service {
	broadcastService := NewBroadcastService(cfg, repo, redisClient, schemaValidator, logger)
	failoverService := NewFailoverService(cfg, repo, logger)
	deliveryService := NewDeliveryStatusService(cfg, failoverService, logger)
	healthService := NewHealthService(repo, redisClient, deliveryService)

	return &Service{
		Broadcast: broadcastService,
		Failover:  failoverService,
		Delivery:  deliveryService,
		Health:    healthService,
	}
}
