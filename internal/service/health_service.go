package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/alerting-gov/broadcast-api/internal/repository"
)

type healthService struct {
	repo            repository.Repository
	redisClient     *redis.Client
	deliveryService DeliveryStatusService
}

func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	deliveryService DeliveryStatusService,
) HealthService {
	return &healthService{
		repo:            repo,
		redisClient:     redisClient,
		deliveryService: deliveryService,
	}
}

func (s *healthService) GetHealth(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:         HealthStatusHealthy,
		DatabaseStatus: s.checkDatabaseHealth(),
		RedisStatus:    s.checkRedisHealth(ctx),
		ProviderStates: s.deliveryService.BreakerStates(),
	}

	if status.DatabaseStatus != ConnectionStatusConnected || status.RedisStatus != ConnectionStatusConnected {
		status.Status = HealthStatusUnhealthy
		return status
	}

	// An open breaker means one provider is failing over; the service still
	// serves traffic through the other provider.
	for _, state := range status.ProviderStates {
		if state == CircuitBreakerOpen {
			status.Status = HealthStatusDegraded
			break
		}
	}

	return status
}

func (s *healthService) checkDatabaseHealth() string {
	if err := s.repo.Ping(); err != nil {
		return ConnectionStatusDisconnected
	}
	return ConnectionStatusConnected
}

func (s *healthService) checkRedisHealth(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return ConnectionStatusDisconnected
	}
	return ConnectionStatusConnected
}
