package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alerting-gov/broadcast-api/internal/config"
	"github.com/alerting-gov/broadcast-api/internal/models"
	"github.com/alerting-gov/broadcast-api/internal/repository"
)

// The two competing SMS providers. The failover model assumes exactly two
// providers per channel so that priority moves zero-sum between them.
const (
	ProviderFiretext = "firetext"
	ProviderMMG      = "mmg"
)

// smsProviderPairs maps each SMS provider to its alternative.
var smsProviderPairs = map[string]string{
	ProviderFiretext: ProviderMMG,
	ProviderMMG:      ProviderFiretext,
}

// ConfigurationError indicates a deployment or data error rather than a user
// error: a provider identifier the system does not know.
type ConfigurationError struct {
	Identifier string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unrecognised sms provider %s", e.Identifier)
}

// AlternativeSMSProvider returns the other provider of the SMS pair.
func AlternativeSMSProvider(identifier string) (string, error) {
	other, ok := smsProviderPairs[identifier]
	if !ok {
		return "", &ConfigurationError{Identifier: identifier}
	}
	return other, nil
}

type failoverService struct {
	repo         repository.Repository
	logger       *zap.Logger
	systemUserID uuid.UUID
}

func NewFailoverService(cfg *config.Config, repo repository.Repository, logger *zap.Logger) FailoverService {
	systemUserID, err := uuid.Parse(cfg.Failover.SystemUserID)
	if err != nil {
		logger.Warn("Invalid failover system user id, provider history will record a nil actor",
			zap.String("system_user_id", cfg.Failover.SystemUserID))
		systemUserID = uuid.Nil
	}

	return &failoverService{
		repo:         repo,
		logger:       logger,
		systemUserID: systemUserID,
	}
}

// ReduceProviderPriority shifts 10 points of traffic share away from an
// underperforming SMS provider and toward its alternative. A simple negative
// feedback loop: repeated delivery failure on one channel moves future traffic
// to the other without manual intervention.
func (s *failoverService) ReduceProviderPriority(ctx context.Context, identifier string) error {
	other, err := AlternativeSMSProvider(identifier)
	if err != nil {
		return err
	}

	if err := s.repo.Provider().ReduceSMSProviderPriority(ctx, identifier, other, s.systemUserID); err != nil {
		return fmt.Errorf("failed to reduce priority of provider %s: %w", identifier, err)
	}

	s.logger.Info("Shifted sms traffic share between providers",
		zap.String("reduced", identifier),
		zap.String("increased", other))

	return nil
}

// ListProviders returns provider rows for a channel ordered by priority.
func (s *failoverService) ListProviders(ctx context.Context, notificationType string) ([]*models.ProviderDetails, error) {
	return s.repo.Provider().ListByNotificationType(ctx, notificationType)
}

// GetProviderVersions returns a provider's history ledger, newest first.
func (s *failoverService) GetProviderVersions(ctx context.Context, providerID uuid.UUID) ([]*models.ProviderDetailsHistory, error) {
	return s.repo.Provider().GetVersions(ctx, providerID)
}
