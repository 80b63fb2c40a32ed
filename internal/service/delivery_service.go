package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/alerting-gov/broadcast-api/internal/config"
)

// errDeliveryFailure is what a failed delivery receipt looks like to the
// provider's circuit breaker.
var errDeliveryFailure = errors.New("delivery failed")

// receiptMapping translates one provider's raw status codes into normalized
// delivery statuses, with optional detail descriptions per detailed code.
type receiptMapping map[string]struct {
	status  DeliveryStatus
	details map[string]string
}

var mmgReceipts = receiptMapping{
	"2": {status: DeliveryStatusPermanentFailure, details: map[string]string{
		"12": "Illegal equipment",
	}},
	"3": {status: DeliveryStatusDelivered, details: map[string]string{
		"5": "Delivered to handset",
	}},
	"4": {status: DeliveryStatusTemporaryFailure, details: map[string]string{
		"15": "Expired",
	}},
	"5": {status: DeliveryStatusPermanentFailure, details: map[string]string{
		"20": "Rejected by anti-flooding mechanism",
	}},
}

var firetextReceipts = receiptMapping{
	"0": {status: DeliveryStatusDelivered},
	"1": {status: DeliveryStatusPermanentFailure, details: map[string]string{
		"1": "Declined",
	}},
	"2": {status: DeliveryStatusTemporaryFailure},
}

var providerReceipts = map[string]receiptMapping{
	ProviderMMG:      mmgReceipts,
	ProviderFiretext: firetextReceipts,
}

type deliveryStatusService struct {
	failover FailoverService
	logger   *zap.Logger
	breakers map[string]*CircuitBreaker
}

// NewDeliveryStatusService wires one circuit breaker per SMS provider. When a
// provider's breaker opens under repeated delivery failure, its priority is
// reduced so future traffic shifts to the alternative provider.
func NewDeliveryStatusService(cfg *config.Config, failover FailoverService, logger *zap.Logger) DeliveryStatusService {
	s := &deliveryStatusService{
		failover: failover,
		logger:   logger,
		breakers: make(map[string]*CircuitBreaker, len(smsProviderPairs)),
	}

	for identifier := range smsProviderPairs {
		s.breakers[identifier] = NewCircuitBreaker(identifier, &cfg.Failover.CircuitBreaker, logger, s.onBreakerOpen)
	}

	return s
}

// ProcessReceipt ingests one delivery receipt from a provider callback, maps
// it to a normalized outcome and feeds the provider's breaker.
func (s *deliveryStatusService) ProcessReceipt(ctx context.Context, identifier, statusCode, detailedStatusCode, reference string) (*DeliveryOutcome, error) {
	mapping, ok := providerReceipts[identifier]
	if !ok {
		return nil, &ConfigurationError{Identifier: identifier}
	}

	entry, ok := mapping[statusCode]
	if !ok {
		return nil, fmt.Errorf("unrecognised %s delivery status code %s", identifier, statusCode)
	}

	outcome := &DeliveryOutcome{
		Provider:  identifier,
		Reference: reference,
		Status:    entry.status,
	}
	if detailedStatusCode != "" {
		if description, ok := entry.details[detailedStatusCode]; ok {
			outcome.Description = &description
		}
	}

	// Feed the breaker; a blocked call just means the breaker is already
	// open, which is not an ingestion failure.
	err := s.breakers[identifier].Execute(ctx, func() error {
		if outcome.Status.IsFailure() {
			return errDeliveryFailure
		}
		return nil
	})
	if err != nil && !errors.Is(err, errDeliveryFailure) {
		s.logger.Debug("Delivery receipt not counted by breaker",
			zap.String("provider", identifier),
			zap.Error(err))
	}

	s.logger.Info("Delivery receipt processed",
		zap.String("provider", identifier),
		zap.String("reference", reference),
		zap.String("status", string(outcome.Status)))

	return outcome, nil
}

// BreakerStates reports the current state of each provider's breaker.
func (s *deliveryStatusService) BreakerStates() map[string]CircuitBreakerState {
	states := make(map[string]CircuitBreakerState, len(s.breakers))
	for identifier, breaker := range s.breakers {
		states[identifier] = breaker.GetState()
	}
	return states
}

// onBreakerOpen fires when a provider's delivery quality trips its breaker.
func (s *deliveryStatusService) onBreakerOpen(identifier string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.failover.ReduceProviderPriority(ctx, identifier); err != nil {
		s.logger.Error("Failed to reduce priority of failing provider",
			zap.String("provider", identifier),
			zap.Error(err))
	}
}
