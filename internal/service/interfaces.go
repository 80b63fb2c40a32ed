package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/alerting-gov/broadcast-api/internal/models"
)

// BroadcastService owns the ingestion and lifecycle of broadcast messages.
type BroadcastService interface {
	// CreateFromCAP ingests a raw CAP v1.2 XML payload. Alert documents
	// produce a new message in pending-approval; Cancel documents reject or
	// cancel the message they reference.
	CreateFromCAP(ctx context.Context, identity Identity, contentType string, body []byte) (*models.BroadcastMessage, error)

	// GetBroadcastMessage returns one message scoped to a service.
	GetBroadcastMessage(ctx context.Context, identity Identity, broadcastID uuid.UUID) (*models.BroadcastMessage, error)
}

// FailoverService shifts traffic share between the two SMS providers in
// response to delivery-quality signals.
type FailoverService interface {
	ReduceProviderPriority(ctx context.Context, identifier string) error
	ListProviders(ctx context.Context, notificationType string) ([]*models.ProviderDetails, error)
	GetProviderVersions(ctx context.Context, providerID uuid.UUID) ([]*models.ProviderDetailsHistory, error)
}

// DeliveryStatusService ingests provider delivery receipts and turns repeated
// failures into failover triggers.
type DeliveryStatusService interface {
	ProcessReceipt(ctx context.Context, identifier, statusCode, detailedStatusCode, reference string) (*DeliveryOutcome, error)
	BreakerStates() map[string]CircuitBreakerState
}

// HealthService reports the aggregate health of the service.
type HealthService interface {
	GetHealth(ctx context.Context) *HealthStatus
}
