package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alerting-gov/broadcast-api/internal/models"
)

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	// Broadcast returns the broadcast message repository
	Broadcast() BroadcastRepository

	// Provider returns the provider details repository
	Provider() ProviderRepository
}

// BroadcastRepository interface defines broadcast message operations.
type BroadcastRepository interface {
	Create(ctx context.Context, message *models.BroadcastMessage) error
	GetByIDAndServiceID(ctx context.Context, id, serviceID uuid.UUID) (*models.BroadcastMessage, error)

	// GetByReferencesAndServiceID returns the single broadcast message whose
	// reference is among references, scoped to the service. Returns
	// ErrNotFound on zero matches and ErrMultipleFound on several.
	GetByReferencesAndServiceID(ctx context.Context, references []string, serviceID uuid.UUID) (*models.BroadcastMessage, error)

	// UpdateStatus persists a status transition and its audit fields with an
	// optimistic version check; returns ErrStaleVersion on a lost race.
	UpdateStatus(ctx context.Context, message *models.BroadcastMessage) error
}

// ProviderRepository interface defines provider details operations.
type ProviderRepository interface {
	GetByIdentifier(ctx context.Context, identifier string) (*models.ProviderDetails, error)
	ListByNotificationType(ctx context.Context, notificationType string) ([]*models.ProviderDetails, error)
	GetVersions(ctx context.Context, providerID uuid.UUID) ([]*models.ProviderDetailsHistory, error)

	// ReduceSMSProviderPriority shifts 10 points of traffic share from the
	// reduce provider to the increase provider inside one transaction, with
	// both rows locked FOR UPDATE and a history snapshot appended per row.
	ReduceSMSProviderPriority(ctx context.Context, reduceIdentifier, increaseIdentifier string, actorID uuid.UUID) error
}
