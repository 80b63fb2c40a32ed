package service

import (
	"github.com/google/uuid"

	"github.com/alerting-gov/broadcast-api/internal/models"
)

// Identity carries the authenticated caller's context into core operations.
// It is derived by the (out-of-scope) authentication layer and passed
// explicitly; no operation reads ambient request globals.
type Identity struct {
	ServiceID         uuid.UUID
	APIKeyID          uuid.UUID
	Permissions       []string
	ServiceRestricted bool
}

// HasPermission reports whether the identity's permission set contains the
// given capability.
func (i Identity) HasPermission(capability string) bool {
	for _, p := range i.Permissions {
		if p == capability {
			return true
		}
	}
	return false
}

// PermissionBroadcast is the capability required to send broadcast messages.
const PermissionBroadcast = "broadcast"

// DeliveryStatus is the normalized outcome of one SMS delivery attempt.
type DeliveryStatus string

const (
	DeliveryStatusDelivered        DeliveryStatus = "delivered"
	DeliveryStatusPending          DeliveryStatus = "pending"
	DeliveryStatusTemporaryFailure DeliveryStatus = "temporary-failure"
	DeliveryStatusPermanentFailure DeliveryStatus = "permanent-failure"
)

// IsFailure reports whether the status counts against the provider's
// delivery quality.
func (s DeliveryStatus) IsFailure() bool {
	return s == DeliveryStatusTemporaryFailure || s == DeliveryStatusPermanentFailure
}

// DeliveryOutcome is the mapped result of a provider delivery receipt.
type DeliveryOutcome struct {
	Provider    string         `json:"provider"`
	Reference   string         `json:"reference"`
	Status      DeliveryStatus `json:"status"`
	Description *string        `json:"description"`
}

// HealthStatus is the aggregate health report for the service.
type HealthStatus struct {
	Status         string                         `json:"status"`
	DatabaseStatus string                         `json:"database_status"`
	RedisStatus    string                         `json:"redis_status"`
	ProviderStates map[string]CircuitBreakerState `json:"provider_states"`
	Providers      []*models.ProviderResponse     `json:"providers,omitempty"`
}

// Health status values.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusDegraded  = "degraded"
	HealthStatusUnhealthy = "unhealthy"

	ConnectionStatusConnected    = "connected"
	ConnectionStatusDisconnected = "disconnected"
)
