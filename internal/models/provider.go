package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Notification types carried by delivery providers.
const (
	NotificationTypeSMS   = "sms"
	NotificationTypeEmail = "email"
)

// Priority bounds for provider traffic share.
const (
	ProviderPriorityMin = 0
	ProviderPriorityMax = 100
)

// ProviderDetails represents one delivery provider's operating configuration.
// Priority is a 0-100 weight: higher means a larger share of outbound traffic.
type ProviderDetails struct {
	ID                    uuid.UUID     `db:"id"`
	DisplayName           string        `db:"display_name"`
	Identifier            string        `db:"identifier"`
	Priority              int           `db:"priority"`
	NotificationType      string        `db:"notification_type"`
	Active                bool          `db:"active"`
	SupportsInternational bool          `db:"supports_international"`
	Version               int           `db:"version"`
	UpdatedAt             sql.NullTime  `db:"updated_at"`
	CreatedByID           uuid.NullUUID `db:"created_by_id"`
}

// ProviderDetailsHistory is an immutable snapshot of a provider row, one per
// version, appended on every mutation.
type ProviderDetailsHistory struct {
	ID                    uuid.UUID     `db:"id"`
	DisplayName           string        `db:"display_name"`
	Identifier            string        `db:"identifier"`
	Priority              int           `db:"priority"`
	NotificationType      string        `db:"notification_type"`
	Active                bool          `db:"active"`
	SupportsInternational bool          `db:"supports_international"`
	Version               int           `db:"version"`
	UpdatedAt             sql.NullTime  `db:"updated_at"`
	CreatedByID           uuid.NullUUID `db:"created_by_id"`
}

// HistoryFromProvider builds the history snapshot for the provider's current version.
func HistoryFromProvider(p *ProviderDetails) *ProviderDetailsHistory {
	return &ProviderDetailsHistory{
		ID:                    p.ID,
		DisplayName:           p.DisplayName,
		Identifier:            p.Identifier,
		Priority:              p.Priority,
		NotificationType:      p.NotificationType,
		Active:                p.Active,
		SupportsInternational: p.SupportsInternational,
		Version:               p.Version,
		UpdatedAt:             p.UpdatedAt,
		CreatedByID:           p.CreatedByID,
	}
}

// ClampPriority keeps a priority inside [ProviderPriorityMin, ProviderPriorityMax].
func ClampPriority(p int) int {
	if p < ProviderPriorityMin {
		return ProviderPriorityMin
	}
	if p > ProviderPriorityMax {
		return ProviderPriorityMax
	}
	return p
}

// ProviderResponse is the serialized JSON shape of a provider row.
type ProviderResponse struct {
	ID                    uuid.UUID  `json:"id"`
	DisplayName           string     `json:"display_name"`
	Identifier            string     `json:"identifier"`
	Priority              int        `json:"priority"`
	NotificationType      string     `json:"notification_type"`
	Active                bool       `json:"active"`
	SupportsInternational bool       `json:"supports_international"`
	Version               int        `json:"version"`
	UpdatedAt             *time.Time `json:"updated_at"`
}

// Serialize converts provider details into the API response shape.
func (p *ProviderDetails) Serialize() *ProviderResponse {
	return &ProviderResponse{
		ID:                    p.ID,
		DisplayName:           p.DisplayName,
		Identifier:            p.Identifier,
		Priority:              p.Priority,
		NotificationType:      p.NotificationType,
		Active:                p.Active,
		SupportsInternational: p.SupportsInternational,
		Version:               p.Version,
		UpdatedAt:             nullTime(p.UpdatedAt),
	}
}
