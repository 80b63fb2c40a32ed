// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BroadcastStatus is the lifecycle state of a broadcast message.
type BroadcastStatus string

const (
	BroadcastStatusDraft           BroadcastStatus = "draft"
	BroadcastStatusPendingApproval BroadcastStatus = "pending-approval"
	BroadcastStatusRejected        BroadcastStatus = "rejected"
	BroadcastStatusBroadcasting    BroadcastStatus = "broadcasting"
	BroadcastStatusCompleted       BroadcastStatus = "completed"
	BroadcastStatusCancelled       BroadcastStatus = "cancelled"
)

// AllowedStatusTransitions maps each status to the statuses reachable from it.
// Terminal statuses (rejected via draft re-entry excluded, completed, cancelled)
// have no outgoing edges beyond re-drafting.
var AllowedStatusTransitions = map[BroadcastStatus]map[BroadcastStatus]struct{}{
	BroadcastStatusDraft:           {BroadcastStatusPendingApproval: {}},
	BroadcastStatusPendingApproval: {BroadcastStatusRejected: {}, BroadcastStatusDraft: {}, BroadcastStatusBroadcasting: {}},
	BroadcastStatusRejected:        {BroadcastStatusDraft: {}, BroadcastStatusPendingApproval: {}},
	BroadcastStatusBroadcasting:    {BroadcastStatusCompleted: {}, BroadcastStatusCancelled: {}},
	BroadcastStatusCompleted:       {},
	BroadcastStatusCancelled:       {},
}

// CanTransition reports whether a broadcast may move from one status to another.
func CanTransition(from, to BroadcastStatus) bool {
	allowed, ok := AllowedStatusTransitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// BroadcastAreas is the structured area payload attached to a broadcast message.
// SimplePolygons holds closed rings of [latitude, longitude] pairs.
type BroadcastAreas struct {
	Names          []string       `json:"names"`
	SimplePolygons [][][2]float64 `json:"simple_polygons"`
}

// Value implements driver.Valuer so the areas payload is stored as JSONB.
func (a BroadcastAreas) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner.
func (a *BroadcastAreas) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	case nil:
		*a = BroadcastAreas{}
		return nil
	default:
		return fmt.Errorf("unsupported type %T for BroadcastAreas", src)
	}
}

// BroadcastMessage represents one alert lifecycle instance.
type BroadcastMessage struct {
	ID                  uuid.UUID       `db:"id"`
	ServiceID           uuid.UUID       `db:"service_id"`
	Reference           sql.NullString  `db:"reference"`
	CapEvent            sql.NullString  `db:"cap_event"`
	Content             string          `db:"content"`
	Areas               BroadcastAreas  `db:"areas"`
	Status              BroadcastStatus `db:"status"`
	Stubbed             bool            `db:"stubbed"`
	Version             int             `db:"version"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           sql.NullTime    `db:"updated_at"`
	CreatedByID         uuid.NullUUID   `db:"created_by_id"`
	CreatedByAPIKeyID   uuid.NullUUID   `db:"created_by_api_key_id"`
	ApprovedAt          sql.NullTime    `db:"approved_at"`
	ApprovedByID        uuid.NullUUID   `db:"approved_by_id"`
	CancelledAt         sql.NullTime    `db:"cancelled_at"`
	CancelledByID       uuid.NullUUID   `db:"cancelled_by_id"`
	CancelledByAPIKeyID uuid.NullUUID   `db:"cancelled_by_api_key_id"`
	StartsAt            sql.NullTime    `db:"starts_at"`
	FinishesAt          sql.NullTime    `db:"finishes_at"`
	Personalisation     sql.NullString  `db:"personalisation"`
	TemplateID          uuid.NullUUID   `db:"template_id"`
	TemplateName        sql.NullString  `db:"template_name"`
	TemplateVersion     sql.NullInt64   `db:"template_version"`
}

// BroadcastMessageResponse is the serialized JSON shape returned by the API.
type BroadcastMessageResponse struct {
	ID              uuid.UUID       `json:"id"`
	ServiceID       uuid.UUID       `json:"service_id"`
	Reference       *string         `json:"reference"`
	CapEvent        *string         `json:"cap_event"`
	Content         string          `json:"content"`
	Areas           BroadcastAreas  `json:"areas"`
	Status          BroadcastStatus `json:"status"`
	Stubbed         bool            `json:"stubbed"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       *time.Time      `json:"updated_at"`
	CreatedByID     *uuid.UUID      `json:"created_by_id"`
	ApprovedAt      *time.Time      `json:"approved_at"`
	ApprovedByID    *uuid.UUID      `json:"approved_by_id"`
	CancelledAt     *time.Time      `json:"cancelled_at"`
	CancelledByID   *uuid.UUID      `json:"cancelled_by_id"`
	StartsAt        *time.Time      `json:"starts_at"`
	FinishesAt      *time.Time      `json:"finishes_at"`
	Personalisation *string         `json:"personalisation"`
	TemplateID      *uuid.UUID      `json:"template_id"`
	TemplateName    *string         `json:"template_name"`
	TemplateVersion *int64          `json:"template_version"`
}

// Serialize converts a BroadcastMessage into its API response shape.
func (m *BroadcastMessage) Serialize() *BroadcastMessageResponse {
	return &BroadcastMessageResponse{
		ID:              m.ID,
		ServiceID:       m.ServiceID,
		Reference:       nullString(m.Reference),
		CapEvent:        nullString(m.CapEvent),
		Content:         m.Content,
		Areas:           m.Areas,
		Status:          m.Status,
		Stubbed:         m.Stubbed,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       nullTime(m.UpdatedAt),
		CreatedByID:     nullUUID(m.CreatedByID),
		ApprovedAt:      nullTime(m.ApprovedAt),
		ApprovedByID:    nullUUID(m.ApprovedByID),
		CancelledAt:     nullTime(m.CancelledAt),
		CancelledByID:   nullUUID(m.CancelledByID),
		StartsAt:        nullTime(m.StartsAt),
		FinishesAt:      nullTime(m.FinishesAt),
		Personalisation: nullString(m.Personalisation),
		TemplateID:      nullUUID(m.TemplateID),
		TemplateName:    nullString(m.TemplateName),
		TemplateVersion: nullInt64(m.TemplateVersion),
	}
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	return &v.Time
}

func nullUUID(v uuid.NullUUID) *uuid.UUID {
	if !v.Valid {
		return nil
	}
	return &v.UUID
}

func nullInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}
