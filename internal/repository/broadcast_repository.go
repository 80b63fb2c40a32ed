package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/alerting-gov/broadcast-api/internal/models"
)

const broadcastColumns = `
	id, service_id, reference, cap_event, content, areas, status, stubbed, version,
	created_at, updated_at, created_by_id, created_by_api_key_id,
	approved_at, approved_by_id, cancelled_at, cancelled_by_id, cancelled_by_api_key_id,
	starts_at, finishes_at, personalisation, template_id, template_name, template_version
`

type broadcastRepository struct {
	db *sqlx.DB
}

func NewBroadcastRepository(db *sqlx.DB) BroadcastRepository {
	return &broadcastRepository{
		db: db,
	}
}

// Create inserts a new broadcast message row.
func (r *broadcastRepository) Create(ctx context.Context, message *models.BroadcastMessage) error {
	query := `
		INSERT INTO broadcast_messages (
			id, service_id, reference, cap_event, content, areas, status, stubbed,
			version, created_at, created_by_id, created_by_api_key_id,
			starts_at, finishes_at, personalisation, template_id, template_name, template_version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.Version == 0 {
		message.Version = 1
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, query,
		message.ID,
		message.ServiceID,
		message.Reference,
		message.CapEvent,
		message.Content,
		message.Areas,
		message.Status,
		message.Stubbed,
		message.Version,
		message.CreatedAt,
		message.CreatedByID,
		message.CreatedByAPIKeyID,
		message.StartsAt,
		message.FinishesAt,
		message.Personalisation,
		message.TemplateID,
		message.TemplateName,
		message.TemplateVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to create broadcast message: %w", err)
	}

	return nil
}

// GetByIDAndServiceID retrieves a single broadcast message scoped to a service.
func (r *broadcastRepository) GetByIDAndServiceID(ctx context.Context, id, serviceID uuid.UUID) (*models.BroadcastMessage, error) {
	query := `
		SELECT ` + broadcastColumns + `
		FROM broadcast_messages
		WHERE id = $1 AND service_id = $2
	`

	var message models.BroadcastMessage
	err := r.db.GetContext(ctx, &message, query, id, serviceID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get broadcast message: %w", err)
	}

	return &message, nil
}

// GetByReferencesAndServiceID locates the one broadcast message whose reference
// intersects the given reference list, scoped to a service.
func (r *broadcastRepository) GetByReferencesAndServiceID(ctx context.Context, references []string, serviceID uuid.UUID) (*models.BroadcastMessage, error) {
	query := `
		SELECT ` + broadcastColumns + `
		FROM broadcast_messages
		WHERE reference = ANY($1) AND service_id = $2
	`

	var messages []*models.BroadcastMessage
	err := r.db.SelectContext(ctx, &messages, query, pq.Array(references), serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get broadcast message by references: %w", err)
	}

	switch len(messages) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return messages[0], nil
	default:
		return nil, ErrMultipleFound
	}
}

// UpdateStatus persists a status transition with its audit fields. The update
// is guarded by the message's version so concurrent transitions cannot clobber
// each other.
func (r *broadcastRepository) UpdateStatus(ctx context.Context, message *models.BroadcastMessage) error {
	query := `
		UPDATE broadcast_messages
		SET status = $3,
		    version = version + 1,
		    updated_at = $4,
		    approved_at = $5,
		    approved_by_id = $6,
		    cancelled_at = $7,
		    cancelled_by_id = $8,
		    cancelled_by_api_key_id = $9
		WHERE id = $1 AND version = $2
	`

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		message.ID,
		message.Version,
		message.Status,
		now,
		message.ApprovedAt,
		message.ApprovedByID,
		message.CancelledAt,
		message.CancelledByID,
		message.CancelledByAPIKeyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update broadcast message status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return ErrStaleVersion
	}

	message.Version++
	message.UpdatedAt = sql.NullTime{Time: now, Valid: true}

	return nil
}
