package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/alerting-gov/broadcast-api/internal/models"
)

// priorityStep is how much traffic share one failover adjustment moves between
// the two SMS providers.
const priorityStep = 10

const providerColumns = `
	id, display_name, identifier, priority, notification_type, active,
	supports_international, version, updated_at, created_by_id
`

type providerRepository struct {
	db *sqlx.DB
}

func NewProviderRepository(db *sqlx.DB) ProviderRepository {
	return &providerRepository{
		db: db,
	}
}

// GetByIdentifier retrieves a provider row by its stable identifier.
func (r *providerRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.ProviderDetails, error) {
	query := `
		SELECT ` + providerColumns + `
		FROM provider_details
		WHERE identifier = $1
	`

	var provider models.ProviderDetails
	err := r.db.GetContext(ctx, &provider, query, identifier)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get provider %s: %w", identifier, err)
	}

	return &provider, nil
}

// ListByNotificationType retrieves providers for a channel ordered by priority.
func (r *providerRepository) ListByNotificationType(ctx context.Context, notificationType string) ([]*models.ProviderDetails, error) {
	query := `
		SELECT ` + providerColumns + `
		FROM provider_details
		WHERE notification_type = $1
		ORDER BY priority ASC
	`

	var providers []*models.ProviderDetails
	err := r.db.SelectContext(ctx, &providers, query, notificationType)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s providers: %w", notificationType, err)
	}

	return providers, nil
}

// GetVersions retrieves the append-only history ledger for a provider,
// newest version first.
func (r *providerRepository) GetVersions(ctx context.Context, providerID uuid.UUID) ([]*models.ProviderDetailsHistory, error) {
	query := `
		SELECT ` + providerColumns + `
		FROM provider_details_history
		WHERE id = $1
		ORDER BY version DESC
	`

	var versions []*models.ProviderDetailsHistory
	err := r.db.SelectContext(ctx, &versions, query, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get provider versions: %w", err)
	}

	return versions, nil
}

// ReduceSMSProviderPriority moves priorityStep points of traffic share from one
// SMS provider to the other. Both active rows are locked FOR UPDATE for the
// duration of the transaction so concurrent failover signals cannot produce an
// inconsistent split; either both rows and both history snapshots commit, or
// nothing does.
func (r *providerRepository) ReduceSMSProviderPriority(ctx context.Context, reduceIdentifier, increaseIdentifier string, actorID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin failover transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	lockQuery := `
		SELECT ` + providerColumns + `
		FROM provider_details
		WHERE notification_type = $1 AND active = true
		FOR UPDATE
	`

	var rows []*models.ProviderDetails
	if err := tx.SelectContext(ctx, &rows, lockQuery, models.NotificationTypeSMS); err != nil {
		return fmt.Errorf("failed to lock sms provider rows: %w", err)
	}

	byIdentifier := make(map[string]*models.ProviderDetails, len(rows))
	for _, provider := range rows {
		byIdentifier[provider.Identifier] = provider
	}

	reduced, ok := byIdentifier[reduceIdentifier]
	if !ok {
		return fmt.Errorf("%w: no active sms provider %s", ErrProviderNotFound, reduceIdentifier)
	}
	increased, ok := byIdentifier[increaseIdentifier]
	if !ok {
		return fmt.Errorf("%w: no active sms provider %s", ErrProviderNotFound, increaseIdentifier)
	}

	reduced.Priority = models.ClampPriority(reduced.Priority - priorityStep)
	increased.Priority = models.ClampPriority(increased.Priority + priorityStep)

	now := time.Now().UTC()
	actor := uuid.NullUUID{UUID: actorID, Valid: true}

	for _, provider := range []*models.ProviderDetails{reduced, increased} {
		provider.Version++
		provider.UpdatedAt = sql.NullTime{Time: now, Valid: true}
		provider.CreatedByID = actor

		if err := updateProviderTx(ctx, tx, provider); err != nil {
			return err
		}
		if err := insertProviderHistoryTx(ctx, tx, models.HistoryFromProvider(provider)); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit failover transaction: %w", err)
	}

	return nil
}

func updateProviderTx(ctx context.Context, tx *sqlx.Tx, provider *models.ProviderDetails) error {
	query := `
		UPDATE provider_details
		SET priority = $2,
		    version = $3,
		    updated_at = $4,
		    created_by_id = $5
		WHERE id = $1
	`

	_, err := tx.ExecContext(ctx, query,
		provider.ID,
		provider.Priority,
		provider.Version,
		provider.UpdatedAt,
		provider.CreatedByID,
	)
	if err != nil {
		return fmt.Errorf("failed to update provider %s: %w", provider.Identifier, err)
	}

	return nil
}

func insertProviderHistoryTx(ctx context.Context, tx *sqlx.Tx, history *models.ProviderDetailsHistory) error {
	query := `
		INSERT INTO provider_details_history (
			id, display_name, identifier, priority, notification_type, active,
			supports_international, version, updated_at, created_by_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := tx.ExecContext(ctx, query,
		history.ID,
		history.DisplayName,
		history.Identifier,
		history.Priority,
		history.NotificationType,
		history.Active,
		history.SupportsInternational,
		history.Version,
		history.UpdatedAt,
		history.CreatedByID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert history for provider %s: %w", history.Identifier, err)
	}

	return nil
}
