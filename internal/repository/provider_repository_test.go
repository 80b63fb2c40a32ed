package repository_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alerting-gov/broadcast-api/internal/models"
	"github.com/alerting-gov/broadcast-api/internal/repository"
)

var providerRowColumns = []string{
	"id", "display_name", "identifier", "priority", "notification_type", "active",
	"supports_international", "version", "updated_at", "created_by_id",
}

func setupMockDB(t *testing.T) (repository.ProviderRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return repository.NewProviderRepository(sqlxDB), mock
}

func providerRow(id uuid.UUID, identifier string, priority, version int) []driver.Value {
	return []driver.Value{
		id.String(), identifier + " display", identifier, priority, models.NotificationTypeSMS,
		true, false, version, time.Now().UTC(), nil,
	}
}

func TestProviderRepository_GetByIdentifier(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	mock.ExpectQuery("FROM provider_details").
		WithArgs("mmg").
		WillReturnRows(sqlmock.NewRows(providerRowColumns).AddRow(providerRow(id, "mmg", 40, 3)...))

	provider, err := repo.GetByIdentifier(context.Background(), "mmg")
	require.NoError(t, err)
	assert.Equal(t, id, provider.ID)
	assert.Equal(t, "mmg", provider.Identifier)
	assert.Equal(t, 40, provider.Priority)
	assert.Equal(t, 3, provider.Version)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProviderRepository_GetByIdentifier_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("FROM provider_details").
		WithArgs("nexmo").
		WillReturnRows(sqlmock.NewRows(providerRowColumns))

	_, err := repo.GetByIdentifier(context.Background(), "nexmo")
	assert.ErrorIs(t, err, repository.ErrProviderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProviderRepository_ListByNotificationType(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("ORDER BY priority ASC").
		WithArgs(models.NotificationTypeSMS).
		WillReturnRows(sqlmock.NewRows(providerRowColumns).
			AddRow(providerRow(uuid.New(), "firetext", 30, 1)...).
			AddRow(providerRow(uuid.New(), "mmg", 70, 1)...))

	providers, err := repo.ListByNotificationType(context.Background(), models.NotificationTypeSMS)
	require.NoError(t, err)
	require.Len(t, providers, 2)
	assert.Equal(t, "firetext", providers[0].Identifier)
	assert.Equal(t, "mmg", providers[1].Identifier)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProviderRepository_GetVersions(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	mock.ExpectQuery("FROM provider_details_history").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(providerRowColumns).
			AddRow(providerRow(id, "mmg", 60, 2)...).
			AddRow(providerRow(id, "mmg", 50, 1)...))

	versions, err := repo.GetVersions(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, 2, versions[0].Version)
	assert.Equal(t, 1, versions[1].Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReduceSMSProviderPriority_ShiftsTenPoints(t *testing.T) {
	repo, mock := setupMockDB(t)

	firetextID := uuid.New()
	mmgID := uuid.New()
	actorID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(models.NotificationTypeSMS).
		WillReturnRows(sqlmock.NewRows(providerRowColumns).
			AddRow(providerRow(firetextID, "firetext", 50, 7)...).
			AddRow(providerRow(mmgID, "mmg", 50, 4)...))

	// firetext loses 10 points and bumps to version 8.
	mock.ExpectExec("UPDATE provider_details").
		WithArgs(firetextID, 40, 8, sqlmock.AnyArg(), actorID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO provider_details_history").
		WithArgs(firetextID, "firetext display", "firetext", 40, models.NotificationTypeSMS,
			true, false, 8, sqlmock.AnyArg(), actorID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// mmg gains 10 points and bumps to version 5.
	mock.ExpectExec("UPDATE provider_details").
		WithArgs(mmgID, 60, 5, sqlmock.AnyArg(), actorID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO provider_details_history").
		WithArgs(mmgID, "mmg display", "mmg", 60, models.NotificationTypeSMS,
			true, false, 5, sqlmock.AnyArg(), actorID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectCommit()

	err := repo.ReduceSMSProviderPriority(context.Background(), "firetext", "mmg", actorID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReduceSMSProviderPriority_ClampsAtBounds(t *testing.T) {
	repo, mock := setupMockDB(t)

	firetextID := uuid.New()
	mmgID := uuid.New()
	actorID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(models.NotificationTypeSMS).
		WillReturnRows(sqlmock.NewRows(providerRowColumns).
			AddRow(providerRow(firetextID, "firetext", 5, 1)...).
			AddRow(providerRow(mmgID, "mmg", 95, 1)...))

	// 5 - 10 pins at 0 and 95 + 10 pins at 100.
	mock.ExpectExec("UPDATE provider_details").
		WithArgs(firetextID, models.ProviderPriorityMin, 2, sqlmock.AnyArg(), actorID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO provider_details_history").
		WithArgs(firetextID, "firetext display", "firetext", models.ProviderPriorityMin,
			models.NotificationTypeSMS, true, false, 2, sqlmock.AnyArg(), actorID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectExec("UPDATE provider_details").
		WithArgs(mmgID, models.ProviderPriorityMax, 2, sqlmock.AnyArg(), actorID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO provider_details_history").
		WithArgs(mmgID, "mmg display", "mmg", models.ProviderPriorityMax,
			models.NotificationTypeSMS, true, false, 2, sqlmock.AnyArg(), actorID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectCommit()

	err := repo.ReduceSMSProviderPriority(context.Background(), "firetext", "mmg", actorID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReduceSMSProviderPriority_MissingProviderRollsBack(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(models.NotificationTypeSMS).
		WillReturnRows(sqlmock.NewRows(providerRowColumns).
			AddRow(providerRow(uuid.New(), "firetext", 50, 1)...))
	mock.ExpectRollback()

	err := repo.ReduceSMSProviderPriority(context.Background(), "firetext", "mmg", uuid.New())
	assert.ErrorIs(t, err, repository.ErrProviderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReduceSMSProviderPriority_UpdateFailureRollsBack(t *testing.T) {
	repo, mock := setupMockDB(t)

	firetextID := uuid.New()
	mmgID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(models.NotificationTypeSMS).
		WillReturnRows(sqlmock.NewRows(providerRowColumns).
			AddRow(providerRow(firetextID, "firetext", 50, 1)...).
			AddRow(providerRow(mmgID, "mmg", 50, 1)...))
	mock.ExpectExec("UPDATE provider_details").
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	err := repo.ReduceSMSProviderPriority(context.Background(), "firetext", "mmg", uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock")
	assert.NoError(t, mock.ExpectationsWereMet())
}
