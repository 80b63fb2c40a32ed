package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/alerting-gov/broadcast-api/internal/config"
	"github.com/alerting-gov/broadcast-api/internal/models"
	"github.com/alerting-gov/broadcast-api/internal/repository/mocks"
	"github.com/alerting-gov/broadcast-api/internal/service"
)

const testSystemUserID = "6af522d0-2915-4e52-83a3-3690455a5fe6"

func setupFailoverService(t *testing.T) (service.FailoverService, *mocks.MockProviderRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockRepository(ctrl)
	mockProviderRepo := mocks.NewMockProviderRepository(ctrl)
	mockRepo.EXPECT().Provider().Return(mockProviderRepo).AnyTimes()

	cfg := &config.Config{
		Failover: config.FailoverConfig{SystemUserID: testSystemUserID},
	}

	svc := service.NewFailoverService(cfg, mockRepo, zap.NewNop())
	return svc, mockProviderRepo
}

func TestAlternativeSMSProvider(t *testing.T) {
	other, err := service.AlternativeSMSProvider(service.ProviderFiretext)
	require.NoError(t, err)
	assert.Equal(t, service.ProviderMMG, other)

	other, err = service.AlternativeSMSProvider(service.ProviderMMG)
	require.NoError(t, err)
	assert.Equal(t, service.ProviderFiretext, other)
}

func TestAlternativeSMSProvider_Unknown(t *testing.T) {
	_, err := service.AlternativeSMSProvider("nexmo")

	var confErr *service.ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Equal(t, "unrecognised sms provider nexmo", confErr.Error())
}

func TestReduceProviderPriority(t *testing.T) {
	svc, mockProviderRepo := setupFailoverService(t)

	systemUserID := uuid.MustParse(testSystemUserID)
	mockProviderRepo.EXPECT().
		ReduceSMSProviderPriority(gomock.Any(), service.ProviderMMG, service.ProviderFiretext, systemUserID).
		Return(nil)

	err := svc.ReduceProviderPriority(context.Background(), service.ProviderMMG)
	assert.NoError(t, err)
}

func TestReduceProviderPriority_UnknownProvider(t *testing.T) {
	svc, _ := setupFailoverService(t)

	err := svc.ReduceProviderPriority(context.Background(), "nexmo")

	var confErr *service.ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestReduceProviderPriority_RepositoryError(t *testing.T) {
	svc, mockProviderRepo := setupFailoverService(t)

	mockProviderRepo.EXPECT().
		ReduceSMSProviderPriority(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("database unavailable"))

	err := svc.ReduceProviderPriority(context.Background(), service.ProviderFiretext)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "firetext")
}

func TestNewFailoverService_InvalidSystemUserFallsBackToNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockRepository(ctrl)
	mockProviderRepo := mocks.NewMockProviderRepository(ctrl)
	mockRepo.EXPECT().Provider().Return(mockProviderRepo).AnyTimes()

	cfg := &config.Config{
		Failover: config.FailoverConfig{SystemUserID: "not-a-uuid"},
	}
	svc := service.NewFailoverService(cfg, mockRepo, zap.NewNop())

	mockProviderRepo.EXPECT().
		ReduceSMSProviderPriority(gomock.Any(), service.ProviderFiretext, service.ProviderMMG, uuid.Nil).
		Return(nil)

	assert.NoError(t, svc.ReduceProviderPriority(context.Background(), service.ProviderFiretext))
}

func TestListProviders(t *testing.T) {
	svc, mockProviderRepo := setupFailoverService(t)

	providers := []*models.ProviderDetails{
		{Identifier: service.ProviderFiretext, Priority: 30},
		{Identifier: service.ProviderMMG, Priority: 70},
	}
	mockProviderRepo.EXPECT().
		ListByNotificationType(gomock.Any(), models.NotificationTypeSMS).
		Return(providers, nil)

	got, err := svc.ListProviders(context.Background(), models.NotificationTypeSMS)
	require.NoError(t, err)
	assert.Equal(t, providers, got)
}

func TestGetProviderVersions(t *testing.T) {
	svc, mockProviderRepo := setupFailoverService(t)

	providerID := uuid.New()
	versions := []*models.ProviderDetailsHistory{
		{ID: providerID, Version: 2, Priority: 40},
		{ID: providerID, Version: 1, Priority: 50},
	}
	mockProviderRepo.EXPECT().
		GetVersions(gomock.Any(), providerID).
		Return(versions, nil)

	got, err := svc.GetProviderVersions(context.Background(), providerID)
	require.NoError(t, err)
	assert.Equal(t, versions, got)
}
