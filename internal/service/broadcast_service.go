package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alerting-gov/broadcast-api/internal/apierr"
	"github.com/alerting-gov/broadcast-api/internal/cap"
	"github.com/alerting-gov/broadcast-api/internal/config"
	"github.com/alerting-gov/broadcast-api/internal/geometry"
	"github.com/alerting-gov/broadcast-api/internal/models"
	"github.com/alerting-gov/broadcast-api/internal/repository"
)

// ContentTypeCAPXML is the only content type accepted on the broadcast
// ingestion endpoint.
const ContentTypeCAPXML = "application/cap+xml"

type broadcastService struct {
	cfg             *config.Config
	repo            repository.Repository
	redisClient     *redis.Client
	schemaValidator cap.SchemaValidator
	logger          *zap.Logger
}

func NewBroadcastService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	schemaValidator cap.SchemaValidator,
	logger *zap.Logger,
) BroadcastService {
	return &broadcastService{
		cfg:             cfg,
		repo:            repo,
		redisClient:     redisClient,
		schemaValidator: schemaValidator,
		logger:          logger,
	}
}

// CreateFromCAP ingests a CAP v1.2 XML payload for the authenticated service.
func (s *broadcastService) CreateFromCAP(ctx context.Context, identity Identity, contentType string, body []byte) (*models.BroadcastMessage, error) {
	if !identity.HasPermission(PermissionBroadcast) {
		return nil, apierr.BadRequest("Service is not allowed to send broadcast messages")
	}

	if contentType != ContentTypeCAPXML {
		return nil, apierr.UnsupportedMediaType(fmt.Sprintf("Content type %s not supported", contentType))
	}

	if !s.schemaValidator.Validate(body, cap.SchemaCAPv12) {
		return nil, apierr.BadRequest("Request data is not valid CAP XML")
	}

	request, err := cap.Translate(body)
	if err != nil {
		s.logger.Warn("CAP document passed schema validation but failed translation",
			zap.Error(err))
		return nil, apierr.BadRequest("Request data is not valid CAP XML")
	}

	if err := cap.ValidateRequest(request); err != nil {
		return nil, apierr.BadRequest(err.Error())
	}

	if request.MsgType == cap.MsgTypeCancel {
		if request.References == nil {
			return nil, apierr.BadRequest("Missing <references>")
		}
		return s.cancelOrReject(ctx, identity, request.ReferenceList())
	}

	return s.create(ctx, identity, request)
}

// create builds and persists a new broadcast message in pending-approval.
func (s *broadcastService) create(ctx context.Context, identity Identity, request *cap.BroadcastRequest) (*models.BroadcastMessage, error) {
	if err := cap.CheckContent(request.Content); err != nil {
		var tooLong *cap.ContentTooLongError
		if errors.As(err, &tooLong) {
			return nil, apierr.Validation(err.Error())
		}
		return nil, err
	}

	names := make([]string, 0, len(request.Areas))
	var rawPolygons [][][2]float64
	for _, area := range request.Areas {
		names = append(names, area.Name)
		rawPolygons = append(rawPolygons, area.Polygons...)
	}

	simplePolygons := geometry.NewPolygons(rawPolygons).ForTransmission().AsLatLongPairs()

	// request.Expires is deliberately not honoured: expiry for broadcasts
	// created through the API follows the same platform policy as those
	// created from the admin app.
	message := &models.BroadcastMessage{
		ID:                uuid.New(),
		ServiceID:         identity.ServiceID,
		Reference:         sql.NullString{String: request.Reference, Valid: true},
		CapEvent:          sql.NullString{String: request.CapEvent, Valid: request.CapEvent != ""},
		Content:           request.Content,
		Areas: models.BroadcastAreas{
			Names:          names,
			SimplePolygons: simplePolygons,
		},
		Status:            models.BroadcastStatusPendingApproval,
		Stubbed:           identity.ServiceRestricted,
		CreatedByAPIKeyID: uuid.NullUUID{UUID: identity.APIKeyID, Valid: identity.APIKeyID != uuid.Nil},
	}

	if err := s.repo.Broadcast().Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to persist broadcast message: %w", err)
	}

	s.logger.Info("Broadcast message created",
		zap.String("broadcastMessageID", message.ID.String()),
		zap.String("serviceID", identity.ServiceID.String()),
		zap.String("reference", request.Reference))

	return message, nil
}

// cancelOrReject locates the one broadcast message matching the given
// references and moves it to rejected (if still pending approval) or
// cancelled (once broadcasting has started).
func (s *broadcastService) cancelOrReject(ctx context.Context, identity Identity, references []string) (*models.BroadcastMessage, error) {
	message, err := s.repo.Broadcast().GetByReferencesAndServiceID(ctx, references, identity.ServiceID)
	if errors.Is(err, repository.ErrMultipleFound) {
		return nil, apierr.BadRequest("Multiple alerts found - unclear which one to cancel")
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apierr.BadRequest("Alert not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up broadcast message: %w", err)
	}

	newStatus := models.BroadcastStatusCancelled
	if message.Status == models.BroadcastStatusPendingApproval {
		newStatus = models.BroadcastStatusRejected
	}

	if !models.CanTransition(message.Status, newStatus) {
		return nil, apierr.BadRequest(fmt.Sprintf(
			"Cannot move broadcast message %s from %s to %s",
			message.ID, message.Status, newStatus))
	}

	if newStatus == models.BroadcastStatusCancelled {
		message.CancelledAt = sql.NullTime{Time: time.Now().UTC(), Valid: true}
		message.CancelledByAPIKeyID = uuid.NullUUID{UUID: identity.APIKeyID, Valid: identity.APIKeyID != uuid.Nil}
	}

	s.logger.Info("Broadcast message status transition",
		zap.String("broadcastMessageID", message.ID.String()),
		zap.String("from", string(message.Status)),
		zap.String("to", string(newStatus)))

	message.Status = newStatus

	if err := s.repo.Broadcast().UpdateStatus(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to update broadcast message status: %w", err)
	}

	// Invalidate only after the transition is durably committed; deleting
	// earlier risks a reader repopulating the cache with stale state.
	s.invalidateCurrentBroadcastCache(ctx, message)

	return message, nil
}

// GetBroadcastMessage returns one message scoped to the authenticated service.
func (s *broadcastService) GetBroadcastMessage(ctx context.Context, identity Identity, broadcastID uuid.UUID) (*models.BroadcastMessage, error) {
	message, err := s.repo.Broadcast().GetByIDAndServiceID(ctx, broadcastID, identity.ServiceID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apierr.BadRequest("Alert not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get broadcast message: %w", err)
	}
	return message, nil
}

func (s *broadcastService) invalidateCurrentBroadcastCache(ctx context.Context, message *models.BroadcastMessage) {
	key := currentBroadcastCacheKey(message.ServiceID, message.ID)
	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		s.logger.Warn("Failed to invalidate current broadcast cache entry",
			zap.String("key", key),
			zap.Error(err))
	}
}

// currentBroadcastCacheKey is the cache key downstream consumers use for the
// "current active broadcast" entry.
func currentBroadcastCacheKey(serviceID, broadcastID uuid.UUID) string {
	return fmt.Sprintf("service-%s-broadcast-message-%s", serviceID, broadcastID)
}
