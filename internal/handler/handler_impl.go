// Package handler provides HTTP request handlers for the application.
package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alerting-gov/broadcast-api/internal/apierr"
	"github.com/alerting-gov/broadcast-api/internal/middleware"
	"github.com/alerting-gov/broadcast-api/internal/models"
	"github.com/alerting-gov/broadcast-api/internal/service"
)

const (
	errorMessageInternal       = "An internal error occurred"
	errorMessageUnreadableBody = "Unable to read request body"
	errorMessageInvalidID      = "Invalid UUID in path"
)

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

// NewHandler creates a new handler instance.
func NewHandler(service *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// deliveryReceiptRequest is the provider delivery-status callback body.
type deliveryReceiptRequest struct {
	Reference          string `json:"reference"`
	Status             string `json:"status"`
	DetailedStatusCode string `json:"detailed_status_code"`
}

// CreateBroadcast handles POST /v2/broadcast: CAP v1.2 XML in, serialized
// broadcast message out with 201.
func (h *Handler) CreateBroadcast(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.sendError(w, r, apierr.Unauthorized("No authenticated service"))
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.sendError(w, r, apierr.BadRequest(errorMessageUnreadableBody))
		return
	}

	message, err := h.service.Broadcast.CreateFromCAP(r.Context(), toServiceIdentity(identity), r.Header.Get("Content-Type"), body)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, message.Serialize())
}

// GetBroadcastMessage handles GET /v2/broadcast/{broadcastMessageID}.
func (h *Handler) GetBroadcastMessage(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.sendError(w, r, apierr.Unauthorized("No authenticated service"))
		return
	}

	broadcastID, err := uuid.Parse(chi.URLParam(r, "broadcastMessageID"))
	if err != nil {
		h.sendError(w, r, apierr.BadRequest(errorMessageInvalidID))
		return
	}

	message, err := h.service.Broadcast.GetBroadcastMessage(r.Context(), toServiceIdentity(identity), broadcastID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, message.Serialize())
}

// DeliveryReceipt handles POST /notifications/sms/{provider}: the delivery
// status callback posted by an SMS provider.
func (h *Handler) DeliveryReceipt(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")

	var receipt deliveryReceiptRequest
	if err := render.DecodeJSON(r.Body, &receipt); err != nil {
		h.sendError(w, r, apierr.BadRequest("Invalid JSON supplied in POST data"))
		return
	}

	outcome, err := h.service.Delivery.ProcessReceipt(r.Context(), provider, receipt.Status, receipt.DetailedStatusCode, receipt.Reference)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, outcome)
}

// ListProviders handles GET /providers.
func (h *Handler) ListProviders(w http.ResponseWriter, r *http.Request) {
	notificationType := r.URL.Query().Get("notification_type")
	if notificationType == "" {
		notificationType = models.NotificationTypeSMS
	}

	providers, err := h.service.Failover.ListProviders(r.Context(), notificationType)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	responses := make([]*models.ProviderResponse, 0, len(providers))
	for _, provider := range providers {
		responses = append(responses, provider.Serialize())
	}

	render.JSON(w, r, map[string]interface{}{"provider_details": responses})
}

// GetProviderVersions handles GET /providers/{providerID}/versions.
func (h *Handler) GetProviderVersions(w http.ResponseWriter, r *http.Request) {
	providerID, err := uuid.Parse(chi.URLParam(r, "providerID"))
	if err != nil {
		h.sendError(w, r, apierr.BadRequest(errorMessageInvalidID))
		return
	}

	versions, err := h.service.Failover.GetProviderVersions(r.Context(), providerID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{"data": versions})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth(r.Context())

	if health.Status == service.HealthStatusUnhealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	render.JSON(w, r, health)
}

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *apierr.APIError
	if errors.As(err, &apiErr) {
		h.sendError(w, r, apiErr)
		return
	}

	var configErr *service.ConfigurationError
	if errors.As(err, &configErr) {
		h.logger.Error("Configuration error",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(configErr))
		h.sendError(w, r, &apierr.APIError{
			Kind:       apierr.KindConfiguration,
			Message:    configErr.Error(),
			StatusCode: http.StatusInternalServerError,
		})
		return
	}

	h.logger.Error("Request failed",
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Error(err))
	h.sendError(w, r, &apierr.APIError{
		Kind:       apierr.KindBadRequest,
		Message:    errorMessageInternal,
		StatusCode: http.StatusInternalServerError,
	})
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, apiErr *apierr.APIError) {
	render.Status(r, apiErr.StatusCode)
	render.JSON(w, r, apierr.ToEnvelope(apiErr))
}

func toServiceIdentity(identity middleware.Identity) service.Identity {
	return service.Identity{
		ServiceID:         identity.ServiceID,
		APIKeyID:          identity.APIKeyID,
		Permissions:       identity.Permissions,
		ServiceRestricted: identity.ServiceRestricted,
	}
}
