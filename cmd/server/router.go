package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alerting-gov/broadcast-api/internal/handler"
	"github.com/alerting-gov/broadcast-api/internal/middleware"
)

func setupRouter(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", h.HealthCheck)

	// Provider delivery-status callbacks are authenticated upstream by
	// provider-specific shared secrets, not by service identity.
	r.Post("/notifications/sms/{provider}", h.DeliveryReceipt)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticated)

		r.Post("/v2/broadcast", h.CreateBroadcast)
		r.Get("/v2/broadcast/{broadcastMessageID}", h.GetBroadcastMessage)

		r.Get("/providers", h.ListProviders)
		r.Get("/providers/{providerID}/versions", h.GetProviderVersions)
	})

	return r
}
