package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/alerting-gov/broadcast-api/internal/apierr"
)

// Headers set by the upstream API-key verification layer once a request has
// been authenticated. This core trusts them and never sees raw credentials.
const (
	ServiceIDHeader         = "X-Service-ID"
	APIKeyIDHeader          = "X-Api-Key-ID"
	PermissionsHeader       = "X-Permissions"
	ServiceRestrictedHeader = "X-Service-Restricted"
)

type identityKeyType struct{}

var identityKey identityKeyType

// Identity is the authenticated caller context extracted from the verified
// request headers.
type Identity struct {
	ServiceID         uuid.UUID
	APIKeyID          uuid.UUID
	Permissions       []string
	ServiceRestricted bool
}

// Authenticated requires the upstream-verified identity headers and stores the
// parsed identity in the request context.
func Authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serviceID, err := uuid.Parse(r.Header.Get(ServiceIDHeader))
		if err != nil {
			unauthorized(w, r)
			return
		}

		identity := Identity{
			ServiceID:         serviceID,
			ServiceRestricted: r.Header.Get(ServiceRestrictedHeader) == "true",
		}

		if apiKeyID, err := uuid.Parse(r.Header.Get(APIKeyIDHeader)); err == nil {
			identity.APIKeyID = apiKeyID
		}

		if raw := r.Header.Get(PermissionsHeader); raw != "" {
			for _, p := range strings.Split(raw, ",") {
				if trimmed := strings.TrimSpace(p); trimmed != "" {
					identity.Permissions = append(identity.Permissions, trimmed)
				}
			}
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity returns the authenticated identity stored in the context.
func GetIdentity(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	apiErr := apierr.Unauthorized("No authenticated service")
	render.Status(r, apiErr.StatusCode)
	render.JSON(w, r, apierr.ToEnvelope(apiErr))
}
