package server

import (
	"context"
	"net/http"

	"github.com/therapistsfriend/practice-server/users"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyTenant stores the canonical tenant key of the request
	ContextKeyTenant ContextKey = "tenant_key"
	// ContextKeyUser stores the resolved identity
	ContextKeyUser ContextKey = "user"
	// ContextKeyDemo stores whether demo bypass is active for the request
	ContextKeyDemo ContextKey = "demo"
)

// RequireTenant is middleware that resolves the request identity, maps it to
// a tenant key and injects both into the context. Requests that cannot be
// resolved are rejected with 401 before reaching the handler.
func (s *Server) RequireTenant() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			resolved, err := s.resolver.Resolve(r)
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyTenant, resolved.TenantKey)
			ctx = context.WithValue(ctx, ContextKeyUser, resolved.User)
			ctx = context.WithValue(ctx, ContextKeyDemo, resolved.Demo)
			next(w, r.WithContext(ctx))
		}
	}
}

// tenantFromContext returns the tenant key and demo flag RequireTenant stored
func tenantFromContext(ctx context.Context) (tenantKey string, demo bool) {
	tenantKey, _ = ctx.Value(ContextKeyTenant).(string)
	demo, _ = ctx.Value(ContextKeyDemo).(bool)
	return tenantKey, demo
}

// userFromContext returns the resolved identity RequireTenant stored
func userFromContext(ctx context.Context) *users.User {
	user, _ := ctx.Value(ContextKeyUser).(*users.User)
	return user
}
