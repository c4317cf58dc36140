package auth

import (
	"net/http"

	"github.com/rs/zerolog/log"

	apperrors "github.com/therapistsfriend/practice-server/internal/errors"
	"github.com/therapistsfriend/practice-server/token"
	"github.com/therapistsfriend/practice-server/users"
)

// legacyCookieNames are consulted after the configured name, in this order.
// Older frontend builds wrote the token under these.
var legacyCookieNames = []string{"auth_token", "tf-auth-token"}

// Resolved is the outcome of identity resolution for one request
type Resolved struct {
	User      *users.User
	TenantKey string
	Demo      bool
}

// Resolver extracts a token from request cookies and yields a verified
// identity, or short-circuits to the fixed demo identity when the request
// engages demo mode and the deployment allows it.
type Resolver struct {
	codec       *token.Codec
	cookieNames []string
	demoEnabled bool
}

func NewResolver(codec *token.Codec, cookieName string, demoEnabled bool) *Resolver {
	names := []string{cookieName}
	for _, legacy := range legacyCookieNames {
		if legacy != cookieName {
			names = append(names, legacy)
		}
	}
	return &Resolver{
		codec:       codec,
		cookieNames: names,
		demoEnabled: demoEnabled,
	}
}

// Resolve yields the identity behind an inbound request
func (r *Resolver) Resolve(req *http.Request) (*Resolved, error) {
	if r.demoEnabled && IsDemoRequest(req) {
		// Demo bypass disables both authentication and authorization;
		// every engagement is logged at WARN so it cannot pass unnoticed.
		log.Warn().
			Str("path", req.URL.Path).
			Str("remote", req.RemoteAddr).
			Msg("demo mode engaged: authentication bypassed")
		return &Resolved{User: DemoUser(), TenantKey: DemoTenantKey, Demo: true}, nil
	}

	raw, found := r.tokenFromCookies(req)
	if !found {
		return nil, apperrors.ErrNoToken
	}

	user, err := r.codec.Decode(raw)
	if err != nil {
		return nil, err
	}

	return &Resolved{User: user, TenantKey: TenantKey(user)}, nil
}

// tokenFromCookies looks the token up under the configured cookie name first,
// then the legacy fallbacks, in fixed priority order.
func (r *Resolver) tokenFromCookies(req *http.Request) (string, bool) {
	for _, name := range r.cookieNames {
		if cookie, err := req.Cookie(name); err == nil && cookie.Value != "" {
			return cookie.Value, true
		}
	}
	return "", false
}

// IsDemoRequest reports whether the request explicitly asks for demo mode
func IsDemoRequest(req *http.Request) bool {
	return req.Header.Get("x-demo-mode") == "true" || req.URL.Query().Get("demo") == "true"
}

// DemoUser is the fixed identity demo mode resolves to
func DemoUser() *users.User {
	return &users.User{
		ID:    BootstrapUserID,
		Name:  "Demo User",
		Email: "demo@therapistsfriend.com",
		Role:  users.RoleTherapist,
	}
}
