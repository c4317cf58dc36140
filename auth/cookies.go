package auth

import (
	"net/http"
	"strings"
)

// DeploymentContext selects the cookie security attributes for an
// environment. It is a property of the deployment, never of the user.
type DeploymentContext string

const (
	ContextLocal      DeploymentContext = "local"
	ContextPreview    DeploymentContext = "preview"
	ContextProduction DeploymentContext = "production"
)

// DeploymentContextFromEnv maps the ENV config value onto a cookie context
func DeploymentContextFromEnv(env string) DeploymentContext {
	switch strings.ToUpper(env) {
	case "PROD", "PRODUCTION":
		return ContextProduction
	case "PREVIEW", "STAGING":
		return ContextPreview
	default:
		return ContextLocal
	}
}

// CookieManager wraps codec output in the session cookie. Issue and Clear
// must agree on name and path or the browser will keep the stale cookie.
type CookieManager struct {
	name    string
	context DeploymentContext
	maxAge  int
}

func NewCookieManager(name string, context DeploymentContext, maxAge int) *CookieManager {
	return &CookieManager{
		name:    name,
		context: context,
		maxAge:  maxAge,
	}
}

// Issue produces the session cookie carrying the bearer token
func (m *CookieManager) Issue(token string) *http.Cookie {
	secure, sameSite := m.attributes()
	return &http.Cookie{
		Name:     m.name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		MaxAge:   m.maxAge,
	}
}

// Clear produces an immediately-expired cookie with the same name and path
// as Issue, which is what makes the browser drop the original.
func (m *CookieManager) Clear() *http.Cookie {
	secure, sameSite := m.attributes()
	return &http.Cookie{
		Name:     m.name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		MaxAge:   -1,
	}
}

func (m *CookieManager) attributes() (secure bool, sameSite http.SameSite) {
	switch m.context {
	case ContextProduction:
		return true, http.SameSiteStrictMode
	case ContextPreview:
		// Hosted previews sit on a different origin than the UI
		return true, http.SameSiteNoneMode
	default:
		return false, http.SameSiteLaxMode
	}
}
