package config

import (
	"os"
	"strconv"
)

const (
	jwtSecretVar    = "JWT_SECRET"
	cookieNameVar   = "AUTH_COOKIE_NAME"
	tokenTTLVar     = "AUTH_TOKEN_TTL_SECONDS"
	legacyTokensVar = "AUTH_ACCEPT_LEGACY_TOKENS"
)

// DefaultCookieName is the cookie the browser stores the auth token under
// unless AUTH_COOKIE_NAME overrides it.
const DefaultCookieName = "tf-auth-token"

type Auth struct{}

var _ AuthConfig = Auth{}

func (Auth) GetJWTSecret() string {
	return GetEnv(jwtSecretVar, "default-development-secret")
}

func (Auth) GetCookieName() string {
	return GetEnv(cookieNameVar, DefaultCookieName)
}

func (Auth) GetTokenTTLSeconds() int {
	ttl, err := strconv.Atoi(GetEnv(tokenTTLVar, "86400"))
	if err != nil || ttl <= 0 {
		return 86400
	}
	return ttl
}

// GetAcceptLegacyTokens controls whether unsigned base64 tokens from the
// previous auth system are still accepted. They are never issued.
func (Auth) GetAcceptLegacyTokens() bool {
	return GetEnv(legacyTokensVar, "true") == "true"
}

type Demo struct{}

var _ DemoConfig = Demo{}

// GetDemoModeEnabled gates the x-demo-mode / ?demo=true bypass. Off unless
// explicitly switched on; a production deployment must never set this.
func (Demo) GetDemoModeEnabled() bool {
	return os.Getenv("DEMO_MODE_ENABLED") == "true"
}
