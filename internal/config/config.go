package config

type Config interface {
	EnvConfig
	AuthConfig
	DemoConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetDatabasePath() string
}

type AuthConfig interface {
	GetJWTSecret() string
	GetCookieName() string
	GetTokenTTLSeconds() int
	GetAcceptLegacyTokens() bool
}

type DemoConfig interface {
	GetDemoModeEnabled() bool
}

type mainConfig struct {
	EnvVars
	Auth
	Demo
}

func New() Config {
	return mainConfig{}
}
