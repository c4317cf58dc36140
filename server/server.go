package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/therapistsfriend/practice-server/auth"
	"github.com/therapistsfriend/practice-server/clients"
	"github.com/therapistsfriend/practice-server/internal/config"
	"github.com/therapistsfriend/practice-server/notes"
	"github.com/therapistsfriend/practice-server/sessions"
	"github.com/therapistsfriend/practice-server/token"
	"github.com/therapistsfriend/practice-server/users"
)

// Repos holds all repository dependencies for the Server
type Repos struct {
	Users    users.Repo
	Sessions sessions.Repo
	Clients  clients.Repo
	Notes    notes.Repo
}

type Server struct {
	env       string
	mux       *http.ServeMux
	routes    []string
	config    config.Config
	repos     Repos
	codec     *token.Codec
	validator *auth.Validator
	resolver  *auth.Resolver
	cookies   *auth.CookieManager
	gate      *auth.Gate
	tokenTTL  time.Duration
}

func New(cfg config.Config, repos Repos) (*Server, error) {
	if repos.Users == nil {
		return nil, errors.New("[Server New] Users repo is required")
	}
	if repos.Sessions == nil {
		return nil, errors.New("[Server New] Sessions repo is required")
	}
	if repos.Clients == nil {
		return nil, errors.New("[Server New] Clients repo is required")
	}
	if repos.Notes == nil {
		return nil, errors.New("[Server New] Notes repo is required")
	}

	codec := token.NewCodec(
		token.NewHMACSigner(cfg.GetJWTSecret()),
		token.WithLegacyTokens(cfg.GetAcceptLegacyTokens()),
	)

	s := &Server{
		env:       cfg.GetEnv(),
		mux:       http.NewServeMux(),
		config:    cfg,
		repos:     repos,
		codec:     codec,
		validator: auth.NewValidator(repos.Users),
		resolver:  auth.NewResolver(codec, cfg.GetCookieName(), cfg.GetDemoModeEnabled()),
		cookies: auth.NewCookieManager(
			cfg.GetCookieName(),
			auth.DeploymentContextFromEnv(cfg.GetEnv()),
			cfg.GetTokenTTLSeconds(),
		),
		gate:     auth.NewGate(repos.Notes),
		tokenTTL: time.Duration(cfg.GetTokenTTLSeconds()) * time.Second,
	}

	if cfg.GetDemoModeEnabled() {
		log.Warn().Msg("DEMO_MODE_ENABLED is set: unauthenticated demo bypass is reachable")
	}

	// Bootstrap: ensure the demo account exists so first login works
	if err := s.ensureDemoAccount(); err != nil {
		return nil, errors.Wrap(err, "[Server New] failed to bootstrap demo account")
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)
		if len(parts) > 1 {
			log.Debug().Str("method", parts[0]).Str("path", parts[1]).Msg("route")
		} else {
			log.Debug().Str("path", parts[0]).Msg("route")
		}
	}
}
