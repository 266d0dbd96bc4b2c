package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/hongminglow/catalog-be/internal/auth"
	"github.com/hongminglow/catalog-be/internal/config"
	"github.com/hongminglow/catalog-be/internal/http/handlers"
	"github.com/hongminglow/catalog-be/internal/middleware"
	"github.com/hongminglow/catalog-be/internal/search"
	"github.com/hongminglow/catalog-be/internal/storage"
)

// Store is everything the HTTP layer needs from persistence.
type Store interface {
	storage.UserStore
	storage.CatalogStore
	storage.Pinger
}

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware and routes. engine may be nil, in which case
// full-text search always uses the substring fallback.
func New(cfg config.Config, log zerolog.Logger, store Store, engine search.Engine) *Server {
	return &Server{inner: &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           Handler(cfg, log, store, engine),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}}
}

// Handler builds the routed, middleware-wrapped handler.
func Handler(cfg config.Config, log zerolog.Logger, store Store, engine search.Engine) http.Handler {
	mux := http.NewServeMux()

	var searchPinger storage.Pinger
	if engine != nil {
		searchPinger = engine
	}
	handlers.NewHealthHandler(time.Now(), store, searchPinger).Register(mux)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, auth.SessionTTL)
	hasher := auth.NewPasswordHasher(cfg.Pepper, cfg.SaltRounds)
	handlers.NewAuthHandler(store, tokens, hasher, handlers.AuthOptions{
		PasswordMinLength: cfg.PasswordMinLength,
		Cookie: handlers.CookieOptions{
			Secure:   cfg.CookieSecure,
			SameSite: cfg.CookieSameSite,
		},
	}).Register(mux)

	handlers.NewCatalogHandler(store).Register(mux)
	handlers.NewSearchHandler(search.NewService(store, engine)).Register(mux)

	return middleware.Chain(mux,
		middleware.Logger(log),
		middleware.RequestID,
		middleware.AccessLog,
		middleware.CORS(cfg.CORSOrigins),
	)
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
