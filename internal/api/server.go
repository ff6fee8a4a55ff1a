package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/nauticalab/coder-workspace/internal/config"
	"github.com/nauticalab/coder-workspace/internal/logger"
	"github.com/nauticalab/coder-workspace/internal/store"
)

// DefaultRateLimit is the number of requests per minute allowed per client IP.
const DefaultRateLimit = 100

// Server represents the HTTP API server
type Server struct {
	router  *chi.Mux
	handler *Handler
	addr    string
	log     logger.Logger
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port int
	Bind string
	// Plugin is the plugin name the Gerrit-compatible endpoint answers to.
	Plugin   string
	Source   store.Source
	Resolver *config.Resolver
	Logger   logger.Logger
	// RateLimit is requests per minute per IP; zero means DefaultRateLimit.
	RateLimit int

	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// NewServer creates a new API server with the given configuration
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Source == nil {
		return nil, errors.New("config source is required")
	}
	if cfg.Plugin == "" {
		cfg.Plugin = store.DefaultPluginName
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = DefaultRateLimit
	}
	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}

	handler := NewHandler(cfg.Source, cfg.Resolver, cfg.Plugin, log,
		cfg.Version, cfg.GitCommit, cfg.BuildTime, cfg.GoVersion)

	router := chi.NewRouter()
	setupMiddleware(router, log, cfg.RateLimit)
	setupRoutes(router, handler)

	return &Server{
		router:  router,
		handler: handler,
		addr:    net.JoinHostPort(cfg.Bind, strconv.Itoa(cfg.Port)),
		log:     log,
	}, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupMiddleware configures the middleware chain
func setupMiddleware(router *chi.Mux, log logger.Logger, rateLimit int) {
	router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  logger.StandardLog(log),
		NoColor: true,
	}))

	router.Use(middleware.Recoverer)

	router.Use(middleware.Timeout(60 * time.Second))

	// Security headers
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Content-Security-Policy", "default-src 'none'")
			w.Header().Set("Cache-Control", "no-store")
			next.ServeHTTP(w, r)
		})
	})

	router.Use(httprate.LimitByIP(rateLimit, 1*time.Minute))
}

// setupRoutes configures the API routes
func setupRoutes(router *chi.Mux, handler *Handler) {
	router.NotFound(handler.NotFound)
	router.MethodNotAllowed(handler.MethodNotAllowed)

	// Gerrit REST layout, anonymous and authenticated (/a/) prefixes
	router.Get("/config/server/{endpoint}", handler.GerritConfig)
	router.Get("/a/config/server/{endpoint}", handler.GerritConfig)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handler.Health)
		r.Get("/version", handler.Version)
		r.Get("/config", handler.Config)
	})
}

// StartWithContext starts the HTTP server with graceful shutdown support
func (s *Server) StartWithContext(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.log.Info("server listening", "addr", s.addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			s.log.Error("server shutdown error", "error", err)
			return err
		}

		s.log.Info("server stopped gracefully")
		return nil

	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}
}
