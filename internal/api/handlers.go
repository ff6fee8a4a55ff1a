package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nauticalab/coder-workspace/internal/config"
	"github.com/nauticalab/coder-workspace/internal/logger"
	"github.com/nauticalab/coder-workspace/internal/store"
)

// snapshotter is implemented by sources that can change over time, such as
// *store.Reloadable.
type snapshotter interface {
	Snapshot() store.Source
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	// source is the raw plugin section, read once per request
	source store.Source
	// resolver turns the raw section into a Configuration
	resolver *config.Resolver
	// plugin is the name the Gerrit-compatible endpoint answers to
	plugin string
	log    logger.Logger

	version   string
	gitCommit string
	buildTime string
	goVersion string
}

// NewHandler creates a new Handler instance
func NewHandler(source store.Source, resolver *config.Resolver, plugin string, log logger.Logger, version, gitCommit, buildTime, goVersion string) *Handler {
	if resolver == nil {
		resolver = config.NewResolver()
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{
		source:    source,
		resolver:  resolver,
		plugin:    plugin,
		log:       log,
		version:   version,
		gitCommit: gitCommit,
		buildTime: buildTime,
		goVersion: goVersion,
	}
}

// resolve builds a Configuration from a single snapshot of the source.
func (h *Handler) resolve() *config.Configuration {
	src := h.source
	if s, ok := src.(snapshotter); ok {
		src = s.Snapshot()
	}
	return h.resolver.Resolve(store.NewValues(src))
}

// GerritConfig handles GET /config/server/{plugin}~config
func (h *Handler) GerritConfig(w http.ResponseWriter, r *http.Request) {
	endpoint := chi.URLParam(r, "endpoint")
	if endpoint != h.plugin+"~config" {
		respondNotFound(w, fmt.Sprintf("no such endpoint %q", endpoint))
		return
	}

	cfg := h.resolve()
	h.log.Debug("serving plugin configuration", "plugin", h.plugin, "richParams", len(cfg.RichParams), "templateMappings", len(cfg.TemplateMappings))
	respondGerritJSON(w, http.StatusOK, cfg)
}

// Config handles GET /api/v1/config
func (h *Handler) Config(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, h.resolve())
}

// Health handles GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Version handles GET /api/v1/version
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, VersionResponse{
		Version:   h.version,
		GitCommit: h.gitCommit,
		BuildTime: h.buildTime,
		GoVersion: h.goVersion,
	})
}

// NotFound renders unknown routes as ErrorResponse.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondNotFound(w, fmt.Sprintf("no route for %s", r.URL.Path))
}

// MethodNotAllowed renders ErrorResponse for write attempts; the API is read-only.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondMethodNotAllowed(w, fmt.Sprintf("%s is not supported on %s", r.Method, r.URL.Path))
}
