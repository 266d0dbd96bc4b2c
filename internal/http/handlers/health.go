package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"

	"github.com/hongminglow/catalog-be/internal/http/respond"
	"github.com/hongminglow/catalog-be/internal/storage"
)

const probeTimeout = 2 * time.Second

// HealthResponse reports process uptime and dependency reachability.
type HealthResponse struct {
	OK       bool   `json:"ok"`
	Uptime   string `json:"uptime"`
	Database string `json:"database"`
	Search   string `json:"search"`
}

// HealthHandler returns uptime and dependency status.
type HealthHandler struct {
	startedAt time.Time
	db        storage.Pinger
	search    storage.Pinger
}

// NewHealthHandler creates a health endpoint handler. search may be nil when
// no full-text engine is configured.
func NewHealthHandler(startedAt time.Time, db, search storage.Pinger) *HealthHandler {
	return &HealthHandler{startedAt: startedAt, db: db, search: search}
}

// Register wires the handler into a ServeMux.
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.handle)
	mux.HandleFunc("GET /{$}", h.handleRoot)
}

func (h *HealthHandler) handle(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Uptime:   time.Since(h.startedAt).Truncate(time.Second).String(),
		Database: h.probe(r, "database", h.db),
		Search:   "disabled",
	}
	if h.search != nil {
		resp.Search = h.probe(r, "search", h.search)
	}
	resp.OK = resp.Database == "up"

	status := http.StatusOK
	if !resp.OK {
		status = http.StatusServiceUnavailable
	}
	respond.JSON(w, r, status, resp)
}

func (h *HealthHandler) probe(r *http.Request, name string, p storage.Pinger) string {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()
	if err := p.Ping(ctx); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Str("dependency", name).Msg("health probe failed")
		return "down"
	}
	return "up"
}

func (h *HealthHandler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "Catalog API is running\n")
}
