package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// pinger defines the minimal interface for dependency health checks.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
// The database is required for readiness; the statistics cache is optional
// and only reported.
type HealthHandler struct {
	db      pinger
	cache   pinger
	version string
}

// NewHealthHandler creates a HealthHandler. cache may be nil.
func NewHealthHandler(db pinger, cache pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings the database: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check with per-component latency and version.
// A down cache degrades the status without failing the check.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	components := make(map[string]CompStatus, 2)
	overall := "ok"
	status := http.StatusOK

	db := probe(ctx, h.db)
	components["database"] = db
	if db.Status != "ok" {
		overall = "down"
		status = http.StatusServiceUnavailable
	}

	if h.cache != nil {
		cache := probe(ctx, h.cache)
		components["cache"] = cache
		if cache.Status != "ok" && overall == "ok" {
			overall = "degraded"
		}
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func probe(ctx context.Context, p pinger) CompStatus {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
