package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
)

// HealthHandler serves liveness, readiness and metrics over HTTP.
type HealthHandler struct {
	service string
	metrics http.Handler
	ready   atomic.Bool
	logger  *slog.Logger
}

// NewHealthHandler creates a health check HTTP handler. metrics may be nil.
// The handler reports not ready until SetReady(true) is called.
func NewHealthHandler(service string, metrics http.Handler, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{service: service, metrics: metrics, logger: logger}
}

// SetReady flips the readiness probe.
func (h *HealthHandler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// RegisterRoutes attaches health-check routes to the given mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.liveness)
	mux.HandleFunc("GET /readyz", h.readiness)
	if h.metrics != nil {
		mux.Handle("GET /metrics", h.metrics)
	}
}

func (h *HealthHandler) liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": h.service,
	})
}

func (h *HealthHandler) readiness(w http.ResponseWriter, r *http.Request) {
	if !h.ready.Load() {
		h.logger.DebugContext(r.Context(), "readiness probe before startup completed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "starting",
			"service": h.service,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ready",
		"service": h.service,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck
}
