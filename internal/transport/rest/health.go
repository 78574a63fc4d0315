package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// ledgerPinger defines the minimal interface for ledger health checks.
type ledgerPinger interface {
	Ping(ctx context.Context) error
}

// busyReporter reports whether a photo analysis is running.
type busyReporter interface {
	Busy() bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	ledger  ledgerPinger
	tracker busyReporter
	backend string
	version string
}

// NewHealthHandler creates a HealthHandler. backend names the ledger
// backend in the /health response.
func NewHealthHandler(ledger ledgerPinger, tracker busyReporter, backend, version string) *HealthHandler {
	return &HealthHandler{ledger: ledger, tracker: tracker, backend: backend, version: version}
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
	Backend string `json:"backend,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings the ledger: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.ledger.Ping(ctx); err != nil {
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

// Health is the full health check. Pings the ledger with latency
// measurement, reports the estimator state and includes the version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	start := time.Now()
	err := h.ledger.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		components["ledger"] = CompStatus{Status: "down", Backend: h.backend}
		overallStatus = "down"
	} else {
		components["ledger"] = CompStatus{
			Status:  "ok",
			Backend: h.backend,
			Latency: latency.String(),
		}
	}

	estimator := CompStatus{Status: "idle"}
	if h.tracker.Busy() {
		estimator.Status = "busy"
	}
	components["estimator"] = estimator

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
