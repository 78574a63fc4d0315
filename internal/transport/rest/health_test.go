package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type ledgerPingerMock struct {
	err error
}

func (m *ledgerPingerMock) Ping(_ context.Context) error {
	return m.err
}

type busyMock bool

func (m busyMock) Busy() bool { return bool(m) }

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&ledgerPingerMock{}, busyMock(false), "file", "test-version")

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	rec := httptest.NewRecorder()

	h.Live(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}

	if resp.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestReady_LedgerUp(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&ledgerPingerMock{err: nil}, busyMock(false), "file", "test-version")

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	h.Ready(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
}

func TestReady_LedgerDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&ledgerPingerMock{err: errors.New("connection refused")}, busyMock(false), "file", "test-version")

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	h.Ready(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "down" {
		t.Errorf("expected status 'down', got %q", resp.Status)
	}
}

func TestHealth_AllOK(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&ledgerPingerMock{err: nil}, busyMock(false), "file", "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}

	if resp.Version != "v1.0.0" {
		t.Errorf("expected version 'v1.0.0', got %q", resp.Version)
	}

	ledgerComp, ok := resp.Components["ledger"]
	if !ok {
		t.Fatal("expected 'ledger' component in response")
	}

	if ledgerComp.Status != "ok" {
		t.Errorf("expected ledger status 'ok', got %q", ledgerComp.Status)
	}
}

func TestHealth_LedgerDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&ledgerPingerMock{err: errors.New("connection refused")}, busyMock(false), "file", "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "down" {
		t.Errorf("expected status 'down', got %q", resp.Status)
	}

	ledgerComp, ok := resp.Components["ledger"]
	if !ok {
		t.Fatal("expected 'ledger' component in response")
	}

	if ledgerComp.Status != "down" {
		t.Errorf("expected ledger status 'down', got %q", ledgerComp.Status)
	}
}

func TestHealth_IncludesLatency(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&ledgerPingerMock{err: nil}, busyMock(false), "file", "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	ledgerComp, ok := resp.Components["ledger"]
	if !ok {
		t.Fatal("expected 'ledger' component in response")
	}

	if ledgerComp.Latency == "" {
		t.Error("expected non-empty latency for ledger component")
	}
}

func TestHealth_ReportsBackendAndEstimator(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&ledgerPingerMock{}, busyMock(true), "postgres", "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if got := resp.Components["ledger"].Backend; got != "postgres" {
		t.Errorf("expected ledger backend 'postgres', got %q", got)
	}
	if got := resp.Components["estimator"].Status; got != "busy" {
		t.Errorf("expected estimator status 'busy', got %q", got)
	}
}
