package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func readiness(t *testing.T, checks map[string]Check) (*httptest.ResponseRecorder, readinessResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := NewHealthDependenciesHandler(checks).Readiness(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	return rec, body
}

func TestLiveness(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadiness_AllHealthy(t *testing.T) {
	ok := func(context.Context) error { return nil }
	rec, body := readiness(t, map[string]Check{"mongodb": ok, "redis": ok})

	if rec.Code != http.StatusOK || body.Status != "ok" {
		t.Fatalf("expected 200/ok, got %d/%s", rec.Code, body.Status)
	}
	if len(body.Dependencies) != 2 {
		t.Fatalf("expected 2 dependencies, got %v", body.Dependencies)
	}
}

func TestReadiness_Degraded(t *testing.T) {
	rec, body := readiness(t, map[string]Check{
		"mongodb": func(context.Context) error { return nil },
		"redis":   func(context.Context) error { return errors.New("connection refused") },
	})

	if rec.Code != http.StatusServiceUnavailable || body.Status != "degraded" {
		t.Fatalf("expected 503/degraded, got %d/%s", rec.Code, body.Status)
	}
	if got := body.Dependencies["redis"]; got.Status != "unhealthy" || got.Error != "connection refused" {
		t.Fatalf("unexpected redis status: %+v", got)
	}
	if body.Dependencies["mongodb"].Status != "ok" {
		t.Fatalf("mongodb should still report ok: %+v", body.Dependencies["mongodb"])
	}
}

func TestReadiness_NoChecks(t *testing.T) {
	rec, body := readiness(t, nil)
	if rec.Code != http.StatusOK || body.Status != "ok" {
		t.Fatalf("expected 200/ok, got %d/%s", rec.Code, body.Status)
	}
}
