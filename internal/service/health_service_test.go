package service

import (
	"errors"
	"testing"
	"time"
)

type brokenProjectRepo struct {
	fakeProjectRepo
}

func (r *brokenProjectRepo) Count() (int64, error) {
	return 0, errors.New("database is gone")
}

func TestHealthCheck_Healthy(t *testing.T) {
	t.Setenv("DEMO_MODE", "true")
	t.Setenv("GO_ENV", "")

	svc := NewHealthService(newFakeProjectRepo())
	resp := svc.Check()

	if resp.Status != "healthy" || resp.Database != "connected" {
		t.Fatalf("unexpected health payload: %+v", resp)
	}
	if !resp.DemoMode {
		t.Fatalf("demo mode flag not picked up")
	}
	if resp.Environment != "development" {
		t.Fatalf("expected development fallback, got %q", resp.Environment)
	}
	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Fatalf("timestamp not RFC 3339: %q", resp.Timestamp)
	}
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	svc := NewHealthService(&brokenProjectRepo{})
	resp := svc.Check()

	if resp.Status != "error" || resp.Database != "disconnected" {
		t.Fatalf("unexpected health payload: %+v", resp)
	}
}
