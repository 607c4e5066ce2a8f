package service

import (
	"os"
	"time"

	"github.com/labstack/gommon/log"

	"kakunin/internal/contract"
)

// HealthService reports liveness by issuing a minimal read against the
// store, mirroring what the deployment healthcheck expects.
type HealthService struct {
	ProjectRepo ProjectRepository
}

func NewHealthService(projectRepo ProjectRepository) *HealthService {
	return &HealthService{ProjectRepo: projectRepo}
}

func (h *HealthService) Check() *contract.HealthResponse {
	resp := &contract.HealthResponse{
		Status:      "healthy",
		Database:    "connected",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		DemoMode:    os.Getenv("DEMO_MODE") == "true",
		Environment: environment(),
	}

	if _, err := h.ProjectRepo.Count(); err != nil {
		log.Errorf("health probe failed: %v", err)
		resp.Status = "error"
		resp.Database = "disconnected"
	}
	return resp
}

func environment() string {
	env := os.Getenv("GO_ENV")
	if env == "" {
		return "development"
	}
	return env
}
