package services

import (
	"context"

	"dovvia/internal/database"
)

// HealthService implements the health check
type HealthService struct{}

// NewHealthService creates a new health service
func NewHealthService() *HealthService {
	return &HealthService{}
}

// HealthResult reports service and database health.
type HealthResult struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
}

// Check implements the health check method
func (s *HealthService) Check(ctx context.Context) *HealthResult {
	result := &HealthResult{
		Status:   "healthy",
		Service:  "Dovvia Still API",
		Database: "up",
	}
	if err := database.HealthCheck(); err != nil {
		result.Status = "degraded"
		result.Database = "down"
	}
	return result
}
