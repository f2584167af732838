package models

import (
	"strings"
	"time"
)

const (
	HealthHealthy       = "healthy"
	HealthUnhealthy     = "unhealthy"
	HealthNotConfigured = "not configured"
)

type HealthCheck struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// OverallHealth is unhealthy as soon as one configured dependency reports a problem.
func OverallHealth(services map[string]string) string {
	for _, status := range services {
		if status != HealthHealthy && !strings.HasPrefix(status, HealthNotConfigured) {
			return HealthUnhealthy
		}
	}
	return HealthHealthy
}
