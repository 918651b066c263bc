package domain

import (
	"context"
	"time"
)

// HealthStatus is the body of the liveness probe.
type HealthStatus struct {
	Status      string    `json:"status" example:"OK"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment" example:"development"`
}

// HealthUsecase reports process liveness.
type HealthUsecase interface {
	Check(ctx context.Context) HealthStatus
}
