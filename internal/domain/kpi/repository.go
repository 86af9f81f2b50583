package kpi

import "context"

type ConfigRepository interface {
	Create(ctx context.Context, config Config) (Config, error)
	GetByID(ctx context.Context, id string) (Config, error)
	// GetForPeriod returns configs scoped to (month, year) plus evergreen ones.
	GetForPeriod(ctx context.Context, employeeID string, month, year int) ([]Config, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Config, error)
	Update(ctx context.Context, id string, req UpdateConfigRequest) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}

type RecordRepository interface {
	Create(ctx context.Context, record Record) (Record, error)
	GetForPeriod(ctx context.Context, employeeID string, month, year int) ([]Record, error)
	ListByConfig(ctx context.Context, configID string) ([]Record, error)
	Delete(ctx context.Context, id string) error
}
