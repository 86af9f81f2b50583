package kpi

import "context"

// KPIService defines business logic for KPI targets and weekly records.
type KPIService interface {
	CreateConfig(ctx context.Context, req CreateConfigRequest) (ConfigResponse, error)
	UpdateConfig(ctx context.Context, req UpdateConfigRequest) (ConfigResponse, error)
	ListConfigs(ctx context.Context, employeeID string) ([]ConfigResponse, error)
	DeleteConfig(ctx context.Context, id string) error

	// Review flow. All of these go through the status state machine.
	SubmitConfig(ctx context.Context, id string) (ConfigResponse, error)
	ApproveConfig(ctx context.Context, id string) (ConfigResponse, error)
	RejectConfig(ctx context.Context, id string) (ConfigResponse, error)

	AddRecord(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)
	ListRecords(ctx context.Context, employeeID string, month, year int) ([]RecordResponse, error)
	DeleteRecord(ctx context.Context, id string) error

	// GetProgress returns the normalized completion percentage for the period,
	// ignoring config status.
	GetProgress(ctx context.Context, employeeID string, month, year int) (ProgressResponse, error)
}
