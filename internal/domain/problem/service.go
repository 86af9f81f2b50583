package problem

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProblemService defines business logic for problem logs and the payroll
// bonus totalizer.
type ProblemService interface {
	CreateLog(ctx context.Context, req CreateProblemLogRequest) (ProblemLogResponse, error)
	ListLogs(ctx context.Context, employeeID string) ([]ProblemLogResponse, error)
	MarkSolved(ctx context.Context, id string) (ProblemLogResponse, error)
	DeleteLog(ctx context.Context, id string) error

	// BonusTotal accepts a period for interface stability but sums all-time
	// solved bonuses; see the repository note.
	BonusTotal(ctx context.Context, employeeID string, month, year int) (decimal.Decimal, error)
}
