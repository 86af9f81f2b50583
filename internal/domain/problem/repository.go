package problem

import (
	"context"

	"github.com/shopspring/decimal"
)

type ProblemLogRepository interface {
	Create(ctx context.Context, log ProblemLog) (ProblemLog, error)
	GetByID(ctx context.Context, id string) (ProblemLog, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]ProblemLog, error)
	MarkSolved(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	// SolvedBonusTotal sums potential_bonus_amount over all solved logs for the
	// employee. Not period-filtered: solved problems keep paying out in every
	// month's breakdown until the log is deleted. Known product question.
	SolvedBonusTotal(ctx context.Context, employeeID string) (decimal.Decimal, error)
}
