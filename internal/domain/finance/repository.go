package finance

import (
	"context"

	"github.com/shopspring/decimal"
)

type FinancialsRepository interface {
	// GetForPeriod returns ErrFinancialsNotFound when no row exists yet.
	GetForPeriod(ctx context.Context, employeeID string, month, year int) (Financials, error)
	// UpsertDeduction overwrites the deduction amount and note for the period,
	// creating the row when absent.
	UpsertDeduction(ctx context.Context, employeeID string, month, year int, amount decimal.Decimal, note string) (Financials, error)
	UpsertReview(ctx context.Context, row Financials) (Financials, error)
	ResetPeriod(ctx context.Context, employeeID string, month, year int) error
}

type CommissionLogRepository interface {
	Create(ctx context.Context, log OtherCommissionLog) (OtherCommissionLog, error)
	GetForPeriod(ctx context.Context, employeeID string, month, year int) ([]OtherCommissionLog, error)
	Delete(ctx context.Context, id string) error
	DeleteForPeriod(ctx context.Context, employeeID string, month, year int) error
}
