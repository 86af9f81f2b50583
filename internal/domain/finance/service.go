package finance

import "context"

// FinanceService defines business logic for the manual deduction ledger,
// manager reviews and the other-commission ledger.
type FinanceService interface {
	// AddOrUpdateManualDeduction adds to an existing deduction (joining notes
	// with " | ") when IsAdditive is set, otherwise overwrites it.
	AddOrUpdateManualDeduction(ctx context.Context, req ManualDeductionRequest) (FinancialsResponse, error)
	SetManagerReview(ctx context.Context, req ManagerReviewRequest) (FinancialsResponse, error)
	GetFinancials(ctx context.Context, employeeID string, month, year int) (FinancialsResponse, error)
	// ResetMonthlyFinancials zeroes the period's computed fields and removes its
	// commission logs.
	ResetMonthlyFinancials(ctx context.Context, employeeID string, month, year int) error

	AddCommissionLog(ctx context.Context, req CreateCommissionLogRequest) (CommissionLogResponse, error)
	ListCommissionLogs(ctx context.Context, employeeID string, month, year int) ([]CommissionLogResponse, error)
	DeleteCommissionLog(ctx context.Context, id string) error
}
