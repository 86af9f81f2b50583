package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Financials is the per-(employee, month, year) row of manual adjustments and
// manager review data. Rows are created lazily via upserts.
type Financials struct {
	ID                  string
	EmployeeID          string
	Month               int
	Year                int
	ManualDeduction     decimal.Decimal
	ManualDeductionNote string
	ManagerFeedback     *string
	CommitmentScore     *int
	NeedsImprovement    bool
	ImprovementNote     *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// OtherCommissionLog is an ad-hoc commission entry counted into the period's
// payout.
type OtherCommissionLog struct {
	ID          string
	EmployeeID  string
	Month       int
	Year        int
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}
