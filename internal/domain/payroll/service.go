package payroll

import "context"

// PayrollService computes the per-period payout breakdown. Only a missing
// employee aborts the calculation; any other failed sub-fetch degrades to a
// zero contribution so the dashboard stays usable.
type PayrollService interface {
	CalculatePayroll(ctx context.Context, employeeID string, month, year int) (Breakdown, error)
}
