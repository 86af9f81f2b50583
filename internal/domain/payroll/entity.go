package payroll

import "github.com/shopspring/decimal"

// IncentiveThreshold is the minimum aggregate KPI completion percentage that
// unlocks any KPI incentive payout. The boundary is inclusive.
const IncentiveThreshold = 65.0

// Breakdown is the computed decomposition of an employee's expected net pay
// for one period. It is never persisted; every call recomputes it from the
// current state of the underlying tables.
type Breakdown struct {
	EmployeeID         string          `json:"employee_id"`
	EmployeeName       string          `json:"employee_name"`
	Month              int             `json:"month"`
	Year               int             `json:"year"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	KPIScorePercentage float64         `json:"kpi_score_percentage"`
	KPIIncentive       decimal.Decimal `json:"kpi_incentive"`
	ProblemBonus       decimal.Decimal `json:"problem_bonus"`
	SalesCommission    decimal.Decimal `json:"sales_commission"`
	OtherCommission    decimal.Decimal `json:"other_commission"`
	ManualDeduction    decimal.Decimal `json:"manual_deduction"`
	DeductionNote      string          `json:"deduction_note"`
	FinalPayout        decimal.Decimal `json:"final_payout"`
	ManagerFeedback    *string         `json:"manager_feedback,omitempty"`
	CommitmentScore    *int            `json:"commitment_score,omitempty"`
	NeedsImprovement   bool            `json:"needs_improvement"`
	ImprovementNote    *string         `json:"improvement_note,omitempty"`
}
