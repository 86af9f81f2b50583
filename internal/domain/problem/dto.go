package problem

import "github.com/shopspring/decimal"

type CreateProblemLogRequest struct {
	EmployeeID           string          `json:"employee_id"`
	Title                string          `json:"title"`
	Description          *string         `json:"description,omitempty"`
	PotentialBonusAmount decimal.Decimal `json:"potential_bonus_amount"`
}

type ProblemLogResponse struct {
	ID                   string          `json:"id"`
	EmployeeID           string          `json:"employee_id"`
	Title                string          `json:"title"`
	Description          *string         `json:"description,omitempty"`
	SolutionStatus       string          `json:"solution_status"`
	PotentialBonusAmount decimal.Decimal `json:"potential_bonus_amount"`
	SolvedAt             *string         `json:"solved_at,omitempty"`
}
