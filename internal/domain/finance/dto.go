package finance

import "github.com/shopspring/decimal"

type ManualDeductionRequest struct {
	EmployeeID string          `json:"employee_id"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Amount     decimal.Decimal `json:"amount"`
	IsAdditive bool            `json:"is_additive"`
	Note       string          `json:"note"`
}

func (r ManualDeductionRequest) Validate() error {
	if r.Month < 1 || r.Month > 12 || r.Year < 2000 {
		return ErrInvalidPeriod
	}
	if r.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

type ManagerReviewRequest struct {
	EmployeeID       string  `json:"employee_id"`
	Month            int     `json:"month"`
	Year             int     `json:"year"`
	ManagerFeedback  *string `json:"manager_feedback,omitempty"`
	CommitmentScore  *int    `json:"commitment_score,omitempty"`
	NeedsImprovement *bool   `json:"needs_improvement,omitempty"`
	ImprovementNote  *string `json:"improvement_note,omitempty"`
}

type CreateCommissionLogRequest struct {
	EmployeeID  string          `json:"employee_id"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (r CreateCommissionLogRequest) Validate() error {
	if r.Month < 1 || r.Month > 12 || r.Year < 2000 {
		return ErrInvalidPeriod
	}
	if r.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

type FinancialsResponse struct {
	EmployeeID          string          `json:"employee_id"`
	Month               int             `json:"month"`
	Year                int             `json:"year"`
	ManualDeduction     decimal.Decimal `json:"manual_deduction"`
	ManualDeductionNote string          `json:"manual_deduction_note"`
	ManagerFeedback     *string         `json:"manager_feedback,omitempty"`
	CommitmentScore     *int            `json:"commitment_score,omitempty"`
	NeedsImprovement    bool            `json:"needs_improvement"`
	ImprovementNote     *string         `json:"improvement_note,omitempty"`
}

type CommissionLogResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}
