package kpi

import "github.com/shopspring/decimal"

type CreateConfigRequest struct {
	EmployeeID      string          `json:"employee_id"`
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	TargetValue     decimal.Decimal `json:"target_value"`
	UnitValue       decimal.Decimal `json:"unit_value"`
	ApplicableMonth *int            `json:"applicable_month,omitempty"`
	ApplicableYear  *int            `json:"applicable_year,omitempty"`
}

func (r CreateConfigRequest) Validate() error {
	if !r.TargetValue.IsPositive() {
		return ErrInvalidTargetValue
	}
	if (r.ApplicableMonth == nil) != (r.ApplicableYear == nil) {
		return ErrInvalidPeriod
	}
	if r.ApplicableMonth != nil && (*r.ApplicableMonth < 1 || *r.ApplicableMonth > 12) {
		return ErrInvalidPeriod
	}
	return nil
}

type UpdateConfigRequest struct {
	ID          string           `json:"-"`
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	TargetValue *decimal.Decimal `json:"target_value,omitempty"`
	UnitValue   *decimal.Decimal `json:"unit_value,omitempty"`
}

type CreateRecordRequest struct {
	ConfigID      string          `json:"config_id"`
	EmployeeID    string          `json:"employee_id"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	WeekNumber    int             `json:"week_number"`
	AchievedValue decimal.Decimal `json:"achieved_value"`
	Notes         *string         `json:"notes,omitempty"`
}

func (r CreateRecordRequest) Validate() error {
	if r.Month < 1 || r.Month > 12 || r.Year < 2000 {
		return ErrInvalidPeriod
	}
	return nil
}

type ConfigResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	TargetValue     decimal.Decimal `json:"target_value"`
	UnitValue       decimal.Decimal `json:"unit_value"`
	ApplicableMonth *int            `json:"applicable_month,omitempty"`
	ApplicableYear  *int            `json:"applicable_year,omitempty"`
	Status          string          `json:"status"`
}

type RecordResponse struct {
	ID            string          `json:"id"`
	ConfigID      string          `json:"config_id"`
	EmployeeID    string          `json:"employee_id"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	WeekNumber    int             `json:"week_number"`
	AchievedValue decimal.Decimal `json:"achieved_value"`
	Notes         *string         `json:"notes,omitempty"`
}

type ProgressResponse struct {
	EmployeeID string  `json:"employee_id"`
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	Score      float64 `json:"score"`
}
