package kpi

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config is a KPI target definition scoped to one employee. A config with no
// applicable month/year is evergreen: it applies to every period until replaced.
type Config struct {
	ID              string
	EmployeeID      string
	Name            string
	Description     *string
	TargetValue     decimal.Decimal
	UnitValue       decimal.Decimal
	ApplicableMonth *int
	ApplicableYear  *int
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AppliesTo reports whether the config participates in the given period.
func (c Config) AppliesTo(month, year int) bool {
	if c.ApplicableMonth == nil || c.ApplicableYear == nil {
		return true
	}
	return *c.ApplicableMonth == month && *c.ApplicableYear == year
}

// Record is a weekly achieved-value entry against one config. Achieved values
// are summed per config, never averaged.
type Record struct {
	ID            string
	ConfigID      string
	EmployeeID    string
	Month         int
	Year          int
	WeekNumber    int
	AchievedValue decimal.Decimal
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
