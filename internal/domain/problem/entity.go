package problem

import (
	"time"

	"github.com/shopspring/decimal"
)

// SolutionStatus enum
type SolutionStatus string

const (
	SolutionStatusUnsolved SolutionStatus = "unsolved"
	SolutionStatusSolved   SolutionStatus = "solved"
)

// ProblemLog is a logged issue an employee dealt with. Only solved logs count
// toward the payroll bonus.
type ProblemLog struct {
	ID                   string
	EmployeeID           string
	Title                string
	Description          *string
	SolutionStatus       SolutionStatus
	PotentialBonusAmount decimal.Decimal
	SolvedAt             *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
