package finance

import "errors"

var (
	ErrFinancialsNotFound    = errors.New("financials row not found")
	ErrCommissionLogNotFound = errors.New("commission log not found")
	ErrInvalidPeriod         = errors.New("invalid financial period")
	ErrInvalidAmount         = errors.New("amount must be zero or positive")
)
