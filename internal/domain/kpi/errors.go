package kpi

import "errors"

var (
	ErrConfigNotFound          = errors.New("kpi config not found")
	ErrRecordNotFound          = errors.New("kpi record not found")
	ErrInvalidStatusTransition = errors.New("invalid kpi status transition")
	ErrInvalidTargetValue      = errors.New("target value must be positive")
	ErrInvalidPeriod           = errors.New("invalid kpi period")
)
