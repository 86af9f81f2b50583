package analysis

import "context"

// Analyzer classifies a set of employees for a labelled period. Implemented by
// the Gemini client and by the deterministic rule-based fallback.
type Analyzer interface {
	AnalyzeWorkforce(ctx context.Context, metrics []EmployeeMetrics, periodLabel string) ([]AIAnalysisResult, error)
}

// AnalysisService aggregates per-employee metrics for a period and runs them
// through the configured analyzer chain.
type AnalysisService interface {
	AnalyzeWorkforce(ctx context.Context, req WorkforceAnalysisRequest) (WorkforceAnalysisResponse, error)
}
