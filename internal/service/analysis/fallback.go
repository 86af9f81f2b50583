package analysis

import (
	"context"
	"fmt"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/analysis"
)

// RuleBasedAnalyzer is the deterministic fallback used when the generative
// backend is unconfigured or unreachable. Classification thresholds mirror the
// prompt given to the remote model.
type RuleBasedAnalyzer struct{}

func NewRuleBasedAnalyzer() *RuleBasedAnalyzer {
	return &RuleBasedAnalyzer{}
}

func (a *RuleBasedAnalyzer) AnalyzeWorkforce(_ context.Context, metrics []analysis.EmployeeMetrics, periodLabel string) ([]analysis.AIAnalysisResult, error) {
	results := make([]analysis.AIAnalysisResult, 0, len(metrics))
	for _, m := range metrics {
		results = append(results, classify(m, periodLabel))
	}
	return results, nil
}

func classify(m analysis.EmployeeMetrics, periodLabel string) analysis.AIAnalysisResult {
	result := analysis.AIAnalysisResult{
		EmployeeID: m.EmployeeID,
		Name:       m.Name,
		Summary: fmt.Sprintf("%s scored %.1f%% on KPIs in %s with %d solved problems and an average mood of %.1f.",
			m.Name, m.CurrentKPIScore, periodLabel, m.SolvedProblems, m.AverageMood),
	}

	switch {
	case m.CurrentKPIScore >= 90 && m.AverageMood >= 7:
		result.Classification = analysis.ClassLeaderMaterial
		result.Recommendation = "Consider for mentorship or team-lead responsibilities."
	case m.CurrentKPIScore >= 75:
		result.Classification = analysis.ClassPlanA
		result.Recommendation = "Performing well. Keep current targets and check in monthly."
	case m.CurrentKPIScore >= 60:
		result.Classification = analysis.ClassPlanB
		result.Recommendation = "Schedule a coaching session and review KPI targets together."
	default:
		result.Classification = analysis.ClassPlanC
		result.Recommendation = "Performance is below expectations. Set up an improvement plan with weekly follow-ups."
	}

	return result
}
