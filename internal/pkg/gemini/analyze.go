package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/analysis"
)

const analysisPromptTemplate = `You are an HR analyst for a small marketing department.
Classify each employee for the period "%s" using exactly one of these labels:
"Leader Material", "Plan A (Core)", "Plan B (Coaching)", "Plan C (Risk)".

Guidelines: KPI score >= 90 with average mood >= 7 is "Leader Material";
KPI >= 75 is "Plan A (Core)"; KPI >= 60 is "Plan B (Coaching)"; below 60 is
"Plan C (Risk)". Solved problems and commitment score may nudge a borderline
case up one tier.

Employee metrics (JSON):
%s

Respond with ONLY a JSON array, one object per employee, with keys:
employee_id, name, classification, summary, recommendation.`

// AnalyzeWorkforce implements analysis.Analyzer on top of generateContent.
// Any transport or parse failure is returned to the caller, which is expected
// to fall back to the rule-based analyzer.
func (c *Client) AnalyzeWorkforce(ctx context.Context, metrics []analysis.EmployeeMetrics, periodLabel string) ([]analysis.AIAnalysisResult, error) {
	metricsJSON, err := json.Marshal(metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal employee metrics: %w", err)
	}

	text, err := c.GenerateContent(ctx, fmt.Sprintf(analysisPromptTemplate, periodLabel, metricsJSON))
	if err != nil {
		return nil, err
	}

	var results []analysis.AIAnalysisResult
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &results); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("analysis response contained no results")
	}

	return results, nil
}

// stripCodeFence removes a markdown code fence the model sometimes wraps
// around its JSON despite the response MIME type hint.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
