package analysis

import (
	"context"
	"testing"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metricsWith(kpiScore, mood float64) analysis.EmployeeMetrics {
	return analysis.EmployeeMetrics{
		EmployeeID:      "emp-1",
		Name:            "Nour",
		CurrentKPIScore: kpiScore,
		AverageMood:     mood,
	}
}

func TestRuleBasedAnalyzer_Thresholds(t *testing.T) {
	cases := []struct {
		name string
		kpi  float64
		mood float64
		want string
	}{
		{"high kpi and mood", 90, 7, analysis.ClassLeaderMaterial},
		{"high kpi low mood", 95, 5, analysis.ClassPlanA},
		{"core threshold", 75, 3, analysis.ClassPlanA},
		{"coaching band", 60, 9, analysis.ClassPlanB},
		{"just under coaching", 59.9, 9, analysis.ClassPlanC},
		{"at risk", 20, 2, analysis.ClassPlanC},
		{"zero everything", 0, 0, analysis.ClassPlanC},
	}

	analyzer := NewRuleBasedAnalyzer()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			results, err := analyzer.AnalyzeWorkforce(context.Background(), []analysis.EmployeeMetrics{metricsWith(tc.kpi, tc.mood)}, "June 2025")
			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, tc.want, results[0].Classification)
			assert.Equal(t, "emp-1", results[0].EmployeeID)
			assert.NotEmpty(t, results[0].Summary)
			assert.NotEmpty(t, results[0].Recommendation)
		})
	}
}

func TestRuleBasedAnalyzer_OneResultPerEmployee(t *testing.T) {
	analyzer := NewRuleBasedAnalyzer()
	metrics := []analysis.EmployeeMetrics{
		{EmployeeID: "emp-1", Name: "A", CurrentKPIScore: 92, AverageMood: 8},
		{EmployeeID: "emp-2", Name: "B", CurrentKPIScore: 40, AverageMood: 8},
	}

	results, err := analyzer.AnalyzeWorkforce(context.Background(), metrics, "June 2025")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, analysis.ClassLeaderMaterial, results[0].Classification)
	assert.Equal(t, analysis.ClassPlanC, results[1].Classification)
}
