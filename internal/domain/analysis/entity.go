package analysis

// EmployeeMetrics is the aggregated per-employee input to the workforce
// analyzer.
type EmployeeMetrics struct {
	EmployeeID      string  `json:"employee_id"`
	Name            string  `json:"name"`
	CurrentKPIScore float64 `json:"current_kpi_score"`
	AverageMood     float64 `json:"average_mood_score"`
	SolvedProblems  int     `json:"solved_problems"`
	CommitmentScore int     `json:"commitment_score"`
}

// Classification labels. The remote analyzer is prompted to use the same set
// so its output and the fallback's are interchangeable.
const (
	ClassLeaderMaterial = "Leader Material"
	ClassPlanA          = "Plan A (Core)"
	ClassPlanB          = "Plan B (Coaching)"
	ClassPlanC          = "Plan C (Risk)"
)

type AIAnalysisResult struct {
	EmployeeID     string `json:"employee_id"`
	Name           string `json:"name"`
	Classification string `json:"classification"`
	Summary        string `json:"summary"`
	Recommendation string `json:"recommendation"`
}
