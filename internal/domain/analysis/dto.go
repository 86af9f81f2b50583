package analysis

import "errors"

var ErrInvalidPeriod = errors.New("invalid analysis period")

// WorkforceAnalysisRequest triggers an analysis run for one month. Mood scores
// come from the dashboard's mood tracker and are keyed by employee ID; the
// remaining metrics are aggregated server side. Employees without an entry get
// a mood of 0.
type WorkforceAnalysisRequest struct {
	Month      int                `json:"month"`
	Year       int                `json:"year"`
	MoodScores map[string]float64 `json:"mood_scores,omitempty"`
}

func (r WorkforceAnalysisRequest) Validate() error {
	if r.Month < 1 || r.Month > 12 || r.Year < 2000 {
		return ErrInvalidPeriod
	}
	return nil
}

type WorkforceAnalysisResponse struct {
	PeriodLabel string             `json:"period_label"`
	Source      string             `json:"source"`
	Results     []AIAnalysisResult `json:"results"`
}
