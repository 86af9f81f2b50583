package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/analysis"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/employee"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/finance"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/kpi"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/problem"
)

const (
	SourceGemini   = "gemini"
	SourceFallback = "fallback"
)

type AnalysisServiceImpl struct {
	primary        analysis.Analyzer // nil when no API key is configured
	fallback       analysis.Analyzer
	employeeRepo   employee.EmployeeRepository
	kpiConfigRepo  kpi.ConfigRepository
	kpiRecordRepo  kpi.RecordRepository
	problemRepo    problem.ProblemLogRepository
	financialsRepo finance.FinancialsRepository
}

func NewAnalysisService(
	primary analysis.Analyzer,
	fallback analysis.Analyzer,
	employeeRepo employee.EmployeeRepository,
	kpiConfigRepo kpi.ConfigRepository,
	kpiRecordRepo kpi.RecordRepository,
	problemRepo problem.ProblemLogRepository,
	financialsRepo finance.FinancialsRepository,
) analysis.AnalysisService {
	return &AnalysisServiceImpl{
		primary:        primary,
		fallback:       fallback,
		employeeRepo:   employeeRepo,
		kpiConfigRepo:  kpiConfigRepo,
		kpiRecordRepo:  kpiRecordRepo,
		problemRepo:    problemRepo,
		financialsRepo: financialsRepo,
	}
}

func (s *AnalysisServiceImpl) AnalyzeWorkforce(ctx context.Context, req analysis.WorkforceAnalysisRequest) (analysis.WorkforceAnalysisResponse, error) {
	if err := req.Validate(); err != nil {
		return analysis.WorkforceAnalysisResponse{}, err
	}

	metrics, err := s.collectMetrics(ctx, req)
	if err != nil {
		return analysis.WorkforceAnalysisResponse{}, err
	}

	periodLabel := fmt.Sprintf("%s %d", time.Month(req.Month), req.Year)

	if s.primary != nil {
		results, err := s.primary.AnalyzeWorkforce(ctx, metrics, periodLabel)
		if err == nil {
			return analysis.WorkforceAnalysisResponse{
				PeriodLabel: periodLabel,
				Source:      SourceGemini,
				Results:     results,
			}, nil
		}
		slog.WarnContext(ctx, "remote workforce analysis failed, using fallback", "error", err)
	}

	results, err := s.fallback.AnalyzeWorkforce(ctx, metrics, periodLabel)
	if err != nil {
		return analysis.WorkforceAnalysisResponse{}, err
	}

	return analysis.WorkforceAnalysisResponse{
		PeriodLabel: periodLabel,
		Source:      SourceFallback,
		Results:     results,
	}, nil
}

// collectMetrics aggregates per-employee inputs for the period. Sub-fetch
// failures degrade to zeros so one broken table does not block the whole
// analysis; only the employee list itself is required.
func (s *AnalysisServiceImpl) collectMetrics(ctx context.Context, req analysis.WorkforceAnalysisRequest) ([]analysis.EmployeeMetrics, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	metrics := make([]analysis.EmployeeMetrics, 0, len(employees))
	for _, emp := range employees {
		m := analysis.EmployeeMetrics{
			EmployeeID:  emp.ID,
			Name:        emp.FullName,
			AverageMood: req.MoodScores[emp.ID],
		}

		configs, cfgErr := s.kpiConfigRepo.GetForPeriod(ctx, emp.ID, req.Month, req.Year)
		records, recErr := s.kpiRecordRepo.GetForPeriod(ctx, emp.ID, req.Month, req.Year)
		if cfgErr == nil && recErr == nil {
			m.CurrentKPIScore = kpi.ProgressScore(configs, records)
		}

		if logs, err := s.problemRepo.ListByEmployee(ctx, emp.ID); err == nil {
			for _, log := range logs {
				if log.SolutionStatus == problem.SolutionStatusSolved {
					m.SolvedProblems++
				}
			}
		}

		if fin, err := s.financialsRepo.GetForPeriod(ctx, emp.ID, req.Month, req.Year); err == nil && fin.CommitmentScore != nil {
			m.CommitmentScore = *fin.CommitmentScore
		}

		metrics = append(metrics, m)
	}

	return metrics, nil
}
