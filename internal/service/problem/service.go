package problem

import (
	"context"
	"fmt"
	"time"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/problem"
	"github.com/shopspring/decimal"
)

type ProblemServiceImpl struct {
	problemRepo problem.ProblemLogRepository
}

func NewProblemService(problemRepo problem.ProblemLogRepository) problem.ProblemService {
	return &ProblemServiceImpl{problemRepo: problemRepo}
}

func (s *ProblemServiceImpl) CreateLog(ctx context.Context, req problem.CreateProblemLogRequest) (problem.ProblemLogResponse, error) {
	created, err := s.problemRepo.Create(ctx, problem.ProblemLog{
		EmployeeID:           req.EmployeeID,
		Title:                req.Title,
		Description:          req.Description,
		SolutionStatus:       problem.SolutionStatusUnsolved,
		PotentialBonusAmount: req.PotentialBonusAmount,
	})
	if err != nil {
		return problem.ProblemLogResponse{}, fmt.Errorf("failed to create problem log: %w", err)
	}

	return mapProblemLogResponse(created), nil
}

func (s *ProblemServiceImpl) ListLogs(ctx context.Context, employeeID string) ([]problem.ProblemLogResponse, error) {
	logs, err := s.problemRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]problem.ProblemLogResponse, 0, len(logs))
	for _, log := range logs {
		result = append(result, mapProblemLogResponse(log))
	}

	return result, nil
}

func (s *ProblemServiceImpl) MarkSolved(ctx context.Context, id string) (problem.ProblemLogResponse, error) {
	log, err := s.problemRepo.GetByID(ctx, id)
	if err != nil {
		return problem.ProblemLogResponse{}, err
	}
	if log.SolutionStatus == problem.SolutionStatusSolved {
		return problem.ProblemLogResponse{}, problem.ErrAlreadySolved
	}

	if err := s.problemRepo.MarkSolved(ctx, id); err != nil {
		return problem.ProblemLogResponse{}, err
	}

	updated, err := s.problemRepo.GetByID(ctx, id)
	if err != nil {
		return problem.ProblemLogResponse{}, err
	}

	return mapProblemLogResponse(updated), nil
}

func (s *ProblemServiceImpl) DeleteLog(ctx context.Context, id string) error {
	return s.problemRepo.Delete(ctx, id)
}

func (s *ProblemServiceImpl) BonusTotal(ctx context.Context, employeeID string, _, _ int) (decimal.Decimal, error) {
	return s.problemRepo.SolvedBonusTotal(ctx, employeeID)
}

func mapProblemLogResponse(p problem.ProblemLog) problem.ProblemLogResponse {
	var solvedAt *string
	if p.SolvedAt != nil {
		str := p.SolvedAt.Format(time.RFC3339)
		solvedAt = &str
	}

	return problem.ProblemLogResponse{
		ID:                   p.ID,
		EmployeeID:           p.EmployeeID,
		Title:                p.Title,
		Description:          p.Description,
		SolutionStatus:       string(p.SolutionStatus),
		PotentialBonusAmount: p.PotentialBonusAmount,
		SolvedAt:             solvedAt,
	}
}
