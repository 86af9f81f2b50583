package problem

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/problem"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProblemRepo struct {
	logs   map[string]problem.ProblemLog
	nextID int
}

func newFakeProblemRepo() *fakeProblemRepo {
	return &fakeProblemRepo{logs: make(map[string]problem.ProblemLog)}
}

func (f *fakeProblemRepo) Create(_ context.Context, log problem.ProblemLog) (problem.ProblemLog, error) {
	f.nextID++
	log.ID = "pl-" + strconv.Itoa(f.nextID)
	f.logs[log.ID] = log
	return log, nil
}

func (f *fakeProblemRepo) GetByID(_ context.Context, id string) (problem.ProblemLog, error) {
	log, ok := f.logs[id]
	if !ok {
		return problem.ProblemLog{}, problem.ErrProblemLogNotFound
	}
	return log, nil
}

func (f *fakeProblemRepo) ListByEmployee(_ context.Context, employeeID string) ([]problem.ProblemLog, error) {
	var result []problem.ProblemLog
	for _, log := range f.logs {
		if log.EmployeeID == employeeID {
			result = append(result, log)
		}
	}
	return result, nil
}

func (f *fakeProblemRepo) MarkSolved(_ context.Context, id string) error {
	log, ok := f.logs[id]
	if !ok {
		return problem.ErrProblemLogNotFound
	}
	now := time.Now()
	log.SolutionStatus = problem.SolutionStatusSolved
	log.SolvedAt = &now
	f.logs[id] = log
	return nil
}

func (f *fakeProblemRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.logs[id]; !ok {
		return problem.ErrProblemLogNotFound
	}
	delete(f.logs, id)
	return nil
}

func (f *fakeProblemRepo) SolvedBonusTotal(_ context.Context, employeeID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, log := range f.logs {
		if log.EmployeeID == employeeID && log.SolutionStatus == problem.SolutionStatusSolved {
			total = total.Add(log.PotentialBonusAmount)
		}
	}
	return total, nil
}

func createLog(t *testing.T, svc problem.ProblemService, bonus int64) problem.ProblemLogResponse {
	t.Helper()
	resp, err := svc.CreateLog(context.Background(), problem.CreateProblemLogRequest{
		EmployeeID:           "emp-1",
		Title:                "client escalation",
		PotentialBonusAmount: decimal.NewFromInt(bonus),
	})
	require.NoError(t, err)
	return resp
}

func TestCreateLog_StartsUnsolved(t *testing.T) {
	svc := NewProblemService(newFakeProblemRepo())

	resp := createLog(t, svc, 50)
	assert.Equal(t, "unsolved", resp.SolutionStatus)
	assert.Nil(t, resp.SolvedAt)
}

func TestMarkSolved(t *testing.T) {
	svc := NewProblemService(newFakeProblemRepo())
	resp := createLog(t, svc, 50)

	solved, err := svc.MarkSolved(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "solved", solved.SolutionStatus)
	require.NotNil(t, solved.SolvedAt)

	_, err = svc.MarkSolved(context.Background(), resp.ID)
	assert.ErrorIs(t, err, problem.ErrAlreadySolved)
}

func TestMarkSolved_NotFound(t *testing.T) {
	svc := NewProblemService(newFakeProblemRepo())

	_, err := svc.MarkSolved(context.Background(), "missing")
	assert.ErrorIs(t, err, problem.ErrProblemLogNotFound)
}

func TestBonusTotal_OnlySolvedCount(t *testing.T) {
	svc := NewProblemService(newFakeProblemRepo())
	first := createLog(t, svc, 50)
	createLog(t, svc, 75)

	_, err := svc.MarkSolved(context.Background(), first.ID)
	require.NoError(t, err)

	total, err := svc.BonusTotal(context.Background(), "emp-1", 6, 2025)
	require.NoError(t, err)
	assert.Equal(t, "50", total.String())
}

func TestBonusTotal_NotPeriodScoped(t *testing.T) {
	svc := NewProblemService(newFakeProblemRepo())
	resp := createLog(t, svc, 50)

	_, err := svc.MarkSolved(context.Background(), resp.ID)
	require.NoError(t, err)

	// The same solved bonus shows up for every period asked about.
	june, err := svc.BonusTotal(context.Background(), "emp-1", 6, 2025)
	require.NoError(t, err)
	december, err := svc.BonusTotal(context.Background(), "emp-1", 12, 2030)
	require.NoError(t, err)
	assert.Equal(t, june.String(), december.String())
}
