package finance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/finance"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/database"
)

type FinanceServiceImpl struct {
	tx             database.TxRunner
	financialsRepo finance.FinancialsRepository
	commissionRepo finance.CommissionLogRepository
}

func NewFinanceService(
	tx database.TxRunner,
	financialsRepo finance.FinancialsRepository,
	commissionRepo finance.CommissionLogRepository,
) finance.FinanceService {
	return &FinanceServiceImpl{
		tx:             tx,
		financialsRepo: financialsRepo,
		commissionRepo: commissionRepo,
	}
}

// AddOrUpdateManualDeduction is the ledger write behind both the manual
// deduction form and the leave-approval converter. Additive mode sums amounts
// and joins notes with " | "; non-additive mode (or a missing row) overwrites.
//
// The read-then-write is not atomic. Two concurrent additive updates for the
// same period can lose an increment; accepted for single-admin usage.
func (s *FinanceServiceImpl) AddOrUpdateManualDeduction(ctx context.Context, req finance.ManualDeductionRequest) (finance.FinancialsResponse, error) {
	if err := req.Validate(); err != nil {
		return finance.FinancialsResponse{}, err
	}

	amount := req.Amount
	note := req.Note

	if req.IsAdditive {
		existing, err := s.financialsRepo.GetForPeriod(ctx, req.EmployeeID, req.Month, req.Year)
		if err != nil && !errors.Is(err, finance.ErrFinancialsNotFound) {
			return finance.FinancialsResponse{}, err
		}
		if err == nil {
			amount = existing.ManualDeduction.Add(req.Amount)
			note = joinNotes(existing.ManualDeductionNote, req.Note)
		}
	}

	row, err := s.financialsRepo.UpsertDeduction(ctx, req.EmployeeID, req.Month, req.Year, amount, note)
	if err != nil {
		return finance.FinancialsResponse{}, fmt.Errorf("failed to write manual deduction: %w", err)
	}

	return mapFinancialsResponse(row), nil
}

func (s *FinanceServiceImpl) SetManagerReview(ctx context.Context, req finance.ManagerReviewRequest) (finance.FinancialsResponse, error) {
	if req.Month < 1 || req.Month > 12 || req.Year < 2000 {
		return finance.FinancialsResponse{}, finance.ErrInvalidPeriod
	}

	row := finance.Financials{
		EmployeeID:      req.EmployeeID,
		Month:           req.Month,
		Year:            req.Year,
		ManagerFeedback: req.ManagerFeedback,
		CommitmentScore: req.CommitmentScore,
		ImprovementNote: req.ImprovementNote,
	}
	if req.NeedsImprovement != nil {
		row.NeedsImprovement = *req.NeedsImprovement
	}

	updated, err := s.financialsRepo.UpsertReview(ctx, row)
	if err != nil {
		return finance.FinancialsResponse{}, fmt.Errorf("failed to write manager review: %w", err)
	}

	return mapFinancialsResponse(updated), nil
}

func (s *FinanceServiceImpl) GetFinancials(ctx context.Context, employeeID string, month, year int) (finance.FinancialsResponse, error) {
	row, err := s.financialsRepo.GetForPeriod(ctx, employeeID, month, year)
	if err != nil {
		return finance.FinancialsResponse{}, err
	}
	return mapFinancialsResponse(row), nil
}

// ResetMonthlyFinancials zeroes the period's computed fields and drops its
// commission logs in one transaction.
func (s *FinanceServiceImpl) ResetMonthlyFinancials(ctx context.Context, employeeID string, month, year int) error {
	return s.tx.RunTx(ctx, func(txCtx context.Context) error {
		if err := s.financialsRepo.ResetPeriod(txCtx, employeeID, month, year); err != nil {
			return err
		}
		return s.commissionRepo.DeleteForPeriod(txCtx, employeeID, month, year)
	})
}

func (s *FinanceServiceImpl) AddCommissionLog(ctx context.Context, req finance.CreateCommissionLogRequest) (finance.CommissionLogResponse, error) {
	if err := req.Validate(); err != nil {
		return finance.CommissionLogResponse{}, err
	}

	created, err := s.commissionRepo.Create(ctx, finance.OtherCommissionLog{
		EmployeeID:  req.EmployeeID,
		Month:       req.Month,
		Year:        req.Year,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		return finance.CommissionLogResponse{}, fmt.Errorf("failed to create commission log: %w", err)
	}

	return mapCommissionLogResponse(created), nil
}

func (s *FinanceServiceImpl) ListCommissionLogs(ctx context.Context, employeeID string, month, year int) ([]finance.CommissionLogResponse, error) {
	logs, err := s.commissionRepo.GetForPeriod(ctx, employeeID, month, year)
	if err != nil {
		return nil, err
	}

	result := make([]finance.CommissionLogResponse, 0, len(logs))
	for _, log := range logs {
		result = append(result, mapCommissionLogResponse(log))
	}

	return result, nil
}

func (s *FinanceServiceImpl) DeleteCommissionLog(ctx context.Context, id string) error {
	return s.commissionRepo.Delete(ctx, id)
}

// joinNotes concatenates ledger notes with " | ", skipping empty parts.
func joinNotes(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " | ")
}

func mapFinancialsResponse(f finance.Financials) finance.FinancialsResponse {
	return finance.FinancialsResponse{
		EmployeeID:          f.EmployeeID,
		Month:               f.Month,
		Year:                f.Year,
		ManualDeduction:     f.ManualDeduction,
		ManualDeductionNote: f.ManualDeductionNote,
		ManagerFeedback:     f.ManagerFeedback,
		CommitmentScore:     f.CommitmentScore,
		NeedsImprovement:    f.NeedsImprovement,
		ImprovementNote:     f.ImprovementNote,
	}
}

func mapCommissionLogResponse(l finance.OtherCommissionLog) finance.CommissionLogResponse {
	return finance.CommissionLogResponse{
		ID:          l.ID,
		EmployeeID:  l.EmployeeID,
		Month:       l.Month,
		Year:        l.Year,
		Amount:      l.Amount,
		Description: l.Description,
	}
}
