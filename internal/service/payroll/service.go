package payroll

import (
	"context"
	"fmt"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/employee"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/finance"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/kpi"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/payroll"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/problem"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	configRepo     kpi.ConfigRepository
	recordRepo     kpi.RecordRepository
	problemRepo    problem.ProblemLogRepository
	financialsRepo finance.FinancialsRepository
	commissionRepo finance.CommissionLogRepository
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	configRepo kpi.ConfigRepository,
	recordRepo kpi.RecordRepository,
	problemRepo problem.ProblemLogRepository,
	financialsRepo finance.FinancialsRepository,
	commissionRepo finance.CommissionLogRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:   employeeRepo,
		configRepo:     configRepo,
		recordRepo:     recordRepo,
		problemRepo:    problemRepo,
		financialsRepo: financialsRepo,
		commissionRepo: commissionRepo,
	}
}

// CalculatePayroll composes the period's payout from its components:
//
//	finalPayout = baseSalary + kpiIncentive + problemBonus + otherCommission - manualDeduction
//
// The KPI incentive is gated: the capped average completion across approved
// configs must reach the threshold, and once it does the incentive pays the
// raw achieved quantity times unit value, uncapped by target. Clearing the
// gate on some KPIs while being paid for overachievement on others is
// intentional.
//
// Only a missing employee fails the call. Every other sub-fetch that errors
// contributes zero to the breakdown; the dashboard re-runs this on every
// change event, so a usable estimate beats an aborted calculation here. The
// output carries no flag distinguishing "zero" from "failed to fetch".
func (s *PayrollServiceImpl) CalculatePayroll(ctx context.Context, employeeID string, month, year int) (payroll.Breakdown, error) {
	if month < 1 || month > 12 || year < 2000 {
		return payroll.Breakdown{}, payroll.ErrInvalidPeriod
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.Breakdown{}, fmt.Errorf("failed to load employee: %w", err)
	}

	breakdown := payroll.Breakdown{
		EmployeeID:      emp.ID,
		EmployeeName:    emp.FullName,
		Month:           month,
		Year:            year,
		BaseSalary:      emp.BaseSalary,
		KPIIncentive:    decimal.Zero,
		ProblemBonus:    decimal.Zero,
		SalesCommission: decimal.Zero, // never computed; placeholder for an unfinished feature
		OtherCommission: decimal.Zero,
		ManualDeduction: decimal.Zero,
	}

	score, incentive := s.kpiComponents(ctx, employeeID, month, year)
	breakdown.KPIScorePercentage = score
	breakdown.KPIIncentive = incentive

	// All-time solved problems, not period-scoped.
	if bonus, err := s.problemRepo.SolvedBonusTotal(ctx, employeeID); err == nil {
		breakdown.ProblemBonus = bonus
	}

	if row, err := s.financialsRepo.GetForPeriod(ctx, employeeID, month, year); err == nil {
		breakdown.ManualDeduction = row.ManualDeduction
		breakdown.DeductionNote = row.ManualDeductionNote
		breakdown.ManagerFeedback = row.ManagerFeedback
		breakdown.CommitmentScore = row.CommitmentScore
		breakdown.NeedsImprovement = row.NeedsImprovement
		breakdown.ImprovementNote = row.ImprovementNote
	}

	if logs, err := s.commissionRepo.GetForPeriod(ctx, employeeID, month, year); err == nil {
		for _, log := range logs {
			breakdown.OtherCommission = breakdown.OtherCommission.Add(log.Amount)
		}
	}

	breakdown.FinalPayout = breakdown.BaseSalary.
		Add(breakdown.KPIIncentive).
		Add(breakdown.ProblemBonus).
		Add(breakdown.OtherCommission).
		Sub(breakdown.ManualDeduction)

	return breakdown, nil
}

// kpiComponents returns the approved-only progress score and the incentive it
// unlocks. Fetch failures degrade to (0, 0).
func (s *PayrollServiceImpl) kpiComponents(ctx context.Context, employeeID string, month, year int) (float64, decimal.Decimal) {
	configs, err := s.configRepo.GetForPeriod(ctx, employeeID, month, year)
	if err != nil {
		return 0, decimal.Zero
	}

	approved := configs[:0:0]
	for _, cfg := range configs {
		if cfg.Status.CountsForPayout() {
			approved = append(approved, cfg)
		}
	}
	if len(approved) == 0 {
		return 0, decimal.Zero
	}

	records, err := s.recordRepo.GetForPeriod(ctx, employeeID, month, year)
	if err != nil {
		return 0, decimal.Zero
	}

	score := kpi.ProgressScore(approved, records)
	if score < payroll.IncentiveThreshold {
		return score, decimal.Zero
	}

	achieved := kpi.AchievedByConfig(records)
	incentive := decimal.Zero
	for _, cfg := range approved {
		incentive = incentive.Add(achieved[cfg.ID].Mul(cfg.UnitValue))
	}

	return score, incentive
}
