package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/employee"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/finance"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/kpi"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/payroll"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/problem"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ string, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) AdjustLeaveBalance(_ context.Context, _ string, _ int) error {
	return nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeConfigRepo struct {
	configs []kpi.Config
	err     error
}

func (f *fakeConfigRepo) Create(_ context.Context, c kpi.Config) (kpi.Config, error) { return c, nil }
func (f *fakeConfigRepo) GetByID(_ context.Context, _ string) (kpi.Config, error) {
	return kpi.Config{}, kpi.ErrConfigNotFound
}

func (f *fakeConfigRepo) GetForPeriod(_ context.Context, _ string, _, _ int) ([]kpi.Config, error) {
	return f.configs, f.err
}

func (f *fakeConfigRepo) ListByEmployee(_ context.Context, _ string) ([]kpi.Config, error) {
	return f.configs, f.err
}
func (f *fakeConfigRepo) Update(_ context.Context, _ string, _ kpi.UpdateConfigRequest) error {
	return nil
}
func (f *fakeConfigRepo) UpdateStatus(_ context.Context, _ string, _ kpi.Status) error { return nil }
func (f *fakeConfigRepo) Delete(_ context.Context, _ string) error                     { return nil }

type fakeRecordRepo struct {
	records []kpi.Record
	err     error
}

func (f *fakeRecordRepo) Create(_ context.Context, r kpi.Record) (kpi.Record, error) { return r, nil }
func (f *fakeRecordRepo) GetForPeriod(_ context.Context, _ string, _, _ int) ([]kpi.Record, error) {
	return f.records, f.err
}

func (f *fakeRecordRepo) ListByConfig(_ context.Context, _ string) ([]kpi.Record, error) {
	return f.records, f.err
}
func (f *fakeRecordRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeProblemRepo struct {
	total decimal.Decimal
	err   error
}

func (f *fakeProblemRepo) Create(_ context.Context, p problem.ProblemLog) (problem.ProblemLog, error) {
	return p, nil
}

func (f *fakeProblemRepo) GetByID(_ context.Context, _ string) (problem.ProblemLog, error) {
	return problem.ProblemLog{}, problem.ErrProblemLogNotFound
}

func (f *fakeProblemRepo) ListByEmployee(_ context.Context, _ string) ([]problem.ProblemLog, error) {
	return nil, nil
}
func (f *fakeProblemRepo) MarkSolved(_ context.Context, _ string) error { return nil }
func (f *fakeProblemRepo) Delete(_ context.Context, _ string) error     { return nil }
func (f *fakeProblemRepo) SolvedBonusTotal(_ context.Context, _ string) (decimal.Decimal, error) {
	return f.total, f.err
}

type fakeFinancialsRepo struct {
	row finance.Financials
	err error
}

func (f *fakeFinancialsRepo) GetForPeriod(_ context.Context, _ string, _, _ int) (finance.Financials, error) {
	if f.err != nil {
		return finance.Financials{}, f.err
	}
	return f.row, nil
}

func (f *fakeFinancialsRepo) UpsertDeduction(_ context.Context, _ string, _, _ int, _ decimal.Decimal, _ string) (finance.Financials, error) {
	return f.row, nil
}

func (f *fakeFinancialsRepo) UpsertReview(_ context.Context, row finance.Financials) (finance.Financials, error) {
	return row, nil
}
func (f *fakeFinancialsRepo) ResetPeriod(_ context.Context, _ string, _, _ int) error { return nil }

type fakeCommissionRepo struct {
	logs []finance.OtherCommissionLog
	err  error
}

func (f *fakeCommissionRepo) Create(_ context.Context, l finance.OtherCommissionLog) (finance.OtherCommissionLog, error) {
	return l, nil
}

func (f *fakeCommissionRepo) GetForPeriod(_ context.Context, _ string, _, _ int) ([]finance.OtherCommissionLog, error) {
	return f.logs, f.err
}
func (f *fakeCommissionRepo) Delete(_ context.Context, _ string) error { return nil }
func (f *fakeCommissionRepo) DeleteForPeriod(_ context.Context, _ string, _, _ int) error {
	return nil
}

func approvedConfig(id string, target, unit int64) kpi.Config {
	return kpi.Config{
		ID:          id,
		EmployeeID:  "emp-1",
		Name:        "config " + id,
		TargetValue: decimal.NewFromInt(target),
		UnitValue:   decimal.NewFromInt(unit),
		Status:      kpi.StatusApproved,
	}
}

func record(configID string, achieved int64) kpi.Record {
	return kpi.Record{
		ID:            configID + "-rec",
		ConfigID:      configID,
		EmployeeID:    "emp-1",
		Month:         6,
		Year:          2025,
		WeekNumber:    1,
		AchievedValue: decimal.NewFromInt(achieved),
	}
}

type payrollFixture struct {
	employees   *fakeEmployeeRepo
	configs     *fakeConfigRepo
	records     *fakeRecordRepo
	problems    *fakeProblemRepo
	financials  *fakeFinancialsRepo
	commissions *fakeCommissionRepo
	service     payroll.PayrollService
}

func newPayrollFixture() *payrollFixture {
	f := &payrollFixture{
		employees: &fakeEmployeeRepo{employees: map[string]employee.Employee{
			"emp-1": {
				ID:         "emp-1",
				FullName:   "Sara Ahmed",
				Email:      "sara@example.com",
				BaseSalary: decimal.NewFromInt(3000),
				HireDate:   time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		}},
		configs:     &fakeConfigRepo{},
		records:     &fakeRecordRepo{},
		problems:    &fakeProblemRepo{},
		financials:  &fakeFinancialsRepo{err: finance.ErrFinancialsNotFound},
		commissions: &fakeCommissionRepo{},
	}
	f.service = NewPayrollService(f.employees, f.configs, f.records, f.problems, f.financials, f.commissions)
	return f
}

func TestCalculatePayroll_InvalidPeriod(t *testing.T) {
	f := newPayrollFixture()

	_, err := f.service.CalculatePayroll(context.Background(), "emp-1", 13, 2025)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)

	_, err = f.service.CalculatePayroll(context.Background(), "emp-1", 0, 2025)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestCalculatePayroll_EmployeeNotFound(t *testing.T) {
	f := newPayrollFixture()

	_, err := f.service.CalculatePayroll(context.Background(), "missing", 6, 2025)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCalculatePayroll_IncentiveCliff(t *testing.T) {
	cases := []struct {
		name          string
		achieved      int64
		wantIncentive string
		wantScore     float64
	}{
		{"just below threshold pays nothing", 6499, "0", 64.99},
		{"exactly at threshold unlocks payout", 6500, "6500", 65},
		{"above threshold", 8000, "8000", 80},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newPayrollFixture()
			f.configs.configs = []kpi.Config{approvedConfig("c1", 10000, 1)}
			f.records.records = []kpi.Record{record("c1", tc.achieved)}

			b, err := f.service.CalculatePayroll(context.Background(), "emp-1", 6, 2025)
			require.NoError(t, err)
			assert.InDelta(t, tc.wantScore, b.KPIScorePercentage, 0.0001)
			assert.Equal(t, tc.wantIncentive, b.KPIIncentive.String())
		})
	}
}

func TestCalculatePayroll_OverachievementCappedInScore(t *testing.T) {
	f := newPayrollFixture()
	f.configs.configs = []kpi.Config{
		approvedConfig("c1", 100, 2),
		approvedConfig("c2", 100, 2),
	}
	// c1 wildly overachieved, c2 untouched: the capped average is 50%, so
	// overshooting one KPI cannot unlock the incentive by itself.
	f.records.records = []kpi.Record{record("c1", 250)}

	b, err := f.service.CalculatePayroll(context.Background(), "emp-1", 6, 2025)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, b.KPIScorePercentage, 0.0001)
	assert.Equal(t, "0", b.KPIIncentive.String())
}

func TestCalculatePayroll_IncentiveUncappedOnceUnlocked(t *testing.T) {
	f := newPayrollFixture()
	f.configs.configs = []kpi.Config{
		approvedConfig("c1", 100, 2),
		approvedConfig("c2", 100, 3),
	}
	f.records.records = []kpi.Record{record("c1", 250), record("c2", 100)}

	b, err := f.service.CalculatePayroll(context.Background(), "emp-1", 6, 2025)
	require.NoError(t, err)
	// Score is capped at 100% but the incentive pays raw achieved x unit:
	// 250*2 + 100*3 = 800.
	assert.InDelta(t, 100.0, b.KPIScorePercentage, 0.0001)
	assert.Equal(t, "800", b.KPIIncentive.String())
}

func TestCalculatePayroll_ZeroTargetContributesNothing(t *testing.T) {
	f := newPayrollFixture()
	f.configs.configs = []kpi.Config{
		approvedConfig("c1", 0, 5),
		approvedConfig("c2", 100, 1),
	}
	f.records.records = []kpi.Record{record("c1", 40), record("c2", 100)}

	b, err := f.service.CalculatePayroll(context.Background(), "emp-1", 6, 2025)
	require.NoError(t, err)
	// The zero-target config still counts in the denominator but cannot
	// contribute a ratio, so the average is 50%.
	assert.InDelta(t, 50.0, b.KPIScorePercentage, 0.0001)
	assert.Equal(t, "0", b.KPIIncentive.String())
}

func TestCalculatePayroll_OnlyApprovedConfigsCount(t *testing.T) {
	f := newPayrollFixture()
	pending := approvedConfig("c2", 100, 1)
	pending.Status = kpi.StatusPending
	f.configs.configs = []kpi.Config{approvedConfig("c1", 100, 1), pending}
	f.records.records = []kpi.Record{record("c1", 100), record("c2", 100)}

	b, err := f.service.CalculatePayroll(context.Background(), "emp-1", 6, 2025)
	require.NoError(t, err)
	// Only c1 participates: full score, incentive pays c1's achievement only.
	assert.InDelta(t, 100.0, b.KPIScorePercentage, 0.0001)
	assert.Equal(t, "100", b.KPIIncentive.String())
}

func TestCalculatePayroll_NoConfigs(t *testing.T) {
	f := newPayrollFixture()
	f.problems.total = decimal.NewFromInt(150)
	f.commissions.logs = []finance.OtherCommissionLog{
		{Amount: decimal.NewFromInt(75)},
	}
	f.financials.err = nil
	f.financials.row = finance.Financials{ManualDeduction: decimal.NewFromInt(25)}

	b, err := f.service.CalculatePayroll(context.Background(), "emp-1", 6, 2025)
	require.NoError(t, err)
	assert.Zero(t, b.KPIScorePercentage)
	assert.Equal(t, "0", b.KPIIncentive.String())
	// 3000 + 0 + 150 + 75 - 25
	assert.Equal(t, "3200", b.FinalPayout.String())
}

func TestCalculatePayroll_FinalPayoutIdentity(t *testing.T) {
	f := newPayrollFixture()
	f.configs.configs = []kpi.Config{approvedConfig("c1", 100, 10)}
	f.records.records = []kpi.Record{record("c1", 90)}
	f.problems.total = decimal.NewFromInt(200)
	f.commissions.logs = []finance.OtherCommissionLog{
		{Amount: decimal.NewFromInt(50)},
		{Amount: decimal.NewFromInt(30)},
	}
	f.financials.err = nil
	f.financials.row = finance.Financials{
		ManualDeduction:     decimal.NewFromInt(100),
		ManualDeductionNote: "خصم 1 يوم (غياب) - 2025-06-10",
	}

	b, err := f.service.CalculatePayroll(context.Background(), "emp-1", 6, 2025)
	require.NoError(t, err)

	expected := b.BaseSalary.
		Add(b.KPIIncentive).
		Add(b.ProblemBonus).
		Add(b.OtherCommission).
		Sub(b.ManualDeduction)
	assert.True(t, b.FinalPayout.Equal(expected), "final payout must equal the sum of its parts")

	assert.Equal(t, "900", b.KPIIncentive.String())
	assert.Equal(t, "200", b.ProblemBonus.String())
	assert.Equal(t, "80", b.OtherCommission.String())
	assert.Equal(t, "100", b.ManualDeduction.String())
	assert.Equal(t, "4080", b.FinalPayout.String())
	assert.Equal(t, "خصم 1 يوم (غياب) - 2025-06-10", b.DeductionNote)
}

func TestCalculatePayroll_SalesCommissionAlwaysZero(t *testing.T) {
	f := newPayrollFixture()
	rate := decimal.NewFromFloat(0.05)
	target := decimal.NewFromInt(10000)
	emp := f.employees.employees["emp-1"]
	emp.IsSalesSpecialist = true
	emp.SalesCommissionRate = &rate
	emp.MonthlySalesTarget = &target
	f.employees.employees["emp-1"] = emp

	b, err := f.service.CalculatePayroll(context.Background(), "emp-1", 6, 2025)
	require.NoError(t, err)
	assert.Equal(t, "0", b.SalesCommission.String())
}

func TestCalculatePayroll_Idempotent(t *testing.T) {
	f := newPayrollFixture()
	f.configs.configs = []kpi.Config{approvedConfig("c1", 100, 10)}
	f.records.records = []kpi.Record{record("c1", 70)}
	f.problems.total = decimal.NewFromInt(40)

	first, err := f.service.CalculatePayroll(context.Background(), "emp-1", 6, 2025)
	require.NoError(t, err)
	second, err := f.service.CalculatePayroll(context.Background(), "emp-1", 6, 2025)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculatePayroll_SubFetchFailuresDegradeToZero(t *testing.T) {
	f := newPayrollFixture()
	f.configs.err = errors.New("configs table unavailable")
	f.problems.err = errors.New("problems table unavailable")
	f.financials.err = errors.New("financials table unavailable")
	f.commissions.err = errors.New("commissions table unavailable")

	b, err := f.service.CalculatePayroll(context.Background(), "emp-1", 6, 2025)
	require.NoError(t, err)

	assert.Zero(t, b.KPIScorePercentage)
	assert.Equal(t, "0", b.KPIIncentive.String())
	assert.Equal(t, "0", b.ProblemBonus.String())
	assert.Equal(t, "0", b.OtherCommission.String())
	assert.Equal(t, "0", b.ManualDeduction.String())
	assert.Equal(t, "3000", b.FinalPayout.String())
}
