package finance

import (
	"context"
	"testing"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passthroughTx struct{}

func (passthroughTx) RunTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type periodKey struct {
	employeeID  string
	month, year int
}

type fakeFinancialsRepo struct {
	rows map[periodKey]finance.Financials
}

func newFakeFinancialsRepo() *fakeFinancialsRepo {
	return &fakeFinancialsRepo{rows: make(map[periodKey]finance.Financials)}
}

func (f *fakeFinancialsRepo) GetForPeriod(_ context.Context, employeeID string, month, year int) (finance.Financials, error) {
	row, ok := f.rows[periodKey{employeeID, month, year}]
	if !ok {
		return finance.Financials{}, finance.ErrFinancialsNotFound
	}
	return row, nil
}

func (f *fakeFinancialsRepo) UpsertDeduction(_ context.Context, employeeID string, month, year int, amount decimal.Decimal, note string) (finance.Financials, error) {
	key := periodKey{employeeID, month, year}
	row := f.rows[key]
	row.EmployeeID = employeeID
	row.Month = month
	row.Year = year
	row.ManualDeduction = amount
	row.ManualDeductionNote = note
	f.rows[key] = row
	return row, nil
}

func (f *fakeFinancialsRepo) UpsertReview(_ context.Context, row finance.Financials) (finance.Financials, error) {
	key := periodKey{row.EmployeeID, row.Month, row.Year}
	existing := f.rows[key]
	existing.EmployeeID = row.EmployeeID
	existing.Month = row.Month
	existing.Year = row.Year
	existing.ManagerFeedback = row.ManagerFeedback
	existing.CommitmentScore = row.CommitmentScore
	existing.NeedsImprovement = row.NeedsImprovement
	existing.ImprovementNote = row.ImprovementNote
	f.rows[key] = existing
	return existing, nil
}

func (f *fakeFinancialsRepo) ResetPeriod(_ context.Context, employeeID string, month, year int) error {
	key := periodKey{employeeID, month, year}
	row := f.rows[key]
	row.ManualDeduction = decimal.Zero
	row.ManualDeductionNote = ""
	f.rows[key] = row
	return nil
}

type fakeCommissionRepo struct {
	logs []finance.OtherCommissionLog
}

func (f *fakeCommissionRepo) Create(_ context.Context, log finance.OtherCommissionLog) (finance.OtherCommissionLog, error) {
	log.ID = "cl-1"
	f.logs = append(f.logs, log)
	return log, nil
}

func (f *fakeCommissionRepo) GetForPeriod(_ context.Context, employeeID string, month, year int) ([]finance.OtherCommissionLog, error) {
	var result []finance.OtherCommissionLog
	for _, log := range f.logs {
		if log.EmployeeID == employeeID && log.Month == month && log.Year == year {
			result = append(result, log)
		}
	}
	return result, nil
}

func (f *fakeCommissionRepo) Delete(_ context.Context, id string) error {
	for i, log := range f.logs {
		if log.ID == id {
			f.logs = append(f.logs[:i], f.logs[i+1:]...)
			return nil
		}
	}
	return finance.ErrCommissionLogNotFound
}

func (f *fakeCommissionRepo) DeleteForPeriod(_ context.Context, employeeID string, month, year int) error {
	kept := f.logs[:0]
	for _, log := range f.logs {
		if log.EmployeeID != employeeID || log.Month != month || log.Year != year {
			kept = append(kept, log)
		}
	}
	f.logs = kept
	return nil
}

func newFinanceFixture() (finance.FinanceService, *fakeFinancialsRepo, *fakeCommissionRepo) {
	financialsRepo := newFakeFinancialsRepo()
	commissionRepo := &fakeCommissionRepo{}
	svc := NewFinanceService(passthroughTx{}, financialsRepo, commissionRepo)
	return svc, financialsRepo, commissionRepo
}

func deductionReq(amount int64, additive bool, note string) finance.ManualDeductionRequest {
	return finance.ManualDeductionRequest{
		EmployeeID: "emp-1",
		Month:      6,
		Year:       2025,
		Amount:     decimal.NewFromInt(amount),
		IsAdditive: additive,
		Note:       note,
	}
}

func TestAddOrUpdateManualDeduction_AdditiveAccumulates(t *testing.T) {
	svc, _, _ := newFinanceFixture()

	first, err := svc.AddOrUpdateManualDeduction(context.Background(), deductionReq(100, true, "A"))
	require.NoError(t, err)
	assert.Equal(t, "100", first.ManualDeduction.String())
	assert.Equal(t, "A", first.ManualDeductionNote)

	second, err := svc.AddOrUpdateManualDeduction(context.Background(), deductionReq(50, true, "B"))
	require.NoError(t, err)
	assert.Equal(t, "150", second.ManualDeduction.String())
	assert.Equal(t, "A | B", second.ManualDeductionNote)
}

func TestAddOrUpdateManualDeduction_OverwriteMode(t *testing.T) {
	svc, _, _ := newFinanceFixture()

	_, err := svc.AddOrUpdateManualDeduction(context.Background(), deductionReq(100, true, "A"))
	require.NoError(t, err)

	result, err := svc.AddOrUpdateManualDeduction(context.Background(), deductionReq(30, false, "corrected"))
	require.NoError(t, err)
	assert.Equal(t, "30", result.ManualDeduction.String())
	assert.Equal(t, "corrected", result.ManualDeductionNote)
}

func TestAddOrUpdateManualDeduction_AdditiveSkipsEmptyNotes(t *testing.T) {
	svc, _, _ := newFinanceFixture()

	_, err := svc.AddOrUpdateManualDeduction(context.Background(), deductionReq(100, true, ""))
	require.NoError(t, err)

	result, err := svc.AddOrUpdateManualDeduction(context.Background(), deductionReq(50, true, "B"))
	require.NoError(t, err)
	assert.Equal(t, "B", result.ManualDeductionNote)
}

func TestAddOrUpdateManualDeduction_Validation(t *testing.T) {
	svc, _, _ := newFinanceFixture()

	_, err := svc.AddOrUpdateManualDeduction(context.Background(), finance.ManualDeductionRequest{
		EmployeeID: "emp-1",
		Month:      13,
		Year:       2025,
		Amount:     decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, finance.ErrInvalidPeriod)

	_, err = svc.AddOrUpdateManualDeduction(context.Background(), finance.ManualDeductionRequest{
		EmployeeID: "emp-1",
		Month:      6,
		Year:       2025,
		Amount:     decimal.NewFromInt(-10),
	})
	assert.ErrorIs(t, err, finance.ErrInvalidAmount)
}

func TestSetManagerReview_PreservesDeduction(t *testing.T) {
	svc, _, _ := newFinanceFixture()

	_, err := svc.AddOrUpdateManualDeduction(context.Background(), deductionReq(100, true, "A"))
	require.NoError(t, err)

	feedback := "solid month"
	score := 8
	_, err = svc.SetManagerReview(context.Background(), finance.ManagerReviewRequest{
		EmployeeID:      "emp-1",
		Month:           6,
		Year:            2025,
		ManagerFeedback: &feedback,
		CommitmentScore: &score,
	})
	require.NoError(t, err)

	row, err := svc.GetFinancials(context.Background(), "emp-1", 6, 2025)
	require.NoError(t, err)
	assert.Equal(t, "100", row.ManualDeduction.String())
	require.NotNil(t, row.ManagerFeedback)
	assert.Equal(t, "solid month", *row.ManagerFeedback)
	require.NotNil(t, row.CommitmentScore)
	assert.Equal(t, 8, *row.CommitmentScore)
}

func TestResetMonthlyFinancials(t *testing.T) {
	svc, _, commissionRepo := newFinanceFixture()

	_, err := svc.AddOrUpdateManualDeduction(context.Background(), deductionReq(100, true, "A"))
	require.NoError(t, err)
	_, err = svc.AddCommissionLog(context.Background(), finance.CreateCommissionLogRequest{
		EmployeeID:  "emp-1",
		Month:       6,
		Year:        2025,
		Amount:      decimal.NewFromInt(40),
		Description: "referral",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ResetMonthlyFinancials(context.Background(), "emp-1", 6, 2025))

	row, err := svc.GetFinancials(context.Background(), "emp-1", 6, 2025)
	require.NoError(t, err)
	assert.Equal(t, "0", row.ManualDeduction.String())
	assert.Empty(t, row.ManualDeductionNote)
	assert.Empty(t, commissionRepo.logs)
}

func TestJoinNotes(t *testing.T) {
	assert.Equal(t, "A | B", joinNotes("A", "B"))
	assert.Equal(t, "B", joinNotes("", "B"))
	assert.Equal(t, "A", joinNotes("A", ""))
	assert.Equal(t, "", joinNotes("", ""))
}
