package kpi

import (
	"context"
	"strconv"
	"testing"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/kpi"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConfigRepo struct {
	configs map[string]kpi.Config
	nextID  int
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{configs: make(map[string]kpi.Config)}
}

func (f *fakeConfigRepo) Create(_ context.Context, c kpi.Config) (kpi.Config, error) {
	f.nextID++
	c.ID = "cfg-" + strconv.Itoa(f.nextID)
	f.configs[c.ID] = c
	return c, nil
}

func (f *fakeConfigRepo) GetByID(_ context.Context, id string) (kpi.Config, error) {
	c, ok := f.configs[id]
	if !ok {
		return kpi.Config{}, kpi.ErrConfigNotFound
	}
	return c, nil
}

func (f *fakeConfigRepo) GetForPeriod(_ context.Context, employeeID string, month, year int) ([]kpi.Config, error) {
	var result []kpi.Config
	for _, c := range f.configs {
		if c.EmployeeID == employeeID && c.AppliesTo(month, year) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeConfigRepo) ListByEmployee(_ context.Context, employeeID string) ([]kpi.Config, error) {
	var result []kpi.Config
	for _, c := range f.configs {
		if c.EmployeeID == employeeID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeConfigRepo) Update(_ context.Context, id string, req kpi.UpdateConfigRequest) error {
	c, ok := f.configs[id]
	if !ok {
		return kpi.ErrConfigNotFound
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.TargetValue != nil {
		c.TargetValue = *req.TargetValue
	}
	if req.UnitValue != nil {
		c.UnitValue = *req.UnitValue
	}
	f.configs[id] = c
	return nil
}

func (f *fakeConfigRepo) UpdateStatus(_ context.Context, id string, status kpi.Status) error {
	c, ok := f.configs[id]
	if !ok {
		return kpi.ErrConfigNotFound
	}
	c.Status = status
	f.configs[id] = c
	return nil
}

func (f *fakeConfigRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.configs[id]; !ok {
		return kpi.ErrConfigNotFound
	}
	delete(f.configs, id)
	return nil
}

type fakeRecordRepo struct {
	records []kpi.Record
}

func (f *fakeRecordRepo) Create(_ context.Context, r kpi.Record) (kpi.Record, error) {
	r.ID = "rec-" + strconv.Itoa(len(f.records)+1)
	f.records = append(f.records, r)
	return r, nil
}

func (f *fakeRecordRepo) GetForPeriod(_ context.Context, employeeID string, month, year int) ([]kpi.Record, error) {
	var result []kpi.Record
	for _, r := range f.records {
		if r.EmployeeID == employeeID && r.Month == month && r.Year == year {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeRecordRepo) ListByConfig(_ context.Context, configID string) ([]kpi.Record, error) {
	var result []kpi.Record
	for _, r := range f.records {
		if r.ConfigID == configID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeRecordRepo) Delete(_ context.Context, _ string) error { return nil }

func newKPIFixture() (kpi.KPIService, *fakeConfigRepo, *fakeRecordRepo) {
	configRepo := newFakeConfigRepo()
	recordRepo := &fakeRecordRepo{}
	return NewKPIService(configRepo, recordRepo), configRepo, recordRepo
}

func createConfig(t *testing.T, svc kpi.KPIService, target int64) kpi.ConfigResponse {
	t.Helper()
	resp, err := svc.CreateConfig(context.Background(), kpi.CreateConfigRequest{
		EmployeeID:  "emp-1",
		Name:        "weekly posts",
		TargetValue: decimal.NewFromInt(target),
		UnitValue:   decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	return resp
}

func TestCreateConfig_StartsAsDraft(t *testing.T) {
	svc, _, _ := newKPIFixture()

	resp := createConfig(t, svc, 100)
	assert.Equal(t, "draft", resp.Status)
}

func TestCreateConfig_RejectsNonPositiveTarget(t *testing.T) {
	svc, _, _ := newKPIFixture()

	_, err := svc.CreateConfig(context.Background(), kpi.CreateConfigRequest{
		EmployeeID:  "emp-1",
		Name:        "bad",
		TargetValue: decimal.Zero,
		UnitValue:   decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, kpi.ErrInvalidTargetValue)
}

func TestCreateConfig_RejectsHalfScopedPeriod(t *testing.T) {
	svc, _, _ := newKPIFixture()
	month := 6

	_, err := svc.CreateConfig(context.Background(), kpi.CreateConfigRequest{
		EmployeeID:      "emp-1",
		Name:            "half scoped",
		TargetValue:     decimal.NewFromInt(100),
		UnitValue:       decimal.NewFromInt(10),
		ApplicableMonth: &month,
	})
	assert.ErrorIs(t, err, kpi.ErrInvalidPeriod)
}

func TestReviewFlow(t *testing.T) {
	svc, _, _ := newKPIFixture()
	cfg := createConfig(t, svc, 100)

	// draft cannot be approved directly
	_, err := svc.ApproveConfig(context.Background(), cfg.ID)
	assert.ErrorIs(t, err, kpi.ErrInvalidStatusTransition)

	submitted, err := svc.SubmitConfig(context.Background(), cfg.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", submitted.Status)

	rejected, err := svc.RejectConfig(context.Background(), cfg.ID)
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Status)

	// rejected is recoverable back to pending
	resubmitted, err := svc.SubmitConfig(context.Background(), cfg.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", resubmitted.Status)

	approved, err := svc.ApproveConfig(context.Background(), cfg.ID)
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)

	// approved is terminal
	_, err = svc.RejectConfig(context.Background(), cfg.ID)
	assert.ErrorIs(t, err, kpi.ErrInvalidStatusTransition)
}

func TestAddRecord_RequiresExistingConfig(t *testing.T) {
	svc, _, _ := newKPIFixture()

	_, err := svc.AddRecord(context.Background(), kpi.CreateRecordRequest{
		ConfigID:      "missing",
		EmployeeID:    "emp-1",
		Month:         6,
		Year:          2025,
		WeekNumber:    1,
		AchievedValue: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, kpi.ErrConfigNotFound)
}

func TestGetProgress_IgnoresConfigStatus(t *testing.T) {
	svc, _, _ := newKPIFixture()
	cfg := createConfig(t, svc, 100)

	_, err := svc.AddRecord(context.Background(), kpi.CreateRecordRequest{
		ConfigID:      cfg.ID,
		EmployeeID:    "emp-1",
		Month:         6,
		Year:          2025,
		WeekNumber:    1,
		AchievedValue: decimal.NewFromInt(80),
	})
	require.NoError(t, err)

	// Still a draft, yet the dashboard progress counts it.
	progress, err := svc.GetProgress(context.Background(), "emp-1", 6, 2025)
	require.NoError(t, err)
	assert.InDelta(t, 80.0, progress.Score, 0.0001)
}

func TestGetProgress_InvalidPeriod(t *testing.T) {
	svc, _, _ := newKPIFixture()

	_, err := svc.GetProgress(context.Background(), "emp-1", 0, 2025)
	assert.ErrorIs(t, err, kpi.ErrInvalidPeriod)
}
