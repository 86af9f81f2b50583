package kpi

import (
	"context"
	"fmt"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/kpi"
)

type KPIServiceImpl struct {
	configRepo kpi.ConfigRepository
	recordRepo kpi.RecordRepository
}

func NewKPIService(configRepo kpi.ConfigRepository, recordRepo kpi.RecordRepository) kpi.KPIService {
	return &KPIServiceImpl{
		configRepo: configRepo,
		recordRepo: recordRepo,
	}
}

func (s *KPIServiceImpl) CreateConfig(ctx context.Context, req kpi.CreateConfigRequest) (kpi.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return kpi.ConfigResponse{}, err
	}

	config := kpi.Config{
		EmployeeID:      req.EmployeeID,
		Name:            req.Name,
		Description:     req.Description,
		TargetValue:     req.TargetValue,
		UnitValue:       req.UnitValue,
		ApplicableMonth: req.ApplicableMonth,
		ApplicableYear:  req.ApplicableYear,
		Status:          kpi.StatusDraft,
	}

	created, err := s.configRepo.Create(ctx, config)
	if err != nil {
		return kpi.ConfigResponse{}, err
	}

	return mapConfigResponse(created), nil
}

func (s *KPIServiceImpl) UpdateConfig(ctx context.Context, req kpi.UpdateConfigRequest) (kpi.ConfigResponse, error) {
	if req.TargetValue != nil && !req.TargetValue.IsPositive() {
		return kpi.ConfigResponse{}, kpi.ErrInvalidTargetValue
	}

	if err := s.configRepo.Update(ctx, req.ID, req); err != nil {
		return kpi.ConfigResponse{}, err
	}

	updated, err := s.configRepo.GetByID(ctx, req.ID)
	if err != nil {
		return kpi.ConfigResponse{}, err
	}

	return mapConfigResponse(updated), nil
}

func (s *KPIServiceImpl) ListConfigs(ctx context.Context, employeeID string) ([]kpi.ConfigResponse, error) {
	configs, err := s.configRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]kpi.ConfigResponse, 0, len(configs))
	for _, c := range configs {
		result = append(result, mapConfigResponse(c))
	}

	return result, nil
}

func (s *KPIServiceImpl) DeleteConfig(ctx context.Context, id string) error {
	return s.configRepo.Delete(ctx, id)
}

func (s *KPIServiceImpl) SubmitConfig(ctx context.Context, id string) (kpi.ConfigResponse, error) {
	return s.transition(ctx, id, kpi.StatusPending)
}

func (s *KPIServiceImpl) ApproveConfig(ctx context.Context, id string) (kpi.ConfigResponse, error) {
	return s.transition(ctx, id, kpi.StatusApproved)
}

func (s *KPIServiceImpl) RejectConfig(ctx context.Context, id string) (kpi.ConfigResponse, error) {
	return s.transition(ctx, id, kpi.StatusRejected)
}

// transition funnels every review action through the status state machine.
func (s *KPIServiceImpl) transition(ctx context.Context, id string, to kpi.Status) (kpi.ConfigResponse, error) {
	config, err := s.configRepo.GetByID(ctx, id)
	if err != nil {
		return kpi.ConfigResponse{}, err
	}

	next, err := config.Status.Transition(to)
	if err != nil {
		return kpi.ConfigResponse{}, fmt.Errorf("%w: %s -> %s", err, config.Status, to)
	}

	if err := s.configRepo.UpdateStatus(ctx, id, next); err != nil {
		return kpi.ConfigResponse{}, err
	}

	config.Status = next
	return mapConfigResponse(config), nil
}

func (s *KPIServiceImpl) AddRecord(ctx context.Context, req kpi.CreateRecordRequest) (kpi.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return kpi.RecordResponse{}, err
	}

	if _, err := s.configRepo.GetByID(ctx, req.ConfigID); err != nil {
		return kpi.RecordResponse{}, err
	}

	record := kpi.Record{
		ConfigID:      req.ConfigID,
		EmployeeID:    req.EmployeeID,
		Month:         req.Month,
		Year:          req.Year,
		WeekNumber:    req.WeekNumber,
		AchievedValue: req.AchievedValue,
		Notes:         req.Notes,
	}

	created, err := s.recordRepo.Create(ctx, record)
	if err != nil {
		return kpi.RecordResponse{}, err
	}

	return mapRecordResponse(created), nil
}

func (s *KPIServiceImpl) ListRecords(ctx context.Context, employeeID string, month, year int) ([]kpi.RecordResponse, error) {
	records, err := s.recordRepo.GetForPeriod(ctx, employeeID, month, year)
	if err != nil {
		return nil, err
	}

	result := make([]kpi.RecordResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, mapRecordResponse(rec))
	}

	return result, nil
}

func (s *KPIServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	return s.recordRepo.Delete(ctx, id)
}

// GetProgress is the status-agnostic aggregation shown on the dashboard. The
// payroll calculator runs the same math over approved configs only.
func (s *KPIServiceImpl) GetProgress(ctx context.Context, employeeID string, month, year int) (kpi.ProgressResponse, error) {
	if month < 1 || month > 12 || year < 2000 {
		return kpi.ProgressResponse{}, kpi.ErrInvalidPeriod
	}

	configs, err := s.configRepo.GetForPeriod(ctx, employeeID, month, year)
	if err != nil {
		return kpi.ProgressResponse{}, err
	}

	records, err := s.recordRepo.GetForPeriod(ctx, employeeID, month, year)
	if err != nil {
		return kpi.ProgressResponse{}, err
	}

	return kpi.ProgressResponse{
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,
		Score:      kpi.ProgressScore(configs, records),
	}, nil
}

func mapConfigResponse(c kpi.Config) kpi.ConfigResponse {
	return kpi.ConfigResponse{
		ID:              c.ID,
		EmployeeID:      c.EmployeeID,
		Name:            c.Name,
		Description:     c.Description,
		TargetValue:     c.TargetValue,
		UnitValue:       c.UnitValue,
		ApplicableMonth: c.ApplicableMonth,
		ApplicableYear:  c.ApplicableYear,
		Status:          string(c.Status),
	}
}

func mapRecordResponse(r kpi.Record) kpi.RecordResponse {
	return kpi.RecordResponse{
		ID:            r.ID,
		ConfigID:      r.ConfigID,
		EmployeeID:    r.EmployeeID,
		Month:         r.Month,
		Year:          r.Year,
		WeekNumber:    r.WeekNumber,
		AchievedValue: r.AchievedValue,
		Notes:         r.Notes,
	}
}
