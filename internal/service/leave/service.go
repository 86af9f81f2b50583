package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/attendance"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/employee"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/finance"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/leave"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

var thirtyDays = decimal.NewFromInt(30)

type LeaveServiceImpl struct {
	tx             database.TxRunner
	leaveRepo      leave.LeaveRequestRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	financeService finance.FinanceService
}

func NewLeaveService(
	tx database.TxRunner,
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	financeService finance.FinanceService,
) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:             tx,
		leaveRepo:      leaveRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		financeService: financeService,
	}
}

func (s *LeaveServiceImpl) SubmitRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	request := leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		Type:       leave.LeaveType(req.Type),
		StartDate:  startDate,
		EndDate:    endDate,
		DaysCount:  int(endDate.Sub(startDate).Hours()/24) + 1,
		HoursCount: req.HoursCount,
		Reason:     req.Reason,
		Status:     leave.LeaveRequestStatusPending,
	}

	created, err := s.leaveRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return mapLeaveRequestResponse(created), nil
}

func (s *LeaveServiceImpl) GetRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return mapLeaveRequestResponse(request), nil
}

func (s *LeaveServiceImpl) ListRequests(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapLeaveRequestResponses(requests), nil
}

func (s *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.leaveRepo.ListByStatus(ctx, leave.LeaveRequestStatusPending)
	if err != nil {
		return nil, err
	}
	return mapLeaveRequestResponses(requests), nil
}

// Approve applies the leave's side effects and the status change in one
// transaction, so a crash cannot leave a deduction applied against a request
// still marked pending.
//
// Side effects by type: absence and exceptional leaves convert to an additive
// salary deduction of (baseSalary / 30) x days on the start date's period;
// permission leaves have no monetary or balance effect; every other type
// decrements the leave balance by the days count, with no floor. All
// non-permission approvals also mark the start date as leave in attendance.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.ProcessLeaveRequestRequest, managerID string) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	// Re-approving an approved request must not double-apply effects.
	if request.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	emp, err := s.employeeRepo.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	err = s.tx.RunTx(ctx, func(txCtx context.Context) error {
		switch {
		case request.Type.DeductsSalary():
			if err := s.applyDeduction(txCtx, emp, request); err != nil {
				return err
			}
		case request.Type.DeductsBalance():
			if err := s.employeeRepo.AdjustLeaveBalance(txCtx, emp.ID, -request.DaysCount); err != nil {
				return err
			}
		}

		if request.Type != leave.LeaveTypePermission {
			_, err := s.attendanceRepo.Upsert(txCtx, attendance.Attendance{
				EmployeeID: emp.ID,
				Date:       request.StartDate,
				Status:     attendance.AttendanceStatusLeave,
			})
			if err != nil {
				return err
			}
		}

		return s.updateStatus(txCtx, request.ID, leave.LeaveRequestStatusApproved, req.Comment, managerID)
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to approve leave request: %w", err)
	}

	return s.GetRequest(ctx, req.ID)
}

// Reject only records the decision; no balance or ledger effects.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.ProcessLeaveRequestRequest, managerID string) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if request.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	if err := s.updateStatus(ctx, request.ID, leave.LeaveRequestStatusRejected, req.Comment, managerID); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to reject leave request: %w", err)
	}

	return s.GetRequest(ctx, req.ID)
}

func (s *LeaveServiceImpl) applyDeduction(ctx context.Context, emp employee.Employee, request leave.LeaveRequest) error {
	dailyRate := emp.BaseSalary.DivRound(thirtyDays, 4)
	deduction := dailyRate.Mul(decimal.NewFromInt(int64(request.DaysCount)))

	note := fmt.Sprintf("خصم %d يوم (%s) - %s",
		request.DaysCount,
		request.Type.ArabicLabel(),
		request.StartDate.Format("2006-01-02"),
	)

	_, err := s.financeService.AddOrUpdateManualDeduction(ctx, finance.ManualDeductionRequest{
		EmployeeID: emp.ID,
		Month:      int(request.StartDate.Month()),
		Year:       request.StartDate.Year(),
		Amount:     deduction,
		IsAdditive: true,
		Note:       note,
	})
	return err
}

func (s *LeaveServiceImpl) updateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus, comment, managerID string) error {
	now := time.Now()
	statusStr := string(status)
	return s.leaveRepo.Update(ctx, leave.UpdateLeaveRequestRequest{
		ID:             id,
		Status:         &statusStr,
		ManagerComment: &comment,
		ProcessedBy:    &managerID,
		ProcessedAt:    &now,
	})
}

func mapLeaveRequestResponse(lr leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:             lr.ID,
		EmployeeID:     lr.EmployeeID,
		Type:           string(lr.Type),
		StartDate:      lr.StartDate.Format("2006-01-02"),
		EndDate:        lr.EndDate.Format("2006-01-02"),
		DaysCount:      lr.DaysCount,
		HoursCount:     lr.HoursCount,
		Reason:         lr.Reason,
		Status:         string(lr.Status),
		ManagerComment: lr.ManagerComment,
	}
}

func mapLeaveRequestResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	result := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		result = append(result, mapLeaveRequestResponse(lr))
	}
	return result
}
