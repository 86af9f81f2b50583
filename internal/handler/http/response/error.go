package response

import (
	"errors"
	"net/http"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/analysis"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/attendance"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/contentplan"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/employee"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/finance"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/kpi"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/leave"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/payroll"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/problem"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/task"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrInvalidBaseSalary),
		errors.Is(err, employee.ErrInvalidHireDate):
		BadRequest(w, err.Error(), nil)

	// KPI domain errors
	case errors.Is(err, kpi.ErrConfigNotFound):
		NotFound(w, "KPI config not found")
	case errors.Is(err, kpi.ErrRecordNotFound):
		NotFound(w, "KPI record not found")
	case errors.Is(err, kpi.ErrInvalidStatusTransition):
		Conflict(w, "Invalid KPI status transition")
	case errors.Is(err, kpi.ErrInvalidTargetValue),
		errors.Is(err, kpi.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidLeaveType),
		errors.Is(err, leave.ErrInvalidDateRange),
		errors.Is(err, leave.ErrInvalidDaysCount):
		BadRequest(w, err.Error(), nil)

	// Finance domain errors
	case errors.Is(err, finance.ErrFinancialsNotFound):
		NotFound(w, "No financial data for this period")
	case errors.Is(err, finance.ErrCommissionLogNotFound):
		NotFound(w, "Commission log not found")
	case errors.Is(err, finance.ErrInvalidPeriod),
		errors.Is(err, finance.ErrInvalidAmount):
		BadRequest(w, err.Error(), nil)

	// Problem domain errors
	case errors.Is(err, problem.ErrProblemLogNotFound):
		NotFound(w, "Problem log not found")
	case errors.Is(err, problem.ErrAlreadySolved):
		Conflict(w, "Problem log already marked solved")

	// Task and content plan errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrInvalidTaskStatus):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, contentplan.ErrItemNotFound):
		NotFound(w, "Content plan item not found")
	case errors.Is(err, contentplan.ErrInvalidItemStatus),
		errors.Is(err, contentplan.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Attendance and period errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus),
		errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrInvalidPeriod),
		errors.Is(err, analysis.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
