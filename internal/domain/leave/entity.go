package leave

import "time"

// LeaveType enum
type LeaveType string

const (
	LeaveTypeCasual      LeaveType = "casual"
	LeaveTypeSickShort   LeaveType = "sick_short"
	LeaveTypeSickLong    LeaveType = "sick_long"
	LeaveTypeAnnual      LeaveType = "annual"
	LeaveTypeExceptional LeaveType = "exceptional"
	LeaveTypeAbsence     LeaveType = "absence"
	LeaveTypePermission  LeaveType = "permission"
)

func (t LeaveType) Valid() bool {
	switch t {
	case LeaveTypeCasual, LeaveTypeSickShort, LeaveTypeSickLong, LeaveTypeAnnual,
		LeaveTypeExceptional, LeaveTypeAbsence, LeaveTypePermission:
		return true
	}
	return false
}

// DeductsSalary reports whether approval converts the leave into a monetary
// deduction instead of a balance decrement.
func (t LeaveType) DeductsSalary() bool {
	return t == LeaveTypeAbsence || t == LeaveTypeExceptional
}

// DeductsBalance reports whether approval decrements the employee's leave
// balance. Permission leaves touch neither balance nor salary.
func (t LeaveType) DeductsBalance() bool {
	return !t.DeductsSalary() && t != LeaveTypePermission
}

// ArabicLabel is the human-readable type name used in generated deduction notes.
func (t LeaveType) ArabicLabel() string {
	switch t {
	case LeaveTypeCasual:
		return "عارضة"
	case LeaveTypeSickShort:
		return "مرضي قصير"
	case LeaveTypeSickLong:
		return "مرضي طويل"
	case LeaveTypeAnnual:
		return "سنوية"
	case LeaveTypeExceptional:
		return "استثنائية"
	case LeaveTypeAbsence:
		return "غياب"
	case LeaveTypePermission:
		return "إذن"
	}
	return string(t)
}

// LeaveRequestStatus enum
type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

type LeaveRequest struct {
	ID             string
	EmployeeID     string
	Type           LeaveType
	StartDate      time.Time
	EndDate        time.Time
	DaysCount      int
	HoursCount     *int
	Reason         *string
	Status         LeaveRequestStatus
	ManagerComment *string
	ProcessedBy    *string
	ProcessedAt    *time.Time
	SubmittedAt    time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
