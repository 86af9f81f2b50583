package attendance

import "time"

// AttendanceStatus enum
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLeave   AttendanceStatus = "leave"
)

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     AttendanceStatus
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
