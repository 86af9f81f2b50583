package attendance

import "context"

type AttendanceService interface {
	// Mark upserts the status for (employee, date).
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	ListForPeriod(ctx context.Context, employeeID string, month, year int) ([]AttendanceResponse, error)
}
