package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert writes the status for (employee, date), overwriting any existing row.
	Upsert(ctx context.Context, record Attendance) (Attendance, error)
	GetForPeriod(ctx context.Context, employeeID string, month, year int) ([]Attendance, error)
	GetByDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)
}
