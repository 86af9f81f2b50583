package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error
	AdjustLeaveBalance(ctx context.Context, id string, delta int) error
	List(ctx context.Context) ([]Employee, error)
	Delete(ctx context.Context, id string) error
}
