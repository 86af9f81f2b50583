package leave

import "context"

// LeaveService defines business logic for leave requests. Approve carries the
// cross-entity side effects: balance decrement or salary deduction plus an
// attendance mark, all applied in one transaction.
type LeaveService interface {
	SubmitRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	GetRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
	ListRequests(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)
	ListPending(ctx context.Context) ([]LeaveRequestResponse, error)
	Approve(ctx context.Context, req ProcessLeaveRequestRequest, managerID string) (LeaveRequestResponse, error)
	Reject(ctx context.Context, req ProcessLeaveRequestRequest, managerID string) (LeaveRequestResponse, error)
}
