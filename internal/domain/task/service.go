package task

import "context"

type TaskService interface {
	CreateTask(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	GetTask(ctx context.Context, id string) (TaskResponse, error)
	ListTasks(ctx context.Context, assigneeID string) ([]TaskResponse, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (TaskResponse, error)
	MoveTask(ctx context.Context, req MoveTaskRequest) (TaskResponse, error)
	DeleteTask(ctx context.Context, id string) error
}
