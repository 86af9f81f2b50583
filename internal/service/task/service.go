package task

import (
	"context"
	"fmt"
	"time"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/task"
)

type TaskServiceImpl struct {
	taskRepo task.TaskRepository
}

func NewTaskService(taskRepo task.TaskRepository) task.TaskService {
	return &TaskServiceImpl{taskRepo: taskRepo}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	priority := task.TaskPriority(req.Priority)
	if priority == "" {
		priority = task.TaskPriorityMedium
	}

	t := task.Task{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		Status:      task.TaskStatusBacklog,
		Priority:    priority,
	}

	if req.DueDate != nil {
		due, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return task.TaskResponse{}, fmt.Errorf("invalid due date: %w", err)
		}
		t.DueDate = &due
	}

	created, err := s.taskRepo.Create(ctx, t)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}

	return mapTaskResponse(created), nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, id string) (task.TaskResponse, error) {
	t, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}
	return mapTaskResponse(t), nil
}

// ListTasks returns the whole board when assigneeID is empty.
func (s *TaskServiceImpl) ListTasks(ctx context.Context, assigneeID string) ([]task.TaskResponse, error) {
	var (
		tasks []task.Task
		err   error
	)
	if assigneeID == "" {
		tasks, err = s.taskRepo.List(ctx)
	} else {
		tasks, err = s.taskRepo.ListByAssignee(ctx, assigneeID)
	}
	if err != nil {
		return nil, err
	}

	result := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, mapTaskResponse(t))
	}

	return result, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if err := s.taskRepo.Update(ctx, req); err != nil {
		return task.TaskResponse{}, err
	}
	return s.GetTask(ctx, req.ID)
}

func (s *TaskServiceImpl) MoveTask(ctx context.Context, req task.MoveTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	if err := s.taskRepo.UpdateStatus(ctx, req.ID, task.TaskStatus(req.Status)); err != nil {
		return task.TaskResponse{}, err
	}

	return s.GetTask(ctx, req.ID)
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	return s.taskRepo.Delete(ctx, id)
}

func mapTaskResponse(t task.Task) task.TaskResponse {
	var dueDate *string
	if t.DueDate != nil {
		str := t.DueDate.Format("2006-01-02")
		dueDate = &str
	}

	return task.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		AssigneeID:  t.AssigneeID,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     dueDate,
	}
}
