package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"workforce/internal/repository"
)

// TaskNotifier pushes task lifecycle events to connected clients. The
// websocket hub implements it; a nil notifier disables pushes.
type TaskNotifier interface {
	TaskCreated(task repository.Task)
	TaskUpdated(task repository.Task)
	TaskDeleted(taskID, workerID int64)
}

type TaskUsecase interface {
	CreateTask(ctx context.Context, in CreateTaskInput) (repository.Task, error)
	GetTask(ctx context.Context, id int64) (repository.Task, error)
	ListTasks(ctx context.Context, limit, offset int) ([]repository.Task, error)
	ListWorkerTasks(ctx context.Context, workerID int64, status string) ([]repository.Task, error)
	WorkerNotifications(ctx context.Context, workerID int64) ([]TaskNotification, error)
	UpdateTask(ctx context.Context, id int64, in UpdateTaskInput) (repository.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

type CreateTaskInput struct {
	WorkerID    int64
	RoleID      *int64
	Title       string
	Description *string
	Priority    string
	AssignedBy  *string
	DueDate     *time.Time
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	Priority    *string
	Status      *string
	DueDate     *time.Time
}

// TaskNotification is a task decorated for the notification feed: the role
// name is resolved and tasks created within the last hour are flagged new.
type TaskNotification struct {
	Task     repository.Task
	RoleName *string
	IsNew    bool
}

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusCancelled  = "cancelled"

	taskNewWindow = time.Hour
)

var taskPriorities = map[string]bool{"low": true, "medium": true, "high": true, "urgent": true}

var taskStatuses = map[string]bool{
	TaskStatusPending:    true,
	TaskStatusInProgress: true,
	TaskStatusCompleted:  true,
	TaskStatusCancelled:  true,
}

type Tasks struct {
	repo     repository.TaskRepository
	workers  repository.WorkerRepository
	roles    repository.RoleRepository
	notifier TaskNotifier

	now func() time.Time
}

func NewTaskUsecase(
	repo repository.TaskRepository,
	workers repository.WorkerRepository,
	roles repository.RoleRepository,
	notifier TaskNotifier,
) *Tasks {
	return &Tasks{repo: repo, workers: workers, roles: roles, notifier: notifier, now: time.Now}
}

func (u *Tasks) CreateTask(ctx context.Context, in CreateTaskInput) (repository.Task, error) {
	title := strings.TrimSpace(in.Title)
	if in.WorkerID <= 0 || title == "" {
		return repository.Task{}, ErrInvalidInput
	}
	priority := strings.ToLower(strings.TrimSpace(in.Priority))
	if priority == "" {
		priority = "medium"
	}
	if !taskPriorities[priority] {
		return repository.Task{}, ErrInvalidInput
	}

	exists, err := u.workers.ExistsByID(ctx, in.WorkerID)
	if err != nil {
		return repository.Task{}, ErrInternal
	}
	if !exists {
		return repository.Task{}, ErrWorkerNotFound
	}
	if in.RoleID != nil {
		if _, err := u.roles.FindByID(ctx, *in.RoleID); err != nil {
			if errors.Is(err, repository.ErrRoleNotFound) {
				return repository.Task{}, ErrRoleNotFound
			}
			return repository.Task{}, ErrInternal
		}
	}

	created, err := u.repo.Create(ctx, repository.Task{
		WorkerID:    in.WorkerID,
		RoleID:      in.RoleID,
		Title:       title,
		Description: in.Description,
		Priority:    priority,
		Status:      TaskStatusPending,
		AssignedBy:  in.AssignedBy,
		DueDate:     in.DueDate,
	})
	if err != nil {
		return repository.Task{}, ErrInternal
	}
	if u.notifier != nil {
		u.notifier.TaskCreated(created)
	}
	return created, nil
}

func (u *Tasks) GetTask(ctx context.Context, id int64) (repository.Task, error) {
	if id <= 0 {
		return repository.Task{}, ErrInvalidInput
	}
	t, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return repository.Task{}, ErrTaskNotFound
		}
		return repository.Task{}, ErrInternal
	}
	return t, nil
}

func (u *Tasks) ListTasks(ctx context.Context, limit, offset int) ([]repository.Task, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		return nil, ErrInvalidInput
	}
	items, err := u.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Tasks) ListWorkerTasks(ctx context.Context, workerID int64, status string) ([]repository.Task, error) {
	if workerID <= 0 {
		return nil, ErrInvalidInput
	}
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" && !taskStatuses[status] {
		return nil, ErrInvalidInput
	}
	items, err := u.repo.ListByWorker(ctx, workerID, status)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Tasks) WorkerNotifications(ctx context.Context, workerID int64) ([]TaskNotification, error) {
	if workerID <= 0 {
		return nil, ErrInvalidInput
	}
	open, err := u.repo.ListOpenByWorker(ctx, workerID)
	if err != nil {
		return nil, ErrInternal
	}

	roleNames := map[int64]string{}
	cutoff := u.now().Add(-taskNewWindow)
	out := make([]TaskNotification, 0, len(open))
	for _, t := range open {
		n := TaskNotification{Task: t, IsNew: t.CreatedAt.After(cutoff)}
		if t.RoleID != nil {
			name, ok := roleNames[*t.RoleID]
			if !ok {
				role, err := u.roles.FindByID(ctx, *t.RoleID)
				if err == nil {
					name = role.Name
					roleNames[*t.RoleID] = name
					ok = true
				}
			}
			if ok {
				n.RoleName = &name
			}
		}
		out = append(out, n)
	}
	return out, nil
}

func (u *Tasks) UpdateTask(ctx context.Context, id int64, in UpdateTaskInput) (repository.Task, error) {
	t, err := u.GetTask(ctx, id)
	if err != nil {
		return repository.Task{}, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return repository.Task{}, ErrInvalidInput
		}
		t.Title = title
	}
	if in.Description != nil {
		t.Description = in.Description
	}
	if in.Priority != nil {
		priority := strings.ToLower(strings.TrimSpace(*in.Priority))
		if !taskPriorities[priority] {
			return repository.Task{}, ErrInvalidInput
		}
		t.Priority = priority
	}
	if in.DueDate != nil {
		t.DueDate = in.DueDate
	}
	if in.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*in.Status))
		if !taskStatuses[status] {
			return repository.Task{}, ErrInvalidInput
		}
		if status == TaskStatusCompleted && t.Status != TaskStatusCompleted {
			completed := u.now().UTC()
			t.CompletedAt = &completed
		}
		t.Status = status
	}

	updated, err := u.repo.Update(ctx, t)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return repository.Task{}, ErrTaskNotFound
		}
		return repository.Task{}, ErrInternal
	}
	if u.notifier != nil {
		u.notifier.TaskUpdated(updated)
	}
	return updated, nil
}

func (u *Tasks) DeleteTask(ctx context.Context, id int64) error {
	t, err := u.GetTask(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return ErrInternal
	}
	if u.notifier != nil {
		u.notifier.TaskDeleted(t.ID, t.WorkerID)
	}
	return nil
}
