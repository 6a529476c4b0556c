package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"workforce/internal/repository"
)

type mockTaskRepo struct {
	tasks []repository.Task
	err   error
}

func (m *mockTaskRepo) Create(_ context.Context, t repository.Task) (repository.Task, error) {
	if m.err != nil {
		return repository.Task{}, m.err
	}
	t.ID = int64(len(m.tasks) + 1)
	t.CreatedAt = time.Now().UTC()
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *mockTaskRepo) FindByID(_ context.Context, id int64) (repository.Task, error) {
	if m.err != nil {
		return repository.Task{}, m.err
	}
	for _, t := range m.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return repository.Task{}, repository.ErrTaskNotFound
}

func (m *mockTaskRepo) List(_ context.Context, limit, offset int) ([]repository.Task, error) {
	return m.tasks, m.err
}

func (m *mockTaskRepo) ListByWorker(_ context.Context, workerID int64, status string) ([]repository.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []repository.Task{}
	for _, t := range m.tasks {
		if t.WorkerID == workerID && (status == "" || t.Status == status) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTaskRepo) ListOpenByWorker(_ context.Context, workerID int64) ([]repository.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []repository.Task{}
	for _, t := range m.tasks {
		if t.WorkerID == workerID && (t.Status == TaskStatusPending || t.Status == TaskStatusInProgress) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTaskRepo) Update(_ context.Context, t repository.Task) (repository.Task, error) {
	if m.err != nil {
		return repository.Task{}, m.err
	}
	for i := range m.tasks {
		if m.tasks[i].ID == t.ID {
			m.tasks[i] = t
			return t, nil
		}
	}
	return repository.Task{}, repository.ErrTaskNotFound
}

func (m *mockTaskRepo) Delete(_ context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrTaskNotFound
}

type recordingNotifier struct {
	created []int64
	updated []int64
	deleted []int64
}

func (n *recordingNotifier) TaskCreated(t repository.Task) { n.created = append(n.created, t.ID) }
func (n *recordingNotifier) TaskUpdated(t repository.Task) { n.updated = append(n.updated, t.ID) }
func (n *recordingNotifier) TaskDeleted(taskID, _ int64)   { n.deleted = append(n.deleted, taskID) }

func taskFixture() (*Tasks, *mockTaskRepo, *recordingNotifier) {
	repo := &mockTaskRepo{}
	workers := &mockWorkerRepo{workers: []repository.Worker{{ID: 1, Name: "Aiko"}}}
	roles := &mockRoleRepo{roles: []repository.Role{{ID: 1, Name: "Welder"}}}
	notifier := &recordingNotifier{}
	return NewTaskUsecase(repo, workers, roles, notifier), repo, notifier
}

func TestCreateTask_DefaultsAndNotification(t *testing.T) {
	uc, _, notifier := taskFixture()

	created, err := uc.CreateTask(context.Background(), CreateTaskInput{
		WorkerID: 1,
		Title:    "  Inspect weld seams ",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Title != "Inspect weld seams" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}
	if created.Status != TaskStatusPending || created.Priority != "medium" {
		t.Fatalf("unexpected defaults: %q %q", created.Status, created.Priority)
	}
	if len(notifier.created) != 1 || notifier.created[0] != created.ID {
		t.Fatalf("expected created notification for task %d", created.ID)
	}
}

func TestCreateTask_InvalidPriorityOrWorker(t *testing.T) {
	uc, _, _ := taskFixture()

	if _, err := uc.CreateTask(context.Background(), CreateTaskInput{WorkerID: 1, Title: "x", Priority: "blocker"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.CreateTask(context.Background(), CreateTaskInput{WorkerID: 9, Title: "x"}); !errors.Is(err, ErrWorkerNotFound) {
		t.Fatalf("expected ErrWorkerNotFound, got %v", err)
	}
}

func TestUpdateTask_CompletionTimestampOnce(t *testing.T) {
	uc, _, notifier := taskFixture()

	created, err := uc.CreateTask(context.Background(), CreateTaskInput{WorkerID: 1, Title: "x"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	done := TaskStatusCompleted
	completedAt := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return completedAt }

	updated, err := uc.UpdateTask(context.Background(), created.ID, UpdateTaskInput{Status: &done})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.CompletedAt == nil || !updated.CompletedAt.Equal(completedAt) {
		t.Fatalf("expected completion timestamp %v, got %v", completedAt, updated.CompletedAt)
	}

	// A second completed update must not move the timestamp.
	uc.now = func() time.Time { return completedAt.Add(time.Hour) }
	updated, err = uc.UpdateTask(context.Background(), created.ID, UpdateTaskInput{Status: &done})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !updated.CompletedAt.Equal(completedAt) {
		t.Fatalf("completion timestamp moved to %v", updated.CompletedAt)
	}
	if len(notifier.updated) != 2 {
		t.Fatalf("expected 2 update notifications, got %d", len(notifier.updated))
	}
}

func TestWorkerNotifications_NewFlagAndRoleName(t *testing.T) {
	uc, repo, _ := taskFixture()

	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	roleID := int64(1)
	repo.tasks = []repository.Task{
		{ID: 1, WorkerID: 1, RoleID: &roleID, Title: "fresh", Status: TaskStatusPending, CreatedAt: now.Add(-30 * time.Minute)},
		{ID: 2, WorkerID: 1, Title: "stale", Status: TaskStatusInProgress, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: 3, WorkerID: 1, Title: "done", Status: TaskStatusCompleted, CreatedAt: now},
	}

	items, err := uc.WorkerNotifications(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 open-task notifications, got %d", len(items))
	}
	if !items[0].IsNew || items[0].RoleName == nil || *items[0].RoleName != "Welder" {
		t.Fatalf("unexpected first notification: %+v", items[0])
	}
	if items[1].IsNew {
		t.Fatalf("stale task flagged as new")
	}
}

func TestDeleteTask_Notifies(t *testing.T) {
	uc, _, notifier := taskFixture()

	created, err := uc.CreateTask(context.Background(), CreateTaskInput{WorkerID: 1, Title: "x"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := uc.DeleteTask(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(notifier.deleted) != 1 || notifier.deleted[0] != created.ID {
		t.Fatalf("expected delete notification for task %d", created.ID)
	}
	if err := uc.DeleteTask(context.Background(), created.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
