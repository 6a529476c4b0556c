package dto

import (
	"time"

	"workforce/internal/repository"
	"workforce/internal/usecase"
)

type CreateTaskRequest struct {
	WorkerID    int64      `json:"worker_id"`
	RoleID      *int64     `json:"role_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    string     `json:"priority"`
	AssignedBy  *string    `json:"assigned_by"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
	DueDate     *time.Time `json:"due_date"`
}

type TaskResponse struct {
	ID          int64      `json:"id"`
	WorkerID    int64      `json:"worker_id"`
	RoleID      *int64     `json:"role_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	AssignedBy  *string    `json:"assigned_by"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

type TaskNotificationResponse struct {
	TaskResponse
	RoleName *string `json:"role_name"`
	IsNew    bool    `json:"is_new"`
}

func FromTask(t repository.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		WorkerID:    t.WorkerID,
		RoleID:      t.RoleID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		AssignedBy:  t.AssignedBy,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
	}
}

func FromTasks(items []repository.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(items))
	for _, t := range items {
		out = append(out, FromTask(t))
	}
	return out
}

func FromTaskNotifications(items []usecase.TaskNotification) []TaskNotificationResponse {
	out := make([]TaskNotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, TaskNotificationResponse{
			TaskResponse: FromTask(n.Task),
			RoleName:     n.RoleName,
			IsNew:        n.IsNew,
		})
	}
	return out
}
