package dto

import (
	"time"

	"workforce/internal/repository"
)

type CreateAssignmentRequest struct {
	WorkerID int64   `json:"worker_id"`
	RoleID   int64   `json:"role_id"`
	FitScore float64 `json:"fit_score"`
}

type AssignmentFeedbackRequest struct {
	Success  *bool   `json:"success"`
	Feedback *string `json:"feedback"`
}

type AssignmentResponse struct {
	ID          int64      `json:"id"`
	WorkerID    int64      `json:"worker_id"`
	RoleID      int64      `json:"role_id"`
	FitScore    float64    `json:"fit_score"`
	Success     *bool      `json:"success"`
	Feedback    *string    `json:"feedback"`
	AssignedAt  time.Time  `json:"assigned_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

func FromAssignment(a repository.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:          a.ID,
		WorkerID:    a.WorkerID,
		RoleID:      a.RoleID,
		FitScore:    a.FitScore,
		Success:     a.Success,
		Feedback:    a.Feedback,
		AssignedAt:  a.AssignedAt,
		CompletedAt: a.CompletedAt,
	}
}

func FromAssignments(items []repository.Assignment) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromAssignment(a))
	}
	return out
}
