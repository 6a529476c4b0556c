package dto

import (
	"time"

	"workforce/internal/repository"
	"workforce/internal/usecase"
)

type CreateRoleRequest struct {
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	RequiredSkills  []string `json:"required_skills"`
	DifficultyLevel float64  `json:"difficulty_level"`
	TypicalTasks    []string `json:"typical_tasks"`
	SuccessCriteria *string  `json:"success_criteria"`
}

type UpdateRoleRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	RequiredSkills  []string `json:"required_skills"`
	DifficultyLevel *float64 `json:"difficulty_level"`
	TypicalTasks    []string `json:"typical_tasks"`
	SuccessCriteria *string  `json:"success_criteria"`
}

type RoleResponse struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Description       *string    `json:"description"`
	RequiredSkills    []string   `json:"required_skills"`
	DifficultyLevel   float64    `json:"difficulty_level"`
	TypicalTasks      []string   `json:"typical_tasks"`
	SuccessCriteria   *string    `json:"success_criteria"`
	CurrentAssigneeID *int64     `json:"current_assignee_id"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at"`
}

type RoleDescriptionResponse struct {
	RoleID          int64    `json:"role_id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"required_skills"`
	DifficultyLevel float64  `json:"difficulty_level"`
	TypicalTasks    []string `json:"typical_tasks"`
	SuccessCriteria string   `json:"success_criteria"`
}

func FromRole(r repository.Role) RoleResponse {
	tasks := r.TypicalTasks
	if tasks == nil {
		tasks = []string{}
	}
	return RoleResponse{
		ID:                r.ID,
		Name:              r.Name,
		Description:       r.Description,
		RequiredSkills:    r.RequiredSkills,
		DifficultyLevel:   r.DifficultyLevel,
		TypicalTasks:      tasks,
		SuccessCriteria:   r.SuccessCriteria,
		CurrentAssigneeID: r.CurrentAssigneeID,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func FromRoles(items []repository.Role) []RoleResponse {
	out := make([]RoleResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromRole(r))
	}
	return out
}

func FromRoleDescription(d usecase.RoleDescription) RoleDescriptionResponse {
	return RoleDescriptionResponse{
		RoleID:          d.RoleID,
		Name:            d.Name,
		Description:     d.Description,
		RequiredSkills:  d.RequiredSkills,
		DifficultyLevel: d.DifficultyLevel,
		TypicalTasks:    d.TypicalTasks,
		SuccessCriteria: d.SuccessCriteria,
	}
}
