package dto

import (
	"time"

	"workforce/internal/repository"
)

type CreateWorkerRequest struct {
	Name             string   `json:"name"`
	Age              int      `json:"age"`
	Experience       float64  `json:"experience"`
	Skills           []string `json:"skills"`
	FatigueLevel     *float64 `json:"fatigue_level"`
	HoursPerDay      *float64 `json:"hours_per_day"`
	HoursPerWeek     *float64 `json:"hours_per_week"`
	CurrentRole      *string  `json:"current_role"`
	PerformanceScore *float64 `json:"performance_score"`
}

type UpdateWorkerRequest struct {
	Name             *string  `json:"name"`
	Age              *int     `json:"age"`
	Experience       *float64 `json:"experience"`
	Skills           []string `json:"skills"`
	FatigueLevel     *float64 `json:"fatigue_level"`
	HoursPerDay      *float64 `json:"hours_per_day"`
	HoursPerWeek     *float64 `json:"hours_per_week"`
	CurrentRole      *string  `json:"current_role"`
	PerformanceScore *float64 `json:"performance_score"`
}

type WorkerResponse struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Age              int        `json:"age"`
	Experience       float64    `json:"experience"`
	Skills           []string   `json:"skills"`
	FatigueLevel     float64    `json:"fatigue_level"`
	HoursPerDay      float64    `json:"hours_per_day"`
	HoursPerWeek     float64    `json:"hours_per_week"`
	CurrentRole      *string    `json:"current_role"`
	PerformanceScore float64    `json:"performance_score"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
}

func FromWorker(w repository.Worker) WorkerResponse {
	return WorkerResponse{
		ID:               w.ID,
		Name:             w.Name,
		Age:              w.Age,
		Experience:       w.Experience,
		Skills:           w.Skills,
		FatigueLevel:     w.FatigueLevel,
		HoursPerDay:      w.HoursPerDay,
		HoursPerWeek:     w.HoursPerWeek,
		CurrentRole:      w.CurrentRole,
		PerformanceScore: w.PerformanceScore,
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}
}

func FromWorkers(items []repository.Worker) []WorkerResponse {
	out := make([]WorkerResponse, 0, len(items))
	for _, w := range items {
		out = append(out, FromWorker(w))
	}
	return out
}
