package dto

import (
	"workforce/internal/domain/scoring"
	"workforce/internal/usecase"
)

type PredictFitRequest struct {
	RoleID int64 `json:"role_id"`
	TopN   int   `json:"top_n"`
}

type RecommendationResponse struct {
	WorkerID             int64    `json:"worker_id"`
	WorkerName           string   `json:"worker_name"`
	FitScore             float64  `json:"fit_score"`
	SkillMatchPercentage float64  `json:"skill_match_percentage"`
	PerformanceScore     float64  `json:"performance_score"`
	FatigueLevel         float64  `json:"fatigue_level"`
	Skills               []string `json:"skills"`
	HoursPerDay          float64  `json:"hours_per_day"`
	HoursPerWeek         float64  `json:"hours_per_week"`
}

type PredictFitResponse struct {
	RoleID          int64                    `json:"role_id"`
	RoleName        string                   `json:"role_name"`
	Recommendations []RecommendationResponse `json:"recommendations"`
	SkippedWorkers  int                      `json:"skipped_workers"`
}

func FromPrediction(p usecase.PredictionResult) PredictFitResponse {
	recs := make([]RecommendationResponse, 0, len(p.Recommendations))
	for _, r := range p.Recommendations {
		recs = append(recs, fromRecommendation(r))
	}
	return PredictFitResponse{
		RoleID:          p.RoleID,
		RoleName:        p.RoleName,
		Recommendations: recs,
		SkippedWorkers:  p.SkippedWorkers,
	}
}

func fromRecommendation(r scoring.Recommendation) RecommendationResponse {
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	return RecommendationResponse{
		WorkerID:             r.WorkerID,
		WorkerName:           r.WorkerName,
		FitScore:             r.FitScore,
		SkillMatchPercentage: r.SkillMatchPercentage,
		PerformanceScore:     r.PerformanceScore,
		FatigueLevel:         r.FatigueLevel,
		Skills:               skills,
		HoursPerDay:          r.HoursPerDay,
		HoursPerWeek:         r.HoursPerWeek,
	}
}
