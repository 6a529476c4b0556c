package dto

import "workforce/internal/domain/scoring"

type SkillDemandResponse struct {
	Skill  string `json:"skill"`
	Demand int    `json:"demand"`
}

type TrainingRecommendationResponse struct {
	WorkerID          int64    `json:"worker_id"`
	WorkerName        string   `json:"worker_name"`
	CurrentSkills     []string `json:"current_skills"`
	RecommendedSkills []string `json:"recommended_skills"`
	Reason            string   `json:"reason"`
	Priority          string   `json:"priority"`
}

type SkillGapResponse struct {
	WorkersNeedingTraining []TrainingRecommendationResponse `json:"workers_needing_training"`
	MostDemandedSkills     []SkillDemandResponse            `json:"most_demanded_skills"`
	SkippedWorkers         int                              `json:"skipped_workers"`
}

func FromSkillGap(report scoring.SkillGapReport) SkillGapResponse {
	workers := make([]TrainingRecommendationResponse, 0, len(report.WorkersNeedingTraining))
	for _, w := range report.WorkersNeedingTraining {
		current := w.CurrentSkills
		if current == nil {
			current = []string{}
		}
		recommended := w.RecommendedSkills
		if recommended == nil {
			recommended = []string{}
		}
		workers = append(workers, TrainingRecommendationResponse{
			WorkerID:          w.WorkerID,
			WorkerName:        w.WorkerName,
			CurrentSkills:     current,
			RecommendedSkills: recommended,
			Reason:            w.Reason,
			Priority:          string(w.Priority),
		})
	}

	demanded := make([]SkillDemandResponse, 0, len(report.MostDemandedSkills))
	for _, d := range report.MostDemandedSkills {
		demanded = append(demanded, SkillDemandResponse{Skill: d.Skill, Demand: d.Demand})
	}

	return SkillGapResponse{
		WorkersNeedingTraining: workers,
		MostDemandedSkills:     demanded,
		SkippedWorkers:         report.SkippedWorkers,
	}
}
