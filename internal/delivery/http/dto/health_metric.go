package dto

import (
	"time"

	"workforce/internal/repository"
)

type RecordMetricRequest struct {
	WorkerID        int64    `json:"worker_id"`
	HeartRate       *float64 `json:"heart_rate"`
	OxygenLevel     *float64 `json:"oxygen_level"`
	StressLevel     *float64 `json:"stress_level"`
	FatigueScore    *float64 `json:"fatigue_score"`
	BodyTemperature *float64 `json:"body_temperature"`
	StepsCount      int      `json:"steps_count"`
}

type HealthMetricResponse struct {
	ID              int64     `json:"id"`
	WorkerID        int64     `json:"worker_id"`
	HeartRate       *float64  `json:"heart_rate"`
	OxygenLevel     *float64  `json:"oxygen_level"`
	StressLevel     *float64  `json:"stress_level"`
	FatigueScore    *float64  `json:"fatigue_score"`
	BodyTemperature *float64  `json:"body_temperature"`
	StepsCount      int       `json:"steps_count"`
	RecordedAt      time.Time `json:"recorded_at"`
}

func FromHealthMetric(m repository.HealthMetric) HealthMetricResponse {
	return HealthMetricResponse{
		ID:              m.ID,
		WorkerID:        m.WorkerID,
		HeartRate:       m.HeartRate,
		OxygenLevel:     m.OxygenLevel,
		StressLevel:     m.StressLevel,
		FatigueScore:    m.FatigueScore,
		BodyTemperature: m.BodyTemperature,
		StepsCount:      m.StepsCount,
		RecordedAt:      m.RecordedAt,
	}
}

func FromHealthMetrics(items []repository.HealthMetric) []HealthMetricResponse {
	out := make([]HealthMetricResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromHealthMetric(m))
	}
	return out
}
