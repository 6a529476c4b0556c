package dto

import (
	"time"

	"workforce/internal/repository"
)

type ClockInRequest struct {
	WorkerID int64   `json:"worker_id"`
	Location *string `json:"location"`
}

type ClockOutRequest struct {
	BreakHours float64 `json:"break_hours"`
}

type SessionResponse struct {
	ID            int64      `json:"id"`
	WorkerID      int64      `json:"worker_id"`
	ClockIn       time.Time  `json:"clock_in"`
	ClockOut      *time.Time `json:"clock_out"`
	BreakDuration float64    `json:"break_duration"`
	TotalHours    *float64   `json:"total_hours"`
	Location      *string    `json:"location"`
}

func FromSession(s repository.WorkSession) SessionResponse {
	return SessionResponse{
		ID:            s.ID,
		WorkerID:      s.WorkerID,
		ClockIn:       s.ClockIn,
		ClockOut:      s.ClockOut,
		BreakDuration: s.BreakDuration,
		TotalHours:    s.TotalHours,
		Location:      s.Location,
	}
}

func FromSessions(items []repository.WorkSession) []SessionResponse {
	out := make([]SessionResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromSession(s))
	}
	return out
}
