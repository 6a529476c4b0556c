package usecase

import (
	"context"
	"errors"

	"workforce/internal/domain/scoring"
	"workforce/internal/pkg/metrics"
	"workforce/internal/repository"
)

const (
	defaultTopN = 3
	maxTopN     = 10
)

type PredictionUsecase interface {
	PredictFit(ctx context.Context, roleID int64, topN int) (PredictionResult, error)
}

type PredictionResult struct {
	RoleID          int64
	RoleName        string
	Recommendations []scoring.Recommendation
	SkippedWorkers  int
}

type Prediction struct {
	roles   repository.RoleRepository
	workers repository.WorkerRepository
	engine  *scoring.Engine
}

func NewPredictionUsecase(roles repository.RoleRepository, workers repository.WorkerRepository, engine *scoring.Engine) *Prediction {
	return &Prediction{roles: roles, workers: workers, engine: engine}
}

func (u *Prediction) PredictFit(ctx context.Context, roleID int64, topN int) (PredictionResult, error) {
	if roleID <= 0 {
		return PredictionResult{}, ErrInvalidInput
	}
	if topN == 0 {
		topN = defaultTopN
	}
	if topN < 1 || topN > maxTopN {
		return PredictionResult{}, ErrInvalidInput
	}

	role, err := u.roles.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return PredictionResult{}, ErrRoleNotFound
		}
		return PredictionResult{}, ErrInternal
	}

	roster, err := u.workers.ListAll(ctx)
	if err != nil {
		return PredictionResult{}, ErrInternal
	}

	res, err := u.engine.Recommend(
		scoring.Role{
			ID:              role.ID,
			Name:            role.Name,
			RequiredSkills:  role.RequiredSkills,
			DifficultyLevel: role.DifficultyLevel,
		},
		toScoringWorkers(roster),
		topN,
	)
	if err != nil {
		if errors.Is(err, scoring.ErrInvalidInput) {
			return PredictionResult{}, ErrInvalidInput
		}
		return PredictionResult{}, ErrInternal
	}

	metrics.PredictionsTotal.Inc()
	return PredictionResult{
		RoleID:          role.ID,
		RoleName:        role.Name,
		Recommendations: res.Recommendations,
		SkippedWorkers:  res.Skipped,
	}, nil
}

func toScoringWorkers(roster []repository.Worker) []scoring.Worker {
	out := make([]scoring.Worker, 0, len(roster))
	for _, w := range roster {
		out = append(out, scoring.Worker{
			ID:               w.ID,
			Name:             w.Name,
			Skills:           w.Skills,
			Experience:       w.Experience,
			PerformanceScore: w.PerformanceScore,
			FatigueLevel:     w.FatigueLevel,
			HoursPerDay:      w.HoursPerDay,
			HoursPerWeek:     w.HoursPerWeek,
		})
	}
	return out
}
