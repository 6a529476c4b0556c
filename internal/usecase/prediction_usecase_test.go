package usecase

import (
	"context"
	"errors"
	"testing"

	"workforce/internal/domain/scoring"
	"workforce/internal/repository"
)

func predictionFixture() (*mockRoleRepo, *mockWorkerRepo) {
	roles := &mockRoleRepo{roles: []repository.Role{{
		ID:              1,
		Name:            "Welding Station Operator",
		RequiredSkills:  []string{"welding", "assembly"},
		DifficultyLevel: 0.6,
	}}}
	workers := &mockWorkerRepo{workers: []repository.Worker{
		{ID: 1, Name: "Aiko", Skills: []string{"welding", "assembly"}, Experience: 10, PerformanceScore: 0.9, FatigueLevel: 0.2, HoursPerDay: 8, HoursPerWeek: 40},
		{ID: 2, Name: "Budi", Skills: []string{"welding"}, Experience: 2, PerformanceScore: 0.5, FatigueLevel: 0.6, HoursPerDay: 8, HoursPerWeek: 48},
		{ID: 3, Name: "Carlos", Skills: []string{"packaging"}, Experience: 1, PerformanceScore: 0.7, FatigueLevel: 0.1, HoursPerDay: 7, HoursPerWeek: 35},
	}}
	return roles, workers
}

func TestPredictFit_DefaultTopN(t *testing.T) {
	roles, workers := predictionFixture()
	uc := NewPredictionUsecase(roles, workers, scoring.NewEngine(scoring.Weights{}))

	res, err := uc.PredictFit(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Recommendations) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(res.Recommendations))
	}
	if res.RoleName != "Welding Station Operator" {
		t.Fatalf("unexpected role name %q", res.RoleName)
	}
	if res.Recommendations[0].WorkerID != 1 {
		t.Fatalf("expected best fit worker 1, got %d", res.Recommendations[0].WorkerID)
	}
}

func TestPredictFit_TopNAboveCeiling(t *testing.T) {
	roles, workers := predictionFixture()
	uc := NewPredictionUsecase(roles, workers, scoring.NewEngine(scoring.Weights{}))

	_, err := uc.PredictFit(context.Background(), 1, 11)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPredictFit_RoleMissing(t *testing.T) {
	roles, workers := predictionFixture()
	uc := NewPredictionUsecase(roles, workers, scoring.NewEngine(scoring.Weights{}))

	_, err := uc.PredictFit(context.Background(), 99, 3)
	if !errors.Is(err, ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestPredictFit_ZeroMatchWorkerStillRanked(t *testing.T) {
	roles, workers := predictionFixture()
	uc := NewPredictionUsecase(roles, workers, scoring.NewEngine(scoring.Weights{}))

	res, err := uc.PredictFit(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	found := false
	for _, r := range res.Recommendations {
		if r.WorkerID == 3 {
			found = true
			if r.SkillMatchPercentage != 0 {
				t.Fatalf("expected zero skill match, got %v", r.SkillMatchPercentage)
			}
		}
	}
	if !found {
		t.Fatalf("zero-match worker missing from ranking")
	}
}

func TestPredictFit_MalformedWorkersCounted(t *testing.T) {
	roles, workers := predictionFixture()
	workers.workers = append(workers.workers, repository.Worker{ID: 4, Name: "   "})
	uc := NewPredictionUsecase(roles, workers, scoring.NewEngine(scoring.Weights{}))

	res, err := uc.PredictFit(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.SkippedWorkers != 1 {
		t.Fatalf("expected 1 skipped worker, got %d", res.SkippedWorkers)
	}
	if len(res.Recommendations) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(res.Recommendations))
	}
}
