package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"workforce/internal/domain/scoring"
	"workforce/internal/repository"
)

func TestCreateWorker_DefaultsAndDerivedFatigue(t *testing.T) {
	repo := &mockWorkerRepo{}
	inv := &mockInvalidator{}
	uc := NewWorkerUsecase(repo, inv)

	created, err := uc.CreateWorker(context.Background(), CreateWorkerInput{
		Name:       "  Aiko Tanaka ",
		Age:        34,
		Experience: 8,
		Skills:     []string{"Welding", "welding", " Assembly "},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Name != "Aiko Tanaka" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.HoursPerDay != defaultHoursPerDay || created.HoursPerWeek != defaultHoursPerWeek {
		t.Fatalf("expected default hours, got %v/%v", created.HoursPerDay, created.HoursPerWeek)
	}
	if len(created.Skills) != 2 || created.Skills[0] != "welding" || created.Skills[1] != "assembly" {
		t.Fatalf("expected normalized skills, got %v", created.Skills)
	}
	want := scoring.Fatigue(defaultHoursPerDay, defaultHoursPerWeek)
	if math.Abs(created.FatigueLevel-want) > 1e-9 {
		t.Fatalf("expected derived fatigue %v, got %v", want, created.FatigueLevel)
	}
	if inv.calls != 1 {
		t.Fatalf("expected one cache invalidation, got %d", inv.calls)
	}
}

func TestCreateWorker_RejectsOutOfRangeFields(t *testing.T) {
	uc := NewWorkerUsecase(&mockWorkerRepo{}, nil)

	cases := []CreateWorkerInput{
		{Name: "", Age: 30},
		{Name: "A", Age: 101},
		{Name: "A", Age: 30, Experience: -1},
		{Name: "A", Age: 30, PerformanceScore: ptrFloat(1.2)},
		{Name: "A", Age: 30, HoursPerDay: ptrFloat(9.0)},
		{Name: "A", Age: 30, HoursPerWeek: ptrFloat(53.0)},
		{Name: "A", Age: 30, FatigueLevel: ptrFloat(-0.1)},
	}
	for i, in := range cases {
		if _, err := uc.CreateWorker(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestUpdateWorker_HoursChangeRecomputesFatigue(t *testing.T) {
	repo := &mockWorkerRepo{workers: []repository.Worker{{
		ID: 1, Name: "Aiko", Age: 30, HoursPerDay: 8, HoursPerWeek: 40,
		FatigueLevel: scoring.Fatigue(8, 40), PerformanceScore: 0.8,
	}}}
	uc := NewWorkerUsecase(repo, nil)

	updated, err := uc.UpdateWorker(context.Background(), 1, UpdateWorkerInput{
		HoursPerWeek: ptrFloat(50),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := scoring.Fatigue(8, 50)
	if math.Abs(updated.FatigueLevel-want) > 1e-9 {
		t.Fatalf("expected recomputed fatigue %v, got %v", want, updated.FatigueLevel)
	}
}

func TestUpdateWorker_ExplicitFatigueWins(t *testing.T) {
	repo := &mockWorkerRepo{workers: []repository.Worker{{
		ID: 1, Name: "Aiko", Age: 30, HoursPerDay: 8, HoursPerWeek: 40, PerformanceScore: 0.8,
	}}}
	uc := NewWorkerUsecase(repo, nil)

	updated, err := uc.UpdateWorker(context.Background(), 1, UpdateWorkerInput{
		HoursPerWeek: ptrFloat(50),
		FatigueLevel: ptrFloat(0.33),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.FatigueLevel != 0.33 {
		t.Fatalf("expected explicit fatigue 0.33, got %v", updated.FatigueLevel)
	}
}

func TestGetWorker_NotFound(t *testing.T) {
	uc := NewWorkerUsecase(&mockWorkerRepo{}, nil)
	if _, err := uc.GetWorker(context.Background(), 7); !errors.Is(err, ErrWorkerNotFound) {
		t.Fatalf("expected ErrWorkerNotFound, got %v", err)
	}
}

func ptrFloat(v float64) *float64 { return &v }
