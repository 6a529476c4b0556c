package usecase

import (
	"context"
	"errors"
	"strings"

	"workforce/internal/domain/scoring"
	"workforce/internal/repository"
)

type WorkerUsecase interface {
	ListWorkers(ctx context.Context, limit, offset int) ([]repository.Worker, error)
	GetWorker(ctx context.Context, id int64) (repository.Worker, error)
	CreateWorker(ctx context.Context, in CreateWorkerInput) (repository.Worker, error)
	UpdateWorker(ctx context.Context, id int64, in UpdateWorkerInput) (repository.Worker, error)
	DeleteWorker(ctx context.Context, id int64) error
}

type CreateWorkerInput struct {
	Name             string
	Age              int
	Experience       float64
	Skills           []string
	FatigueLevel     *float64
	HoursPerDay      *float64
	HoursPerWeek     *float64
	CurrentRole      *string
	PerformanceScore *float64
}

// UpdateWorkerInput carries only the fields the caller wants changed.
type UpdateWorkerInput struct {
	Name             *string
	Age              *int
	Experience       *float64
	Skills           []string
	FatigueLevel     *float64
	HoursPerDay      *float64
	HoursPerWeek     *float64
	CurrentRole      *string
	PerformanceScore *float64
}

type Workers struct {
	repo  repository.WorkerRepository
	cache AnalyticsInvalidator
}

func NewWorkerUsecase(repo repository.WorkerRepository, cache AnalyticsInvalidator) *Workers {
	return &Workers{repo: repo, cache: cache}
}

const (
	defaultHoursPerDay      = 8.0
	defaultHoursPerWeek     = 40.0
	defaultPerformanceScore = 0.5
	maxWorkerAge            = 100
)

func (u *Workers) ListWorkers(ctx context.Context, limit, offset int) ([]repository.Worker, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		return nil, ErrInvalidInput
	}
	items, err := u.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Workers) GetWorker(ctx context.Context, id int64) (repository.Worker, error) {
	if id <= 0 {
		return repository.Worker{}, ErrInvalidInput
	}
	w, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return repository.Worker{}, ErrWorkerNotFound
		}
		return repository.Worker{}, ErrInternal
	}
	return w, nil
}

func (u *Workers) CreateWorker(ctx context.Context, in CreateWorkerInput) (repository.Worker, error) {
	w := repository.Worker{
		Name:             strings.TrimSpace(in.Name),
		Age:              in.Age,
		Experience:       in.Experience,
		Skills:           scoring.NormalizeSkills(in.Skills),
		HoursPerDay:      defaultHoursPerDay,
		HoursPerWeek:     defaultHoursPerWeek,
		CurrentRole:      in.CurrentRole,
		PerformanceScore: defaultPerformanceScore,
	}
	if in.HoursPerDay != nil {
		w.HoursPerDay = *in.HoursPerDay
	}
	if in.HoursPerWeek != nil {
		w.HoursPerWeek = *in.HoursPerWeek
	}
	if in.PerformanceScore != nil {
		w.PerformanceScore = *in.PerformanceScore
	}
	if in.FatigueLevel != nil {
		w.FatigueLevel = *in.FatigueLevel
	} else {
		w.FatigueLevel = scoring.Fatigue(w.HoursPerDay, w.HoursPerWeek)
	}

	if err := validateWorker(w); err != nil {
		return repository.Worker{}, err
	}

	created, err := u.repo.Create(ctx, w)
	if err != nil {
		return repository.Worker{}, ErrInternal
	}
	u.invalidate(ctx)
	return created, nil
}

func (u *Workers) UpdateWorker(ctx context.Context, id int64, in UpdateWorkerInput) (repository.Worker, error) {
	w, err := u.GetWorker(ctx, id)
	if err != nil {
		return repository.Worker{}, err
	}

	hoursChanged := false
	if in.Name != nil {
		w.Name = strings.TrimSpace(*in.Name)
	}
	if in.Age != nil {
		w.Age = *in.Age
	}
	if in.Experience != nil {
		w.Experience = *in.Experience
	}
	if in.Skills != nil {
		w.Skills = scoring.NormalizeSkills(in.Skills)
	}
	if in.HoursPerDay != nil {
		w.HoursPerDay = *in.HoursPerDay
		hoursChanged = true
	}
	if in.HoursPerWeek != nil {
		w.HoursPerWeek = *in.HoursPerWeek
		hoursChanged = true
	}
	if in.CurrentRole != nil {
		w.CurrentRole = in.CurrentRole
	}
	if in.PerformanceScore != nil {
		w.PerformanceScore = *in.PerformanceScore
	}

	// The stored fatigue level must track the hours it is derived from. An
	// explicit fatigue value in the same request wins.
	switch {
	case in.FatigueLevel != nil:
		w.FatigueLevel = *in.FatigueLevel
	case hoursChanged:
		w.FatigueLevel = scoring.Fatigue(w.HoursPerDay, w.HoursPerWeek)
	}

	if err := validateWorker(w); err != nil {
		return repository.Worker{}, err
	}

	updated, err := u.repo.Update(ctx, w)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return repository.Worker{}, ErrWorkerNotFound
		}
		return repository.Worker{}, ErrInternal
	}
	u.invalidate(ctx)
	return updated, nil
}

func (u *Workers) DeleteWorker(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return ErrWorkerNotFound
		}
		return ErrInternal
	}
	u.invalidate(ctx)
	return nil
}

func (u *Workers) invalidate(ctx context.Context) {
	if u.cache != nil {
		_ = u.cache.InvalidateAnalytics(ctx)
	}
}

func validateWorker(w repository.Worker) error {
	if w.Name == "" {
		return ErrInvalidInput
	}
	if w.Age < 0 || w.Age > maxWorkerAge {
		return ErrInvalidInput
	}
	if w.Experience < 0 {
		return ErrInvalidInput
	}
	if w.PerformanceScore < 0 || w.PerformanceScore > 1 {
		return ErrInvalidInput
	}
	if w.FatigueLevel < 0 || w.FatigueLevel > 1 {
		return ErrInvalidInput
	}
	if w.HoursPerDay < 0 || w.HoursPerDay > scoring.MaxHoursPerDay {
		return ErrInvalidInput
	}
	if w.HoursPerWeek < 0 || w.HoursPerWeek > scoring.MaxHoursPerWeek {
		return ErrInvalidInput
	}
	return nil
}
