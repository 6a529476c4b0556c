package usecase

import (
	"context"
	"errors"

	"workforce/internal/repository"
)

type AssignmentUsecase interface {
	CreateAssignment(ctx context.Context, in CreateAssignmentInput) (repository.Assignment, error)
	RecordFeedback(ctx context.Context, id int64, success bool, feedback *string) (repository.Assignment, error)
	ListAssignments(ctx context.Context, limit, offset int) ([]repository.Assignment, error)
}

type CreateAssignmentInput struct {
	WorkerID int64
	RoleID   int64
	FitScore float64
}

type Assignments struct {
	repo    repository.AssignmentRepository
	workers repository.WorkerRepository
	roles   repository.RoleRepository
	cache   AnalyticsInvalidator
}

func NewAssignmentUsecase(
	repo repository.AssignmentRepository,
	workers repository.WorkerRepository,
	roles repository.RoleRepository,
	cache AnalyticsInvalidator,
) *Assignments {
	return &Assignments{repo: repo, workers: workers, roles: roles, cache: cache}
}

func (u *Assignments) CreateAssignment(ctx context.Context, in CreateAssignmentInput) (repository.Assignment, error) {
	if in.WorkerID <= 0 || in.RoleID <= 0 {
		return repository.Assignment{}, ErrInvalidInput
	}

	exists, err := u.workers.ExistsByID(ctx, in.WorkerID)
	if err != nil {
		return repository.Assignment{}, ErrInternal
	}
	if !exists {
		return repository.Assignment{}, ErrWorkerNotFound
	}

	role, err := u.roles.FindByID(ctx, in.RoleID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return repository.Assignment{}, ErrRoleNotFound
		}
		return repository.Assignment{}, ErrInternal
	}

	fit := in.FitScore
	if fit < 0 {
		fit = 0
	}
	if fit > 1 {
		fit = 1
	}

	created, err := u.repo.Create(ctx, repository.Assignment{
		WorkerID: in.WorkerID,
		RoleID:   in.RoleID,
		FitScore: fit,
	}, role.Name)
	if err != nil {
		return repository.Assignment{}, ErrInternal
	}
	u.invalidate(ctx)
	return created, nil
}

// RecordFeedback closes the loop on an assignment. Feedback is write-once:
// once success is set the assignment is considered completed.
func (u *Assignments) RecordFeedback(ctx context.Context, id int64, success bool, feedback *string) (repository.Assignment, error) {
	if id <= 0 {
		return repository.Assignment{}, ErrInvalidInput
	}

	a, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return repository.Assignment{}, ErrAssignmentNotFound
		}
		return repository.Assignment{}, ErrInternal
	}
	if a.Success != nil {
		return repository.Assignment{}, ErrFeedbackRecorded
	}

	if err := u.repo.SetFeedback(ctx, id, success, feedback); err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return repository.Assignment{}, ErrAssignmentNotFound
		}
		return repository.Assignment{}, ErrInternal
	}

	updated, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return repository.Assignment{}, ErrInternal
	}
	return updated, nil
}

func (u *Assignments) ListAssignments(ctx context.Context, limit, offset int) ([]repository.Assignment, error) {
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

func (u *Assignments) invalidate(ctx context.Context) {
	if u.cache != nil {
		_ = u.cache.InvalidateAnalytics(ctx)
	}
}
