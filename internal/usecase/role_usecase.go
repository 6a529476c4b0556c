package usecase

import (
	"context"
	"errors"
	"strings"

	"workforce/internal/domain/scoring"
	"workforce/internal/repository"
)

type RoleUsecase interface {
	ListRoles(ctx context.Context, limit, offset int) ([]repository.Role, error)
	GetRole(ctx context.Context, id int64) (repository.Role, error)
	GetRoleDescription(ctx context.Context, id int64) (RoleDescription, error)
	CreateRole(ctx context.Context, in CreateRoleInput) (repository.Role, error)
	UpdateRole(ctx context.Context, id int64, in UpdateRoleInput) (repository.Role, error)
	DeleteRole(ctx context.Context, id int64) error
}

type CreateRoleInput struct {
	Name            string
	Description     *string
	RequiredSkills  []string
	DifficultyLevel float64
	TypicalTasks    []string
	SuccessCriteria *string
}

type UpdateRoleInput struct {
	Name            *string
	Description     *string
	RequiredSkills  []string
	DifficultyLevel *float64
	TypicalTasks    []string
	SuccessCriteria *string
}

// RoleDescription is the narrative view of a role used by worker-facing
// clients: what the role is, what it needs, and what a day in it looks like.
type RoleDescription struct {
	RoleID          int64
	Name            string
	Description     string
	RequiredSkills  []string
	DifficultyLevel float64
	TypicalTasks    []string
	SuccessCriteria string
}

type Roles struct {
	repo  repository.RoleRepository
	cache AnalyticsInvalidator
}

func NewRoleUsecase(repo repository.RoleRepository, cache AnalyticsInvalidator) *Roles {
	return &Roles{repo: repo, cache: cache}
}

func (u *Roles) ListRoles(ctx context.Context, limit, offset int) ([]repository.Role, error) {
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

func (u *Roles) GetRole(ctx context.Context, id int64) (repository.Role, error) {
	if id <= 0 {
		return repository.Role{}, ErrInvalidInput
	}
	role, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return repository.Role{}, ErrRoleNotFound
		}
		return repository.Role{}, ErrInternal
	}
	return role, nil
}

func (u *Roles) GetRoleDescription(ctx context.Context, id int64) (RoleDescription, error) {
	role, err := u.GetRole(ctx, id)
	if err != nil {
		return RoleDescription{}, err
	}

	desc := RoleDescription{
		RoleID:          role.ID,
		Name:            role.Name,
		RequiredSkills:  role.RequiredSkills,
		DifficultyLevel: role.DifficultyLevel,
		TypicalTasks:    role.TypicalTasks,
	}
	if role.Description != nil {
		desc.Description = *role.Description
	} else {
		desc.Description = "No description available for " + role.Name + "."
	}
	if role.SuccessCriteria != nil {
		desc.SuccessCriteria = *role.SuccessCriteria
	}
	if desc.TypicalTasks == nil {
		desc.TypicalTasks = []string{}
	}
	return desc, nil
}

func (u *Roles) CreateRole(ctx context.Context, in CreateRoleInput) (repository.Role, error) {
	role := repository.Role{
		Name:            strings.TrimSpace(in.Name),
		Description:     in.Description,
		RequiredSkills:  scoring.NormalizeSkills(in.RequiredSkills),
		DifficultyLevel: in.DifficultyLevel,
		TypicalTasks:    in.TypicalTasks,
		SuccessCriteria: in.SuccessCriteria,
	}
	if err := validateRole(role); err != nil {
		return repository.Role{}, err
	}

	taken, err := u.repo.ExistsByName(ctx, role.Name)
	if err != nil {
		return repository.Role{}, ErrInternal
	}
	if taken {
		return repository.Role{}, ErrRoleNameTaken
	}

	created, err := u.repo.Create(ctx, role)
	if err != nil {
		return repository.Role{}, ErrInternal
	}
	u.invalidate(ctx)
	return created, nil
}

func (u *Roles) UpdateRole(ctx context.Context, id int64, in UpdateRoleInput) (repository.Role, error) {
	role, err := u.GetRole(ctx, id)
	if err != nil {
		return repository.Role{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name != role.Name {
			taken, err := u.repo.ExistsByName(ctx, name)
			if err != nil {
				return repository.Role{}, ErrInternal
			}
			if taken {
				return repository.Role{}, ErrRoleNameTaken
			}
		}
		role.Name = name
	}
	if in.Description != nil {
		role.Description = in.Description
	}
	if in.RequiredSkills != nil {
		role.RequiredSkills = scoring.NormalizeSkills(in.RequiredSkills)
	}
	if in.DifficultyLevel != nil {
		role.DifficultyLevel = *in.DifficultyLevel
	}
	if in.TypicalTasks != nil {
		role.TypicalTasks = in.TypicalTasks
	}
	if in.SuccessCriteria != nil {
		role.SuccessCriteria = in.SuccessCriteria
	}

	if err := validateRole(role); err != nil {
		return repository.Role{}, err
	}

	updated, err := u.repo.Update(ctx, role)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return repository.Role{}, ErrRoleNotFound
		}
		return repository.Role{}, ErrInternal
	}
	u.invalidate(ctx)
	return updated, nil
}

func (u *Roles) DeleteRole(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return ErrRoleNotFound
		}
		return ErrInternal
	}
	u.invalidate(ctx)
	return nil
}

func (u *Roles) invalidate(ctx context.Context) {
	if u.cache != nil {
		_ = u.cache.InvalidateAnalytics(ctx)
	}
}

func validateRole(role repository.Role) error {
	if role.Name == "" {
		return ErrInvalidInput
	}
	if len(role.RequiredSkills) == 0 {
		return ErrInvalidInput
	}
	if role.DifficultyLevel < 0 || role.DifficultyLevel > 1 {
		return ErrInvalidInput
	}
	return nil
}
