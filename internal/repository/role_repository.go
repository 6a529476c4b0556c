package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"workforce/internal/database"

	"github.com/jackc/pgx/v5"
)

var (
	ErrRoleNotFound  = errors.New("role not found")
	ErrRoleNameTaken = errors.New("role name already exists")
)

type Role struct {
	ID                int64
	Name              string
	Description       *string
	RequiredSkills    []string
	DifficultyLevel   float64
	TypicalTasks      []string
	SuccessCriteria   *string
	CurrentAssigneeID *int64
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

type RoleRepository interface {
	List(ctx context.Context, limit, offset int) ([]Role, error)
	ListAll(ctx context.Context) ([]Role, error)
	FindByID(ctx context.Context, id int64) (Role, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, role Role) (Role, error)
	Update(ctx context.Context, role Role) (Role, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type PostgresRoleRepository struct {
	db database.DB
}

func NewPostgresRoleRepository(db database.DB) *PostgresRoleRepository {
	return &PostgresRoleRepository{db: db}
}

const roleColumns = `id, name, description, required_skills, difficulty_level, typical_tasks, success_criteria, current_assignee_id, created_at, updated_at`

func scanRole(row database.Row) (Role, error) {
	var role Role
	var required, tasks []byte
	err := row.Scan(
		&role.ID, &role.Name, &role.Description, &required, &role.DifficultyLevel,
		&tasks, &role.SuccessCriteria, &role.CurrentAssigneeID, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		return Role{}, err
	}
	if len(required) > 0 {
		if err := json.Unmarshal(required, &role.RequiredSkills); err != nil {
			return Role{}, err
		}
	}
	if role.RequiredSkills == nil {
		role.RequiredSkills = []string{}
	}
	if len(tasks) > 0 {
		if err := json.Unmarshal(tasks, &role.TypicalTasks); err != nil {
			return Role{}, err
		}
	}
	return role, nil
}

func (r *PostgresRoleRepository) List(ctx context.Context, limit, offset int) ([]Role, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+roleColumns+` FROM roles ORDER BY id ASC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRoles(rows)
}

func (r *PostgresRoleRepository) ListAll(ctx context.Context) ([]Role, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roleColumns+` FROM roles ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRoles(rows)
}

func collectRoles(rows database.Rows) ([]Role, error) {
	out := make([]Role, 0)
	for rows.Next() {
		role, err := scanRole(rowAdapter{rows})
		if err != nil {
			return nil, err
		}
		out = append(out, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRoleRepository) FindByID(ctx context.Context, id int64) (Role, error) {
	row := r.db.QueryRow(ctx, `SELECT `+roleColumns+` FROM roles WHERE id = $1`, id)
	role, err := scanRole(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Role{}, ErrRoleNotFound
		}
		return Role{}, err
	}
	return role, nil
}

func (r *PostgresRoleRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM roles WHERE name = $1)`, name)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresRoleRepository) Create(ctx context.Context, role Role) (Role, error) {
	required, err := json.Marshal(role.RequiredSkills)
	if err != nil {
		return Role{}, err
	}
	var tasks any
	if role.TypicalTasks != nil {
		b, err := json.Marshal(role.TypicalTasks)
		if err != nil {
			return Role{}, err
		}
		tasks = b
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO roles (name, description, required_skills, difficulty_level, typical_tasks, success_criteria)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+roleColumns,
		role.Name, role.Description, required, role.DifficultyLevel, tasks, role.SuccessCriteria,
	)
	return scanRole(row)
}

func (r *PostgresRoleRepository) Update(ctx context.Context, role Role) (Role, error) {
	required, err := json.Marshal(role.RequiredSkills)
	if err != nil {
		return Role{}, err
	}
	var tasks any
	if role.TypicalTasks != nil {
		b, err := json.Marshal(role.TypicalTasks)
		if err != nil {
			return Role{}, err
		}
		tasks = b
	}

	row := r.db.QueryRow(ctx,
		`UPDATE roles
		 SET name = $1, description = $2, required_skills = $3, difficulty_level = $4,
		     typical_tasks = $5, success_criteria = $6, current_assignee_id = $7, updated_at = now()
		 WHERE id = $8
		 RETURNING `+roleColumns,
		role.Name, role.Description, required, role.DifficultyLevel, tasks, role.SuccessCriteria, role.CurrentAssigneeID, role.ID,
	)
	updated, err := scanRole(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Role{}, ErrRoleNotFound
		}
		return Role{}, err
	}
	return updated, nil
}

func (r *PostgresRoleRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRoleNotFound
	}
	return nil
}

func (r *PostgresRoleRepository) Count(ctx context.Context) (int, error) {
	var n int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM roles`)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
