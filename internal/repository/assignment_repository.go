package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"workforce/internal/database"

	"github.com/jackc/pgx/v5"
)

var ErrAssignmentNotFound = errors.New("assignment not found")

type Assignment struct {
	ID          int64
	WorkerID    int64
	RoleID      int64
	FitScore    float64
	Success     *bool
	Feedback    *string
	AssignedAt  time.Time
	CompletedAt *time.Time
}

type AssignmentRepository interface {
	// Create inserts the assignment and, in the same transaction, points the
	// worker at the role and the role at the worker.
	Create(ctx context.Context, a Assignment, roleName string) (Assignment, error)
	FindByID(ctx context.Context, id int64) (Assignment, error)
	SetFeedback(ctx context.Context, id int64, success bool, feedback *string) error
	List(ctx context.Context, limit, offset int) ([]Assignment, error)
	ListAll(ctx context.Context) ([]Assignment, error)
	Count(ctx context.Context) (int, error)
}

type PostgresAssignmentRepository struct {
	db database.DB
}

func NewPostgresAssignmentRepository(db database.DB) *PostgresAssignmentRepository {
	return &PostgresAssignmentRepository{db: db}
}

const assignmentColumns = `id, worker_id, role_id, fit_score, success, feedback, assigned_at, completed_at`

func scanAssignment(row database.Row) (Assignment, error) {
	var a Assignment
	err := row.Scan(&a.ID, &a.WorkerID, &a.RoleID, &a.FitScore, &a.Success, &a.Feedback, &a.AssignedAt, &a.CompletedAt)
	if err != nil {
		return Assignment{}, err
	}
	return a, nil
}

func (r *PostgresAssignmentRepository) Create(ctx context.Context, a Assignment, roleName string) (Assignment, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return Assignment{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	row := tx.QueryRow(ctx,
		`INSERT INTO assignments (worker_id, role_id, fit_score)
		 VALUES ($1, $2, $3)
		 RETURNING `+assignmentColumns,
		a.WorkerID, a.RoleID, a.FitScore,
	)
	created, err := scanAssignment(row)
	if err != nil {
		return Assignment{}, err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE workers SET current_role = $1, updated_at = now() WHERE id = $2`,
		roleName, a.WorkerID,
	); err != nil {
		return Assignment{}, err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE roles SET current_assignee_id = $1, updated_at = now() WHERE id = $2`,
		a.WorkerID, a.RoleID,
	); err != nil {
		return Assignment{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Assignment{}, err
	}
	return created, nil
}

func (r *PostgresAssignmentRepository) SetFeedback(ctx context.Context, id int64, success bool, feedback *string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE assignments SET success = $1, feedback = $2, completed_at = now() WHERE id = $3`,
		success, feedback, id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

func (r *PostgresAssignmentRepository) List(ctx context.Context, limit, offset int) ([]Assignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+assignmentColumns+` FROM assignments ORDER BY assigned_at DESC, id DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAssignments(rows)
}

func (r *PostgresAssignmentRepository) ListAll(ctx context.Context) ([]Assignment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+assignmentColumns+` FROM assignments ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAssignments(rows)
}

func collectAssignments(rows database.Rows) ([]Assignment, error) {
	out := make([]Assignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rowAdapter{rows})
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresAssignmentRepository) Count(ctx context.Context) (int, error) {
	var n int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM assignments`)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// FindByID is used by the feedback path to reject repeat mutations.
func (r *PostgresAssignmentRepository) FindByID(ctx context.Context, id int64) (Assignment, error) {
	row := r.db.QueryRow(ctx, `SELECT `+assignmentColumns+` FROM assignments WHERE id = $1`, id)
	a, err := scanAssignment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Assignment{}, ErrAssignmentNotFound
		}
		return Assignment{}, err
	}
	return a, nil
}
