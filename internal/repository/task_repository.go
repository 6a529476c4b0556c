package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"workforce/internal/database"

	"github.com/jackc/pgx/v5"
)

var ErrTaskNotFound = errors.New("task not found")

type Task struct {
	ID          int64
	WorkerID    int64
	RoleID      *int64
	Title       string
	Description *string
	Priority    string
	Status      string
	AssignedBy  *string
	DueDate     *time.Time
	CreatedAt   time.Time
	CompletedAt *time.Time
}

type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	FindByID(ctx context.Context, id int64) (Task, error)
	List(ctx context.Context, limit, offset int) ([]Task, error)
	ListByWorker(ctx context.Context, workerID int64, status string) ([]Task, error)
	ListOpenByWorker(ctx context.Context, workerID int64) ([]Task, error)
	Update(ctx context.Context, t Task) (Task, error)
	Delete(ctx context.Context, id int64) error
}

type PostgresTaskRepository struct {
	db database.DB
}

func NewPostgresTaskRepository(db database.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

const taskColumns = `id, worker_id, role_id, title, description, priority, status, assigned_by, due_date, created_at, completed_at`

func scanTask(row database.Row) (Task, error) {
	var t Task
	err := row.Scan(
		&t.ID, &t.WorkerID, &t.RoleID, &t.Title, &t.Description,
		&t.Priority, &t.Status, &t.AssignedBy, &t.DueDate, &t.CreatedAt, &t.CompletedAt,
	)
	if err != nil {
		return Task{}, err
	}
	return t, nil
}

func collectTasks(rows database.Rows) ([]Task, error) {
	out := make([]Task, 0)
	for rows.Next() {
		t, err := scanTask(rowAdapter{rows})
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTaskRepository) Create(ctx context.Context, t Task) (Task, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO tasks (worker_id, role_id, title, description, priority, status, assigned_by, due_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+taskColumns,
		t.WorkerID, t.RoleID, t.Title, t.Description, t.Priority, t.Status, t.AssignedBy, t.DueDate,
	)
	return scanTask(row)
}

func (r *PostgresTaskRepository) FindByID(ctx context.Context, id int64) (Task, error) {
	row := r.db.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Task{}, ErrTaskNotFound
		}
		return Task{}, err
	}
	return t, nil
}

func (r *PostgresTaskRepository) List(ctx context.Context, limit, offset int) ([]Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *PostgresTaskRepository) ListByWorker(ctx context.Context, workerID int64, status string) ([]Task, error) {
	var (
		rows database.Rows
		err  error
	)
	if status == "" {
		rows, err = r.db.Query(ctx,
			`SELECT `+taskColumns+` FROM tasks WHERE worker_id = $1 ORDER BY created_at DESC, id DESC`,
			workerID,
		)
	} else {
		rows, err = r.db.Query(ctx,
			`SELECT `+taskColumns+` FROM tasks WHERE worker_id = $1 AND status = $2 ORDER BY created_at DESC, id DESC`,
			workerID, status,
		)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *PostgresTaskRepository) ListOpenByWorker(ctx context.Context, workerID int64) ([]Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE worker_id = $1 AND status IN ('pending', 'in_progress')
		 ORDER BY created_at DESC, id DESC`,
		workerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *PostgresTaskRepository) Update(ctx context.Context, t Task) (Task, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE tasks
		 SET worker_id = $1, role_id = $2, title = $3, description = $4, priority = $5,
		     status = $6, assigned_by = $7, due_date = $8, completed_at = $9
		 WHERE id = $10
		 RETURNING `+taskColumns,
		t.WorkerID, t.RoleID, t.Title, t.Description, t.Priority, t.Status, t.AssignedBy, t.DueDate, t.CompletedAt, t.ID,
	)
	updated, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Task{}, ErrTaskNotFound
		}
		return Task{}, err
	}
	return updated, nil
}

func (r *PostgresTaskRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
