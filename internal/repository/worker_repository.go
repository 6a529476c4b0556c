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

var ErrWorkerNotFound = errors.New("worker not found")

type Worker struct {
	ID               int64
	Name             string
	Age              int
	Experience       float64
	Skills           []string
	FatigueLevel     float64
	HoursPerDay      float64
	HoursPerWeek     float64
	CurrentRole      *string
	PerformanceScore float64
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

type WorkerRepository interface {
	List(ctx context.Context, limit, offset int) ([]Worker, error)
	ListAll(ctx context.Context) ([]Worker, error)
	FindByID(ctx context.Context, id int64) (Worker, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, w Worker) (Worker, error)
	Update(ctx context.Context, w Worker) (Worker, error)
	Delete(ctx context.Context, id int64) error
	UpdateHours(ctx context.Context, id int64, hoursPerDay, hoursPerWeek, fatigueLevel float64) error
	Count(ctx context.Context) (int, error)
}

type PostgresWorkerRepository struct {
	db database.DB
}

func NewPostgresWorkerRepository(db database.DB) *PostgresWorkerRepository {
	return &PostgresWorkerRepository{db: db}
}

const workerColumns = `id, name, age, experience, skills, fatigue_level, hours_per_day, hours_per_week, current_role, performance_score, created_at, updated_at`

func scanWorker(row database.Row) (Worker, error) {
	var w Worker
	var skills []byte
	err := row.Scan(
		&w.ID, &w.Name, &w.Age, &w.Experience, &skills,
		&w.FatigueLevel, &w.HoursPerDay, &w.HoursPerWeek,
		&w.CurrentRole, &w.PerformanceScore, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return Worker{}, err
	}
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &w.Skills); err != nil {
			return Worker{}, err
		}
	}
	if w.Skills == nil {
		w.Skills = []string{}
	}
	return w, nil
}

func (r *PostgresWorkerRepository) List(ctx context.Context, limit, offset int) ([]Worker, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+workerColumns+` FROM workers ORDER BY id ASC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Worker, 0)
	for rows.Next() {
		w, err := scanWorker(rowAdapter{rows})
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresWorkerRepository) ListAll(ctx context.Context) ([]Worker, error) {
	rows, err := r.db.Query(ctx, `SELECT `+workerColumns+` FROM workers ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Worker, 0)
	for rows.Next() {
		w, err := scanWorker(rowAdapter{rows})
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresWorkerRepository) FindByID(ctx context.Context, id int64) (Worker, error) {
	row := r.db.QueryRow(ctx, `SELECT `+workerColumns+` FROM workers WHERE id = $1`, id)
	w, err := scanWorker(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Worker{}, ErrWorkerNotFound
		}
		return Worker{}, err
	}
	return w, nil
}

func (r *PostgresWorkerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM workers WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresWorkerRepository) Create(ctx context.Context, w Worker) (Worker, error) {
	skills, err := json.Marshal(w.Skills)
	if err != nil {
		return Worker{}, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO workers (name, age, experience, skills, fatigue_level, hours_per_day, hours_per_week, current_role, performance_score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+workerColumns,
		w.Name, w.Age, w.Experience, skills, w.FatigueLevel, w.HoursPerDay, w.HoursPerWeek, w.CurrentRole, w.PerformanceScore,
	)
	return scanWorker(row)
}

func (r *PostgresWorkerRepository) Update(ctx context.Context, w Worker) (Worker, error) {
	skills, err := json.Marshal(w.Skills)
	if err != nil {
		return Worker{}, err
	}

	row := r.db.QueryRow(ctx,
		`UPDATE workers
		 SET name = $1, age = $2, experience = $3, skills = $4, fatigue_level = $5,
		     hours_per_day = $6, hours_per_week = $7, current_role = $8, performance_score = $9,
		     updated_at = now()
		 WHERE id = $10
		 RETURNING `+workerColumns,
		w.Name, w.Age, w.Experience, skills, w.FatigueLevel, w.HoursPerDay, w.HoursPerWeek, w.CurrentRole, w.PerformanceScore, w.ID,
	)
	updated, err := scanWorker(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Worker{}, ErrWorkerNotFound
		}
		return Worker{}, err
	}
	return updated, nil
}

func (r *PostgresWorkerRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrWorkerNotFound
	}
	return nil
}

func (r *PostgresWorkerRepository) UpdateHours(ctx context.Context, id int64, hoursPerDay, hoursPerWeek, fatigueLevel float64) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE workers SET hours_per_day = $1, hours_per_week = $2, fatigue_level = $3, updated_at = now() WHERE id = $4`,
		hoursPerDay, hoursPerWeek, fatigueLevel, id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrWorkerNotFound
	}
	return nil
}

func (r *PostgresWorkerRepository) Count(ctx context.Context) (int, error) {
	var n int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM workers`)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// rowAdapter lets the shared scan helpers read from an open Rows cursor.
type rowAdapter struct {
	rows database.Rows
}

func (a rowAdapter) Scan(dest ...any) error { return a.rows.Scan(dest...) }
