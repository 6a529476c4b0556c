package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"workforce/internal/database"

	"github.com/jackc/pgx/v5"
)

var (
	ErrSessionNotFound = errors.New("work session not found")
	ErrNoActiveSession = errors.New("no active work session")
)

type WorkSession struct {
	ID            int64
	WorkerID      int64
	ClockIn       time.Time
	ClockOut      *time.Time
	BreakDuration float64
	TotalHours    *float64
	Location      *string
}

type SessionRepository interface {
	Create(ctx context.Context, s WorkSession) (WorkSession, error)
	FindByID(ctx context.Context, id int64) (WorkSession, error)
	FindActiveByWorker(ctx context.Context, workerID int64) (WorkSession, error)
	ListByWorker(ctx context.Context, workerID int64, limit int) ([]WorkSession, error)
	ListCompletedByWorkerSince(ctx context.Context, workerID int64, since time.Time) ([]WorkSession, error)
	Update(ctx context.Context, s WorkSession) (WorkSession, error)
}

type PostgresSessionRepository struct {
	db database.DB
}

func NewPostgresSessionRepository(db database.DB) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

const sessionColumns = `id, worker_id, clock_in, clock_out, break_duration, total_hours, location`

func scanSession(row database.Row) (WorkSession, error) {
	var s WorkSession
	err := row.Scan(&s.ID, &s.WorkerID, &s.ClockIn, &s.ClockOut, &s.BreakDuration, &s.TotalHours, &s.Location)
	if err != nil {
		return WorkSession{}, err
	}
	return s, nil
}

func collectSessions(rows database.Rows) ([]WorkSession, error) {
	out := make([]WorkSession, 0)
	for rows.Next() {
		s, err := scanSession(rowAdapter{rows})
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSessionRepository) Create(ctx context.Context, s WorkSession) (WorkSession, error) {
	clockIn := s.ClockIn
	if clockIn.IsZero() {
		clockIn = time.Now().UTC()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO work_sessions (worker_id, clock_in, location)
		 VALUES ($1, $2, $3)
		 RETURNING `+sessionColumns,
		s.WorkerID, clockIn, s.Location,
	)
	return scanSession(row)
}

func (r *PostgresSessionRepository) FindByID(ctx context.Context, id int64) (WorkSession, error) {
	row := r.db.QueryRow(ctx, `SELECT `+sessionColumns+` FROM work_sessions WHERE id = $1`, id)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return WorkSession{}, ErrSessionNotFound
		}
		return WorkSession{}, err
	}
	return s, nil
}

func (r *PostgresSessionRepository) FindActiveByWorker(ctx context.Context, workerID int64) (WorkSession, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM work_sessions
		 WHERE worker_id = $1 AND clock_out IS NULL
		 ORDER BY clock_in DESC LIMIT 1`,
		workerID,
	)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return WorkSession{}, ErrNoActiveSession
		}
		return WorkSession{}, err
	}
	return s, nil
}

func (r *PostgresSessionRepository) ListByWorker(ctx context.Context, workerID int64, limit int) ([]WorkSession, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+sessionColumns+` FROM work_sessions
		 WHERE worker_id = $1 ORDER BY clock_in DESC LIMIT $2`,
		workerID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSessions(rows)
}

func (r *PostgresSessionRepository) ListCompletedByWorkerSince(ctx context.Context, workerID int64, since time.Time) ([]WorkSession, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+sessionColumns+` FROM work_sessions
		 WHERE worker_id = $1 AND clock_out IS NOT NULL AND clock_in >= $2
		 ORDER BY clock_in DESC`,
		workerID, since,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSessions(rows)
}

func (r *PostgresSessionRepository) Update(ctx context.Context, s WorkSession) (WorkSession, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE work_sessions
		 SET clock_out = $1, break_duration = $2, total_hours = $3, location = $4
		 WHERE id = $5
		 RETURNING `+sessionColumns,
		s.ClockOut, s.BreakDuration, s.TotalHours, s.Location, s.ID,
	)
	updated, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return WorkSession{}, ErrSessionNotFound
		}
		return WorkSession{}, err
	}
	return updated, nil
}
