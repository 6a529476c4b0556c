package migration

import (
	"context"
	"errors"

	"workforce/internal/database"
)

// Schema statements are idempotent; the runner executes them in order on
// every startup under a session advisory lock so concurrent replicas do not
// race each other.
const lockKey = 831427605

var statements = []string{
	`CREATE TABLE IF NOT EXISTS workers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		age INT NOT NULL DEFAULT 0,
		experience DOUBLE PRECISION NOT NULL DEFAULT 0,
		skills JSONB NOT NULL DEFAULT '[]'::jsonb,
		fatigue_level DOUBLE PRECISION NOT NULL DEFAULT 0,
		hours_per_day DOUBLE PRECISION NOT NULL DEFAULT 8.0,
		hours_per_week DOUBLE PRECISION NOT NULL DEFAULT 40.0,
		current_role TEXT,
		performance_score DOUBLE PRECISION NOT NULL DEFAULT 0.5,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS roles (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT,
		required_skills JSONB NOT NULL DEFAULT '[]'::jsonb,
		difficulty_level DOUBLE PRECISION NOT NULL DEFAULT 0.5,
		typical_tasks JSONB,
		success_criteria TEXT,
		current_assignee_id BIGINT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS assignments (
		id BIGSERIAL PRIMARY KEY,
		worker_id BIGINT NOT NULL,
		role_id BIGINT NOT NULL,
		fit_score DOUBLE PRECISION NOT NULL,
		success BOOLEAN,
		feedback TEXT,
		assigned_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		completed_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id BIGSERIAL PRIMARY KEY,
		worker_id BIGINT NOT NULL,
		role_id BIGINT,
		title TEXT NOT NULL,
		description TEXT,
		priority TEXT NOT NULL DEFAULT 'medium',
		status TEXT NOT NULL DEFAULT 'pending',
		assigned_by TEXT,
		due_date TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		completed_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS work_sessions (
		id BIGSERIAL PRIMARY KEY,
		worker_id BIGINT NOT NULL,
		clock_in TIMESTAMPTZ NOT NULL DEFAULT now(),
		clock_out TIMESTAMPTZ,
		break_duration DOUBLE PRECISION NOT NULL DEFAULT 0,
		total_hours DOUBLE PRECISION,
		location TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS health_metrics (
		id BIGSERIAL PRIMARY KEY,
		worker_id BIGINT NOT NULL,
		heart_rate DOUBLE PRECISION,
		oxygen_level DOUBLE PRECISION,
		stress_level DOUBLE PRECISION,
		fatigue_score DOUBLE PRECISION,
		body_temperature DOUBLE PRECISION,
		steps_count INT NOT NULL DEFAULT 0,
		recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_worker_status ON tasks (worker_id, status)`,
	`CREATE INDEX IF NOT EXISTS idx_work_sessions_worker ON work_sessions (worker_id, clock_in)`,
	`CREATE INDEX IF NOT EXISTS idx_health_metrics_worker ON health_metrics (worker_id, recorded_at)`,
}

type Runner struct{}

func (Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errors.New("nil db")
	}

	if _, err := db.Exec(ctx, `SELECT pg_advisory_lock($1)`, lockKey); err != nil {
		return err
	}
	defer func() {
		_, _ = db.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, lockKey)
	}()

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
