package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"workforce/internal/database"

	"github.com/jackc/pgx/v5"
)

var ErrHealthMetricNotFound = errors.New("health metric not found")

type HealthMetric struct {
	ID              int64
	WorkerID        int64
	HeartRate       *float64
	OxygenLevel     *float64
	StressLevel     *float64
	FatigueScore    *float64
	BodyTemperature *float64
	StepsCount      int
	RecordedAt      time.Time
}

type HealthRepository interface {
	Create(ctx context.Context, m HealthMetric) (HealthMetric, error)
	ListByWorker(ctx context.Context, workerID int64, limit int) ([]HealthMetric, error)
	LatestByWorker(ctx context.Context, workerID int64) (HealthMetric, error)
}

type PostgresHealthRepository struct {
	db database.DB
}

func NewPostgresHealthRepository(db database.DB) *PostgresHealthRepository {
	return &PostgresHealthRepository{db: db}
}

const healthColumns = `id, worker_id, heart_rate, oxygen_level, stress_level, fatigue_score, body_temperature, steps_count, recorded_at`

func scanHealthMetric(row database.Row) (HealthMetric, error) {
	var m HealthMetric
	err := row.Scan(
		&m.ID, &m.WorkerID, &m.HeartRate, &m.OxygenLevel, &m.StressLevel,
		&m.FatigueScore, &m.BodyTemperature, &m.StepsCount, &m.RecordedAt,
	)
	if err != nil {
		return HealthMetric{}, err
	}
	return m, nil
}

func (r *PostgresHealthRepository) Create(ctx context.Context, m HealthMetric) (HealthMetric, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO health_metrics (worker_id, heart_rate, oxygen_level, stress_level, fatigue_score, body_temperature, steps_count)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+healthColumns,
		m.WorkerID, m.HeartRate, m.OxygenLevel, m.StressLevel, m.FatigueScore, m.BodyTemperature, m.StepsCount,
	)
	return scanHealthMetric(row)
}

func (r *PostgresHealthRepository) ListByWorker(ctx context.Context, workerID int64, limit int) ([]HealthMetric, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+healthColumns+` FROM health_metrics
		 WHERE worker_id = $1 ORDER BY recorded_at DESC LIMIT $2`,
		workerID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]HealthMetric, 0)
	for rows.Next() {
		m, err := scanHealthMetric(rowAdapter{rows})
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresHealthRepository) LatestByWorker(ctx context.Context, workerID int64) (HealthMetric, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+healthColumns+` FROM health_metrics
		 WHERE worker_id = $1 ORDER BY recorded_at DESC LIMIT 1`,
		workerID,
	)
	m, err := scanHealthMetric(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return HealthMetric{}, ErrHealthMetricNotFound
		}
		return HealthMetric{}, err
	}
	return m, nil
}
