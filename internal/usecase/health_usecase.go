package usecase

import (
	"context"
	"errors"
	"fmt"

	"workforce/internal/repository"
)

type HealthUsecase interface {
	RecordMetric(ctx context.Context, in RecordMetricInput) (repository.HealthMetric, error)
	RecentMetrics(ctx context.Context, workerID int64, limit int) ([]repository.HealthMetric, error)
	LatestMetric(ctx context.Context, workerID int64) (repository.HealthMetric, error)
	WorkerSummary(ctx context.Context, workerID int64) (HealthSummary, error)
	Dashboard(ctx context.Context) (HealthDashboard, error)
}

type RecordMetricInput struct {
	WorkerID        int64
	HeartRate       *float64
	OxygenLevel     *float64
	StressLevel     *float64
	FatigueScore    *float64
	BodyTemperature *float64
	StepsCount      int
}

type HealthAlert struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type HealthSummary struct {
	WorkerID   int64                    `json:"worker_id"`
	WorkerName string                   `json:"worker_name"`
	Latest     *repository.HealthMetric `json:"latest"`
	Alerts     []HealthAlert            `json:"alerts"`
	Notes      []string                 `json:"notes"`
}

type HealthDashboard struct {
	WorkersMonitored int           `json:"workers_monitored"`
	WorkersWithData  int           `json:"workers_with_data"`
	ActiveAlerts     int           `json:"active_alerts"`
	CriticalAlerts   int           `json:"critical_alerts"`
	Alerts           []HealthAlert `json:"alerts"`
}

const (
	AlertSeverityWarning  = "Warning"
	AlertSeverityCritical = "Critical"

	heartRateAlertFloor   = 100.0
	oxygenAlertCeiling    = 95.0
	stressAlertFloor      = 70.0
	fatigueAlertFloor     = 70.0
	bodyTempLowCelsius    = 36.0
	bodyTempHighCelsius   = 38.0
	dailyHoursNoteFloor   = 8.0
	weeklyHoursNoteFloor  = 45.0
	defaultMetricsHistory = 20
)

type Health struct {
	repo    repository.HealthRepository
	workers repository.WorkerRepository
}

func NewHealthUsecase(repo repository.HealthRepository, workers repository.WorkerRepository) *Health {
	return &Health{repo: repo, workers: workers}
}

func (u *Health) RecordMetric(ctx context.Context, in RecordMetricInput) (repository.HealthMetric, error) {
	if in.WorkerID <= 0 || in.StepsCount < 0 {
		return repository.HealthMetric{}, ErrInvalidInput
	}
	for _, v := range []*float64{in.HeartRate, in.OxygenLevel, in.StressLevel, in.FatigueScore} {
		if v != nil && *v < 0 {
			return repository.HealthMetric{}, ErrInvalidInput
		}
	}

	exists, err := u.workers.ExistsByID(ctx, in.WorkerID)
	if err != nil {
		return repository.HealthMetric{}, ErrInternal
	}
	if !exists {
		return repository.HealthMetric{}, ErrWorkerNotFound
	}

	created, err := u.repo.Create(ctx, repository.HealthMetric{
		WorkerID:        in.WorkerID,
		HeartRate:       in.HeartRate,
		OxygenLevel:     in.OxygenLevel,
		StressLevel:     in.StressLevel,
		FatigueScore:    in.FatigueScore,
		BodyTemperature: in.BodyTemperature,
		StepsCount:      in.StepsCount,
	})
	if err != nil {
		return repository.HealthMetric{}, ErrInternal
	}
	return created, nil
}

func (u *Health) RecentMetrics(ctx context.Context, workerID int64, limit int) ([]repository.HealthMetric, error) {
	if workerID <= 0 {
		return nil, ErrInvalidInput
	}
	if limit <= 0 {
		limit = defaultMetricsHistory
	}
	items, err := u.repo.ListByWorker(ctx, workerID, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Health) LatestMetric(ctx context.Context, workerID int64) (repository.HealthMetric, error) {
	if workerID <= 0 {
		return repository.HealthMetric{}, ErrInvalidInput
	}
	m, err := u.repo.LatestByWorker(ctx, workerID)
	if err != nil {
		if errors.Is(err, repository.ErrHealthMetricNotFound) {
			return repository.HealthMetric{}, ErrNoHealthData
		}
		return repository.HealthMetric{}, ErrInternal
	}
	return m, nil
}

func (u *Health) WorkerSummary(ctx context.Context, workerID int64) (HealthSummary, error) {
	if workerID <= 0 {
		return HealthSummary{}, ErrInvalidInput
	}
	w, err := u.workers.FindByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return HealthSummary{}, ErrWorkerNotFound
		}
		return HealthSummary{}, ErrInternal
	}

	summary := HealthSummary{
		WorkerID:   w.ID,
		WorkerName: w.Name,
		Alerts:     []HealthAlert{},
		Notes:      []string{},
	}

	latest, err := u.repo.LatestByWorker(ctx, workerID)
	switch {
	case err == nil:
		summary.Latest = &latest
		summary.Alerts = evaluateAlerts(w.Name, latest)
	case errors.Is(err, repository.ErrHealthMetricNotFound):
		// no readings yet; workload notes below still apply
	default:
		return HealthSummary{}, ErrInternal
	}

	if w.HoursPerDay > dailyHoursNoteFloor {
		summary.Notes = append(summary.Notes,
			fmt.Sprintf("%s works %.1f hours per day, above the recommended 8.", w.Name, w.HoursPerDay))
	}
	if w.HoursPerWeek > weeklyHoursNoteFloor {
		summary.Notes = append(summary.Notes,
			fmt.Sprintf("%s works %.1f hours per week, above the recommended 45.", w.Name, w.HoursPerWeek))
	}
	return summary, nil
}

func (u *Health) Dashboard(ctx context.Context) (HealthDashboard, error) {
	roster, err := u.workers.ListAll(ctx)
	if err != nil {
		return HealthDashboard{}, ErrInternal
	}

	dash := HealthDashboard{
		WorkersMonitored: len(roster),
		Alerts:           []HealthAlert{},
	}
	for _, w := range roster {
		latest, err := u.repo.LatestByWorker(ctx, w.ID)
		if err != nil {
			if errors.Is(err, repository.ErrHealthMetricNotFound) {
				continue
			}
			return HealthDashboard{}, ErrInternal
		}
		dash.WorkersWithData++
		for _, alert := range evaluateAlerts(w.Name, latest) {
			dash.Alerts = append(dash.Alerts, alert)
			dash.ActiveAlerts++
			if alert.Severity == AlertSeverityCritical {
				dash.CriticalAlerts++
			}
		}
	}
	return dash, nil
}

func evaluateAlerts(workerName string, m repository.HealthMetric) []HealthAlert {
	alerts := []HealthAlert{}
	if m.HeartRate != nil && *m.HeartRate > heartRateAlertFloor {
		alerts = append(alerts, HealthAlert{
			Severity: AlertSeverityWarning,
			Message:  fmt.Sprintf("%s has an elevated heart rate (%.0f bpm).", workerName, *m.HeartRate),
		})
	}
	if m.OxygenLevel != nil && *m.OxygenLevel < oxygenAlertCeiling {
		alerts = append(alerts, HealthAlert{
			Severity: AlertSeverityWarning,
			Message:  fmt.Sprintf("%s has a low blood oxygen level (%.0f%%).", workerName, *m.OxygenLevel),
		})
	}
	if m.StressLevel != nil && *m.StressLevel > stressAlertFloor {
		alerts = append(alerts, HealthAlert{
			Severity: AlertSeverityWarning,
			Message:  fmt.Sprintf("%s has a high stress level (%.0f).", workerName, *m.StressLevel),
		})
	}
	if m.FatigueScore != nil && *m.FatigueScore > fatigueAlertFloor {
		alerts = append(alerts, HealthAlert{
			Severity: AlertSeverityWarning,
			Message:  fmt.Sprintf("%s has a high fatigue score (%.0f).", workerName, *m.FatigueScore),
		})
	}
	if m.BodyTemperature != nil && (*m.BodyTemperature < bodyTempLowCelsius || *m.BodyTemperature > bodyTempHighCelsius) {
		alerts = append(alerts, HealthAlert{
			Severity: AlertSeverityCritical,
			Message:  fmt.Sprintf("%s has an abnormal body temperature (%.1f°C).", workerName, *m.BodyTemperature),
		})
	}
	return alerts
}
