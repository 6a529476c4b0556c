package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"workforce/internal/repository"
)

type mockHealthRepo struct {
	metrics []repository.HealthMetric
	err     error
}

func (m *mockHealthRepo) Create(_ context.Context, metric repository.HealthMetric) (repository.HealthMetric, error) {
	if m.err != nil {
		return repository.HealthMetric{}, m.err
	}
	metric.ID = int64(len(m.metrics) + 1)
	metric.RecordedAt = time.Now().UTC()
	m.metrics = append(m.metrics, metric)
	return metric, nil
}

func (m *mockHealthRepo) ListByWorker(_ context.Context, workerID int64, limit int) ([]repository.HealthMetric, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []repository.HealthMetric{}
	for _, metric := range m.metrics {
		if metric.WorkerID == workerID {
			out = append(out, metric)
		}
	}
	return out, nil
}

func (m *mockHealthRepo) LatestByWorker(_ context.Context, workerID int64) (repository.HealthMetric, error) {
	if m.err != nil {
		return repository.HealthMetric{}, m.err
	}
	for i := len(m.metrics) - 1; i >= 0; i-- {
		if m.metrics[i].WorkerID == workerID {
			return m.metrics[i], nil
		}
	}
	return repository.HealthMetric{}, repository.ErrHealthMetricNotFound
}

func healthFixture() (*Health, *mockHealthRepo, *mockWorkerRepo) {
	repo := &mockHealthRepo{}
	workers := &mockWorkerRepo{workers: []repository.Worker{
		{ID: 1, Name: "Aiko", HoursPerDay: 8, HoursPerWeek: 40},
	}}
	return NewHealthUsecase(repo, workers), repo, workers
}

func TestWorkerSummary_AlertThresholds(t *testing.T) {
	uc, repo, _ := healthFixture()

	hr := 110.0
	spo2 := 93.0
	stress := 75.0
	temp := 38.6
	repo.metrics = []repository.HealthMetric{{
		ID: 1, WorkerID: 1,
		HeartRate: &hr, OxygenLevel: &spo2, StressLevel: &stress, BodyTemperature: &temp,
	}}

	summary, err := uc.WorkerSummary(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(summary.Alerts) != 4 {
		t.Fatalf("expected 4 alerts, got %d: %+v", len(summary.Alerts), summary.Alerts)
	}

	critical := 0
	for _, a := range summary.Alerts {
		if a.Severity == AlertSeverityCritical {
			critical++
			if !strings.Contains(a.Message, "temperature") {
				t.Fatalf("unexpected critical alert: %q", a.Message)
			}
		}
	}
	if critical != 1 {
		t.Fatalf("expected exactly 1 critical alert, got %d", critical)
	}
}

func TestWorkerSummary_WorkloadNotesWithoutReadings(t *testing.T) {
	uc, _, workers := healthFixture()
	workers.workers[0].HoursPerDay = 9
	workers.workers[0].HoursPerWeek = 47

	summary, err := uc.WorkerSummary(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if summary.Latest != nil {
		t.Fatalf("expected no latest reading")
	}
	if len(summary.Notes) != 2 {
		t.Fatalf("expected 2 workload notes, got %d: %v", len(summary.Notes), summary.Notes)
	}
	if len(summary.Alerts) != 0 {
		t.Fatalf("expected no alerts without readings, got %+v", summary.Alerts)
	}
}

func TestLatestMetric_NoData(t *testing.T) {
	uc, _, _ := healthFixture()
	if _, err := uc.LatestMetric(context.Background(), 1); !errors.Is(err, ErrNoHealthData) {
		t.Fatalf("expected ErrNoHealthData, got %v", err)
	}
}

func TestDashboard_CountsAlertsAcrossWorkers(t *testing.T) {
	uc, repo, workers := healthFixture()
	workers.workers = append(workers.workers, repository.Worker{ID: 2, Name: "Budi"})

	hr := 120.0
	temp := 35.0
	repo.metrics = []repository.HealthMetric{
		{ID: 1, WorkerID: 1, HeartRate: &hr},
		{ID: 2, WorkerID: 2, BodyTemperature: &temp},
	}

	dash, err := uc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if dash.WorkersMonitored != 2 || dash.WorkersWithData != 2 {
		t.Fatalf("unexpected coverage: %+v", dash)
	}
	if dash.ActiveAlerts != 2 || dash.CriticalAlerts != 1 {
		t.Fatalf("unexpected alert counts: %+v", dash)
	}
}

func TestRecordMetric_Validation(t *testing.T) {
	uc, _, _ := healthFixture()

	neg := -1.0
	if _, err := uc.RecordMetric(context.Background(), RecordMetricInput{WorkerID: 1, HeartRate: &neg}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.RecordMetric(context.Background(), RecordMetricInput{WorkerID: 5}); !errors.Is(err, ErrWorkerNotFound) {
		t.Fatalf("expected ErrWorkerNotFound, got %v", err)
	}
}
