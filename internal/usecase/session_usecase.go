package usecase

import (
	"context"
	"errors"
	"time"

	"workforce/internal/domain/scoring"
	"workforce/internal/repository"
)

type SessionUsecase interface {
	ClockIn(ctx context.Context, workerID int64, location *string) (repository.WorkSession, error)
	ClockOut(ctx context.Context, sessionID int64, breakHours float64) (repository.WorkSession, error)
	ActiveSession(ctx context.Context, workerID int64) (repository.WorkSession, error)
	WorkerSessions(ctx context.Context, workerID int64, limit int) ([]repository.WorkSession, error)
	WorkerHoursReport(ctx context.Context, workerID int64) (HoursReport, error)
	AllWorkersHoursReport(ctx context.Context) ([]HoursReport, error)
}

// HoursReport aggregates a worker's completed sessions into the windows the
// compliance dashboard shows. Overtime counts hours beyond the 40-hour week.
type HoursReport struct {
	WorkerID      int64   `json:"worker_id"`
	WorkerName    string  `json:"worker_name"`
	HoursToday    float64 `json:"hours_today"`
	HoursThisWeek float64 `json:"hours_this_week"`
	HoursMonth    float64 `json:"hours_this_month"`
	OvertimeHours float64 `json:"overtime_hours"`
	Status        string  `json:"status"`
}

const (
	standardWorkWeek    = 40.0
	approachingLimitCap = 45.0

	HoursStatusNormal      = "Normal"
	HoursStatusApproaching = "Approaching Limit"
	HoursStatusOvertime    = "Overtime"
)

type Sessions struct {
	repo    repository.SessionRepository
	workers repository.WorkerRepository
	cache   AnalyticsInvalidator

	now func() time.Time
}

func NewSessionUsecase(repo repository.SessionRepository, workers repository.WorkerRepository, cache AnalyticsInvalidator) *Sessions {
	return &Sessions{repo: repo, workers: workers, cache: cache, now: time.Now}
}

func (u *Sessions) ClockIn(ctx context.Context, workerID int64, location *string) (repository.WorkSession, error) {
	if workerID <= 0 {
		return repository.WorkSession{}, ErrInvalidInput
	}
	exists, err := u.workers.ExistsByID(ctx, workerID)
	if err != nil {
		return repository.WorkSession{}, ErrInternal
	}
	if !exists {
		return repository.WorkSession{}, ErrWorkerNotFound
	}

	_, err = u.repo.FindActiveByWorker(ctx, workerID)
	switch {
	case err == nil:
		return repository.WorkSession{}, ErrAlreadyClockedIn
	case !errors.Is(err, repository.ErrNoActiveSession):
		return repository.WorkSession{}, ErrInternal
	}

	created, err := u.repo.Create(ctx, repository.WorkSession{
		WorkerID: workerID,
		ClockIn:  u.now().UTC(),
		Location: location,
	})
	if err != nil {
		return repository.WorkSession{}, ErrInternal
	}
	return created, nil
}

func (u *Sessions) ClockOut(ctx context.Context, sessionID int64, breakHours float64) (repository.WorkSession, error) {
	if sessionID <= 0 || breakHours < 0 {
		return repository.WorkSession{}, ErrInvalidInput
	}

	s, err := u.repo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return repository.WorkSession{}, ErrSessionNotFound
		}
		return repository.WorkSession{}, ErrInternal
	}
	if s.ClockOut != nil {
		return repository.WorkSession{}, ErrSessionClosed
	}

	out := u.now().UTC()
	worked := out.Sub(s.ClockIn).Hours() - breakHours
	if worked < 0 {
		worked = 0
	}

	s.ClockOut = &out
	s.BreakDuration = breakHours
	s.TotalHours = &worked

	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return repository.WorkSession{}, ErrSessionNotFound
		}
		return repository.WorkSession{}, ErrInternal
	}

	if err := u.refreshWorkerHours(ctx, s.WorkerID); err != nil {
		return repository.WorkSession{}, err
	}
	if u.cache != nil {
		_ = u.cache.InvalidateAnalytics(ctx)
	}
	return updated, nil
}

// refreshWorkerHours recomputes the worker's tracked day and week hours from
// completed sessions so the fit engine scores against real fatigue.
func (u *Sessions) refreshWorkerHours(ctx context.Context, workerID int64) error {
	now := u.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := startOfWeek(now)

	sessions, err := u.repo.ListCompletedByWorkerSince(ctx, workerID, weekStart)
	if err != nil {
		return ErrInternal
	}

	var dayHours, weekHours float64
	for _, s := range sessions {
		if s.TotalHours == nil {
			continue
		}
		weekHours += *s.TotalHours
		if !s.ClockIn.Before(dayStart) {
			dayHours += *s.TotalHours
		}
	}

	fatigue := scoring.Fatigue(dayHours, weekHours)
	if err := u.workers.UpdateHours(ctx, workerID, dayHours, weekHours, fatigue); err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return ErrWorkerNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Sessions) ActiveSession(ctx context.Context, workerID int64) (repository.WorkSession, error) {
	if workerID <= 0 {
		return repository.WorkSession{}, ErrInvalidInput
	}
	s, err := u.repo.FindActiveByWorker(ctx, workerID)
	if err != nil {
		if errors.Is(err, repository.ErrNoActiveSession) {
			return repository.WorkSession{}, ErrNoActiveSession
		}
		return repository.WorkSession{}, ErrInternal
	}
	return s, nil
}

func (u *Sessions) WorkerSessions(ctx context.Context, workerID int64, limit int) ([]repository.WorkSession, error) {
	if workerID <= 0 {
		return nil, ErrInvalidInput
	}
	if limit <= 0 {
		limit = 30
	}
	items, err := u.repo.ListByWorker(ctx, workerID, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Sessions) WorkerHoursReport(ctx context.Context, workerID int64) (HoursReport, error) {
	if workerID <= 0 {
		return HoursReport{}, ErrInvalidInput
	}
	w, err := u.workers.FindByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return HoursReport{}, ErrWorkerNotFound
		}
		return HoursReport{}, ErrInternal
	}
	return u.buildHoursReport(ctx, w)
}

func (u *Sessions) AllWorkersHoursReport(ctx context.Context) ([]HoursReport, error) {
	roster, err := u.workers.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]HoursReport, 0, len(roster))
	for _, w := range roster {
		report, err := u.buildHoursReport(ctx, w)
		if err != nil {
			return nil, err
		}
		out = append(out, report)
	}
	return out, nil
}

func (u *Sessions) buildHoursReport(ctx context.Context, w repository.Worker) (HoursReport, error) {
	now := u.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := startOfWeek(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	since := monthStart
	if weekStart.Before(since) {
		since = weekStart
	}

	sessions, err := u.repo.ListCompletedByWorkerSince(ctx, w.ID, since)
	if err != nil {
		return HoursReport{}, ErrInternal
	}

	report := HoursReport{WorkerID: w.ID, WorkerName: w.Name}
	for _, s := range sessions {
		if s.TotalHours == nil {
			continue
		}
		h := *s.TotalHours
		if !s.ClockIn.Before(monthStart) {
			report.HoursMonth += h
		}
		if !s.ClockIn.Before(weekStart) {
			report.HoursThisWeek += h
		}
		if !s.ClockIn.Before(dayStart) {
			report.HoursToday += h
		}
	}

	if report.HoursThisWeek > standardWorkWeek {
		report.OvertimeHours = report.HoursThisWeek - standardWorkWeek
	}
	switch {
	case report.HoursThisWeek > approachingLimitCap:
		report.Status = HoursStatusOvertime
	case report.HoursThisWeek > standardWorkWeek:
		report.Status = HoursStatusApproaching
	default:
		report.Status = HoursStatusNormal
	}
	return report, nil
}

// startOfWeek returns the preceding Monday at midnight UTC.
func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
