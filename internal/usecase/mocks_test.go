package usecase

import (
	"context"
	"time"

	"workforce/internal/repository"
)

type mockWorkerRepo struct {
	workers []repository.Worker
	err     error

	updatedHours *hoursUpdate
}

type hoursUpdate struct {
	workerID     int64
	hoursPerDay  float64
	hoursPerWeek float64
	fatigueLevel float64
}

func (m *mockWorkerRepo) List(_ context.Context, limit, offset int) ([]repository.Worker, error) {
	if m.err != nil {
		return nil, m.err
	}
	if offset >= len(m.workers) {
		return []repository.Worker{}, nil
	}
	end := offset + limit
	if end > len(m.workers) {
		end = len(m.workers)
	}
	return m.workers[offset:end], nil
}

func (m *mockWorkerRepo) ListAll(context.Context) ([]repository.Worker, error) {
	return m.workers, m.err
}

func (m *mockWorkerRepo) FindByID(_ context.Context, id int64) (repository.Worker, error) {
	if m.err != nil {
		return repository.Worker{}, m.err
	}
	for _, w := range m.workers {
		if w.ID == id {
			return w, nil
		}
	}
	return repository.Worker{}, repository.ErrWorkerNotFound
}

func (m *mockWorkerRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, w := range m.workers {
		if w.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockWorkerRepo) Create(_ context.Context, w repository.Worker) (repository.Worker, error) {
	if m.err != nil {
		return repository.Worker{}, m.err
	}
	w.ID = int64(len(m.workers) + 1)
	w.CreatedAt = time.Now().UTC()
	m.workers = append(m.workers, w)
	return w, nil
}

func (m *mockWorkerRepo) Update(_ context.Context, w repository.Worker) (repository.Worker, error) {
	if m.err != nil {
		return repository.Worker{}, m.err
	}
	for i := range m.workers {
		if m.workers[i].ID == w.ID {
			m.workers[i] = w
			return w, nil
		}
	}
	return repository.Worker{}, repository.ErrWorkerNotFound
}

func (m *mockWorkerRepo) Delete(_ context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.workers {
		if m.workers[i].ID == id {
			m.workers = append(m.workers[:i], m.workers[i+1:]...)
			return nil
		}
	}
	return repository.ErrWorkerNotFound
}

func (m *mockWorkerRepo) UpdateHours(_ context.Context, id int64, hpd, hpw, fatigue float64) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.workers {
		if m.workers[i].ID == id {
			m.workers[i].HoursPerDay = hpd
			m.workers[i].HoursPerWeek = hpw
			m.workers[i].FatigueLevel = fatigue
			m.updatedHours = &hoursUpdate{workerID: id, hoursPerDay: hpd, hoursPerWeek: hpw, fatigueLevel: fatigue}
			return nil
		}
	}
	return repository.ErrWorkerNotFound
}

func (m *mockWorkerRepo) Count(context.Context) (int, error) {
	return len(m.workers), m.err
}

type mockRoleRepo struct {
	roles []repository.Role
	err   error
}

func (m *mockRoleRepo) List(_ context.Context, limit, offset int) ([]repository.Role, error) {
	return m.roles, m.err
}

func (m *mockRoleRepo) ListAll(context.Context) ([]repository.Role, error) {
	return m.roles, m.err
}

func (m *mockRoleRepo) FindByID(_ context.Context, id int64) (repository.Role, error) {
	if m.err != nil {
		return repository.Role{}, m.err
	}
	for _, r := range m.roles {
		if r.ID == id {
			return r, nil
		}
	}
	return repository.Role{}, repository.ErrRoleNotFound
}

func (m *mockRoleRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, r := range m.roles {
		if r.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRoleRepo) Create(_ context.Context, role repository.Role) (repository.Role, error) {
	if m.err != nil {
		return repository.Role{}, m.err
	}
	role.ID = int64(len(m.roles) + 1)
	role.CreatedAt = time.Now().UTC()
	m.roles = append(m.roles, role)
	return role, nil
}

func (m *mockRoleRepo) Update(_ context.Context, role repository.Role) (repository.Role, error) {
	if m.err != nil {
		return repository.Role{}, m.err
	}
	for i := range m.roles {
		if m.roles[i].ID == role.ID {
			m.roles[i] = role
			return role, nil
		}
	}
	return repository.Role{}, repository.ErrRoleNotFound
}

func (m *mockRoleRepo) Delete(_ context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.roles {
		if m.roles[i].ID == id {
			m.roles = append(m.roles[:i], m.roles[i+1:]...)
			return nil
		}
	}
	return repository.ErrRoleNotFound
}

func (m *mockRoleRepo) Count(context.Context) (int, error) {
	return len(m.roles), m.err
}

type mockAssignmentRepo struct {
	assignments []repository.Assignment
	err         error
}

func (m *mockAssignmentRepo) Create(_ context.Context, a repository.Assignment, _ string) (repository.Assignment, error) {
	if m.err != nil {
		return repository.Assignment{}, m.err
	}
	a.ID = int64(len(m.assignments) + 1)
	a.AssignedAt = time.Now().UTC()
	m.assignments = append(m.assignments, a)
	return a, nil
}

func (m *mockAssignmentRepo) FindByID(_ context.Context, id int64) (repository.Assignment, error) {
	if m.err != nil {
		return repository.Assignment{}, m.err
	}
	for _, a := range m.assignments {
		if a.ID == id {
			return a, nil
		}
	}
	return repository.Assignment{}, repository.ErrAssignmentNotFound
}

func (m *mockAssignmentRepo) SetFeedback(_ context.Context, id int64, success bool, feedback *string) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.assignments {
		if m.assignments[i].ID == id {
			now := time.Now().UTC()
			m.assignments[i].Success = &success
			m.assignments[i].Feedback = feedback
			m.assignments[i].CompletedAt = &now
			return nil
		}
	}
	return repository.ErrAssignmentNotFound
}

func (m *mockAssignmentRepo) List(_ context.Context, limit, offset int) ([]repository.Assignment, error) {
	return m.assignments, m.err
}

func (m *mockAssignmentRepo) ListAll(context.Context) ([]repository.Assignment, error) {
	return m.assignments, m.err
}

func (m *mockAssignmentRepo) Count(context.Context) (int, error) {
	return len(m.assignments), m.err
}

type mockSessionRepo struct {
	sessions []repository.WorkSession
	err      error
}

func (m *mockSessionRepo) Create(_ context.Context, s repository.WorkSession) (repository.WorkSession, error) {
	if m.err != nil {
		return repository.WorkSession{}, m.err
	}
	s.ID = int64(len(m.sessions) + 1)
	m.sessions = append(m.sessions, s)
	return s, nil
}

func (m *mockSessionRepo) FindByID(_ context.Context, id int64) (repository.WorkSession, error) {
	if m.err != nil {
		return repository.WorkSession{}, m.err
	}
	for _, s := range m.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return repository.WorkSession{}, repository.ErrSessionNotFound
}

func (m *mockSessionRepo) FindActiveByWorker(_ context.Context, workerID int64) (repository.WorkSession, error) {
	if m.err != nil {
		return repository.WorkSession{}, m.err
	}
	for _, s := range m.sessions {
		if s.WorkerID == workerID && s.ClockOut == nil {
			return s, nil
		}
	}
	return repository.WorkSession{}, repository.ErrNoActiveSession
}

func (m *mockSessionRepo) ListByWorker(_ context.Context, workerID int64, limit int) ([]repository.WorkSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []repository.WorkSession{}
	for _, s := range m.sessions {
		if s.WorkerID == workerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSessionRepo) ListCompletedByWorkerSince(_ context.Context, workerID int64, since time.Time) ([]repository.WorkSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []repository.WorkSession{}
	for _, s := range m.sessions {
		if s.WorkerID == workerID && s.ClockOut != nil && !s.ClockIn.Before(since) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSessionRepo) Update(_ context.Context, s repository.WorkSession) (repository.WorkSession, error) {
	if m.err != nil {
		return repository.WorkSession{}, m.err
	}
	for i := range m.sessions {
		if m.sessions[i].ID == s.ID {
			m.sessions[i] = s
			return s, nil
		}
	}
	return repository.WorkSession{}, repository.ErrSessionNotFound
}

type mockInvalidator struct {
	calls int
}

func (m *mockInvalidator) InvalidateAnalytics(context.Context) error {
	m.calls++
	return nil
}
