package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")

	ErrWorkerNotFound     = errors.New("worker not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrRoleNameTaken      = errors.New("role name already exists")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrSessionNotFound    = errors.New("work session not found")
	ErrNoActiveSession    = errors.New("no active work session")
	ErrAlreadyClockedIn   = errors.New("worker already clocked in")
	ErrSessionClosed      = errors.New("work session already closed")
	ErrFeedbackRecorded   = errors.New("feedback already recorded")
	ErrNoHealthData       = errors.New("no health data for worker")
)
