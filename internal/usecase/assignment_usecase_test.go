package usecase

import (
	"context"
	"errors"
	"testing"

	"workforce/internal/repository"
)

func assignmentFixture() (*Assignments, *mockAssignmentRepo) {
	assignments := &mockAssignmentRepo{}
	workers := &mockWorkerRepo{workers: []repository.Worker{{ID: 1, Name: "Aiko"}}}
	roles := &mockRoleRepo{roles: []repository.Role{{ID: 1, Name: "CNC Machinist", RequiredSkills: []string{"cnc machining"}}}}
	return NewAssignmentUsecase(assignments, workers, roles, &mockInvalidator{}), assignments
}

func TestCreateAssignment_ClampsFitScore(t *testing.T) {
	uc, _ := assignmentFixture()

	created, err := uc.CreateAssignment(context.Background(), CreateAssignmentInput{WorkerID: 1, RoleID: 1, FitScore: 1.7})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.FitScore != 1.0 {
		t.Fatalf("expected clamped fit 1.0, got %v", created.FitScore)
	}
}

func TestCreateAssignment_UnknownWorkerOrRole(t *testing.T) {
	uc, _ := assignmentFixture()

	if _, err := uc.CreateAssignment(context.Background(), CreateAssignmentInput{WorkerID: 9, RoleID: 1}); !errors.Is(err, ErrWorkerNotFound) {
		t.Fatalf("expected ErrWorkerNotFound, got %v", err)
	}
	if _, err := uc.CreateAssignment(context.Background(), CreateAssignmentInput{WorkerID: 1, RoleID: 9}); !errors.Is(err, ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestRecordFeedback_WriteOnce(t *testing.T) {
	uc, _ := assignmentFixture()

	created, err := uc.CreateAssignment(context.Background(), CreateAssignmentInput{WorkerID: 1, RoleID: 1, FitScore: 0.8})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	note := "handled the role well"
	updated, err := uc.RecordFeedback(context.Background(), created.ID, true, &note)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Success == nil || !*updated.Success {
		t.Fatalf("expected success recorded")
	}
	if updated.CompletedAt == nil {
		t.Fatalf("expected completion timestamp")
	}

	_, err = uc.RecordFeedback(context.Background(), created.ID, false, nil)
	if !errors.Is(err, ErrFeedbackRecorded) {
		t.Fatalf("expected ErrFeedbackRecorded, got %v", err)
	}
}
