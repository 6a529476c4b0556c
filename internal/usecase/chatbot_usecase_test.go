package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"workforce/internal/repository"
)

func chatbotFixture() *Chatbot {
	workers := &mockWorkerRepo{workers: []repository.Worker{
		{ID: 1, Name: "Aiko Tanaka", Age: 34, Experience: 8, Skills: []string{"welding"}, PerformanceScore: 0.9, FatigueLevel: 0.2, HoursPerWeek: 40},
		{ID: 2, Name: "Budi Santoso", Age: 41, Experience: 15, Skills: []string{"welding", "cnc machining"}, PerformanceScore: 0.7, FatigueLevel: 0.8, HoursPerWeek: 48},
	}}
	roles := &mockRoleRepo{roles: []repository.Role{{ID: 1, Name: "Welder"}}}
	return NewChatbotUsecase(workers, roles)
}

func TestChatbot_EmptyMessage(t *testing.T) {
	uc := chatbotFixture()
	if _, err := uc.Reply(context.Background(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestChatbot_WorkerProfileByName(t *testing.T) {
	uc := chatbotFixture()
	reply, err := uc.Reply(context.Background(), "tell me about Aiko Tanaka")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if reply.Intent != "worker_profile" {
		t.Fatalf("expected worker_profile intent, got %q", reply.Intent)
	}
	if !strings.Contains(reply.Reply, "Aiko Tanaka") || !strings.Contains(reply.Reply, "welding") {
		t.Fatalf("profile reply missing details: %q", reply.Reply)
	}
}

func TestChatbot_FatigueFlagsTiredWorkers(t *testing.T) {
	uc := chatbotFixture()
	reply, err := uc.Reply(context.Background(), "who looks fatigued this week?")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if reply.Intent != "fatigue" {
		t.Fatalf("expected fatigue intent, got %q", reply.Intent)
	}
	if !strings.Contains(reply.Reply, "Budi Santoso") {
		t.Fatalf("expected fatigued worker named, got %q", reply.Reply)
	}
}

func TestChatbot_FallbackOverview(t *testing.T) {
	uc := chatbotFixture()
	reply, err := uc.Reply(context.Background(), "hello there")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if reply.Intent != "overview" {
		t.Fatalf("expected overview intent, got %q", reply.Intent)
	}
	if !strings.Contains(reply.Reply, "2 workers") {
		t.Fatalf("expected roster size in reply, got %q", reply.Reply)
	}
}

func TestChatbot_Status(t *testing.T) {
	uc := chatbotFixture()
	st := uc.Status()
	if st.Engine != "rule-based" || !st.Available {
		t.Fatalf("unexpected status: %+v", st)
	}
}
