package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"workforce/internal/repository"
)

type ChatbotUsecase interface {
	Reply(ctx context.Context, message string) (ChatReply, error)
	Status() ChatbotStatus
}

type ChatReply struct {
	Reply  string `json:"reply"`
	Intent string `json:"intent"`
}

type ChatbotStatus struct {
	Engine    string `json:"engine"`
	Available bool   `json:"available"`
}

// Chatbot answers workforce questions with rule-based intent matching over
// live roster data. It never fabricates: every reply is built from the
// repositories at request time.
type Chatbot struct {
	workers repository.WorkerRepository
	roles   repository.RoleRepository
}

func NewChatbotUsecase(workers repository.WorkerRepository, roles repository.RoleRepository) *Chatbot {
	return &Chatbot{workers: workers, roles: roles}
}

func (u *Chatbot) Status() ChatbotStatus {
	return ChatbotStatus{Engine: "rule-based", Available: true}
}

func (u *Chatbot) Reply(ctx context.Context, message string) (ChatReply, error) {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return ChatReply{}, ErrInvalidInput
	}

	roster, err := u.workers.ListAll(ctx)
	if err != nil {
		return ChatReply{}, ErrInternal
	}

	if w, ok := matchWorkerByName(msg, roster); ok {
		return ChatReply{Reply: workerProfile(w), Intent: "worker_profile"}, nil
	}

	switch {
	case strings.Contains(msg, "fatigue") || strings.Contains(msg, "tired") || strings.Contains(msg, "rest"):
		return ChatReply{Reply: fatigueAnswer(roster), Intent: "fatigue"}, nil
	case strings.Contains(msg, "skill"):
		return ChatReply{Reply: skillAnswer(roster), Intent: "skills"}, nil
	case strings.Contains(msg, "top") || strings.Contains(msg, "best") || strings.Contains(msg, "perform"):
		return ChatReply{Reply: topPerformersAnswer(roster), Intent: "top_performers"}, nil
	}

	roleCount, err := u.roles.Count(ctx)
	if err != nil {
		return ChatReply{}, ErrInternal
	}
	reply := fmt.Sprintf(
		"The workforce currently has %d workers across %d roles. Ask me about a worker by name, or about fatigue, skills or top performers.",
		len(roster), roleCount,
	)
	return ChatReply{Reply: reply, Intent: "overview"}, nil
}

func matchWorkerByName(msg string, roster []repository.Worker) (repository.Worker, bool) {
	for _, w := range roster {
		name := strings.ToLower(strings.TrimSpace(w.Name))
		if name != "" && strings.Contains(msg, name) {
			return w, true
		}
	}
	return repository.Worker{}, false
}

func workerProfile(w repository.Worker) string {
	role := "no current role"
	if w.CurrentRole != nil && *w.CurrentRole != "" {
		role = "currently " + *w.CurrentRole
	}
	skills := "no recorded skills"
	if len(w.Skills) > 0 {
		skills = "skilled in " + strings.Join(w.Skills, ", ")
	}
	return fmt.Sprintf(
		"%s is %d years old with %.1f years of experience, %s, %s. Performance score %.2f, fatigue level %.2f, working %.1f hours per week.",
		w.Name, w.Age, w.Experience, role, skills, w.PerformanceScore, w.FatigueLevel, w.HoursPerWeek,
	)
}

func fatigueAnswer(roster []repository.Worker) string {
	if len(roster) == 0 {
		return "There are no workers on record yet."
	}
	var high []string
	var total float64
	for _, w := range roster {
		total += w.FatigueLevel
		if w.FatigueLevel >= fatigueHighFloor {
			high = append(high, w.Name)
		}
	}
	avg := total / float64(len(roster))
	if len(high) == 0 {
		return fmt.Sprintf("Fatigue levels look healthy: the average is %.2f and nobody is above the high-fatigue threshold.", avg)
	}
	sort.Strings(high)
	return fmt.Sprintf(
		"Average fatigue is %.2f. %d worker(s) are highly fatigued and should be rested: %s.",
		avg, len(high), strings.Join(high, ", "),
	)
}

func skillAnswer(roster []repository.Worker) string {
	counts := map[string]int{}
	for _, w := range roster {
		for _, s := range w.Skills {
			counts[s]++
		}
	}
	if len(counts) == 0 {
		return "No skills are recorded for the workforce yet."
	}
	type sc struct {
		skill string
		n     int
	}
	ranked := make([]sc, 0, len(counts))
	for s, n := range counts {
		ranked = append(ranked, sc{s, n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].n != ranked[j].n {
			return ranked[i].n > ranked[j].n
		}
		return ranked[i].skill < ranked[j].skill
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	parts := make([]string, 0, len(ranked))
	for _, r := range ranked {
		parts = append(parts, fmt.Sprintf("%s (%d)", r.skill, r.n))
	}
	return "Most common skills in the workforce: " + strings.Join(parts, ", ") + "."
}

func topPerformersAnswer(roster []repository.Worker) string {
	if len(roster) == 0 {
		return "There are no workers on record yet."
	}
	ranked := make([]repository.Worker, len(roster))
	copy(ranked, roster)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].PerformanceScore != ranked[j].PerformanceScore {
			return ranked[i].PerformanceScore > ranked[j].PerformanceScore
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	parts := make([]string, 0, len(ranked))
	for _, w := range ranked {
		parts = append(parts, fmt.Sprintf("%s (%.2f)", w.Name, w.PerformanceScore))
	}
	return "Top performers right now: " + strings.Join(parts, ", ") + "."
}
