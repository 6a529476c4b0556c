package usecase

import (
	"context"
	"sort"
	"time"

	"workforce/internal/domain/scoring"
	"workforce/internal/infrastructure/cache"
	"workforce/internal/pkg/metrics"
	"workforce/internal/repository"
)

// AnalyticsCache is the slice of the redis wrapper the analytics layer needs.
type AnalyticsCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateAnalytics(ctx context.Context) error
}

// AnalyticsInvalidator is implemented by the cache; write paths call it so
// cached analytics never outlive the data they summarize.
type AnalyticsInvalidator interface {
	InvalidateAnalytics(ctx context.Context) error
}

type AnalyticsUsecase interface {
	Overview(ctx context.Context) (OverviewReport, error)
	SkillGap(ctx context.Context) (scoring.SkillGapReport, error)
}

type FatigueBreakdown struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

type HoursBreakdown struct {
	Normal   int `json:"normal"`
	Moderate int `json:"moderate"`
	HighRisk int `json:"high_risk"`
}

type TopPerformer struct {
	WorkerID         int64   `json:"worker_id"`
	Name             string  `json:"name"`
	PerformanceScore float64 `json:"performance_score"`
}

type OverviewReport struct {
	TotalWorkers        int              `json:"total_workers"`
	TotalRoles          int              `json:"total_roles"`
	TotalAssignments    int              `json:"total_assignments"`
	AverageFitScore     float64          `json:"average_fit_score"`
	SuccessRate         float64          `json:"success_rate"`
	AverageHoursPerWeek float64          `json:"average_hours_per_week"`
	FatigueBreakdown    FatigueBreakdown `json:"fatigue_breakdown"`
	HoursBreakdown      HoursBreakdown   `json:"hours_breakdown"`
	TopPerformers       []TopPerformer   `json:"top_performers"`
	SkillsDistribution  map[string]int   `json:"skills_distribution"`
}

type Analytics struct {
	workers     repository.WorkerRepository
	roles       repository.RoleRepository
	assignments repository.AssignmentRepository
	cache       AnalyticsCache
}

func NewAnalyticsUsecase(
	workers repository.WorkerRepository,
	roles repository.RoleRepository,
	assignments repository.AssignmentRepository,
	c AnalyticsCache,
) *Analytics {
	return &Analytics{workers: workers, roles: roles, assignments: assignments, cache: c}
}

const (
	fatigueLowCeiling  = 0.3
	fatigueHighFloor   = 0.7
	hoursModerateFloor = 40.0
	hoursHighRiskFloor = 48.0
	topPerformerCount  = 5
)

func (u *Analytics) Overview(ctx context.Context) (OverviewReport, error) {
	if u.cache != nil {
		var cached OverviewReport
		if hit, err := u.cache.GetJSON(ctx, cache.KeyAnalyticsOverview, &cached); err == nil && hit {
			return cached, nil
		}
	}

	roster, err := u.workers.ListAll(ctx)
	if err != nil {
		return OverviewReport{}, ErrInternal
	}
	roleCount, err := u.roles.Count(ctx)
	if err != nil {
		return OverviewReport{}, ErrInternal
	}
	allAssignments, err := u.assignments.ListAll(ctx)
	if err != nil {
		return OverviewReport{}, ErrInternal
	}

	report := OverviewReport{
		TotalWorkers:       len(roster),
		TotalRoles:         roleCount,
		TotalAssignments:   len(allAssignments),
		TopPerformers:      []TopPerformer{},
		SkillsDistribution: map[string]int{},
	}

	var fitSum float64
	var succeeded, resolved int
	for _, a := range allAssignments {
		fitSum += a.FitScore
		if a.Success != nil {
			resolved++
			if *a.Success {
				succeeded++
			}
		}
	}
	if len(allAssignments) > 0 {
		report.AverageFitScore = fitSum / float64(len(allAssignments))
	}
	if resolved > 0 {
		report.SuccessRate = float64(succeeded) / float64(resolved)
	}

	var totalHours float64
	for _, w := range roster {
		totalHours += w.HoursPerWeek

		switch {
		case w.FatigueLevel >= fatigueHighFloor:
			report.FatigueBreakdown.High++
		case w.FatigueLevel >= fatigueLowCeiling:
			report.FatigueBreakdown.Medium++
		default:
			report.FatigueBreakdown.Low++
		}

		switch {
		case w.HoursPerWeek >= hoursHighRiskFloor:
			report.HoursBreakdown.HighRisk++
		case w.HoursPerWeek >= hoursModerateFloor:
			report.HoursBreakdown.Moderate++
		default:
			report.HoursBreakdown.Normal++
		}

		for _, s := range scoring.NormalizeSkills(w.Skills) {
			report.SkillsDistribution[s]++
		}
	}
	if len(roster) > 0 {
		report.AverageHoursPerWeek = totalHours / float64(len(roster))
	}

	ranked := make([]repository.Worker, len(roster))
	copy(ranked, roster)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].PerformanceScore != ranked[j].PerformanceScore {
			return ranked[i].PerformanceScore > ranked[j].PerformanceScore
		}
		return ranked[i].ID < ranked[j].ID
	})
	for i := 0; i < len(ranked) && i < topPerformerCount; i++ {
		report.TopPerformers = append(report.TopPerformers, TopPerformer{
			WorkerID:         ranked[i].ID,
			Name:             ranked[i].Name,
			PerformanceScore: ranked[i].PerformanceScore,
		})
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cache.KeyAnalyticsOverview, report, 0)
	}
	return report, nil
}

func (u *Analytics) SkillGap(ctx context.Context) (scoring.SkillGapReport, error) {
	if u.cache != nil {
		var cached scoring.SkillGapReport
		if hit, err := u.cache.GetJSON(ctx, cache.KeyAnalyticsSkillGap, &cached); err == nil && hit {
			return cached, nil
		}
	}

	roster, err := u.workers.ListAll(ctx)
	if err != nil {
		return scoring.SkillGapReport{}, ErrInternal
	}
	roles, err := u.roles.ListAll(ctx)
	if err != nil {
		return scoring.SkillGapReport{}, ErrInternal
	}

	report := scoring.ComputeSkillGap(toScoringWorkers(roster), toScoringRoles(roles))
	metrics.SkillGapReportsTotal.Inc()

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cache.KeyAnalyticsSkillGap, report, 0)
	}
	return report, nil
}

func toScoringRoles(roles []repository.Role) []scoring.Role {
	out := make([]scoring.Role, 0, len(roles))
	for _, r := range roles {
		out = append(out, scoring.Role{
			ID:              r.ID,
			Name:            r.Name,
			RequiredSkills:  r.RequiredSkills,
			DifficultyLevel: r.DifficultyLevel,
		})
	}
	return out
}
