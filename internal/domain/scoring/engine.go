package scoring

import (
	"errors"
	"sort"
	"strings"
)

// ErrInvalidInput is returned for requests the engine cannot score: a role
// with no required skills or a non-positive topN. An empty worker roster is
// not an error; it yields an empty recommendation list.
var ErrInvalidInput = errors.New("invalid input")

// Hour ceilings used to normalize workload into the fatigue level.
const (
	MaxHoursPerDay  = 8.5
	MaxHoursPerWeek = 52.0
)

// Fatigue level is weighted toward the weekly total; a single long day
// matters less than a long week.
const (
	fatigueWeekWeight = 0.7
	fatigueDayWeight  = 0.3
)

// Default fit weights. Skill overlap dominates, then raw performance, then
// rest state, with a small penalty for difficulty the worker has not grown
// into yet. Overridable per deployment via configuration.
const (
	DefaultSkillWeight       = 0.50
	DefaultPerformanceWeight = 0.25
	DefaultFatigueWeight     = 0.15
	DefaultDifficultyWeight  = 0.10
)

// Experience saturates at this many years; beyond it a role's difficulty no
// longer penalizes the fit score.
const experienceCeilingYears = 10.0

type Worker struct {
	ID               int64
	Name             string
	Skills           []string
	Experience       float64
	PerformanceScore float64
	FatigueLevel     float64
	HoursPerDay      float64
	HoursPerWeek     float64
}

type Role struct {
	ID              int64
	Name            string
	RequiredSkills  []string
	DifficultyLevel float64
}

type Weights struct {
	Skill       float64
	Performance float64
	Fatigue     float64
	Difficulty  float64
}

func DefaultWeights() Weights {
	return Weights{
		Skill:       DefaultSkillWeight,
		Performance: DefaultPerformanceWeight,
		Fatigue:     DefaultFatigueWeight,
		Difficulty:  DefaultDifficultyWeight,
	}
}

type Recommendation struct {
	WorkerID             int64
	WorkerName           string
	FitScore             float64
	PerformanceScore     float64
	SkillMatchPercentage float64
	FatigueLevel         float64
	Skills               []string
	HoursPerDay          float64
	HoursPerWeek         float64
}

// RecommendResult carries the ranked recommendations plus the number of
// malformed worker records that were skipped rather than failing the batch.
type RecommendResult struct {
	Recommendations []Recommendation
	Skipped         int
}

type Engine struct {
	weights Weights
}

// NewEngine builds an engine with the given weights. A zero-value Weights
// falls back to the defaults.
func NewEngine(w Weights) *Engine {
	if w == (Weights{}) {
		w = DefaultWeights()
	}
	return &Engine{weights: w}
}

// Recommend ranks every worker for the role and returns the top n. The
// computation is pure: same inputs, same sequence. Workers with zero skill
// overlap are ranked, never filtered.
func (e *Engine) Recommend(role Role, workers []Worker, topN int) (RecommendResult, error) {
	if topN < 1 {
		return RecommendResult{}, ErrInvalidInput
	}
	required := NormalizeSkills(role.RequiredSkills)
	if len(required) == 0 {
		return RecommendResult{}, ErrInvalidInput
	}

	recs := make([]Recommendation, 0, len(workers))
	skipped := 0
	for _, w := range workers {
		if w.ID <= 0 || strings.TrimSpace(w.Name) == "" {
			skipped++
			continue
		}
		recs = append(recs, e.score(role, required, w))
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].FitScore != recs[j].FitScore {
			return recs[i].FitScore > recs[j].FitScore
		}
		if recs[i].PerformanceScore != recs[j].PerformanceScore {
			return recs[i].PerformanceScore > recs[j].PerformanceScore
		}
		return recs[i].WorkerID < recs[j].WorkerID
	})

	if topN < len(recs) {
		recs = recs[:topN]
	}
	return RecommendResult{Recommendations: recs, Skipped: skipped}, nil
}

func (e *Engine) score(role Role, required []string, w Worker) Recommendation {
	skills := NormalizeSkills(w.Skills)
	matchPct := SkillMatchPercentage(required, skills)
	fatigue := effectiveFatigue(w)
	perf := clamp01(w.PerformanceScore)

	experienceFactor := w.Experience / experienceCeilingYears
	if experienceFactor > 1 {
		experienceFactor = 1
	}
	if experienceFactor < 0 {
		experienceFactor = 0
	}
	difficultyAdjustment := clamp01(role.DifficultyLevel) * (1 - experienceFactor)

	fit := e.weights.Skill*matchPct/100 +
		e.weights.Performance*perf +
		e.weights.Fatigue*(1-fatigue) -
		e.weights.Difficulty*difficultyAdjustment

	return Recommendation{
		WorkerID:             w.ID,
		WorkerName:           w.Name,
		FitScore:             clamp01(fit),
		PerformanceScore:     perf,
		SkillMatchPercentage: matchPct,
		FatigueLevel:         fatigue,
		Skills:               skills,
		HoursPerDay:          w.HoursPerDay,
		HoursPerWeek:         w.HoursPerWeek,
	}
}

// SkillMatchPercentage is 100 * |required ∩ owned| / |required|. Both inputs
// must already be normalized. An empty requirement list degenerates to 100.
func SkillMatchPercentage(required, owned []string) float64 {
	if len(required) == 0 {
		return 100
	}
	have := make(map[string]struct{}, len(owned))
	for _, s := range owned {
		have[s] = struct{}{}
	}
	matches := 0
	for _, s := range required {
		if _, ok := have[s]; ok {
			matches++
		}
	}
	return 100 * float64(matches) / float64(len(required))
}

// Fatigue derives the normalized fatigue level from hours worked:
// min(1, (hoursPerWeek/52)*0.7 + (hoursPerDay/8.5)*0.3).
func Fatigue(hoursPerDay, hoursPerWeek float64) float64 {
	if hoursPerDay < 0 {
		hoursPerDay = 0
	}
	if hoursPerWeek < 0 {
		hoursPerWeek = 0
	}
	f := (hoursPerWeek/MaxHoursPerWeek)*fatigueWeekWeight + (hoursPerDay/MaxHoursPerDay)*fatigueDayWeight
	if f > 1 {
		return 1
	}
	return f
}

// effectiveFatigue trusts a stored in-range level and falls back to the
// hours-derived formula when the stored value is missing or out of range.
func effectiveFatigue(w Worker) float64 {
	if w.FatigueLevel >= 0 && w.FatigueLevel <= 1 {
		if w.FatigueLevel == 0 && (w.HoursPerDay > 0 || w.HoursPerWeek > 0) {
			return Fatigue(w.HoursPerDay, w.HoursPerWeek)
		}
		return w.FatigueLevel
	}
	return Fatigue(w.HoursPerDay, w.HoursPerWeek)
}

// NormalizeSkills lower-cases, trims and deduplicates skill tags, preserving
// first-seen order.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
