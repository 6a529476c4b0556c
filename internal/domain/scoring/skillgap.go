package scoring

import (
	"sort"
	"strings"
)

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// ReasonLowSkillCoverage is the fixed taxonomy string attached to every
// training recommendation; clients key display logic off it.
const ReasonLowSkillCoverage = "low skill coverage relative to workforce demand"

// A worker is recommended at most this many skills, the most demanded first.
const maxRecommendedSkills = 5

type SkillDemand struct {
	Skill  string
	Demand int
}

type TrainingRecommendation struct {
	WorkerID          int64
	WorkerName        string
	CurrentSkills     []string
	RecommendedSkills []string
	Reason            string
	Priority          Priority
}

type SkillGapReport struct {
	WorkersNeedingTraining []TrainingRecommendation
	MostDemandedSkills     []SkillDemand
	SkippedWorkers         int
}

// ComputeSkillGap builds the organization-wide training report. Pure and
/// deterministic: demand counts sort descending with alphabetical tie-breaks,
// workers sort by ascending skill coverage then id. Empty inputs yield empty
// report sections.
func ComputeSkillGap(workers []Worker, roles []Role) SkillGapReport {
	report := SkillGapReport{
		WorkersNeedingTraining: []TrainingRecommendation{},
		MostDemandedSkills:     []SkillDemand{},
	}

	demand := map[string]int{}
	for _, r := range roles {
		for _, s := range NormalizeSkills(r.RequiredSkills) {
			demand[s]++
		}
	}
	if len(demand) == 0 {
		return report
	}

	for s, d := range demand {
		report.MostDemandedSkills = append(report.MostDemandedSkills, SkillDemand{Skill: s, Demand: d})
	}
	sort.Slice(report.MostDemandedSkills, func(i, j int) bool {
		if report.MostDemandedSkills[i].Demand != report.MostDemandedSkills[j].Demand {
			return report.MostDemandedSkills[i].Demand > report.MostDemandedSkills[j].Demand
		}
		return report.MostDemandedSkills[i].Skill < report.MostDemandedSkills[j].Skill
	})

	highDemand := highDemandSkills(report.MostDemandedSkills)
	topThree := report.MostDemandedSkills
	if len(topThree) > 3 {
		topThree = topThree[:3]
	}

	type candidate struct {
		rec      TrainingRecommendation
		coverage float64
	}
	candidates := make([]candidate, 0, len(workers))

	for _, w := range workers {
		if w.ID <= 0 || strings.TrimSpace(w.Name) == "" {
			report.SkippedWorkers++
			continue
		}
		skills := NormalizeSkills(w.Skills)
		have := make(map[string]struct{}, len(skills))
		for _, s := range skills {
			have[s] = struct{}{}
		}

		missing := make([]string, 0, len(highDemand))
		for _, sd := range highDemand {
			if _, ok := have[sd.Skill]; !ok {
				missing = append(missing, sd.Skill)
			}
		}
		if len(missing) == 0 {
			continue
		}

		recommended := missing
		if len(recommended) > maxRecommendedSkills {
			recommended = recommended[:maxRecommendedSkills]
		}

		candidates = append(candidates, candidate{
			rec: TrainingRecommendation{
				WorkerID:          w.ID,
				WorkerName:        w.Name,
				CurrentSkills:     skills,
				RecommendedSkills: recommended,
				Reason:            ReasonLowSkillCoverage,
				Priority:          priorityFor(have, topThree, len(missing), len(highDemand)),
			},
			coverage: coverage(have, report.MostDemandedSkills),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].coverage != candidates[j].coverage {
			return candidates[i].coverage < candidates[j].coverage
		}
		return candidates[i].rec.WorkerID < candidates[j].rec.WorkerID
	})
	for _, c := range candidates {
		report.WorkersNeedingTraining = append(report.WorkersNeedingTraining, c.rec)
	}

	return report
}

// highDemandSkills keeps the skills in the top quartile of demand. The
// threshold is the demand count at the quartile boundary of the
// descending-sorted list, so small rosters keep at least the most demanded
// skill.
func highDemandSkills(sorted []SkillDemand) []SkillDemand {
	if len(sorted) == 0 {
		return nil
	}
	idx := (len(sorted) + 3) / 4
	if idx > len(sorted) {
		idx = len(sorted)
	}
	threshold := sorted[idx-1].Demand

	out := make([]SkillDemand, 0, len(sorted))
	for _, sd := range sorted {
		if sd.Demand >= threshold {
			out = append(out, sd)
		}
	}
	return out
}

func priorityFor(have map[string]struct{}, topThree []SkillDemand, missing, highDemandTotal int) Priority {
	hasTop := false
	for _, sd := range topThree {
		if _, ok := have[sd.Skill]; ok {
			hasTop = true
			break
		}
	}
	if !hasTop {
		return PriorityHigh
	}
	if highDemandTotal > 0 && float64(missing)/float64(highDemandTotal) >= 0.5 {
		return PriorityMedium
	}
	return PriorityLow
}

func coverage(have map[string]struct{}, demanded []SkillDemand) float64 {
	if len(demanded) == 0 {
		return 1
	}
	n := 0
	for _, sd := range demanded {
		if _, ok := have[sd.Skill]; ok {
			n++
		}
	}
	return float64(n) / float64(len(demanded))
}
