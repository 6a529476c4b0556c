package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSkillGap_EmptyInputs(t *testing.T) {
	for _, tc := range []struct {
		name    string
		workers []Worker
		roles   []Role
	}{
		{"no workers no roles", nil, nil},
		{"workers without roles", []Worker{{ID: 1, Name: "A"}}, nil},
		{"roles without required skills", []Worker{{ID: 1, Name: "A"}}, []Role{{ID: 1, Name: "R"}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			report := ComputeSkillGap(tc.workers, tc.roles)
			assert.Empty(t, report.WorkersNeedingTraining)
			assert.Empty(t, report.MostDemandedSkills)
		})
	}
}

func TestComputeSkillGap_DemandCounts(t *testing.T) {
	roles := []Role{
		{ID: 1, RequiredSkills: []string{"zeta", "alpha"}},
		{ID: 2, RequiredSkills: []string{"zeta", "beta"}},
		{ID: 3, RequiredSkills: []string{"zeta"}},
	}

	report := ComputeSkillGap(nil, roles)
	require.Len(t, report.MostDemandedSkills, 3)

	// Required by every role: highest demand, sorts first.
	assert.Equal(t, SkillDemand{Skill: "zeta", Demand: 3}, report.MostDemandedSkills[0])
	// Equal demand falls back to alphabetical order.
	assert.Equal(t, SkillDemand{Skill: "alpha", Demand: 1}, report.MostDemandedSkills[1])
	assert.Equal(t, SkillDemand{Skill: "beta", Demand: 1}, report.MostDemandedSkills[2])

	// A skill no role requires never appears.
	for _, sd := range report.MostDemandedSkills {
		assert.NotEqual(t, "gamma", sd.Skill)
	}
}

func TestComputeSkillGap_PrioritiesAndOrdering(t *testing.T) {
	// welding/assembly/cnc each demanded by 4 roles, painting by 1: the top
	// quartile keeps the three demand-4 skills.
	roles := make([]Role, 0, 4)
	for i := 0; i < 4; i++ {
		roles = append(roles, Role{ID: int64(i + 1), RequiredSkills: []string{"welding", "assembly", "cnc"}})
	}
	roles[0].RequiredSkills = append(roles[0].RequiredSkills, "painting")

	workers := []Worker{
		{ID: 3, Name: "has two", Skills: []string{"welding", "cnc"}},
		{ID: 1, Name: "has none"},
		{ID: 2, Name: "has one", Skills: []string{"cnc"}},
	}

	report := ComputeSkillGap(workers, roles)
	require.Len(t, report.WorkersNeedingTraining, 3)

	// Ascending coverage: the bare worker first, the near-complete one last.
	assert.Equal(t, int64(1), report.WorkersNeedingTraining[0].WorkerID)
	assert.Equal(t, int64(2), report.WorkersNeedingTraining[1].WorkerID)
	assert.Equal(t, int64(3), report.WorkersNeedingTraining[2].WorkerID)

	// No top-3 skill at all → High; missing 2 of 3 high-demand → Medium;
	// missing 1 of 3 → Low.
	assert.Equal(t, PriorityHigh, report.WorkersNeedingTraining[0].Priority)
	assert.Equal(t, PriorityMedium, report.WorkersNeedingTraining[1].Priority)
	assert.Equal(t, PriorityLow, report.WorkersNeedingTraining[2].Priority)

	for _, rec := range report.WorkersNeedingTraining {
		assert.Equal(t, ReasonLowSkillCoverage, rec.Reason)
	}
	assert.Equal(t, []string{"assembly"}, report.WorkersNeedingTraining[2].RecommendedSkills)
}

func TestComputeSkillGap_RecommendedSkillsCapped(t *testing.T) {
	skills := []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7"}
	roles := make([]Role, 0, 3)
	for i := 0; i < 3; i++ {
		roles = append(roles, Role{ID: int64(i + 1), RequiredSkills: skills})
	}

	report := ComputeSkillGap([]Worker{{ID: 1, Name: "blank"}}, roles)
	require.Len(t, report.WorkersNeedingTraining, 1)
	assert.Len(t, report.WorkersNeedingTraining[0].RecommendedSkills, 5)
	// Equal demand everywhere, so the cap keeps the alphabetically first five.
	assert.Equal(t, []string{"s1", "s2", "s3", "s4", "s5"}, report.WorkersNeedingTraining[0].RecommendedSkills)
}

func TestComputeSkillGap_FullyCoveredWorkerOmitted(t *testing.T) {
	roles := []Role{{ID: 1, RequiredSkills: []string{"welding"}}}
	workers := []Worker{
		{ID: 1, Name: "covered", Skills: []string{"Welding"}},
		{ID: 2, Name: "gap"},
	}

	report := ComputeSkillGap(workers, roles)
	require.Len(t, report.WorkersNeedingTraining, 1)
	assert.Equal(t, int64(2), report.WorkersNeedingTraining[0].WorkerID)
}

func TestComputeSkillGap_SkipsMalformedWorkers(t *testing.T) {
	roles := []Role{{ID: 1, RequiredSkills: []string{"welding"}}}
	workers := []Worker{
		{ID: 0, Name: "no id"},
		{ID: 2, Name: ""},
		{ID: 3, Name: "ok"},
	}

	report := ComputeSkillGap(workers, roles)
	assert.Equal(t, 2, report.SkippedWorkers)
	require.Len(t, report.WorkersNeedingTraining, 1)
	assert.Equal(t, int64(3), report.WorkersNeedingTraining[0].WorkerID)
}

func TestComputeSkillGap_Deterministic(t *testing.T) {
	roles := []Role{
		{ID: 1, RequiredSkills: []string{"a", "b", "c"}},
		{ID: 2, RequiredSkills: []string{"b", "c"}},
		{ID: 3, RequiredSkills: []string{"c"}},
	}
	workers := []Worker{
		{ID: 2, Name: "B", Skills: []string{"a"}},
		{ID: 1, Name: "A", Skills: []string{"b"}},
	}

	first := ComputeSkillGap(workers, roles)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeSkillGap(workers, roles))
	}
}
