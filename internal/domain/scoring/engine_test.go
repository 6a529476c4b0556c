package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend_InvalidTopN(t *testing.T) {
	e := NewEngine(Weights{})
	role := Role{ID: 1, Name: "Welder", RequiredSkills: []string{"welding"}}

	for _, n := range []int{0, -1, -100} {
		_, err := e.Recommend(role, []Worker{{ID: 1, Name: "A"}}, n)
		require.ErrorIs(t, err, ErrInvalidInput, "topN=%d", n)
	}
}

func TestRecommend_EmptyRequiredSkills(t *testing.T) {
	e := NewEngine(Weights{})
	_, err := e.Recommend(Role{ID: 1, Name: "Empty"}, []Worker{{ID: 1, Name: "A"}}, 3)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = e.Recommend(Role{ID: 1, RequiredSkills: []string{"  ", ""}}, []Worker{{ID: 1, Name: "A"}}, 3)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRecommend_EmptyRosterIsNotAnError(t *testing.T) {
	e := NewEngine(Weights{})
	res, err := e.Recommend(Role{ID: 1, RequiredSkills: []string{"welding"}}, nil, 5)
	require.NoError(t, err)
	assert.Empty(t, res.Recommendations)
	assert.Zero(t, res.Skipped)
}

func TestRecommend_WeightedFormula(t *testing.T) {
	// Role difficulty 0.5; the full-match worker must outrank the higher
	// performer whose skills only half match.
	e := NewEngine(DefaultWeights())
	role := Role{ID: 10, Name: "Line Assembly", RequiredSkills: []string{"welding", "assembly"}, DifficultyLevel: 0.5}
	workers := []Worker{
		{ID: 1, Name: "Asha", Skills: []string{"welding"}, PerformanceScore: 0.8, FatigueLevel: 0.1, Experience: 5},
		{ID: 2, Name: "Budi", Skills: []string{"welding", "assembly"}, PerformanceScore: 0.6, FatigueLevel: 0.4, Experience: 2},
	}

	res, err := e.Recommend(role, workers, 5)
	require.NoError(t, err)
	require.Len(t, res.Recommendations, 2)

	first, second := res.Recommendations[0], res.Recommendations[1]
	assert.Equal(t, int64(2), first.WorkerID)
	assert.Equal(t, int64(1), second.WorkerID)

	assert.InDelta(t, 100.0, first.SkillMatchPercentage, 1e-9)
	assert.InDelta(t, 50.0, second.SkillMatchPercentage, 1e-9)

	// 0.5*1.0 + 0.25*0.6 + 0.15*0.6 - 0.10*(0.5*(1-0.2)) = 0.70
	assert.InDelta(t, 0.70, first.FitScore, 1e-9)
	// 0.5*0.5 + 0.25*0.8 + 0.15*0.9 - 0.10*(0.5*(1-0.5)) = 0.56
	assert.InDelta(t, 0.56, second.FitScore, 1e-9)
}

func TestRecommend_SkillMatchExact(t *testing.T) {
	e := NewEngine(Weights{})
	role := Role{ID: 1, RequiredSkills: []string{"a", "b", "c"}}
	workers := []Worker{
		{ID: 1, Name: "none", Skills: []string{"x"}},
		{ID: 2, Name: "one", Skills: []string{"a"}},
		{ID: 3, Name: "two", Skills: []string{"a", "b", "x"}},
		{ID: 4, Name: "all", Skills: []string{"c", "b", "a"}},
	}

	res, err := e.Recommend(role, workers, 10)
	require.NoError(t, err)
	require.Len(t, res.Recommendations, 4)

	byID := map[int64]Recommendation{}
	for _, r := range res.Recommendations {
		byID[r.WorkerID] = r
		assert.GreaterOrEqual(t, r.SkillMatchPercentage, 0.0)
		assert.LessOrEqual(t, r.SkillMatchPercentage, 100.0)
	}
	assert.InDelta(t, 0.0, byID[1].SkillMatchPercentage, 1e-9)
	assert.InDelta(t, 100.0/3.0, byID[2].SkillMatchPercentage, 1e-9)
	assert.InDelta(t, 200.0/3.0, byID[3].SkillMatchPercentage, 1e-9)
	assert.InDelta(t, 100.0, byID[4].SkillMatchPercentage, 1e-9)
}

func TestRecommend_ZeroMatchWorkersAreKept(t *testing.T) {
	e := NewEngine(Weights{})
	res, err := e.Recommend(
		Role{ID: 1, RequiredSkills: []string{"welding"}},
		[]Worker{{ID: 7, Name: "no overlap", Skills: []string{"painting"}}},
		3,
	)
	require.NoError(t, err)
	require.Len(t, res.Recommendations, 1)
	assert.Equal(t, int64(7), res.Recommendations[0].WorkerID)
}

func TestRecommend_TopNLargerThanRoster(t *testing.T) {
	e := NewEngine(Weights{})
	res, err := e.Recommend(
		Role{ID: 1, RequiredSkills: []string{"welding"}},
		[]Worker{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
		50,
	)
	require.NoError(t, err)
	assert.Len(t, res.Recommendations, 2)
}

func TestRecommend_Deterministic(t *testing.T) {
	e := NewEngine(Weights{})
	role := Role{ID: 1, RequiredSkills: []string{"a", "b"}, DifficultyLevel: 0.3}
	workers := []Worker{
		{ID: 3, Name: "C", Skills: []string{"a"}, PerformanceScore: 0.5},
		{ID: 1, Name: "A", Skills: []string{"a"}, PerformanceScore: 0.5},
		{ID: 2, Name: "B", Skills: []string{"a"}, PerformanceScore: 0.5},
	}

	first, err := e.Recommend(role, workers, 3)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := e.Recommend(role, workers, 3)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	// Identical scores fall back to ascending worker id.
	ids := []int64{}
	for _, r := range first.Recommendations {
		ids = append(ids, r.WorkerID)
	}
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func TestRecommend_TieBreakByPerformance(t *testing.T) {
	e := NewEngine(Weights{Skill: 1, Performance: 0, Fatigue: 0, Difficulty: 0})
	role := Role{ID: 1, RequiredSkills: []string{"a"}}
	workers := []Worker{
		{ID: 1, Name: "low", Skills: []string{"a"}, PerformanceScore: 0.2},
		{ID: 2, Name: "high", Skills: []string{"a"}, PerformanceScore: 0.9},
	}

	res, err := e.Recommend(role, workers, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Recommendations[0].WorkerID)
	assert.Equal(t, int64(1), res.Recommendations[1].WorkerID)
}

func TestRecommend_SkipsMalformedWorkers(t *testing.T) {
	e := NewEngine(Weights{})
	role := Role{ID: 1, RequiredSkills: []string{"a"}}
	workers := []Worker{
		{ID: 0, Name: "missing id", Skills: []string{"a"}},
		{ID: 5, Name: "  ", Skills: []string{"a"}},
		{ID: 9, Name: "ok", Skills: []string{"a"}},
	}

	res, err := e.Recommend(role, workers, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Skipped)
	require.Len(t, res.Recommendations, 1)
	assert.Equal(t, int64(9), res.Recommendations[0].WorkerID)
}

func TestRecommend_NormalizesSkillCase(t *testing.T) {
	e := NewEngine(Weights{})
	res, err := e.Recommend(
		Role{ID: 1, RequiredSkills: []string{"Welding", "ASSEMBLY"}},
		[]Worker{{ID: 1, Name: "A", Skills: []string{"  welding ", "Assembly", "assembly"}}},
		1,
	)
	require.NoError(t, err)
	require.Len(t, res.Recommendations, 1)
	assert.InDelta(t, 100.0, res.Recommendations[0].SkillMatchPercentage, 1e-9)
	assert.Equal(t, []string{"welding", "assembly"}, res.Recommendations[0].Skills)
}

func TestFatigue_Formula(t *testing.T) {
	tests := []struct {
		name     string
		day      float64
		week     float64
		expected float64
	}{
		{"at both ceilings", 8.5, 52, 1.0},
		{"idle", 0, 0, 0.0},
		{"standard week", 8, 40, (40.0/52.0)*0.7 + (8.0/8.5)*0.3},
		{"capped above ceilings", 12, 80, 1.0},
		{"negative hours treated as zero", -3, -10, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Fatigue(tt.day, tt.week), 1e-9)
		})
	}
}

func TestRecommend_FitScoreClamped(t *testing.T) {
	e := NewEngine(Weights{Skill: 1, Performance: 1, Fatigue: 1, Difficulty: 0})
	res, err := e.Recommend(
		Role{ID: 1, RequiredSkills: []string{"a"}},
		[]Worker{{ID: 1, Name: "A", Skills: []string{"a"}, PerformanceScore: 1}},
		1,
	)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Recommendations[0].FitScore, 1e-9)
}
