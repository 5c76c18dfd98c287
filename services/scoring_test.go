package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceExercises(t *testing.T) {
	exercises, err := SliceExercises(
		[]string{"Squat", "Bench press"},
		[]string{"100", "110", "60", "60", "65"},
		[]string{"5", "5", "10", "10", "8"},
		[]string{"2", "3"},
	)
	require.NoError(t, err)
	require.Len(t, exercises, 2)

	assert.Equal(t, "Squat", exercises[0].Name)
	assert.Equal(t, []int{100, 110}, exercises[0].Weights)
	assert.Equal(t, []int{5, 5}, exercises[0].Reps)
	assert.Equal(t, 2, exercises[0].Sets)

	assert.Equal(t, "Bench press", exercises[1].Name)
	assert.Equal(t, []int{60, 60, 65}, exercises[1].Weights)
	assert.Equal(t, []int{10, 10, 8}, exercises[1].Reps)
	assert.Equal(t, 3, exercises[1].Sets)
}

func TestSliceExercisesShortListsTruncateSilently(t *testing.T) {
	// declared 3 sets but only 2 weights/reps available: no error,
	// the exercise just ends up with fewer pairs
	exercises, err := SliceExercises(
		[]string{"Squat"},
		[]string{"100", "110"},
		[]string{"5", "5"},
		[]string{"3"},
	)
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, []int{100, 110}, exercises[0].Weights)
	assert.Equal(t, []int{5, 5}, exercises[0].Reps)
	assert.Equal(t, 3, exercises[0].Sets)
}

func TestSliceExercisesNegativeSetCount(t *testing.T) {
	// a negative count parses fine, takes nothing and leaves the
	// cursors in place for the next exercise
	exercises, err := SliceExercises(
		[]string{"Squat", "Bench press"},
		[]string{"100", "60"},
		[]string{"5", "10"},
		[]string{"-1", "2"},
	)
	require.NoError(t, err)
	require.Len(t, exercises, 2)

	assert.Empty(t, exercises[0].Weights)
	assert.Empty(t, exercises[0].Reps)
	assert.Zero(t, exercises[0].Sets)

	assert.Equal(t, []int{100, 60}, exercises[1].Weights)
	assert.Equal(t, []int{5, 10}, exercises[1].Reps)

	assert.Equal(t, 700, WorkoutPoints(exercises))
}

func TestSliceExercisesBadInput(t *testing.T) {
	_, err := SliceExercises([]string{"Squat"}, []string{"100"}, []string{"5"}, []string{"two"})
	assert.Error(t, err)

	_, err = SliceExercises([]string{"Squat"}, []string{"heavy"}, []string{"5"}, []string{"1"})
	assert.Error(t, err)

	_, err = SliceExercises([]string{"Squat", "Lunge"}, []string{"100", "80"}, []string{"5", "8"}, []string{"1"})
	assert.Error(t, err, "missing set count for the second exercise")
}

func TestWorkoutPoints(t *testing.T) {
	exercises, err := SliceExercises(
		[]string{"Squat"},
		[]string{"100", "110"},
		[]string{"5", "5"},
		[]string{"2"},
	)
	require.NoError(t, err)
	assert.Equal(t, 1050, WorkoutPoints(exercises))
}

func TestWorkoutPointsUsesOnlyUsablePairs(t *testing.T) {
	// 3 declared sets, 2 weights, 1 rep: one usable pair
	points := WorkoutPoints([]Exercise{{
		Name:    "Bench press",
		Weights: []int{60, 65},
		Reps:    []int{10},
		Sets:    3,
	}})
	assert.Equal(t, 600, points)

	assert.Zero(t, WorkoutPoints([]Exercise{{Name: "Bench press", Sets: 3}}))
	assert.Zero(t, WorkoutPoints(nil))
}

func TestRankNameForPoints(t *testing.T) {
	tests := []struct {
		points int
		want   string
	}{
		{0, "Beginner"},
		{4999, "Beginner"},
		{5000, "Intermediate"},
		{19999, "Intermediate"},
		{20000, "Advanced"},
		{49999, "Advanced"},
		{50000, "Pro"},
		{199999, "Pro"},
		{200000, "Elite"},
		{599999, "Elite"},
		{600000, "Legend"},
		{799999, "Legend"},
		{800000, "Master"},
		{2999999, "Master"},
		{3000000, "Champion"},
		{9999999, "Champion"},
		{10000000, "Titan"},
		{25000000, "Titan"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RankNameForPoints(tt.points), "points=%d", tt.points)
	}
}

func TestRankNameMonotonic(t *testing.T) {
	order := map[string]int{
		"Beginner": 0, "Intermediate": 1, "Advanced": 2, "Pro": 3,
		"Elite": 4, "Legend": 5, "Master": 6, "Champion": 7, "Titan": 8,
	}

	prev := 0
	for points := 0; points <= 11000000; points += 12345 {
		tier := order[RankNameForPoints(points)]
		assert.GreaterOrEqual(t, tier, prev, "tier dropped at %d points", points)
		prev = tier
	}
}

func TestTierFlipsAtThreshold(t *testing.T) {
	prior := 19500
	assert.Equal(t, "Intermediate", RankNameForPoints(prior))

	// one submission scoring 600 pushes the total over 20000
	submission := WorkoutPoints([]Exercise{{
		Name:    "Leg press",
		Weights: []int{100, 100},
		Reps:    []int{3, 3},
		Sets:    2,
	}})
	assert.Equal(t, 600, submission)
	assert.Equal(t, "Advanced", RankNameForPoints(prior+submission))
}
