package services

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkoutDataRoundTrip(t *testing.T) {
	exercises, err := SliceExercises(
		[]string{"Squat", "Bench press"},
		[]string{"100", "110", "60", "60"},
		[]string{"5", "5", "10", "10"},
		[]string{"2", "2"},
	)
	require.NoError(t, err)

	blob, err := EncodeWorkoutData(exercises)
	require.NoError(t, err)

	decoded := DecodeWorkoutData(blob)
	require.Len(t, decoded, len(exercises))
	for i, d := range decoded {
		assert.Equal(t, exercises[i].Name, d.ExerciseName)
		assert.Equal(t, exercises[i].Weights, d.Weights)
		assert.Equal(t, exercises[i].Reps, d.Reps)
		assert.Equal(t, []int{exercises[i].Sets}, d.Sets)
	}
}

func TestWorkoutDataRoundTripRandomized(t *testing.T) {
	names := make([]string, 5)
	weights, reps, sets := []string{}, []string{}, make([]string, 5)
	for i := range names {
		names[i] = gofakeit.Word()
		n := gofakeit.Number(1, 6)
		sets[i] = strconv.Itoa(n)
		for j := 0; j < n; j++ {
			weights = append(weights, strconv.Itoa(gofakeit.Number(20, 200)))
			reps = append(reps, strconv.Itoa(gofakeit.Number(1, 15)))
		}
	}

	exercises, err := SliceExercises(names, weights, reps, sets)
	require.NoError(t, err)

	blob, err := EncodeWorkoutData(exercises)
	require.NoError(t, err)

	decoded := DecodeWorkoutData(blob)
	require.Len(t, decoded, len(names))
	for i, d := range decoded {
		assert.Equal(t, names[i], d.ExerciseName)
		assert.Equal(t, exercises[i].Weights, d.Weights)
		assert.Equal(t, exercises[i].Reps, d.Reps)
	}
}

func TestDecodeWorkoutDataSkipsMalformedEntries(t *testing.T) {
	blob := `[
		{"workoutDetails":{"exerciseName":"Squat","weights":[100],"reps":[5],"sets":[1]}},
		{"somethingElse":true},
		"not even an object",
		{"workoutDetails":{"exerciseName":"Lunge","weights":[40,40],"reps":[12,12],"sets":[2]}}
	]`

	decoded := DecodeWorkoutData(blob)
	require.Len(t, decoded, 2)
	assert.Equal(t, "Squat", decoded[0].ExerciseName)
	assert.Equal(t, "Lunge", decoded[1].ExerciseName)
}

func TestDecodeWorkoutDataDegradesToEmpty(t *testing.T) {
	assert.Empty(t, DecodeWorkoutData(""))
	assert.Empty(t, DecodeWorkoutData("[]"))
	assert.Empty(t, DecodeWorkoutData("{not json"))
	assert.Empty(t, DecodeWorkoutData(`{"an":"object, not an array"}`))
}

func TestParseWorkoutDataAddsMuscleGroups(t *testing.T) {
	svc := NewWorkoutService(DefaultExerciseCatalog(), nil)

	blob, err := EncodeWorkoutData([]Exercise{
		{Name: "Squat", Weights: []int{100}, Reps: []int{5}, Sets: 1},
		{Name: "Interpretive dance", Weights: []int{0}, Reps: []int{1}, Sets: 1},
	})
	require.NoError(t, err)

	parsed := svc.ParseWorkoutData(blob)
	require.Len(t, parsed, 2)
	assert.Equal(t, []string{"thigh"}, parsed[0].MuscleGroups)
	assert.Empty(t, parsed[1].MuscleGroups)
}

func TestEncodedExerciseCountMatchesInput(t *testing.T) {
	for _, n := range []int{1, 3, 7} {
		names := make([]string, n)
		weights := make([]string, n)
		reps := make([]string, n)
		sets := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("Exercise %d", i)
			weights[i] = "50"
			reps[i] = "10"
			sets[i] = "1"
		}

		exercises, err := SliceExercises(names, weights, reps, sets)
		require.NoError(t, err)

		blob, err := EncodeWorkoutData(exercises)
		require.NoError(t, err)
		assert.Len(t, DecodeWorkoutData(blob), n)
	}
}
