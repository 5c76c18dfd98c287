package services

import (
	"fmt"
	"strconv"
)

// Exercise is one sliced-out exercise from a workout submission:
// its per-set weights and reps plus the declared set count.
type Exercise struct {
	Name    string
	Weights []int
	Reps    []int
	Sets    int
}

// SliceExercises splits the flat weight/rep lists of a submission into
// per-exercise groups. The client sends weights and reps concatenated
// across all exercises in declaration order; two running cursors consume
// sets[i] entries per exercise. If the flat lists run out early the
// exercise simply gets fewer pairs; that mirrors what clients already
// rely on, so short input is not an error here.
func SliceExercises(names, weights, reps, sets []string) ([]Exercise, error) {
	exercises := make([]Exercise, 0, len(names))
	weightIdx, repIdx := 0, 0

	for i, name := range names {
		if i >= len(sets) {
			return nil, fmt.Errorf("missing set count for exercise %q", name)
		}
		setCount, err := strconv.Atoi(sets[i])
		if err != nil {
			return nil, fmt.Errorf("invalid set count %q for exercise %q", sets[i], name)
		}
		if setCount < 0 {
			// a negative count takes nothing and moves no cursor
			setCount = 0
		}

		exWeights, err := takeInts(weights, weightIdx, setCount)
		if err != nil {
			return nil, fmt.Errorf("exercise %q: %w", name, err)
		}
		exReps, err := takeInts(reps, repIdx, setCount)
		if err != nil {
			return nil, fmt.Errorf("exercise %q: %w", name, err)
		}
		weightIdx += setCount
		repIdx += setCount

		exercises = append(exercises, Exercise{
			Name:    name,
			Weights: exWeights,
			Reps:    exReps,
			Sets:    setCount,
		})
	}
	return exercises, nil
}

// takeInts parses up to n entries of list starting at idx. Fewer than n
// remaining entries is fine; unparseable entries are not.
func takeInts(list []string, idx, n int) ([]int, error) {
	end := idx + n
	if end > len(list) {
		end = len(list)
	}
	if idx > len(list) {
		idx = len(list)
	}
	if end < idx {
		end = idx
	}
	out := make([]int, 0, end-idx)
	for _, s := range list[idx:end] {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", s)
		}
		out = append(out, v)
	}
	return out, nil
}

// WorkoutPoints scores a submission: weight times reps summed over every
// usable (weight, rep) pair. An exercise contributes at most its declared
// set count worth of pairs, fewer when the sliced lists came up short.
func WorkoutPoints(exercises []Exercise) int {
	total := 0
	for _, ex := range exercises {
		pairs := ex.Sets
		if len(ex.Weights) < pairs {
			pairs = len(ex.Weights)
		}
		if len(ex.Reps) < pairs {
			pairs = len(ex.Reps)
		}
		for j := 0; j < pairs; j++ {
			total += ex.Weights[j] * ex.Reps[j]
		}
	}
	return total
}

// RankNameForPoints maps a cumulative point total to a tier name.
// Thresholds are checked highest first, so a total sitting exactly on a
// boundary gets the higher tier.
func RankNameForPoints(points int) string {
	switch {
	case points >= 10000000:
		return "Titan"
	case points >= 3000000:
		return "Champion"
	case points >= 800000:
		return "Master"
	case points >= 600000:
		return "Legend"
	case points >= 200000:
		return "Elite"
	case points >= 50000:
		return "Pro"
	case points >= 20000:
		return "Advanced"
	case points >= 5000:
		return "Intermediate"
	default:
		return "Beginner"
	}
}
