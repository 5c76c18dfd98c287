package services

import (
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"
)

// ExerciseCatalog is a read-only mapping from muscle-group name to the
// exercises that train it. The reshape path uses the reverse direction
// to label parsed exercises with their muscle groups.
type ExerciseCatalog struct {
	groups map[string][]string
}

func NewExerciseCatalog(groups map[string][]string) *ExerciseCatalog {
	return &ExerciseCatalog{groups: groups}
}

// DefaultExerciseCatalog returns the built-in catalog.
func DefaultExerciseCatalog() *ExerciseCatalog {
	return NewExerciseCatalog(map[string][]string{
		"arm":   {"Bicep curl", "Tricep dip", "Hammer curl", "Cable tricep pushdown", "Parallel bar dip", "Concentration curl"},
		"chest": {"Bench press", "Chest fly", "Push-up", "Incline bench press", "Wide-grip push-up", "Cable chest fly"},
		"thigh": {"Squat", "Leg press", "Lunge", "Leg extension", "Romanian deadlift", "Hamstring curl"},
		"calf":  {"Calf raise", "Seated calf raise", "Single-leg calf raise", "Standing calf raise on step", "Cable calf raise", "Jumping calf raise"},
	})
}

// LoadExerciseCatalog reads a {"group": ["exercise", ...]} JSON file.
func LoadExerciseCatalog(path string) (*ExerciseCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var groups map[string][]string
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, err
	}
	return NewExerciseCatalog(groups), nil
}

// ExerciseCatalogFromEnv loads the catalog named by EXERCISE_CATALOG,
// falling back to the built-in one.
func ExerciseCatalogFromEnv() *ExerciseCatalog {
	path := os.Getenv("EXERCISE_CATALOG")
	if path == "" {
		return DefaultExerciseCatalog()
	}
	catalog, err := LoadExerciseCatalog(path)
	if err != nil {
		log.Warnf("Could not load exercise catalog from %s, using built-in: %v", path, err)
		return DefaultExerciseCatalog()
	}
	return catalog
}

// GroupsFor returns every muscle group whose exercise list contains the
// given exercise name. Unknown exercises get an empty result.
func (c *ExerciseCatalog) GroupsFor(exerciseName string) []string {
	if exerciseName == "" {
		return []string{}
	}
	groups := []string{}
	for group, exercises := range c.groups {
		for _, ex := range exercises {
			if ex == exerciseName {
				groups = append(groups, group)
				break
			}
		}
	}
	return groups
}
