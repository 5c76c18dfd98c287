package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogGroupsFor(t *testing.T) {
	catalog := DefaultExerciseCatalog()

	assert.Equal(t, []string{"thigh"}, catalog.GroupsFor("Squat"))
	assert.Equal(t, []string{"chest"}, catalog.GroupsFor("Bench press"))
	assert.Empty(t, catalog.GroupsFor("Underwater basket weaving"))
	assert.Empty(t, catalog.GroupsFor(""))
}

func TestCatalogExerciseInMultipleGroups(t *testing.T) {
	catalog := NewExerciseCatalog(map[string][]string{
		"push": {"Push-up", "Bench press"},
		"core": {"Push-up", "Plank"},
	})

	groups := catalog.GroupsFor("Push-up")
	assert.ElementsMatch(t, []string{"push", "core"}, groups)
}

func TestLoadExerciseCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"back":["Deadlift","Pull-up"]}`), 0o600))

	catalog, err := LoadExerciseCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"back"}, catalog.GroupsFor("Deadlift"))
	assert.Empty(t, catalog.GroupsFor("Squat"))
}

func TestLoadExerciseCatalogErrors(t *testing.T) {
	_, err := LoadExerciseCatalog(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o600))
	_, err = LoadExerciseCatalog(path)
	assert.Error(t, err)
}

func TestExerciseCatalogFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"back":["Deadlift"]}`), 0o600))

	t.Setenv("EXERCISE_CATALOG", path)
	catalog := ExerciseCatalogFromEnv()
	assert.Equal(t, []string{"back"}, catalog.GroupsFor("Deadlift"))

	// unreadable path falls back to the built-in catalog
	t.Setenv("EXERCISE_CATALOG", filepath.Join(t.TempDir(), "nope.json"))
	catalog = ExerciseCatalogFromEnv()
	assert.Equal(t, []string{"thigh"}, catalog.GroupsFor("Squat"))
}
