package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/roadmap-tracker/internal/app/appconfig"
	"exusiai.dev/roadmap-tracker/internal/util"
)

func TestEmbeddedCatalog(t *testing.T) {
	r, err := NewCatalog(&appconfig.Config{})
	require.NoError(t, err)

	c := r.GetCatalog()
	require.Len(t, c.Phases, 6)

	weeks := 0
	for _, p := range c.Phases {
		weeks += len(p.Weeks)
	}
	assert.Equal(t, 30, weeks)
	assert.Equal(t, 210, util.GlobalCompletion(c, nil).Total)

	assert.Equal(t, "Phase 1", c.Phases[0].ID)
	assert.Equal(t, "HTML Basics", c.Phases[0].Weeks[0].Title)
	assert.Equal(t, 4, c.Phases[0].DayCount()/7)
}

func TestCatalogFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id": "P", "name": "Only", "weeks": [{"week": 1, "title": "One", "focus": "", "days": ["a"]}]}
	]`), 0o644))

	r, err := NewCatalog(&appconfig.Config{ConfigSpec: appconfig.ConfigSpec{CatalogPath: path}})
	require.NoError(t, err)
	assert.Equal(t, 1, util.GlobalCompletion(r.GetCatalog(), nil).Total)

	_, err = NewCatalog(&appconfig.Config{ConfigSpec: appconfig.ConfigSpec{CatalogPath: path + ".missing"}})
	assert.Error(t, err)
}

func TestParseCatalogRejects(t *testing.T) {
	testCases := map[string]string{
		"not an array":   `{"id": "P"}`,
		"missing id":     `[{"name": "n", "weeks": []}]`,
		"missing weeks":  `[{"id": "P", "name": "n"}]`,
		"missing title":  `[{"id": "P", "name": "n", "weeks": [{"week": 1, "days": []}]}]`,
		"duplicate week": `[{"id": "A", "name": "a", "weeks": [{"week": 1, "title": "x"}]}, {"id": "B", "name": "b", "weeks": [{"week": 1, "title": "y"}]}]`,
		"duplicate phase": `[{"id": "A", "name": "a", "weeks": [{"week": 1, "title": "x"}]}, {"id": "A", "name": "b", "weeks": [{"week": 2, "title": "y"}]}]`,
	}

	for name, input := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestParseCatalogAllowsEmptyWeek(t *testing.T) {
	c, err := ParseCatalog([]byte(`[{"id": "P", "name": "n", "weeks": [{"week": 1, "title": "Rest", "days": []}]}]`))
	require.NoError(t, err)
	assert.Empty(t, c.Phases[0].Weeks[0].Days)
}
