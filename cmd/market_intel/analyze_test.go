package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetAnalyzeFlags() {
	analyzeInputFile = ""
	analyzeTitle = ""
	analyzeLocation = ""
	analyzeWorkModel = ""
}

func TestLoadRoleQuery(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		resetAnalyzeFlags()
		path := filepath.Join(t.TempDir(), "role.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"job_title": "Backend Engineer", "location": "Austin, TX"}`), 0644))
		analyzeInputFile = path

		role, err := loadRoleQuery()
		require.NoError(t, err)
		assert.Equal(t, "Backend Engineer", role.JobTitle)
		assert.Equal(t, "Austin, TX", role.Location)
	})

	t.Run("from flags", func(t *testing.T) {
		resetAnalyzeFlags()
		analyzeTitle = "Data Engineer"
		analyzeWorkModel = "remote"

		role, err := loadRoleQuery()
		require.NoError(t, err)
		assert.Equal(t, "Data Engineer", role.JobTitle)
		assert.Equal(t, "remote", role.WorkModel)
	})

	t.Run("file and title are mutually exclusive", func(t *testing.T) {
		resetAnalyzeFlags()
		analyzeInputFile = "role.json"
		analyzeTitle = "Engineer"

		_, err := loadRoleQuery()
		assert.Error(t, err)
	})

	t.Run("neither source provided", func(t *testing.T) {
		resetAnalyzeFlags()
		_, err := loadRoleQuery()
		assert.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		resetAnalyzeFlags()
		path := filepath.Join(t.TempDir(), "role.json")
		require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0644))
		analyzeInputFile = path

		_, err := loadRoleQuery()
		assert.Error(t, err)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("verbose flag wins", func(t *testing.T) {
		flagConfig = ""
		flagVerbose = true
		defer func() { flagVerbose = false }()

		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.True(t, cfg.Verbose)
	})

	t.Run("missing config file errors", func(t *testing.T) {
		flagConfig = filepath.Join(t.TempDir(), "nope.json")
		defer func() { flagConfig = "" }()

		_, err := loadConfig()
		assert.Error(t, err)
	})
}
