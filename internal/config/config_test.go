package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "handtrack.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "handtrack.db", cfg.Tracker.DBPath)
	assert.Equal(t, "EJd9KHwjJa", cfg.Tracker.HeroID)
	assert.Equal(t, "info", cfg.Tracker.LogLevel)
	assert.Equal(t, 10, cfg.Tracker.TagMinHands)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
tracker {
  db_path       = "/var/lib/handtrack/db"
  hero_id       = "abc123"
  log_level     = "debug"
  tag_min_hands = 50
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/handtrack/db", cfg.Tracker.DBPath)
	assert.Equal(t, "abc123", cfg.Tracker.HeroID)
	assert.Equal(t, "debug", cfg.Tracker.LogLevel)
	assert.Equal(t, 50, cfg.Tracker.TagMinHands)
	assert.NoError(t, cfg.Validate())
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
tracker {
  hero_id = "abc123"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.Tracker.HeroID)
	assert.Equal(t, "handtrack.db", cfg.Tracker.DBPath)
	assert.Equal(t, 10, cfg.Tracker.TagMinHands)
}

func TestLoadMalformedConfig(t *testing.T) {
	path := writeConfig(t, `tracker { db_path = `)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Tracker.LogLevel = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsNegativeTagMinHands(t *testing.T) {
	cfg := Default()
	cfg.Tracker.TagMinHands = -1
	assert.Error(t, cfg.Validate())
}
