package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 150*time.Millisecond, cfg.Tick())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifecal.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"from": "2024-01-01",
		"to": "2024-03-31",
		"tick_millis": 20,
		"fill_percent": 45,
		"seed": 99,
		"workers": 4
	}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", cfg.From)
	assert.Equal(t, 20*time.Millisecond, cfg.Tick())
	assert.Equal(t, 45, cfg.FillPercent)
	assert.Equal(t, int64(99), cfg.SeedValue())
	assert.Equal(t, 4, cfg.Workers)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
	// Defaults survive so callers can fall back gracefully.
	assert.Equal(t, Default(), cfg)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateRejections(t *testing.T) {
	t.Run("zero tick", func(t *testing.T) {
		cfg := Default()
		cfg.TickMillis = 0
		assert.Error(t, cfg.Validate())
	})
	t.Run("fill out of range", func(t *testing.T) {
		cfg := Default()
		cfg.FillPercent = 101
		assert.Error(t, cfg.Validate())
	})
	t.Run("reversed range", func(t *testing.T) {
		cfg := Default()
		cfg.From = "2024-06-01"
		cfg.To = "2024-01-01"
		assert.Error(t, cfg.Validate())
	})
	t.Run("bad date", func(t *testing.T) {
		cfg := Default()
		cfg.From = "01/02/2024"
		assert.Error(t, cfg.Validate())
	})
}

func TestRangeDefaults(t *testing.T) {
	from, to, err := Default().Range()
	require.NoError(t, err)
	assert.Equal(t, 26*7-1, int(to.Sub(from).Hours()/24))
}

func TestRangeExplicit(t *testing.T) {
	cfg := Default()
	cfg.From = "2024-03-01"
	cfg.To = "2024-04-15"
	from, to, err := cfg.Range()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC), to)
}

func TestSeedValueFallsBackToClock(t *testing.T) {
	cfg := Default()
	assert.NotZero(t, cfg.SeedValue())
}
