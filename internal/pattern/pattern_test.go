package pattern

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifecal/internal/grid"
)

func TestPresetNames(t *testing.T) {
	assert.Equal(t, []string{"beacon", "blinker", "block", "glider"}, Names())
	for _, name := range Names() {
		p, ok := Preset(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, p.Offsets, name)
	}
	_, ok := Preset("gosper-gun")
	assert.False(t, ok)
}

func TestBlockKeys(t *testing.T) {
	p, _ := Preset("block")
	anchor := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	got := p.Keys(anchor)
	assert.ElementsMatch(t, []grid.Key{
		"2024-03-15", "2024-03-16", "2024-03-22", "2024-03-23",
	}, got)
}

func TestBlinkerKeysSpanWeeks(t *testing.T) {
	p, _ := Preset("blinker")
	anchor := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	got := p.Keys(anchor)
	assert.ElementsMatch(t, []grid.Key{
		"2024-03-08", "2024-03-15", "2024-03-22",
	}, got)
}

func TestLoadFile(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeTemp(t, `[
			{"name": "pair", "offsets": [{"days": 0, "weeks": 0}, {"days": 1, "weeks": 0}]}
		]`)

		patterns, err := LoadFile(path)
		require.NoError(t, err)
		require.Len(t, patterns, 1)
		assert.Equal(t, "pair", patterns[0].Name)
		assert.Len(t, patterns[0].Offsets, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := LoadFile(writeTemp(t, `{not json`))
		assert.Error(t, err)
	})

	t.Run("unnamed pattern", func(t *testing.T) {
		_, err := LoadFile(writeTemp(t, `[{"offsets": [{"days": 0, "weeks": 0}]}]`))
		assert.Error(t, err)
	})

	t.Run("empty offsets", func(t *testing.T) {
		_, err := LoadFile(writeTemp(t, `[{"name": "hollow", "offsets": []}]`))
		assert.Error(t, err)
	})
}

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patterns.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}
