// Package config holds the runtime settings shared by the lifecal front
// ends.
package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// Config holds the tunables for a run. From/To bound the calendar grid;
// empty values default to the trailing 26 weeks ending today.
type Config struct {
	From        string `json:"from"`
	To          string `json:"to"`
	TickMillis  int    `json:"tick_millis"`
	FillPercent int    `json:"fill_percent"`
	Seed        int64  `json:"seed"`
	Workers     int    `json:"workers"`
	PatternFile string `json:"pattern_file"`
}

// Default returns sensible defaults.
func Default() Config {
	return Config{
		TickMillis:  150,
		FillPercent: 30,
		Seed:        0,
		Workers:     1,
	}
}

// Load reads configuration from a JSON file over the defaults.
func Load(filename string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[Load] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects out-of-range settings.
func (c Config) Validate() error {
	if c.TickMillis <= 0 {
		return errors.Errorf("[Validate] tick_millis must be positive, got %d", c.TickMillis)
	}
	if c.FillPercent < 0 || c.FillPercent > 100 {
		return errors.Errorf("[Validate] fill_percent must be in [0, 100], got %d", c.FillPercent)
	}
	from, to, err := c.Range()
	if err != nil {
		return err
	}
	if to.Before(from) {
		return errors.Errorf("[Validate] empty date range: %s after %s", c.From, c.To)
	}
	return nil
}

// Tick returns the tick interval as a duration.
func (c Config) Tick() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// Range resolves the grid's date bounds. Either bound may be empty: a
// missing To defaults to today, a missing From to 26 weeks before To.
func (c Config) Range() (time.Time, time.Time, error) {
	to := time.Now().UTC().Truncate(24 * time.Hour)
	if c.To != "" {
		t, err := time.ParseInLocation(dateLayout, c.To, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, errors.Wrapf(err, "[Range] bad to date: %+v", c.To)
		}
		to = t
	}

	from := to.AddDate(0, 0, -26*7+1)
	if c.From != "" {
		t, err := time.ParseInLocation(dateLayout, c.From, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, errors.Wrapf(err, "[Range] bad from date: %+v", c.From)
		}
		from = t
	}
	return from, to, nil
}

// SeedValue returns the configured seed, substituting the current time
// when unset so runs differ by default.
func (c Config) SeedValue() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
