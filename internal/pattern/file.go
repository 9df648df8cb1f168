package pattern

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// LoadFile reads user-defined patterns from a JSON file: an array of
// {"name": ..., "offsets": [{"days": d, "weeks": w}, ...]} objects.
func LoadFile(path string) ([]Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to read pattern file: %+v", path)
	}

	var patterns []Pattern
	if err = json.Unmarshal(data, &patterns); err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to unmarshal patterns from file: %+v", path)
	}

	for _, p := range patterns {
		if p.Name == "" {
			return nil, errors.Errorf("[LoadFile] unnamed pattern in file: %+v", path)
		}
		if len(p.Offsets) == 0 {
			return nil, errors.Errorf("[LoadFile] pattern %q has no offsets", p.Name)
		}
	}
	return patterns, nil
}
