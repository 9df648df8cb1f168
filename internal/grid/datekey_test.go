package grid

import (
	"testing"
	"time"
)

func TestParseKeyRoundTrip(t *testing.T) {
	k := Key("2024-03-15")
	ts, err := ParseKey(k)
	if err != nil {
		t.Fatalf("ParseKey: %v", err)
	}
	if got := KeyOf(ts); got != k {
		t.Fatalf("round trip: got %q, want %q", got, k)
	}
	if ts.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", ts.Location())
	}
}

func TestParseKeyRejectsMalformed(t *testing.T) {
	for _, bad := range []Key{"", "15-03-2024", "2024/03/15", "2024-13-01", "not-a-date"} {
		if _, err := ParseKey(bad); err == nil {
			t.Errorf("ParseKey(%q) accepted malformed key", bad)
		}
		if bad.Valid() {
			t.Errorf("Valid(%q) = true", bad)
		}
	}
}

func TestNeighborKeysOffsets(t *testing.T) {
	got := NeighborKeys("2024-03-15")
	want := []Key{
		"2024-03-07", "2024-03-08", "2024-03-09",
		"2024-03-14", "2024-03-16",
		"2024-03-21", "2024-03-22", "2024-03-23",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d neighbors, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbor %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNeighborKeysCrossMonthBoundary(t *testing.T) {
	got := NeighborKeys("2024-02-28")
	// +1 day crosses into the leap day, +1 week into March.
	want := map[Key]bool{
		"2024-02-20": true, "2024-02-21": true, "2024-02-22": true,
		"2024-02-27": true, "2024-02-29": true,
		"2024-03-05": true, "2024-03-06": true, "2024-03-07": true,
	}
	for _, k := range got {
		if !want[k] {
			t.Errorf("unexpected neighbor %q", k)
		}
	}
}

func TestNeighborKeysMalformed(t *testing.T) {
	if got := NeighborKeys("bogus"); got != nil {
		t.Fatalf("expected nil for malformed key, got %v", got)
	}
}
