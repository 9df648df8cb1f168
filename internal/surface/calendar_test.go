package surface

import (
	"testing"
	"time"

	"lifecal/internal/grid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewCalendarMembership(t *testing.T) {
	cal := NewCalendar(date(2024, time.March, 1), date(2024, time.March, 10))
	keys := cal.Keys()
	if len(keys) != 10 {
		t.Fatalf("got %d cells, want 10", len(keys))
	}
	if keys[0] != "2024-03-01" || keys[9] != "2024-03-10" {
		t.Fatalf("unexpected bounds: %q .. %q", keys[0], keys[9])
	}
	for _, k := range keys {
		c, ok := cal.Color(k)
		if !ok || c != Off {
			t.Fatalf("cell %q not initialized dead: (%q, %v)", k, c, ok)
		}
	}
}

func TestNewCalendarReversedRange(t *testing.T) {
	cal := NewCalendar(date(2024, time.March, 10), date(2024, time.March, 1))
	if len(cal.Keys()) != 0 {
		t.Fatalf("reversed range should be empty, got %d cells", len(cal.Keys()))
	}
}

func TestSetColorOutsideRange(t *testing.T) {
	cal := NewCalendar(date(2024, time.March, 1), date(2024, time.March, 5))
	if cal.SetColor("2024-04-01", Palette[0]) {
		t.Fatal("write outside range should report false")
	}
	if _, ok := cal.Color("2024-04-01"); ok {
		t.Fatal("read outside range should report absent")
	}
}

func TestLivenessDerivation(t *testing.T) {
	cal := NewCalendar(date(2024, time.March, 1), date(2024, time.March, 5))
	k := grid.Key("2024-03-03")

	if IsAlive(cal, k) {
		t.Fatal("fresh cell should be dead")
	}
	SetAlive(cal, k, Palette[2])
	if !IsAlive(cal, k) {
		t.Fatal("painted cell should be alive")
	}
	if c, _ := cal.Color(k); c != Palette[2] {
		t.Fatalf("color = %q, want %q", c, Palette[2])
	}
	SetDead(cal, k)
	if IsAlive(cal, k) {
		t.Fatal("cleared cell should be dead")
	}

	// Absent cells read dead without panicking.
	if IsAlive(cal, "1990-01-01") {
		t.Fatal("absent cell should read dead")
	}
}

func TestSetAliveSubstitutesOffColor(t *testing.T) {
	cal := NewCalendar(date(2024, time.March, 1), date(2024, time.March, 5))
	SetAlive(cal, "2024-03-02", Off)
	if !IsAlive(cal, "2024-03-02") {
		t.Fatal("SetAlive with the off color must still produce an alive cell")
	}
}

func TestColorRGBA(t *testing.T) {
	c, ok := Color("#40c463").RGBA()
	if !ok {
		t.Fatal("valid hex rejected")
	}
	if c.R != 0x40 || c.G != 0xc4 || c.B != 0x63 || c.A != 0xff {
		t.Fatalf("decoded %+v", c)
	}
	for _, bad := range []Color{"", "#fff", "40c463", "#40c46g", "#40C4"} {
		if _, ok := bad.RGBA(); ok {
			t.Errorf("RGBA(%q) accepted malformed color", bad)
		}
	}
	if _, ok := Color("#2AbEd6").RGBA(); !ok {
		// mixed-case hex digits decode fine
		t.Error("case-insensitive hex rejected")
	}
}
