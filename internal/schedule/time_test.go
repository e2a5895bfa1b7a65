package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		clock string
		want  int
		ok    bool
	}{
		{"00:00", 0, true},
		{"09:00", 540, true},
		{"23:59", 1439, true},
		{"9:30", 0, false}, // часы строго двузначные, иначе ломается round trip
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"12-30", 0, false},
		{"12:30:00", 0, false},
		{"", 0, false},
		{"ab:cd", 0, false},
		{"12:3", 0, false},
	}

	for _, tc := range cases {
		got, err := ToMinutes(tc.clock)
		if tc.ok {
			if err != nil {
				t.Errorf("ToMinutes(%q): unexpected error %v", tc.clock, err)
				continue
			}
			if got != tc.want {
				t.Errorf("ToMinutes(%q) = %d, want %d", tc.clock, got, tc.want)
			}
		} else {
			if err == nil {
				t.Errorf("ToMinutes(%q): expected error, got %d", tc.clock, got)
				continue
			}
			var fErr *FormatError
			if !errors.As(err, &fErr) {
				t.Errorf("ToMinutes(%q): expected FormatError, got %T", tc.clock, err)
			}
		}
	}
}

func TestFromMinutesRoundTrip(t *testing.T) {
	// fromMinutes(toMinutes(t)) == t для всех моментов суток
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			clock := FromMinutes(h*60 + m)
			minutes, err := ToMinutes(clock)
			if err != nil {
				t.Fatalf("ToMinutes(%q): %v", clock, err)
			}
			if back := FromMinutes(minutes); back != clock {
				t.Fatalf("round trip broken: %q -> %d -> %q", clock, minutes, back)
			}
		}
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		startA, endA, startB, endB     int
		want                           bool
	}{
		{"self always overlaps", 540, 600, 540, 600, true},
		{"adjacent do not overlap", 0, 60, 60, 120, false},
		{"adjacent reversed", 60, 120, 0, 60, false},
		{"partial overlap", 540, 600, 570, 630, true},
		{"containment", 540, 720, 600, 660, true},
		{"disjoint", 540, 600, 700, 760, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.startA, tc.endA, tc.startB, tc.endB); got != tc.want {
				t.Errorf("Overlaps(%d,%d,%d,%d) = %v, want %v",
					tc.startA, tc.endA, tc.startB, tc.endB, got, tc.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	day, err := ParseDate("2026-09-07")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if day.Weekday() != time.Monday {
		t.Errorf("2026-09-07 is a Monday, got %v", day.Weekday())
	}
	if Weekday(day) != 1 {
		t.Errorf("Weekday = %d, want 1", Weekday(day))
	}
	if FormatDate(day) != "2026-09-07" {
		t.Errorf("FormatDate = %q", FormatDate(day))
	}

	for _, bad := range []string{"07-09-2026", "2026/09/07", "2026-9-7", "not-a-date", "2026-13-40"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q): expected error", bad)
		}
	}
}

func TestDayName(t *testing.T) {
	if DayName(0) != "Sunday" || DayName(6) != "Saturday" {
		t.Errorf("unexpected day names: %q, %q", DayName(0), DayName(6))
	}
	if DayName(7) != "Unknown" {
		t.Errorf("DayName(7) = %q", DayName(7))
	}
}
