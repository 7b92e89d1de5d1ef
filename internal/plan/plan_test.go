package plan

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
)

// parseTimestamp converts "m:ss" to seconds.
func parseTimestamp(t *testing.T, s string) int {
	t.Helper()
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		t.Fatalf("bad timestamp %q", s)
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		t.Fatalf("bad minutes in %q: %v", s, err)
	}
	seconds, err := strconv.Atoi(parts[1])
	if err != nil {
		t.Fatalf("bad seconds in %q: %v", s, err)
	}
	return minutes*60 + seconds
}

func TestResolveTimingsTileTotal(t *testing.T) {
	for _, duration := range Durations() {
		t.Run(duration, func(t *testing.T) {
			p := Resolve(duration)

			if len(p.SceneTimings) != p.SceneCount {
				t.Fatalf("got %d timings, want %d", len(p.SceneTimings), p.SceneCount)
			}

			cursor := 0
			for i, timing := range p.SceneTimings {
				bounds := strings.Split(timing, "-")
				if len(bounds) != 2 {
					t.Fatalf("timing %q is not a range", timing)
				}
				start := parseTimestamp(t, bounds[0])
				end := parseTimestamp(t, bounds[1])

				if start != cursor {
					t.Errorf("scene %d starts at %ds, want %ds (contiguous)", i+1, start, cursor)
				}
				if end <= start {
					t.Errorf("scene %d range %q is empty or reversed", i+1, timing)
				}
				cursor = end
			}

			if total := parseTimestamp(t, p.TotalTime); cursor != total {
				t.Errorf("timings end at %ds, want total %ds", cursor, total)
			}
		})
	}
}

func TestResolveSceneCounts(t *testing.T) {
	tests := []struct {
		duration string
		scenes   int
		total    string
	}{
		{"1-3 minutes", 4, "3:00"},
		{"3-5 minutes", 5, "5:00"},
		{"5-10 minutes", 6, "8:00"},
		{"10+ minutes", 7, "12:00"},
	}

	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			p := Resolve(tt.duration)
			if p.SceneCount != tt.scenes {
				t.Errorf("SceneCount = %d, want %d", p.SceneCount, tt.scenes)
			}
			if p.TotalTime != tt.total {
				t.Errorf("TotalTime = %q, want %q", p.TotalTime, tt.total)
			}
		})
	}
}

func TestResolveUnknownFallsBack(t *testing.T) {
	for _, duration := range []string{"", "short", "90 seconds", "5-10 MINUTES"} {
		t.Run(fmt.Sprintf("unknown_%q", duration), func(t *testing.T) {
			got := Resolve(duration)
			want := Resolve(DefaultDuration)

			if got.SceneCount != want.SceneCount || got.TotalTime != want.TotalTime {
				t.Errorf("Resolve(%q) = %+v, want the %q profile", duration, got, DefaultDuration)
			}
			for i := range want.SceneTimings {
				if got.SceneTimings[i] != want.SceneTimings[i] {
					t.Errorf("timing %d = %q, want %q", i, got.SceneTimings[i], want.SceneTimings[i])
				}
			}
		})
	}
}

func TestExampleTiming(t *testing.T) {
	p := Resolve("1-3 minutes")
	want := "0:00-0:15, 0:15-1:30, 1:30-2:30, 2:30-3:00"
	if got := p.ExampleTiming(); got != want {
		t.Errorf("ExampleTiming() = %q, want %q", got, want)
	}
}
