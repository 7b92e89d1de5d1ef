// Package plan maps a user-selected duration bucket to a fixed scene plan.
package plan

import "strings"

const DefaultDuration = "5-10 minutes"

// Profile is the scene plan derived from a duration selection. TotalTime is
// a mm:ss string and SceneTimings holds exactly SceneCount ranges that tile
// [0:00, TotalTime] without gaps or overlap.
type Profile struct {
	Duration     string
	TotalTime    string
	SceneCount   int
	SceneTimings []string
}

var profiles = map[string]Profile{
	"1-3 minutes": {
		Duration:     "1-3 minutes",
		TotalTime:    "3:00",
		SceneCount:   4,
		SceneTimings: []string{"0:00-0:15", "0:15-1:30", "1:30-2:30", "2:30-3:00"},
	},
	"3-5 minutes": {
		Duration:     "3-5 minutes",
		TotalTime:    "5:00",
		SceneCount:   5,
		SceneTimings: []string{"0:00-0:15", "0:15-1:30", "1:30-3:00", "3:00-4:30", "4:30-5:00"},
	},
	"5-10 minutes": {
		Duration:     "5-10 minutes",
		TotalTime:    "8:00",
		SceneCount:   6,
		SceneTimings: []string{"0:00-0:30", "0:30-2:00", "2:00-4:00", "4:00-6:00", "6:00-7:30", "7:30-8:00"},
	},
	"10+ minutes": {
		Duration:     "10+ minutes",
		TotalTime:    "12:00",
		SceneCount:   7,
		SceneTimings: []string{"0:00-0:30", "0:30-2:30", "2:30-5:00", "5:00-7:30", "7:30-10:00", "10:00-11:30", "11:30-12:00"},
	},
}

// Resolve returns the profile for a duration selection. Unrecognized values
// fall back to the "5-10 minutes" profile rather than failing; the selection
// is user preference, not data.
func Resolve(duration string) Profile {
	if p, ok := profiles[duration]; ok {
		return p
	}
	return profiles[DefaultDuration]
}

// Durations lists the recognized buckets in ascending length order.
func Durations() []string {
	return []string{"1-3 minutes", "3-5 minutes", "5-10 minutes", "10+ minutes"}
}

// ExampleTiming renders the timing template the way prompts embed it,
// e.g. "0:00-0:15, 0:15-1:30, ...".
func (p Profile) ExampleTiming() string {
	return strings.Join(p.SceneTimings, ", ")
}
