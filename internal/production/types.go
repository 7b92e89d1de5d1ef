// Package production turns a video idea plus preferences into a complete
// production package: screenplay, shot list, dialogue, camera plan, music and
// thumbnail suggestions, posting strategy, and engagement estimates.
package production

import (
	"errors"
	"fmt"
	"strings"

	"vidassist/internal/plan"
)

var (
	// ErrInvalidInput means the request was rejected before any generation
	// call was made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSchemaViolation means parsed data is structurally valid JSON but
	// breaks an artifact invariant (wrong scene count, missing field,
	// mismatched timing).
	ErrSchemaViolation = errors.New("schema violation")

	// ErrValidation means an assembled package failed a package-level
	// invariant check.
	ErrValidation = errors.New("package validation failed")
)

// Input is one generation request. Only Idea is validated; every other field
// falls back to a policy default when empty and is passed through otherwise.
type Input struct {
	Idea           string `json:"idea"`
	Platform       string `json:"platform"`
	Duration       string `json:"duration"`
	TargetAudience string `json:"target_audience"`
	Tone           string `json:"tone"`
}

func (in Input) withDefaults() Input {
	if in.Platform == "" {
		in.Platform = "youtube"
	}
	if in.Duration == "" {
		in.Duration = plan.DefaultDuration
	}
	if in.TargetAudience == "" {
		in.TargetAudience = "general"
	}
	if in.Tone == "" {
		in.Tone = "engaging"
	}
	return in
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Idea) == "" {
		return fmt.Errorf("%w: idea must not be empty", ErrInvalidInput)
	}
	return nil
}

// Scene is one timed segment of the screenplay. Timing must equal the
// profile's template entry at the same position.
type Scene struct {
	Scene       int    `json:"scene"`
	Timing      string `json:"timing"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

type Shot struct {
	Shot        int    `json:"shot"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Purpose     string `json:"purpose"`
}

type DialogueLine struct {
	Speaker string `json:"speaker"`
	Line    string `json:"line"`
	Timing  string `json:"timing"`
}

type CameraSetup struct {
	Angle    string `json:"angle"`
	Movement string `json:"movement"`
	Purpose  string `json:"purpose"`
	Timing   string `json:"timing"`
}

type PostingStrategy struct {
	BestTime          string   `json:"best_time"`
	Hashtags          []string `json:"hashtags"`
	Description       string   `json:"description"`
	EngagementTactics []string `json:"engagement_tactics"`
}

// Engagement holds "low-high" ranges derived from the platform multiplier
// table, never from the generator.
type Engagement struct {
	Views         string `json:"views"`
	Likes         string `json:"likes"`
	Shares        string `json:"shares"`
	Comments      string `json:"comments"`
	RetentionRate string `json:"retention_rate"`
}

// Package is the assembled result. Built once per request, immutable after
// assembly, returned whole or not at all.
type Package struct {
	Title               string          `json:"title"`
	Hook                string          `json:"hook"`
	Screenplay          []Scene         `json:"screenplay"`
	ShotList            []Shot          `json:"shot_list"`
	Dialogue            []DialogueLine  `json:"dialogue"`
	CameraAngles        []CameraSetup   `json:"camera_angles"`
	MusicSuggestions    []string        `json:"music_suggestions"`
	ThumbnailConcepts   []string        `json:"thumbnail_concepts"`
	PostingStrategy     PostingStrategy `json:"posting_strategy"`
	EstimatedEngagement Engagement      `json:"estimated_engagement"`
}
