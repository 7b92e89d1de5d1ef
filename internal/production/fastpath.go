package production

import (
	"context"
	"fmt"

	"vidassist/internal/parse"
	"vidassist/internal/plan"
	"vidassist/pkg/prompts"
)

// fastPackage mirrors Package but keeps title and hook as pointers so an
// absent key can be told apart from an empty string. Only absence triggers
// the templated defaults.
type fastPackage struct {
	Title             *string         `json:"title"`
	Hook              *string         `json:"hook"`
	Screenplay        []Scene         `json:"screenplay"`
	ShotList          []Shot          `json:"shot_list"`
	Dialogue          []DialogueLine  `json:"dialogue"`
	CameraAngles      []CameraSetup   `json:"camera_angles"`
	MusicSuggestions  []string        `json:"music_suggestions"`
	ThumbnailConcepts []string        `json:"thumbnail_concepts"`
	PostingStrategy   PostingStrategy `json:"posting_strategy"`
}

// FastStrategy produces the whole package in a single generation call.
type FastStrategy struct {
	gen *SectionGenerator
}

func NewFastStrategy(gen *SectionGenerator) *FastStrategy {
	return &FastStrategy{gen: gen}
}

func (s *FastStrategy) Name() string { return "fast" }

func (s *FastStrategy) Generate(ctx context.Context, in Input, profile plan.Profile) (*Package, error) {
	prompt, err := s.gen.prompts.RenderComplete(prompts.CompleteParams{
		SectionParams: s.gen.sectionParams(in),
		TotalTime:     profile.TotalTime,
		SceneCount:    profile.SceneCount,
		Timings:       profile.ExampleTiming(),
	})
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	raw, err := s.gen.complete(ctx, s.gen.prompts.System.Complete, prompt, tokensComplete)
	if err != nil {
		return nil, err
	}

	fast, err := parse.Structured[fastPackage](raw)
	if err != nil {
		return nil, err
	}

	pkg := &Package{
		Title:             fallbackString(fast.Title, fmt.Sprintf("Amazing %s Guide", in.Idea)),
		Hook:              fallbackString(fast.Hook, fmt.Sprintf("Want to learn about %s? Here's everything you need to know!", in.Idea)),
		Screenplay:        emptyIfNil(fast.Screenplay),
		ShotList:          emptyIfNil(fast.ShotList),
		Dialogue:          emptyIfNil(fast.Dialogue),
		CameraAngles:      emptyIfNil(fast.CameraAngles),
		MusicSuggestions:  emptyIfNil(fast.MusicSuggestions),
		ThumbnailConcepts: emptyIfNil(fast.ThumbnailConcepts),
		PostingStrategy:   fast.PostingStrategy,
	}
	pkg.PostingStrategy.Hashtags = normalizeHashtags(pkg.PostingStrategy.Hashtags)
	return pkg, nil
}

func fallbackString(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
