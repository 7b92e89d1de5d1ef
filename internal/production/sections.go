package production

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vidassist/internal/llm"
	"vidassist/internal/parse"
	"vidassist/internal/plan"
	"vidassist/pkg/prompts"
)

// Token budgets per section. The screenplay carries the most structure and
// gets the largest budget; the fast path covers the whole package in one call.
const (
	tokensTitle      = 100
	tokensHook       = 200
	tokensScreenplay = 800
	tokensShots      = 600
	tokensDialogue   = 600
	tokensCamera     = 500
	tokensMusic      = 400
	tokensThumbnails = 400
	tokensPosting    = 500
	tokensComplete   = 3000
)

const (
	musicMinItems  = 3
	musicMinLength = 10
	musicCap       = 7

	thumbnailMinItems  = 3
	thumbnailMinLength = 15
	thumbnailCap       = 6
)

// SectionGenerator produces one typed artifact per call: render the section
// prompt, invoke the generation client inside the per-call timeout, parse and
// validate the untrusted result.
type SectionGenerator struct {
	client      llm.Client
	prompts     *prompts.Prompts
	temperature float64
	timeout     time.Duration
}

func NewSectionGenerator(client llm.Client, p *prompts.Prompts, temperature float64, timeout time.Duration) *SectionGenerator {
	return &SectionGenerator{
		client:      client,
		prompts:     p,
		temperature: temperature,
		timeout:     timeout,
	}
}

func (g *SectionGenerator) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	return g.client.Complete(ctx, llm.Request{
		System:      system,
		User:        user,
		MaxTokens:   maxTokens,
		Temperature: g.temperature,
	})
}

func (g *SectionGenerator) sectionParams(in Input) prompts.SectionParams {
	return prompts.SectionParams{
		Idea:     in.Idea,
		Platform: in.Platform,
		Duration: in.Duration,
		Audience: in.TargetAudience,
		Tone:     in.Tone,
	}
}

func (g *SectionGenerator) Title(ctx context.Context, in Input) (string, error) {
	prompt, err := g.prompts.RenderTitle(g.sectionParams(in))
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	raw, err := g.complete(ctx, g.prompts.System.Assistant, prompt, tokensTitle)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

func (g *SectionGenerator) Hook(ctx context.Context, in Input) (string, error) {
	prompt, err := g.prompts.RenderHook(g.sectionParams(in))
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	raw, err := g.complete(ctx, g.prompts.System.Assistant, prompt, tokensHook)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

// Screenplay generates the scene breakdown and holds it to the profile: the
// parsed array must have exactly SceneCount entries whose timings match the
// template positionally. A mismatch is a schema violation, never silently
// corrected.
func (g *SectionGenerator) Screenplay(ctx context.Context, in Input, profile plan.Profile) ([]Scene, error) {
	prompt, err := g.prompts.RenderScreenplay(prompts.ScreenplayParams{
		SectionParams: g.sectionParams(in),
		TotalTime:     profile.TotalTime,
		SceneCount:    profile.SceneCount,
		Timings:       profile.ExampleTiming(),
	})
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	raw, err := g.complete(ctx, g.prompts.System.Screenwriter, prompt, tokensScreenplay)
	if err != nil {
		return nil, err
	}

	scenes, err := parse.Structured[[]Scene](raw)
	if err != nil {
		return nil, err
	}

	if err := validateScreenplay(scenes, profile); err != nil {
		return nil, err
	}
	return scenes, nil
}

func validateScreenplay(scenes []Scene, profile plan.Profile) error {
	if len(scenes) != profile.SceneCount {
		return fmt.Errorf("%w: screenplay has %d scenes, profile requires %d", ErrSchemaViolation, len(scenes), profile.SceneCount)
	}
	for i, scene := range scenes {
		if scene.Timing != profile.SceneTimings[i] {
			return fmt.Errorf("%w: scene %d timing %q, template requires %q", ErrSchemaViolation, i+1, scene.Timing, profile.SceneTimings[i])
		}
	}
	return nil
}

func (g *SectionGenerator) Shots(ctx context.Context, in Input) ([]Shot, error) {
	prompt, err := g.prompts.RenderShots(g.sectionParams(in))
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	raw, err := g.complete(ctx, g.prompts.System.Cinematographer, prompt, tokensShots)
	if err != nil {
		return nil, err
	}

	shots, err := parse.Structured[[]Shot](raw)
	if err != nil {
		return nil, err
	}
	if len(shots) == 0 {
		return nil, fmt.Errorf("%w: shot list is empty", ErrSchemaViolation)
	}
	for i, shot := range shots {
		if shot.Type == "" || shot.Description == "" || shot.Duration == "" || shot.Purpose == "" {
			return nil, fmt.Errorf("%w: shot %d missing required fields", ErrSchemaViolation, i+1)
		}
	}
	return shots, nil
}

// Dialogue is the one section that consumes another artifact: the screenplay
// outline is embedded as prompt context so lines track the scene flow.
func (g *SectionGenerator) Dialogue(ctx context.Context, in Input, screenplay []Scene) ([]DialogueLine, error) {
	prompt, err := g.prompts.RenderDialogue(prompts.DialogueParams{
		SectionParams: g.sectionParams(in),
		SceneOutline:  sceneOutline(screenplay),
	})
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	raw, err := g.complete(ctx, g.prompts.System.Scriptwriter, prompt, tokensDialogue)
	if err != nil {
		return nil, err
	}

	lines, err := parse.Structured[[]DialogueLine](raw)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: dialogue is empty", ErrSchemaViolation)
	}
	for i, line := range lines {
		if line.Speaker == "" || line.Line == "" {
			return nil, fmt.Errorf("%w: dialogue line %d missing required fields", ErrSchemaViolation, i+1)
		}
	}
	return lines, nil
}

func sceneOutline(screenplay []Scene) string {
	var sb strings.Builder
	for i, scene := range screenplay {
		fmt.Fprintf(&sb, "%d. %s (%s)\n", i+1, scene.Description, scene.Timing)
	}
	return strings.TrimSpace(sb.String())
}

func (g *SectionGenerator) Camera(ctx context.Context, in Input) ([]CameraSetup, error) {
	prompt, err := g.prompts.RenderCamera(g.sectionParams(in))
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	raw, err := g.complete(ctx, g.prompts.System.Cinematographer, prompt, tokensCamera)
	if err != nil {
		return nil, err
	}

	setups, err := parse.Structured[[]CameraSetup](raw)
	if err != nil {
		return nil, err
	}
	if len(setups) == 0 {
		return nil, fmt.Errorf("%w: camera angles are empty", ErrSchemaViolation)
	}
	for i, setup := range setups {
		if setup.Angle == "" || setup.Movement == "" || setup.Purpose == "" || setup.Timing == "" {
			return nil, fmt.Errorf("%w: camera setup %d missing required fields", ErrSchemaViolation, i+1)
		}
	}
	return setups, nil
}

func (g *SectionGenerator) Music(ctx context.Context, in Input) ([]string, error) {
	prompt, err := g.prompts.RenderMusic(g.sectionParams(in))
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	raw, err := g.complete(ctx, g.prompts.System.MusicSupervisor, prompt, tokensMusic)
	if err != nil {
		return nil, err
	}

	suggestions, err := parse.List(raw, musicMinItems, musicMinLength)
	if err != nil {
		return nil, err
	}
	return capItems(suggestions, musicCap), nil
}

func (g *SectionGenerator) Thumbnails(ctx context.Context, in Input) ([]string, error) {
	prompt, err := g.prompts.RenderThumbnails(g.sectionParams(in))
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	raw, err := g.complete(ctx, g.prompts.System.Thumbnail, prompt, tokensThumbnails)
	if err != nil {
		return nil, err
	}

	concepts, err := parse.List(raw, thumbnailMinItems, thumbnailMinLength)
	if err != nil {
		return nil, err
	}
	return capItems(concepts, thumbnailCap), nil
}

func (g *SectionGenerator) Posting(ctx context.Context, in Input) (PostingStrategy, error) {
	prompt, err := g.prompts.RenderPosting(g.sectionParams(in))
	if err != nil {
		return PostingStrategy{}, fmt.Errorf("render prompt: %w", err)
	}

	raw, err := g.complete(ctx, g.prompts.System.Strategist, prompt, tokensPosting)
	if err != nil {
		return PostingStrategy{}, err
	}

	strategy, err := parse.Structured[PostingStrategy](raw)
	if err != nil {
		return PostingStrategy{}, err
	}

	if strategy.BestTime == "" || strategy.Description == "" {
		return PostingStrategy{}, fmt.Errorf("%w: posting strategy missing best_time or description", ErrSchemaViolation)
	}
	if len(strategy.Hashtags) == 0 {
		return PostingStrategy{}, fmt.Errorf("%w: posting strategy has no hashtags", ErrSchemaViolation)
	}
	if len(strategy.EngagementTactics) == 0 {
		return PostingStrategy{}, fmt.Errorf("%w: posting strategy has no engagement tactics", ErrSchemaViolation)
	}

	strategy.Hashtags = normalizeHashtags(strategy.Hashtags)
	return strategy, nil
}

// capItems truncates above the cap; too many items is not an error.
func capItems(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

func normalizeHashtags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		out = append(out, tag)
	}
	return out
}
