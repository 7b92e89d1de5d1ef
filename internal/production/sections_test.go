package production

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"vidassist/internal/llm"
	"vidassist/internal/parse"
	"vidassist/internal/plan"
	"vidassist/pkg/prompts"
)

type fakeLLM struct {
	fn func(req llm.Request) (string, error)
}

func (f *fakeLLM) Complete(_ context.Context, req llm.Request) (string, error) {
	return f.fn(req)
}

func newGenerator(fn func(req llm.Request) (string, error)) *SectionGenerator {
	return NewSectionGenerator(&fakeLLM{fn: fn}, prompts.Default(), 0.7, 30*time.Second)
}

func testInput() Input {
	return Input{
		Idea:           "how to make cold brew coffee",
		Platform:       "youtube",
		Duration:       "5-10 minutes",
		TargetAudience: "coffee lovers",
		Tone:           "casual",
	}.withDefaults()
}

func TestTitleTrimsWhitespace(t *testing.T) {
	gen := newGenerator(func(req llm.Request) (string, error) {
		if !strings.Contains(req.User, "how to make cold brew coffee") {
			t.Errorf("prompt does not mention the idea: %q", req.User)
		}
		return "  Cold Brew at Home: The Complete Guide  \n", nil
	})

	title, err := gen.Title(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Title: %v", err)
	}
	if title != "Cold Brew at Home: The Complete Guide" {
		t.Errorf("title = %q", title)
	}
}

func TestScreenplayValidatesAgainstProfile(t *testing.T) {
	profile := plan.Resolve("3-5 minutes")

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{
			name: "valid",
			raw: `[
				{"scene": 1, "timing": "0:00-0:15", "description": "Opening", "action": "Greet"},
				{"scene": 2, "timing": "0:15-1:30", "description": "Setup", "action": "Show gear"},
				{"scene": 3, "timing": "1:30-3:00", "description": "Grind", "action": "Grind beans"},
				{"scene": 4, "timing": "3:00-4:30", "description": "Brew", "action": "Combine and steep"},
				{"scene": 5, "timing": "4:30-5:00", "description": "Taste", "action": "Pour and close"}
			]`,
		},
		{
			name:    "tooFewScenes",
			raw:     `[{"scene": 1, "timing": "0:00-0:15", "description": "Only one", "action": "A"}]`,
			wantErr: ErrSchemaViolation,
		},
		{
			name: "wrongTiming",
			raw: `[
				{"scene": 1, "timing": "0:00-0:15", "description": "Opening", "action": "A"},
				{"scene": 2, "timing": "0:15-2:00", "description": "Drifted", "action": "B"},
				{"scene": 3, "timing": "1:30-3:00", "description": "Grind", "action": "C"},
				{"scene": 4, "timing": "3:00-4:30", "description": "Brew", "action": "D"},
				{"scene": 5, "timing": "4:30-5:00", "description": "Taste", "action": "E"}
			]`,
			wantErr: ErrSchemaViolation,
		},
		{
			name:    "notJSON",
			raw:     "Scene 1 opens with a wide shot of the kitchen.",
			wantErr: parse.ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newGenerator(func(req llm.Request) (string, error) {
				return tt.raw, nil
			})
			scenes, err := gen.Screenplay(context.Background(), testInput(), profile)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Screenplay err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Screenplay: %v", err)
			}
			if len(scenes) != profile.SceneCount {
				t.Errorf("got %d scenes, want %d", len(scenes), profile.SceneCount)
			}
		})
	}
}

func TestScreenplayPromptCarriesProfile(t *testing.T) {
	profile := plan.Resolve("1-3 minutes")
	var captured llm.Request
	gen := newGenerator(func(req llm.Request) (string, error) {
		captured = req
		return `[
			{"scene": 1, "timing": "0:00-0:15", "description": "A", "action": "A"},
			{"scene": 2, "timing": "0:15-1:30", "description": "B", "action": "B"},
			{"scene": 3, "timing": "1:30-2:30", "description": "C", "action": "C"},
			{"scene": 4, "timing": "2:30-3:00", "description": "D", "action": "D"}
		]`, nil
	})

	if _, err := gen.Screenplay(context.Background(), testInput(), profile); err != nil {
		t.Fatalf("Screenplay: %v", err)
	}
	if !strings.Contains(captured.User, "exactly 4 scenes") {
		t.Errorf("prompt missing scene count: %q", captured.User)
	}
	if !strings.Contains(captured.User, "0:15-1:30") {
		t.Errorf("prompt missing timing template: %q", captured.User)
	}
	if captured.MaxTokens != tokensScreenplay {
		t.Errorf("max tokens = %d, want %d", captured.MaxTokens, tokensScreenplay)
	}
}

func TestDialogueEmbedsSceneOutline(t *testing.T) {
	screenplay := []Scene{
		{Scene: 1, Timing: "0:00-0:15", Description: "Equipment tour", Action: "Show the gear"},
		{Scene: 2, Timing: "0:15-1:30", Description: "The grind", Action: "Grind on camera"},
	}
	var captured llm.Request
	gen := newGenerator(func(req llm.Request) (string, error) {
		captured = req
		return `[{"speaker": "Host", "line": "Let's talk beans.", "timing": "0:00-0:05"}]`, nil
	})

	lines, err := gen.Dialogue(context.Background(), testInput(), screenplay)
	if err != nil {
		t.Fatalf("Dialogue: %v", err)
	}
	if len(lines) != 1 || lines[0].Speaker != "Host" {
		t.Errorf("lines = %+v", lines)
	}
	if !strings.Contains(captured.User, "Equipment tour") || !strings.Contains(captured.User, "The grind") {
		t.Errorf("prompt missing scene outline: %q", captured.User)
	}
}

func TestDialogueRejectsMissingFields(t *testing.T) {
	gen := newGenerator(func(req llm.Request) (string, error) {
		return `[{"speaker": "", "line": "Orphan line", "timing": "0:00-0:05"}]`, nil
	})
	if _, err := gen.Dialogue(context.Background(), testInput(), nil); !errors.Is(err, ErrSchemaViolation) {
		t.Errorf("err = %v, want ErrSchemaViolation", err)
	}
}

func TestShotsRejectEmptyAndPartial(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"emptyArray", `[]`},
		{"missingDuration", `[{"shot": 1, "type": "Wide", "description": "Kitchen", "duration": "", "purpose": "Establish"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newGenerator(func(req llm.Request) (string, error) {
				return tt.raw, nil
			})
			if _, err := gen.Shots(context.Background(), testInput()); !errors.Is(err, ErrSchemaViolation) {
				t.Errorf("err = %v, want ErrSchemaViolation", err)
			}
		})
	}
}

func TestMusicCapsAtSeven(t *testing.T) {
	gen := newGenerator(func(req llm.Request) (string, error) {
		return strings.Join([]string{
			"Upbeat lo-fi hip hop for the intro segment",
			"Gentle acoustic guitar under the brewing steps",
			"Percussive transition swoosh between scenes",
			"Warm jazz trio for the tasting moment",
			"Bright synth pop for the outro call to action",
			"Subtle kitchen ambience layered under dialogue",
			"Trending upbeat audio clip for the hook",
			"Soft piano underscoring the closing thoughts",
			"Rhythmic coffee grinder foley as a motif",
		}, "\n"), nil
	})

	items, err := gen.Music(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Music: %v", err)
	}
	if len(items) != musicCap {
		t.Errorf("got %d suggestions, want %d", len(items), musicCap)
	}
}

func TestMusicInsufficient(t *testing.T) {
	gen := newGenerator(func(req llm.Request) (string, error) {
		return "Upbeat lo-fi track\nGentle acoustic bed", nil
	})
	if _, err := gen.Music(context.Background(), testInput()); !errors.Is(err, parse.ErrInsufficient) {
		t.Errorf("err = %v, want ErrInsufficient", err)
	}
}

func TestPostingNormalizesHashtags(t *testing.T) {
	gen := newGenerator(func(req llm.Request) (string, error) {
		return "```json\n" + `{
			"best_time": "Weekdays 5-8pm",
			"hashtags": ["coldbrew", "#coffee", " homebarista "],
			"description": "Everything you need to brew at home.",
			"engagement_tactics": ["Pin a question in the comments"]
		}` + "\n```", nil
	})

	strategy, err := gen.Posting(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Posting: %v", err)
	}
	want := []string{"#coldbrew", "#coffee", "#homebarista"}
	if len(strategy.Hashtags) != len(want) {
		t.Fatalf("hashtags = %v, want %v", strategy.Hashtags, want)
	}
	for i, tag := range want {
		if strategy.Hashtags[i] != tag {
			t.Errorf("hashtag[%d] = %q, want %q", i, strategy.Hashtags[i], tag)
		}
	}
}

func TestPostingRequiresFields(t *testing.T) {
	gen := newGenerator(func(req llm.Request) (string, error) {
		return `{"best_time": "", "hashtags": ["#a"], "description": "d", "engagement_tactics": ["t"]}`, nil
	})
	if _, err := gen.Posting(context.Background(), testInput()); !errors.Is(err, ErrSchemaViolation) {
		t.Errorf("err = %v, want ErrSchemaViolation", err)
	}
}

func TestSectionPropagatesClientError(t *testing.T) {
	gen := newGenerator(func(req llm.Request) (string, error) {
		return "", llm.ErrUnavailable
	})
	if _, err := gen.Hook(context.Background(), testInput()); !errors.Is(err, llm.ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}
