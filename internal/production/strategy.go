package production

import (
	"context"
	"fmt"
	"sync"

	"vidassist/internal/plan"
)

// Strategy turns a validated input and its duration profile into a package.
type Strategy interface {
	Name() string
	Generate(ctx context.Context, in Input, profile plan.Profile) (*Package, error)
}

// SectionsStrategy drives one generation call per section. Title, hook and
// screenplay run sequentially since dialogue needs the screenplay outline;
// the six remaining sections fan out bounded by parallelism. The first
// failure cancels the rest and is returned to the caller.
type SectionsStrategy struct {
	gen         *SectionGenerator
	parallelism int
}

func NewSectionsStrategy(gen *SectionGenerator, parallelism int) *SectionsStrategy {
	if parallelism < 1 {
		parallelism = 1
	}
	return &SectionsStrategy{gen: gen, parallelism: parallelism}
}

func (s *SectionsStrategy) Name() string { return "sections" }

func (s *SectionsStrategy) Generate(ctx context.Context, in Input, profile plan.Profile) (*Package, error) {
	title, err := s.gen.Title(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	hook, err := s.gen.Hook(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("hook: %w", err)
	}
	screenplay, err := s.gen.Screenplay(ctx, in, profile)
	if err != nil {
		return nil, fmt.Errorf("screenplay: %w", err)
	}

	pkg := &Package{
		Title:      title,
		Hook:       hook,
		Screenplay: screenplay,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := []struct {
		name string
		run  func(ctx context.Context) error
	}{
		{"dialogue", func(ctx context.Context) error {
			lines, err := s.gen.Dialogue(ctx, in, screenplay)
			if err != nil {
				return err
			}
			pkg.Dialogue = lines
			return nil
		}},
		{"shot list", func(ctx context.Context) error {
			shots, err := s.gen.Shots(ctx, in)
			if err != nil {
				return err
			}
			pkg.ShotList = shots
			return nil
		}},
		{"camera angles", func(ctx context.Context) error {
			setups, err := s.gen.Camera(ctx, in)
			if err != nil {
				return err
			}
			pkg.CameraAngles = setups
			return nil
		}},
		{"music suggestions", func(ctx context.Context) error {
			items, err := s.gen.Music(ctx, in)
			if err != nil {
				return err
			}
			pkg.MusicSuggestions = items
			return nil
		}},
		{"thumbnail concepts", func(ctx context.Context) error {
			items, err := s.gen.Thumbnails(ctx, in)
			if err != nil {
				return err
			}
			pkg.ThumbnailConcepts = items
			return nil
		}},
		{"posting strategy", func(ctx context.Context) error {
			strategy, err := s.gen.Posting(ctx, in)
			if err != nil {
				return err
			}
			pkg.PostingStrategy = strategy
			return nil
		}},
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.parallelism)
	errCh := make(chan error, len(jobs))

	for _, job := range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				errCh <- fmt.Errorf("%s: %w", job.name, ctx.Err())
				return
			}
			if err := job.run(ctx); err != nil {
				errCh <- fmt.Errorf("%s: %w", job.name, err)
				cancel()
			}
		}()
	}
	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, err
	}
	return pkg, nil
}
