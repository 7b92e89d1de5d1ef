package production

import (
	"context"
	"fmt"
	"log/slog"

	"vidassist/internal/plan"
)

// Assembler is the top-level entry point: apply input defaults, resolve the
// duration profile, run the selected strategy, attach the engagement estimate
// and validate the finished package.
type Assembler struct {
	gen         *SectionGenerator
	parallelism int
}

func NewAssembler(gen *SectionGenerator, parallelism int) *Assembler {
	return &Assembler{gen: gen, parallelism: parallelism}
}

func (a *Assembler) strategy(name string) Strategy {
	if name == "sections" {
		return NewSectionsStrategy(a.gen, a.parallelism)
	}
	return NewFastStrategy(a.gen)
}

func (a *Assembler) Assemble(ctx context.Context, in Input, strategyName string) (*Package, error) {
	in = in.withDefaults()
	if err := in.validate(); err != nil {
		return nil, err
	}

	profile := plan.Resolve(in.Duration)
	strategy := a.strategy(strategyName)

	slog.Info("assembling production package",
		"idea", in.Idea,
		"platform", in.Platform,
		"duration", profile.Duration,
		"scenes", profile.SceneCount,
		"strategy", strategy.Name())

	pkg, err := strategy.Generate(ctx, in, profile)
	if err != nil {
		return nil, err
	}

	pkg.EstimatedEngagement = EstimateEngagement(in.Platform)

	if err := validatePackage(pkg, profile); err != nil {
		return nil, err
	}
	return pkg, nil
}

func validatePackage(pkg *Package, profile plan.Profile) error {
	if pkg.Title == "" {
		return fmt.Errorf("%w: package title is empty", ErrValidation)
	}
	if pkg.Hook == "" {
		return fmt.Errorf("%w: package hook is empty", ErrValidation)
	}
	if len(pkg.Screenplay) != profile.SceneCount {
		return fmt.Errorf("%w: screenplay has %d scenes, profile requires %d", ErrValidation, len(pkg.Screenplay), profile.SceneCount)
	}
	return nil
}
