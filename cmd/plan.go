package cmd

import (
	"fmt"
	"strings"

	"vidassist/internal/plan"
	"vidassist/internal/production"
	"vidassist/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginBottom(1)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var (
	planIdea     string
	planPlatform string
	planMode     string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a production package interactively",
	Long:  `Collect an idea and preferences, then generate and print a full production package.`,
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planIdea, "idea", "i", "", "Video idea (skips the prompt)")
	planCmd.Flags().StringVarP(&planPlatform, "platform", "p", "", "Target platform: youtube, instagram or tiktok")
	planCmd.Flags().StringVarP(&planMode, "mode", "m", "", "Generation mode: fast or sections")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	in := production.Input{
		Idea:     planIdea,
		Platform: planPlatform,
	}
	if in.Idea == "" {
		if err := collectInput(&in); err != nil {
			return err
		}
	}

	mode := planMode
	if mode == "" {
		mode = cfg.Generation.Strategy
	}

	assembler, err := buildAssembler(cfg)
	if err != nil {
		return err
	}

	var pkg *production.Package
	var genErr error
	if err := spinner.New().
		Title("Generating production package").
		Action(func() {
			pkg, genErr = assembler.Assemble(cmd.Context(), in, mode)
		}).
		Run(); err != nil {
		return err
	}
	if genErr != nil {
		return genErr
	}

	printPackage(pkg)
	return nil
}

func collectInput(in *production.Input) error {
	durationOptions := make([]huh.Option[string], 0, len(plan.Durations()))
	for _, d := range plan.Durations() {
		durationOptions = append(durationOptions, huh.NewOption(d, d))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Video idea").
				Placeholder("how to make cold brew coffee").
				Value(&in.Idea).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("idea is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Platform").
				Options(
					huh.NewOption("YouTube", "youtube"),
					huh.NewOption("Instagram", "instagram"),
					huh.NewOption("TikTok", "tiktok"),
				).
				Value(&in.Platform),
			huh.NewSelect[string]().
				Title("Duration").
				Options(durationOptions...).
				Value(&in.Duration),
			huh.NewInput().
				Title("Target audience").
				Placeholder("general").
				Value(&in.TargetAudience),
			huh.NewInput().
				Title("Tone").
				Placeholder("engaging").
				Value(&in.Tone),
		),
	)
	return form.Run()
}

func printPackage(pkg *production.Package) {
	fmt.Println(titleStyle.Render(pkg.Title))
	fmt.Println(pkg.Hook)
	fmt.Println()

	fmt.Println(sectionStyle.Render("Screenplay"))
	for _, scene := range pkg.Screenplay {
		fmt.Printf("  %s %s\n", dimStyle.Render(scene.Timing), scene.Description)
		fmt.Printf("    %s\n", scene.Action)
	}
	fmt.Println()

	if len(pkg.ShotList) > 0 {
		fmt.Println(sectionStyle.Render("Shot list"))
		for _, shot := range pkg.ShotList {
			fmt.Printf("  %d. %s (%s) %s\n", shot.Shot, shot.Type, shot.Duration, dimStyle.Render(shot.Purpose))
		}
		fmt.Println()
	}

	if len(pkg.Dialogue) > 0 {
		fmt.Println(sectionStyle.Render("Dialogue"))
		for _, line := range pkg.Dialogue {
			fmt.Printf("  %s %s: %s\n", dimStyle.Render(line.Timing), line.Speaker, line.Line)
		}
		fmt.Println()
	}

	if len(pkg.CameraAngles) > 0 {
		fmt.Println(sectionStyle.Render("Camera"))
		for _, setup := range pkg.CameraAngles {
			fmt.Printf("  %s, %s (%s) %s\n", setup.Angle, setup.Movement, setup.Timing, dimStyle.Render(setup.Purpose))
		}
		fmt.Println()
	}

	printList("Music", pkg.MusicSuggestions)
	printList("Thumbnails", pkg.ThumbnailConcepts)

	fmt.Println(sectionStyle.Render("Posting"))
	fmt.Printf("  Best time: %s\n", pkg.PostingStrategy.BestTime)
	if len(pkg.PostingStrategy.Hashtags) > 0 {
		fmt.Printf("  Hashtags: %s\n", strings.Join(pkg.PostingStrategy.Hashtags, " "))
	}
	fmt.Printf("  Caption: %s\n", pkg.PostingStrategy.Description)
	for _, tactic := range pkg.PostingStrategy.EngagementTactics {
		fmt.Printf("  - %s\n", tactic)
	}
	fmt.Println()

	est := pkg.EstimatedEngagement
	fmt.Println(sectionStyle.Render("Estimated engagement"))
	fmt.Printf("  Views %s, likes %s, shares %s, comments %s, retention %s\n",
		est.Views, est.Likes, est.Shares, est.Comments, est.RetentionRate)
}

func printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Println(sectionStyle.Render(title))
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
	fmt.Println()
}
