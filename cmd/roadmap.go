package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/learnpath/learnpath/internal/app"
	"github.com/learnpath/learnpath/internal/i18n"
	"github.com/learnpath/learnpath/internal/roadmap"
)

var roadmapFlags struct {
	goal        string
	level       string
	time        string
	style       string
	background  string
	constraints []string
	weeks       int
}

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate a learning roadmap from a profile",
	RunE:  runRoadmap,
}

func init() {
	roadmapCmd.Flags().StringVar(&roadmapFlags.goal, "goal", "", "learning goal (required)")
	roadmapCmd.Flags().StringVar(&roadmapFlags.level, "level", "", "current level (required)")
	roadmapCmd.Flags().StringVar(&roadmapFlags.time, "time", "", "time commitment (required)")
	roadmapCmd.Flags().StringVar(&roadmapFlags.style, "style", "", "preferred learning style")
	roadmapCmd.Flags().StringVar(&roadmapFlags.background, "background", "", "relevant background")
	roadmapCmd.Flags().StringSliceVar(&roadmapFlags.constraints, "constraint", nil, "constraint (repeatable)")
	roadmapCmd.Flags().IntVar(&roadmapFlags.weeks, "weeks", 0, "duration in weeks (0 = automatic)")

	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	profile := roadmap.UserProfile{
		Goal:           roadmapFlags.goal,
		CurrentLevel:   roadmapFlags.level,
		TimeCommitment: roadmapFlags.time,
		LearningStyle:  roadmapFlags.style,
		Background:     roadmapFlags.background,
		Constraints:    roadmapFlags.constraints,
	}

	fmt.Println(i18n.T(i18n.KeyRoadmapLoading))

	rm, err := a.Roadmaps.Generate(ctx, profile, roadmapFlags.weeks)
	if err != nil {
		return fmt.Errorf("%s: %w", i18n.T(i18n.KeyRoadmapError), err)
	}

	printRoadmap(rm)
	fmt.Println(i18n.T(i18n.KeyRoadmapCreated))
	return nil
}

func printRoadmap(rm *roadmap.Roadmap) {
	fmt.Println()
	fmt.Println(i18n.Sprintf(i18n.KeyRoadmapTitle, rm.Title, rm.DurationWeeks))
	if rm.Description != "" {
		fmt.Println(rm.Description)
	}
	if len(rm.Prerequisites) > 0 {
		fmt.Printf("  %s\n", strings.Join(rm.Prerequisites, ", "))
	}
	fmt.Println()

	for _, m := range rm.Milestones {
		fmt.Println(i18n.Sprintf(i18n.KeyRoadmapWeek, m.Week, m.Topic))
		if m.Description != "" {
			fmt.Printf("  %s\n", m.Description)
		}
		for _, res := range m.Resources {
			fmt.Printf("  - [%s] %s (%s)\n", res.Type, res.Title, res.URL)
		}
		fmt.Println()
	}
}
