package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/observability"
	"github.com/jonathan/career-compass/internal/roadmap"
)

var (
	roadmapCareer string
	roadmapSkills []string
	roadmapJSON   bool
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Build a learning roadmap toward a target career",
	Long:  "Analyze the gap between current skills and a target career, then build a phased learning roadmap for the missing skills.",
	RunE:  runRoadmap,
}

func init() {
	roadmapCmd.Flags().StringVarP(&roadmapCareer, "career", "c", "", "Target career title (required)")
	roadmapCmd.Flags().StringSliceVarP(&roadmapSkills, "skills", "s", nil, "Current skills (comma-separated or repeated)")
	roadmapCmd.Flags().BoolVar(&roadmapJSON, "json", false, "Output raw JSON instead of formatted boxes")

	_ = roadmapCmd.MarkFlagRequired("career")

	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	ranker := matching.NewRanker(cat, matching.DefaultWeights())
	gap, err := ranker.AnalyzeGap(roadmapSkills, roadmapCareer)
	if err != nil {
		return fmt.Errorf("gap analysis failed: %w", err)
	}

	planner := roadmap.NewPlanner(cat)
	plan := planner.Build(roadmapCareer, gap.MissingSkills, gap.MatchedSkills)

	if roadmapJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSkillGap(roadmapCareer, gap)
	printer.PrintRoadmap(plan)
	return nil
}
