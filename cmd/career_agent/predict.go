package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/observability"
)

var (
	predictSkills []string
	predictTopK   int
	predictJSON   bool
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict career matches for a set of skills",
	Long:  "Rank catalog careers against the given skills and report the skill gap for the top match.",
	RunE:  runPredict,
}

func init() {
	predictCmd.Flags().StringSliceVarP(&predictSkills, "skills", "s", nil, "Skills to match (comma-separated or repeated)")
	predictCmd.Flags().IntVarP(&predictTopK, "top-k", "k", 3, "Number of careers to return")
	predictCmd.Flags().BoolVar(&predictJSON, "json", false, "Output raw JSON instead of formatted boxes")

	_ = predictCmd.MarkFlagRequired("skills")

	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	ranker := matching.NewRanker(cat, matching.DefaultWeights())
	predictions := ranker.RankCareers(predictSkills, predictTopK)
	if len(predictions) == 0 {
		return fmt.Errorf("no careers matched; check the skills list")
	}

	gap, err := ranker.AnalyzeGap(predictSkills, predictions[0].CareerTitle)
	if err != nil {
		return fmt.Errorf("gap analysis failed: %w", err)
	}

	if predictJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"predictions": predictions,
			"skill_gap":   gap,
		})
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintPredictions(predictions)
	printer.PrintSkillGap(predictions[0].CareerTitle, gap)
	return nil
}
