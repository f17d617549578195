package main

import (
	"style-sync/internal/domain/gaps"
	"style-sync/internal/domain/goals"
	"style-sync/internal/domain/outfit"

	"github.com/spf13/cobra"
)

type goalsOutput struct {
	Goals   []goals.Goal        `json:"goals"`
	Seasons goals.SeasonBalance `json:"seasonBalance"`
	Gaps    gaps.Report         `json:"gaps"`
}

func newGoalsCmd() *cobra.Command {
	var (
		wardrobePath string
		prefs        string
		fb           goals.FeedbackSummary
	)

	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Compute style goals and wardrobe gaps for a wardrobe file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var items []outfit.Item
			if err := readJSONFile(wardrobePath, &items); err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), goalsOutput{
				Goals:   goals.Compute(items, splitList(prefs), fb),
				Seasons: goals.Seasons(items),
				Gaps:    gaps.Analyze(items),
			})
		},
	}

	cmd.Flags().StringVar(&wardrobePath, "wardrobe", "", "path to a JSON list of wardrobe items")
	cmd.Flags().StringVar(&prefs, "prefs", "", "comma separated style preferences")
	cmd.Flags().IntVar(&fb.Total, "feedback-total", 0, "number of feedback entries given so far")
	cmd.Flags().Float64Var(&fb.AverageRating, "feedback-avg", 0, "average outfit rating")
	_ = cmd.MarkFlagRequired("wardrobe")
	return cmd
}
