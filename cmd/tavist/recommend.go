package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tavist/internal/errors"
	"github.com/KirkDiggler/tavist/internal/report"
)

var recommendAC string

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend power attack and weapon mode against an AC",
	Long: `Search every power attack value in both weapon modes and print the setup with
the highest expected full-attack damage.

  Example: tavist recommend --ac 22`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recommendAC, "ac", "", "target armor class")
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	r, err := loadSession(cmd)
	if err != nil {
		return err
	}
	return r.recommend(cmd.Context(), parseAC(recommendAC))
}

func (r *runner) recommend(ctx context.Context, ac int) error {
	rec, err := r.svc.Recommend(ctx, ac)
	if err != nil {
		return errors.Wrapf(err, "failed to recommend setup for AC %d", ac)
	}

	if r.output == outputYAML {
		return report.EncodeYAML(r.out, report.RecommendationView{Recommendation: *rec})
	}
	for _, line := range report.FormatRecommendation(*rec) {
		if err := r.printf("%s\n", line); err != nil {
			return err
		}
	}
	return nil
}
