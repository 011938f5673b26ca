package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tavist/internal/errors"
	"github.com/KirkDiggler/tavist/internal/report"
)

var (
	attackRounds int
	attackChoose string
)

var attackCmd = &cobra.Command{
	Use:   "attack",
	Short: "Resolve full attacks and track the opponent's AC",
	Long: `Resolve one or more full attacks against the same opponent. The AC bounds carry
over between rounds. When a round cannot be settled from the bounds alone you are
asked for the lowest attack total that hit, unless --choose answers for you.

  Example: tavist attack --rounds 3 --power-attack 4`,
	Args: cobra.NoArgs,
	RunE: runAttack,
}

func init() {
	attackCmd.Flags().IntVar(&attackRounds, "rounds", 1, "number of full attacks")
	attackCmd.Flags().StringVar(&attackChoose, "choose", "", "answer for every ambiguous round: 'miss' or the lowest total that hit")
}

func runAttack(cmd *cobra.Command, _ []string) error {
	r, err := loadSession(cmd)
	if err != nil {
		return err
	}
	return r.attack(cmd.Context(), attackRounds, attackChoose)
}

func (r *runner) attack(ctx context.Context, rounds int, choose string) error {
	if rounds < 1 {
		return errors.InvalidArgumentf("rounds must be positive, got %d", rounds)
	}

	views := make([]report.RoundView, 0, rounds)
	for i := 0; i < rounds; i++ {
		if err := r.autoRecommend(ctx); err != nil {
			return err
		}

		round, err := r.svc.FullAttack(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to resolve full attack")
		}

		view, err := r.finishRound(ctx, round, choose)
		if err != nil {
			return err
		}
		views = append(views, view)
	}

	if r.output == outputYAML {
		return report.EncodeYAML(r.out, views)
	}
	return nil
}
