package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tavist/internal/errors"
	"github.com/KirkDiggler/tavist/internal/report"
	"github.com/KirkDiggler/tavist/internal/services/combat"
)

var (
	swingAttack string
	swingChoose string
)

var swingCmd = &cobra.Command{
	Use:   "swing",
	Short: "Resolve a single swing",
	Long: `Resolve one named swing of the full attack, or the off-hand swing, and print
every die and modifier that went into it.

  Example: tavist swing --attack ` + combat.OffHandAttack,
	Args: cobra.NoArgs,
	RunE: runSwing,
}

func init() {
	swingCmd.Flags().StringVar(&swingAttack, "attack", "first", "attack name, or "+combat.OffHandAttack)
	swingCmd.Flags().StringVar(&swingChoose, "choose", "", "answer if the swing is ambiguous: 'miss' or its total")
}

func runSwing(cmd *cobra.Command, _ []string) error {
	r, err := loadSession(cmd)
	if err != nil {
		return err
	}
	return r.swing(cmd.Context(), swingAttack, swingChoose)
}

func (r *runner) swing(ctx context.Context, name, choose string) error {
	if err := r.autoRecommend(ctx); err != nil {
		return err
	}

	round, err := r.svc.Swing(ctx, name)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve %s", name)
	}

	if r.output == outputText {
		for _, o := range round.Outcomes {
			if err := r.printf("%s\n", report.FormatSwing(o)); err != nil {
				return err
			}
		}
	}

	view, err := r.finishRound(ctx, round, choose)
	if err != nil {
		return err
	}
	if r.output == outputYAML {
		return report.EncodeYAML(r.out, view)
	}
	return nil
}
