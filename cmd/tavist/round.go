package main

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/tavist/internal/errors"
	"github.com/KirkDiggler/tavist/internal/report"
	"github.com/KirkDiggler/tavist/internal/services/combat"
	"github.com/KirkDiggler/tavist/internal/tracking"
)

func (r *runner) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(r.out, format, args...)
	return err
}

// finishRound prints a round, settles its disambiguation and returns its view.
// Bound and damage changes are printed as the combat service reports them.
func (r *runner) finishRound(ctx context.Context, round *combat.Round, choose string) (report.RoundView, error) {
	if r.output == outputText {
		if err := r.printRound(round); err != nil {
			return report.RoundView{}, err
		}
		if err := r.notifier.flush(r.out); err != nil {
			return report.RoundView{}, err
		}
	}

	bounds := round.Bounds
	if round.Disambiguation != nil {
		reconciled, err := r.reconcile(ctx, round, choose)
		if err != nil {
			return report.RoundView{}, err
		}
		bounds = reconciled
	}

	view := r.roundView(ctx, round, bounds)
	if r.output == outputText {
		if !r.notifier.pending() {
			if err := r.printf("AC %s (estimate %d)\n", view.Bound, view.Estimate); err != nil {
				return view, err
			}
		}
		if err := r.notifier.flush(r.out); err != nil {
			return view, err
		}
		if err := r.printf("\n"); err != nil {
			return view, err
		}
	}
	return view, nil
}

func (r *runner) printRound(round *combat.Round) error {
	if err := r.printf("== Round %s ==\n", round.ID); err != nil {
		return err
	}
	for _, o := range round.Outcomes {
		if err := r.printf("%s\n", report.FormatAttackLine(o, &round.Bounds)); err != nil {
			return err
		}
	}
	if err := r.printf("Damage by AC:\n"); err != nil {
		return err
	}
	for _, line := range report.FormatBands(round.Bands) {
		if err := r.printf("  %s\n", line); err != nil {
			return err
		}
	}
	return nil
}

// reconcile answers the round's disambiguation from choose, or asks until it gets a usable answer
func (r *runner) reconcile(ctx context.Context, round *combat.Round, choose string) (tracking.Bounds, error) {
	if choose != "" {
		choice, err := parseChoice(choose)
		if err != nil {
			return tracking.Bounds{}, err
		}
		return r.svc.Reconcile(ctx, round.ID, choice)
	}

	for {
		fmt.Fprint(r.prompt, report.FormatDisambiguation(round.Disambiguation))
		fmt.Fprint(r.prompt, "> ")

		line, readErr := r.in.ReadString('\n')
		if line == "" && readErr != nil {
			return tracking.Bounds{}, errors.Wrapf(readErr, "no answer for round %s", round.ID)
		}

		choice, err := parseChoice(line)
		if err == nil {
			var bounds tracking.Bounds
			bounds, err = r.svc.Reconcile(ctx, round.ID, choice)
			if err == nil {
				return bounds, nil
			}
			if !errors.IsInvalidArgument(err) {
				return bounds, err
			}
		}
		fmt.Fprintf(r.prompt, "%v\n", err)
	}
}

func (r *runner) roundView(ctx context.Context, round *combat.Round, bounds tracking.Bounds) report.RoundView {
	view := report.RoundView{
		ID:       round.ID,
		Settings: r.svc.Settings(ctx),
		Outcomes: make([]report.OutcomeView, len(round.Outcomes)),
		Bands:    report.NewBandViews(round.Bands),
		Bounds:   bounds,
		Bound:    report.FormatBound(bounds),
		Estimate: bounds.Estimate(),
	}
	for i, o := range round.Outcomes {
		view.Outcomes[i] = report.NewOutcomeView(o, &round.Bounds)
	}
	if round.Disambiguation != nil {
		view.Candidates = round.Disambiguation.Totals()
	}
	return view
}
