package main

import (
	"fmt"
	"io"

	"github.com/KirkDiggler/tavist/internal/errors"
	"github.com/KirkDiggler/tavist/internal/events"
	"github.com/KirkDiggler/tavist/internal/report"
)

// notifier collects tracker changes reported on the bus until the runner prints them
type notifier struct {
	lines []string
}

// subscribeNotifier registers a notifier for bound and damage changes
func subscribeNotifier(bus *events.Bus) *notifier {
	n := &notifier{}
	bus.Subscribe(events.EventTypeBoundsChanged, events.NewListenerFunc("cli-bounds", events.PriorityLast, n.boundsChanged))
	bus.Subscribe(events.EventTypeDamageAccrued, events.NewListenerFunc("cli-damage", events.PriorityLast, n.damageAccrued))
	return n
}

func (n *notifier) boundsChanged(e events.Event) error {
	changed, ok := e.(*events.BoundsChangedEvent)
	if !ok {
		return errors.Internalf("unexpected %s event %T", e.GetType(), e)
	}
	n.lines = append(n.lines, fmt.Sprintf("AC %s -> %s (estimate %d)",
		report.FormatBound(changed.Before), report.FormatBound(changed.After), changed.After.Estimate()))
	return nil
}

func (n *notifier) damageAccrued(e events.Event) error {
	accrued, ok := e.(*events.DamageAccruedEvent)
	if !ok {
		return errors.Internalf("unexpected %s event %T", e.GetType(), e)
	}
	n.lines = append(n.lines, fmt.Sprintf("Damage +%d (total %d)", accrued.Amount, accrued.Total))
	return nil
}

// pending reports whether lines are waiting to be flushed
func (n *notifier) pending() bool {
	return n != nil && len(n.lines) > 0
}

// flush writes and forgets the collected lines; a nil notifier writes nothing
func (n *notifier) flush(w io.Writer) error {
	if n == nil {
		return nil
	}
	lines := n.lines
	n.lines = nil
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
