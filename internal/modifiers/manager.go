package modifiers

import (
	"github.com/KirkDiggler/tavist/internal/errors"
)

// Table owns every Bonus of a character, keyed by ID.
// It is not safe for concurrent use; owners serialize access.
type Table struct {
	bonuses map[ID]*Bonus
	order   []ID
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{
		bonuses: make(map[ID]*Bonus),
		order:   make([]ID, 0),
	}
}

// Add registers a bonus. Adding an existing ID replaces it in place.
func (t *Table) Add(b Bonus) ID {
	if existing, ok := t.bonuses[b.ID]; ok {
		*existing = b
		return b.ID
	}

	stored := b
	t.bonuses[b.ID] = &stored
	t.order = append(t.order, b.ID)
	return b.ID
}

// Set changes the value of a registered bonus
func (t *Table) Set(id ID, value int) error {
	b, ok := t.bonuses[id]
	if !ok {
		return errors.NotFoundf("modifier %s not registered", id)
	}
	b.Value = value
	return nil
}

// Get returns a copy of a registered bonus
func (t *Table) Get(id ID) (Bonus, bool) {
	b, ok := t.bonuses[id]
	if !ok {
		return Bonus{}, false
	}
	return *b, true
}

// Value returns the value of a bonus, zero when unknown
func (t *Table) Value(id ID) int {
	if b, ok := t.bonuses[id]; ok {
		return b.Value
	}
	return 0
}

// Resolve snapshots the listed bonuses in order. Unknown IDs are skipped.
func (t *Table) Resolve(ids []ID) []Bonus {
	out := make([]Bonus, 0, len(ids))
	for _, id := range ids {
		if b, ok := t.bonuses[id]; ok {
			out = append(out, *b)
		}
	}
	return out
}

// Clone deep-copies the table
func (t *Table) Clone() *Table {
	c := NewTable()
	for _, id := range t.order {
		c.Add(*t.bonuses[id])
	}
	return c
}
