package damage

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/tavist/internal/modifiers"
)

// Type labels the weapon's damage and every bonus folded into it
type Type string

const (
	TypeSlashing Type = "slashing"
	TypePiercing Type = "piercing"
)

// SourceKind is the closed set of breakdown bucket kinds
type SourceKind int

const (
	// SourceWeapon buckets weapon dice and ability/enhancement/power-attack bonuses under the damage type
	SourceWeapon SourceKind = iota
	// SourceCategory buckets bonuses under their named category
	SourceCategory
	// SourceLabel buckets extra dice and unnamed bonuses under a free label
	SourceLabel
)

// Source is a breakdown key. Two sources are the same bucket only when kind and name match.
type Source struct {
	Kind SourceKind
	Name string
}

// WeaponSource is the bucket for a damage type
func WeaponSource(t Type) Source {
	return Source{Kind: SourceWeapon, Name: string(t)}
}

// CategorySource is the bucket for a bonus category
func CategorySource(c modifiers.Category) Source {
	return Source{Kind: SourceCategory, Name: string(c)}
}

// LabelSource is the bucket for a custom label
func LabelSource(label string) Source {
	return Source{Kind: SourceLabel, Name: label}
}

func (s Source) String() string {
	return s.Name
}

// Breakdown maps damage sources to their summed contribution
type Breakdown map[Source]int

// Add accumulates v into a bucket
func (b Breakdown) Add(src Source, v int) {
	b[src] += v
}

// Merge adds every bucket of o into b
func (b Breakdown) Merge(o Breakdown) {
	for src, v := range o {
		b[src] += v
	}
}

// Total sums every bucket
func (b Breakdown) Total() int {
	total := 0
	for _, v := range b {
		total += v
	}
	return total
}

// Compact returns a copy without zero buckets
func (b Breakdown) Compact() Breakdown {
	out := make(Breakdown, len(b))
	for src, v := range b {
		if v != 0 {
			out[src] = v
		}
	}
	return out
}

// Equal compares non-zero buckets
func (b Breakdown) Equal(o Breakdown) bool {
	left, right := b.Compact(), o.Compact()
	if len(left) != len(right) {
		return false
	}
	for src, v := range left {
		if right[src] != v {
			return false
		}
	}
	return true
}

// Entry is one bucket of a sorted breakdown
type Entry struct {
	Source Source
	Value  int
}

// Sorted lists buckets by name, then kind
func (b Breakdown) Sorted() []Entry {
	entries := make([]Entry, 0, len(b))
	for src, v := range b {
		entries = append(entries, Entry{Source: src, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Source.Name != entries[j].Source.Name {
			return entries[i].Source.Name < entries[j].Source.Name
		}
		return entries[i].Source.Kind < entries[j].Source.Kind
	})
	return entries
}

// Named flattens the breakdown to display names, summing buckets that share one
func (b Breakdown) Named() map[string]int {
	out := make(map[string]int, len(b))
	for src, v := range b {
		out[src.Name] += v
	}
	return out
}

// String renders "name value, name value" or "none"
func (b Breakdown) String() string {
	entries := b.Sorted()
	if len(entries) == 0 {
		return "none"
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s %d", e.Source.Name, e.Value)
	}
	return strings.Join(parts, ", ")
}
