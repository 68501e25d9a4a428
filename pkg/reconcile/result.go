package reconcile

import (
	"fmt"

	"github.com/agentstation/brickline/pkg/wanted"
)

// Origin records which input a merged entry came from.
type Origin int

const (
	// OriginPrimary marks a key present only in the primary list.
	OriginPrimary Origin = iota + 1
	// OriginSecondary marks a key present only in the secondary list.
	OriginSecondary
	// OriginBoth marks a primary key that secondary items were folded into.
	OriginBoth
)

// String returns the origin name.
func (o Origin) String() string {
	switch o {
	case OriginPrimary:
		return "primary"
	case OriginSecondary:
		return "secondary"
	case OriginBoth:
		return "both"
	default:
		return fmt.Sprintf("Origin(%d)", int(o))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Origin) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Result represents the outcome of a reconciliation.
type Result struct {
	// List holds one entry per key, ordered by wanted.Key.Compare.
	List wanted.List

	// Summary counts what happened to the inputs.
	Summary Summary

	// Origins maps every key in List to the input it came from.
	Origins map[wanted.Key]Origin
}

// Summary contains counts about one reconciliation.
type Summary struct {
	PrimaryItems   int `json:"primary_items" yaml:"primary_items"`
	SecondaryItems int `json:"secondary_items" yaml:"secondary_items"`
	// Matched is the number of secondary items folded into an existing entry.
	Matched int `json:"matched" yaml:"matched"`
	// Added is the number of secondary items that created a new entry.
	Added int `json:"added" yaml:"added"`
	// Collapsed is the number of primary items dropped because a later
	// primary item had the same key.
	Collapsed int `json:"collapsed" yaml:"collapsed"`
	// Keys is the number of entries in the result.
	Keys int `json:"keys" yaml:"keys"`
}

// String returns a one-line human-readable summary.
func (s Summary) String() string {
	return fmt.Sprintf("%d primary + %d secondary items -> %d keys (%d matched, %d added, %d collapsed)",
		s.PrimaryItems, s.SecondaryItems, s.Keys, s.Matched, s.Added, s.Collapsed)
}
