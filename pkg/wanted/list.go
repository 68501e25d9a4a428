package wanted

import (
	"slices"
)

// List is an ordered wanted list. Order is kept for wire round-trips; it
// carries no meaning for reconciliation.
type List struct {
	Items []Item `json:"items" yaml:"items"`
}

// NewList builds a list holding the given items in order.
func NewList(items ...Item) List {
	return List{Items: items}
}

// Len returns the number of items.
func (l List) Len() int {
	return len(l.Items)
}

// Clone returns a deep copy of the list.
func (l List) Clone() List {
	if l.Items == nil {
		return List{}
	}
	items := make([]Item, len(l.Items))
	for i, item := range l.Items {
		items[i] = item.Clone()
	}
	return List{Items: items}
}

// Keys returns the key of every item, in list order.
func (l List) Keys() []Key {
	keys := make([]Key, len(l.Items))
	for i, item := range l.Items {
		keys[i] = item.Key()
	}
	return keys
}

// Sorted returns a deep copy of the list ordered by Key.Compare.
// Items sharing a key keep their relative order.
func (l List) Sorted() List {
	sorted := l.Clone()
	slices.SortStableFunc(sorted.Items, func(a, b Item) int {
		return a.Key().Compare(b.Key())
	})
	return sorted
}

// Equal reports whether both lists hold equal items in the same order.
// A nil and an empty item slice are equal.
func (l List) Equal(o List) bool {
	return slices.EqualFunc(l.Items, o.Items, Item.Equal)
}
