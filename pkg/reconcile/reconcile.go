// Package reconcile merges two wanted lists into one.
//
// Items are matched by wanted.Key (catalog ID and color). Every key from the
// primary list is kept with its metadata; a secondary item with a matching
// key only adds to the minimum quantity, and a secondary item with a new key
// is copied in whole. The result is sorted by key, so merging is
// deterministic but not commutative: swapping the inputs changes which side's
// remarks, price and condition survive, and with LegacyAccumulate can change
// the quantities too.
package reconcile

import (
	"maps"
	"slices"

	"github.com/agentstation/brickline/pkg/wanted"
)

// Reconciler merges wanted lists with a configured accumulation rule.
// It holds no state between calls and is safe for concurrent use.
type Reconciler struct {
	accumulate Accumulator
}

// New creates a Reconciler. The default rule is LegacyAccumulate.
func New(opts ...Option) (*Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Reconciler{accumulate: options.accumulate}, nil
}

var defaultReconciler = &Reconciler{accumulate: LegacyAccumulate}

// Reconcile merges secondary into primary with LegacyAccumulate and returns
// the merged list. Neither input is modified.
func Reconcile(primary, secondary wanted.List) wanted.List {
	return defaultReconciler.Reconcile(primary, secondary).List
}

// Reconcile merges secondary into primary. Neither input is modified and the
// returned list shares no memory with them.
func (r *Reconciler) Reconcile(primary, secondary wanted.List) *Result {
	entries := make(map[wanted.Key]*wanted.Item, primary.Len()+secondary.Len())
	origins := make(map[wanted.Key]Origin, primary.Len()+secondary.Len())
	summary := Summary{
		PrimaryItems:   primary.Len(),
		SecondaryItems: secondary.Len(),
	}

	for _, item := range primary.Items {
		key := item.Key()
		if _, dup := entries[key]; dup {
			summary.Collapsed++
		}
		clone := item.Clone()
		entries[key] = &clone
		origins[key] = OriginPrimary
	}

	for _, item := range secondary.Items {
		key := item.Key()
		existing, ok := entries[key]
		if !ok {
			clone := item.Clone()
			entries[key] = &clone
			origins[key] = OriginSecondary
			summary.Added++
			continue
		}
		qty := r.accumulate(existing.MinQty, item.MinQty)
		existing.MinQty = &qty
		if origins[key] == OriginPrimary {
			origins[key] = OriginBoth
		}
		summary.Matched++
	}

	keys := slices.SortedFunc(maps.Keys(entries), wanted.Key.Compare)
	list := wanted.List{Items: make([]wanted.Item, 0, len(keys))}
	for _, key := range keys {
		list.Items = append(list.Items, *entries[key])
	}
	summary.Keys = len(keys)

	return &Result{
		List:    list,
		Summary: summary,
		Origins: origins,
	}
}
