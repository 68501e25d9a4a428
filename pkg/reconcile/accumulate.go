package reconcile

// Accumulator computes the new minimum quantity of a primary entry when a
// secondary item with the same key is folded into it. Either argument may be
// nil when the item has no MinQty.
type Accumulator func(existing, incoming *int) int

// LegacyAccumulate is the default rule. A missing incoming quantity counts as
// 1, and a missing existing quantity also counts as 1, so two items without
// quantities merge to 2 and 20 merged with nothing gives 21.
//
// The rule is kept for compatibility with lists merged by earlier tools;
// use SumAccumulate to treat a missing existing quantity as zero instead.
func LegacyAccumulate(existing, incoming *int) int {
	in := 1
	if incoming != nil {
		in = *incoming
	}
	if existing != nil {
		return *existing + in
	}
	return 1 + in
}

// SumAccumulate counts a missing incoming quantity as 1 and a missing
// existing quantity as 0.
func SumAccumulate(existing, incoming *int) int {
	in := 1
	if incoming != nil {
		in = *incoming
	}
	if existing != nil {
		return *existing + in
	}
	return in
}
