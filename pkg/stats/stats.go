// Package stats summarizes wanted lists.
package stats

import (
	"fmt"

	"github.com/agentstation/brickline/pkg/wanted"
)

// Statistics summarizes one list.
type Statistics struct {
	// TotalItems is the number of entries.
	TotalItems int `json:"total_items" yaml:"total_items"`
	// TotalParts sums MinQty, counting an absent MinQty as 1.
	TotalParts int `json:"total_parts" yaml:"total_parts"`
	// UniqueItemColorCount is the number of distinct (ID, Color) keys.
	UniqueItemColorCount int `json:"unique_item_color_count" yaml:"unique_item_color_count"`
	// UniqueColorCount is the number of distinct present colors.
	UniqueColorCount int `json:"unique_color_count" yaml:"unique_color_count"`
}

// String renders one labelled line per figure.
func (s Statistics) String() string {
	return fmt.Sprintf("Total Items: %d\nTotal Parts: %d\nUnique Item/Color Count: %d\nUnique Color Count: %d",
		s.TotalItems, s.TotalParts, s.UniqueItemColorCount, s.UniqueColorCount)
}

// Aggregator folds items into Statistics one at a time.
// The zero value is ready to use.
type Aggregator struct {
	items  int
	parts  int
	keys   map[wanted.Key]struct{}
	colors map[wanted.Color]struct{}
}

// Add folds one item.
func (a *Aggregator) Add(item wanted.Item) {
	if a.keys == nil {
		a.keys = make(map[wanted.Key]struct{})
		a.colors = make(map[wanted.Color]struct{})
	}
	a.items++
	if item.MinQty != nil {
		a.parts += *item.MinQty
	} else {
		a.parts++
	}
	a.keys[item.Key()] = struct{}{}
	if item.Color != nil {
		a.colors[*item.Color] = struct{}{}
	}
}

// Statistics returns the figures for every item added so far.
func (a *Aggregator) Statistics() Statistics {
	return Statistics{
		TotalItems:           a.items,
		TotalParts:           a.parts,
		UniqueItemColorCount: len(a.keys),
		UniqueColorCount:     len(a.colors),
	}
}

// Aggregate computes the statistics of list.
func Aggregate(list wanted.List) Statistics {
	var a Aggregator
	for _, item := range list.Items {
		a.Add(item)
	}
	return a.Statistics()
}
