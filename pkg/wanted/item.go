// Package wanted defines the typed model of a Bricklink wanted list.
//
// The types follow the Bricklink wanted list XML schema
// (https://www.bricklink.com/help.asp?helpID=207). An Item is keyed by its
// catalog ID and optional color; every other field is optional and modelled
// as a pointer, where nil means the field is absent from the list.
//
// Values of these types are treated as immutable once built. Functions that
// derive new lists (see the reconcile package) work on clones.
package wanted

import (
	"github.com/agentstation/brickline/internal/utils/ptr"
)

// Item is a single catalog entry on a wanted list.
type Item struct {
	Type         ItemType   `json:"type" yaml:"type"`
	ID           string     `json:"id" yaml:"id"`
	Color        *Color     `json:"color,omitempty" yaml:"color,omitempty"`
	MaxPrice     *Price     `json:"max_price,omitempty" yaml:"max_price,omitempty"`
	MinQty       *int       `json:"min_qty,omitempty" yaml:"min_qty,omitempty"`
	QtyFilled    *int       `json:"qty_filled,omitempty" yaml:"qty_filled,omitempty"`
	Condition    *Condition `json:"condition,omitempty" yaml:"condition,omitempty"`
	Remarks      *string    `json:"remarks,omitempty" yaml:"remarks,omitempty"`
	Notify       *Flag      `json:"notify,omitempty" yaml:"notify,omitempty"`
	WantedShow   *Flag      `json:"wanted_show,omitempty" yaml:"wanted_show,omitempty"`
	WantedListID *string    `json:"wanted_list_id,omitempty" yaml:"wanted_list_id,omitempty"`
}

// Key returns the identity of the item: its catalog ID and color.
func (i Item) Key() Key {
	if i.Color == nil {
		return Key{ID: i.ID}
	}
	return Key{ID: i.ID, Color: *i.Color, HasColor: true}
}

// Clone returns a deep copy of the item. No optional field of the copy
// shares memory with the receiver.
func (i Item) Clone() Item {
	return Item{
		Type:         i.Type,
		ID:           i.ID,
		Color:        ptr.Clone(i.Color),
		MaxPrice:     ptr.Clone(i.MaxPrice),
		MinQty:       ptr.Clone(i.MinQty),
		QtyFilled:    ptr.Clone(i.QtyFilled),
		Condition:    ptr.Clone(i.Condition),
		Remarks:      ptr.Clone(i.Remarks),
		Notify:       ptr.Clone(i.Notify),
		WantedShow:   ptr.Clone(i.WantedShow),
		WantedListID: ptr.Clone(i.WantedListID),
	}
}

// Equal reports whether two items carry the same values field by field.
func (i Item) Equal(o Item) bool {
	if i.Type != o.Type || i.ID != o.ID {
		return false
	}
	if (i.MaxPrice == nil) != (o.MaxPrice == nil) {
		return false
	}
	if i.MaxPrice != nil && !i.MaxPrice.Equal(*o.MaxPrice) {
		return false
	}
	return ptr.Equal(i.Color, o.Color) &&
		ptr.Equal(i.MinQty, o.MinQty) &&
		ptr.Equal(i.QtyFilled, o.QtyFilled) &&
		ptr.Equal(i.Condition, o.Condition) &&
		ptr.Equal(i.Remarks, o.Remarks) &&
		ptr.Equal(i.Notify, o.Notify) &&
		ptr.Equal(i.WantedShow, o.WantedShow) &&
		ptr.Equal(i.WantedListID, o.WantedListID)
}
