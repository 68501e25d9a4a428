package wanted

import (
	"cmp"
	"strconv"
	"strings"
)

// Color is a Bricklink catalog color ID
// (https://www.bricklink.com/catalogColors.asp).
type Color int8

// String returns the decimal color ID.
func (c Color) String() string {
	return strconv.Itoa(int(c))
}

// Key identifies an item for reconciliation: two items with equal keys
// describe the same wanted entry. An absent color is its own bucket and
// never equals a present color. Key is comparable and usable as a map key;
// build it with Item.Key so Color stays zero when HasColor is false.
type Key struct {
	ID       string `json:"id" yaml:"id"`
	Color    Color  `json:"color,omitempty" yaml:"color,omitempty"`
	HasColor bool   `json:"has_color" yaml:"has_color"`
}

// Compare orders keys by ID (byte-wise), then by color with an absent
// color sorting before every present one. It returns -1, 0 or +1.
func (k Key) Compare(o Key) int {
	if c := strings.Compare(k.ID, o.ID); c != 0 {
		return c
	}
	switch {
	case k.HasColor == o.HasColor && !k.HasColor:
		return 0
	case !k.HasColor:
		return -1
	case !o.HasColor:
		return 1
	}
	return cmp.Compare(k.Color, o.Color)
}

// String renders the key as "ID/color", using "-" for an absent color.
func (k Key) String() string {
	if !k.HasColor {
		return k.ID + "/-"
	}
	return k.ID + "/" + k.Color.String()
}
