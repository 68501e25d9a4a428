package wanted

import (
	"testing"
)

// TestItem builds an item with the given type, ID, color and minimum
// quantity and every other field absent. Pass nil for an absent color or
// quantity.
func TestItem(t testing.TB, typ ItemType, id string, color *Color, minQty *int) Item {
	t.Helper()
	return Item{
		Type:   typ,
		ID:     id,
		Color:  color,
		MinQty: minQty,
	}
}

// TestPart is TestItem for a part with a present color.
func TestPart(t testing.TB, id string, color Color, minQty int) Item {
	t.Helper()
	return TestItem(t, ItemTypePart, id, &color, &minQty)
}
