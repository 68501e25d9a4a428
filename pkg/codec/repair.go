package codec

import (
	"strings"

	"github.com/agentstation/brickline/pkg/errors"
)

// Header is the XML declaration every encoded payload starts with. There is
// no newline after it.
const Header = `<?xml version="1.0" encoding="UTF-8"?>`

const (
	inventoryOpen  = "<" + elemInventory + ">"
	inventoryClose = "</" + elemInventory + ">"
	itemOpen       = "<" + elemItem + ">"
	itemClose      = "</" + elemItem + ">"
)

// Finalize prepends the XML declaration to a serialized INVENTORY body.
func Finalize(body string) string {
	return Header + body
}

// RepairLegacy removes the redundant ITEM wrapper the legacy writer placed
// directly inside INVENTORY, then prepends the declaration. Text without the
// wrapper is rejected with an EncodeError.
func RepairLegacy(text string) (string, error) {
	if !strings.HasPrefix(text, inventoryOpen+itemOpen) || !strings.HasSuffix(text, itemClose+inventoryClose) {
		return "", errors.NewEncodeError(elemItem, "", errors.NoIndex, "legacy wrapper not found", errors.ErrMalformed)
	}
	inner := text[len(inventoryOpen+itemOpen) : len(text)-len(itemClose+inventoryClose)]
	// Whatever sits inside the wrapper must be zero or more whole ITEMs;
	// otherwise the outer ITEM was a real item and not a wrapper.
	if inner != "" && (!strings.HasPrefix(inner, itemOpen) || !strings.HasSuffix(inner, itemClose)) {
		return "", errors.NewEncodeError(elemItem, "", errors.NoIndex, "legacy wrapper not found", errors.ErrMalformed)
	}
	return Finalize(inventoryOpen + inner + inventoryClose), nil
}
