package codec

import (
	"github.com/agentstation/brickline/pkg/wanted"
)

// codeTable is a fixed bijection between enum values and their one-letter
// wire codes. Both directions are built once from a single pair list.
type codeTable[T comparable] struct {
	toCode   map[T]string
	fromCode map[string]T
}

func newCodeTable[T comparable](pairs ...codePair[T]) codeTable[T] {
	t := codeTable[T]{
		toCode:   make(map[T]string, len(pairs)),
		fromCode: make(map[string]T, len(pairs)),
	}
	for _, p := range pairs {
		if _, dup := t.toCode[p.value]; dup {
			panic("codec: duplicate value in code table")
		}
		if _, dup := t.fromCode[p.code]; dup {
			panic("codec: duplicate code in code table: " + p.code)
		}
		t.toCode[p.value] = p.code
		t.fromCode[p.code] = p.value
	}
	return t
}

type codePair[T comparable] struct {
	value T
	code  string
}

func (t codeTable[T]) code(v T) (string, bool) {
	c, ok := t.toCode[v]
	return c, ok
}

func (t codeTable[T]) value(code string) (T, bool) {
	v, ok := t.fromCode[code]
	return v, ok
}

var itemTypeCodes = newCodeTable(
	codePair[wanted.ItemType]{wanted.ItemTypeSet, "S"},
	codePair[wanted.ItemType]{wanted.ItemTypePart, "P"},
	codePair[wanted.ItemType]{wanted.ItemTypeMinifig, "M"},
	codePair[wanted.ItemType]{wanted.ItemTypeBook, "B"},
	codePair[wanted.ItemType]{wanted.ItemTypeGear, "G"},
	codePair[wanted.ItemType]{wanted.ItemTypeCatalog, "C"},
	codePair[wanted.ItemType]{wanted.ItemTypeInstruction, "I"},
	codePair[wanted.ItemType]{wanted.ItemTypeOriginalBox, "O"},
	codePair[wanted.ItemType]{wanted.ItemTypeUnsortedLot, "U"},
)

var conditionCodes = newCodeTable(
	codePair[wanted.Condition]{wanted.ConditionNew, "N"},
	codePair[wanted.Condition]{wanted.ConditionUsed, "U"},
	codePair[wanted.Condition]{wanted.ConditionComplete, "C"},
	codePair[wanted.Condition]{wanted.ConditionIncomplete, "I"},
	codePair[wanted.Condition]{wanted.ConditionSealed, "S"},
	codePair[wanted.Condition]{wanted.ConditionNotProvided, "X"},
)

var flagCodes = newCodeTable(
	codePair[wanted.Flag]{wanted.FlagYes, "Y"},
	codePair[wanted.Flag]{wanted.FlagNo, "N"},
)

// ItemTypeCode returns the wire code for t.
func ItemTypeCode(t wanted.ItemType) (string, bool) { return itemTypeCodes.code(t) }

// ConditionCode returns the wire code for c.
func ConditionCode(c wanted.Condition) (string, bool) { return conditionCodes.code(c) }

// FlagCode returns the wire code for f.
func FlagCode(f wanted.Flag) (string, bool) { return flagCodes.code(f) }
