package wanted

import (
	"fmt"
)

// ItemType is the catalog category of an item.
type ItemType int

// Item types. The zero value is not a valid type.
const (
	ItemTypeSet ItemType = iota + 1
	ItemTypePart
	ItemTypeMinifig
	ItemTypeBook
	ItemTypeGear
	ItemTypeCatalog
	ItemTypeInstruction
	ItemTypeOriginalBox
	ItemTypeUnsortedLot
)

var itemTypeNames = [...]string{
	ItemTypeSet:         "set",
	ItemTypePart:        "part",
	ItemTypeMinifig:     "minifig",
	ItemTypeBook:        "book",
	ItemTypeGear:        "gear",
	ItemTypeCatalog:     "catalog",
	ItemTypeInstruction: "instruction",
	ItemTypeOriginalBox: "original_box",
	ItemTypeUnsortedLot: "unsorted_lot",
}

// ItemTypes lists every valid item type in declaration order.
func ItemTypes() []ItemType {
	return []ItemType{
		ItemTypeSet, ItemTypePart, ItemTypeMinifig, ItemTypeBook, ItemTypeGear,
		ItemTypeCatalog, ItemTypeInstruction, ItemTypeOriginalBox, ItemTypeUnsortedLot,
	}
}

// IsValid reports whether t is one of the declared item types.
func (t ItemType) IsValid() bool {
	return t >= ItemTypeSet && t <= ItemTypeUnsortedLot
}

// String returns the lower-case name of the item type.
func (t ItemType) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("ItemType(%d)", int(t))
	}
	return itemTypeNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t ItemType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid item type %d", int(t))
	}
	return []byte(t.String()), nil
}

// Condition describes the state an item is wanted in.
type Condition int

// Conditions. The zero value is not a valid condition.
const (
	ConditionNew Condition = iota + 1
	ConditionUsed
	ConditionComplete
	ConditionIncomplete
	ConditionSealed
	ConditionNotProvided
)

var conditionNames = [...]string{
	ConditionNew:         "new",
	ConditionUsed:        "used",
	ConditionComplete:    "complete",
	ConditionIncomplete:  "incomplete",
	ConditionSealed:      "sealed",
	ConditionNotProvided: "not_provided",
}

// Conditions lists every valid condition in declaration order.
func Conditions() []Condition {
	return []Condition{
		ConditionNew, ConditionUsed, ConditionComplete,
		ConditionIncomplete, ConditionSealed, ConditionNotProvided,
	}
}

// IsValid reports whether c is one of the declared conditions.
func (c Condition) IsValid() bool {
	return c >= ConditionNew && c <= ConditionNotProvided
}

// String returns the lower-case name of the condition.
func (c Condition) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Condition(%d)", int(c))
	}
	return conditionNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c Condition) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("invalid condition %d", int(c))
	}
	return []byte(c.String()), nil
}

// Flag is the yes/no value used by the NOTIFY and WANTEDSHOW fields.
type Flag int

// Flag values. The zero value is not a valid flag.
const (
	FlagYes Flag = iota + 1
	FlagNo
)

// Flags lists both valid flag values.
func Flags() []Flag {
	return []Flag{FlagYes, FlagNo}
}

// IsValid reports whether f is FlagYes or FlagNo.
func (f Flag) IsValid() bool {
	return f == FlagYes || f == FlagNo
}

// String returns "yes" or "no".
func (f Flag) String() string {
	switch f {
	case FlagYes:
		return "yes"
	case FlagNo:
		return "no"
	}
	return fmt.Sprintf("Flag(%d)", int(f))
}

// MarshalText implements encoding.TextMarshaler.
func (f Flag) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("invalid flag %d", int(f))
	}
	return []byte(f.String()), nil
}
