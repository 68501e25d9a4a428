package codec

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/agentstation/brickline/pkg/errors"
	"github.com/agentstation/brickline/pkg/wanted"
)

// Mode selects how the encoder lays out the payload before finalizing it.
type Mode int

const (
	// ModeDirect serializes items straight under INVENTORY.
	ModeDirect Mode = iota
	// ModeLegacy serializes with the legacy inner ITEM wrapper and then
	// repairs the text. Output is identical to ModeDirect.
	ModeLegacy
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeDirect:
		return "direct"
	case ModeLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	return m == ModeDirect || m == ModeLegacy
}

// ParseMode parses a mode name, ignoring case and surrounding space.
// The empty string selects ModeDirect.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "direct":
		return ModeDirect, nil
	case "legacy":
		return ModeLegacy, nil
	default:
		return ModeDirect, errors.NewValidationError("codec_mode", s, "must be direct or legacy")
	}
}

// Encoder turns wanted lists into wire text.
type Encoder struct {
	mode Mode
}

// Option configures an Encoder.
type Option func(*Encoder) error

// WithMode sets the encoder mode.
func WithMode(m Mode) Option {
	return func(e *Encoder) error {
		if !m.IsValid() {
			return errors.NewValidationError("mode", m, "unknown codec mode")
		}
		e.mode = m
		return nil
	}
}

// NewEncoder creates an Encoder. The default mode is ModeDirect.
func NewEncoder(opts ...Option) (*Encoder, error) {
	e := &Encoder{mode: ModeDirect}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Mode returns the encoder's mode.
func (e *Encoder) Mode() Mode {
	return e.mode
}

// Encode serializes list in ModeDirect.
func Encode(list wanted.List) (string, error) {
	return (&Encoder{mode: ModeDirect}).Encode(list)
}

// Encode serializes list as declaration + INVENTORY + one ITEM per item in
// list order, with absent fields omitted.
func (e *Encoder) Encode(list wanted.List) (string, error) {
	items, err := toWire(list)
	if err != nil {
		return "", err
	}

	switch e.mode {
	case ModeLegacy:
		var inv legacyInventory
		inv.Wrapper.Items = items
		raw, err := xml.Marshal(inv)
		if err != nil {
			return "", marshalError(err)
		}
		return RepairLegacy(string(raw))
	default:
		raw, err := xml.Marshal(wireInventory{Items: items})
		if err != nil {
			return "", marshalError(err)
		}
		return Finalize(string(raw)), nil
	}
}

func toWire(list wanted.List) ([]wireItem, error) {
	items := make([]wireItem, 0, len(list.Items))
	for i, item := range list.Items {
		w, err := fromItem(item, i)
		if err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, nil
}

func marshalError(err error) error {
	return errors.NewEncodeError("", "", errors.NoIndex, "xml marshal failed", err)
}
