package codec

import (
	"encoding/xml"
	"strconv"

	"github.com/agentstation/brickline/pkg/errors"
	"github.com/agentstation/brickline/pkg/wanted"
)

// Wire element names.
const (
	elemInventory    = "INVENTORY"
	elemItem         = "ITEM"
	elemItemType     = "ITEMTYPE"
	elemItemID       = "ITEMID"
	elemColor        = "COLOR"
	elemMaxPrice     = "MAXPRICE"
	elemMinQty       = "MINQTY"
	elemQtyFilled    = "QTYFILLED"
	elemCondition    = "CONDITION"
	elemRemarks      = "REMARKS"
	elemNotify       = "NOTIFY"
	elemWantedShow   = "WANTEDSHOW"
	elemWantedListID = "WANTEDLISTID"
)

// wireItem is the primitive-typed mirror of wanted.Item. Enumerations are
// one-letter codes and the price is kept as text; nil means the element is
// absent. Field order is the element order on the wire.
type wireItem struct {
	XMLName      xml.Name `xml:"ITEM"`
	ItemType     string   `xml:"ITEMTYPE"`
	ItemID       string   `xml:"ITEMID"`
	Color        *int8    `xml:"COLOR,omitempty"`
	MaxPrice     *string  `xml:"MAXPRICE,omitempty"`
	MinQty       *int32   `xml:"MINQTY,omitempty"`
	QtyFilled    *int32   `xml:"QTYFILLED,omitempty"`
	Condition    *string  `xml:"CONDITION,omitempty"`
	Remarks      *string  `xml:"REMARKS,omitempty"`
	Notify       *string  `xml:"NOTIFY,omitempty"`
	WantedShow   *string  `xml:"WANTEDSHOW,omitempty"`
	WantedListID *string  `xml:"WANTEDLISTID,omitempty"`
}

// wireInventory serializes without any wrapper between the root and its items.
type wireInventory struct {
	XMLName xml.Name   `xml:"INVENTORY"`
	Items   []wireItem `xml:"ITEM"`
}

// legacyInventory reproduces the layout of the legacy list writer, which
// nested every item inside one extra ITEM element. RepairLegacy strips it.
type legacyInventory struct {
	XMLName xml.Name `xml:"INVENTORY"`
	Wrapper struct {
		Items []wireItem `xml:"ITEM"`
	} `xml:"ITEM"`
}

// toItem converts the wire mirror into a domain item, resolving codes and
// parsing the price. index is the item's position, used in errors.
func (w wireItem) toItem(index int) (wanted.Item, error) {
	typ, ok := itemTypeCodes.value(w.ItemType)
	if !ok {
		return wanted.Item{}, unknownCode(elemItemType, w.ItemType, index, "item type")
	}
	item := wanted.Item{
		Type:         typ,
		ID:           w.ItemID,
		Remarks:      w.Remarks,
		WantedListID: w.WantedListID,
	}
	if w.Color != nil {
		c := wanted.Color(*w.Color)
		item.Color = &c
	}
	if w.MaxPrice != nil {
		p, err := wanted.ParsePrice(*w.MaxPrice)
		if err != nil {
			return wanted.Item{}, errors.NewDecodeError(elemMaxPrice, *w.MaxPrice, index, "not a decimal price", errors.ErrMalformed)
		}
		item.MaxPrice = &p
	}
	if w.MinQty != nil {
		q := int(*w.MinQty)
		item.MinQty = &q
	}
	if w.QtyFilled != nil {
		q := int(*w.QtyFilled)
		item.QtyFilled = &q
	}
	if w.Condition != nil {
		c, ok := conditionCodes.value(*w.Condition)
		if !ok {
			return wanted.Item{}, unknownCode(elemCondition, *w.Condition, index, "condition")
		}
		item.Condition = &c
	}
	var err error
	if item.Notify, err = decodeFlag(elemNotify, w.Notify, index); err != nil {
		return wanted.Item{}, err
	}
	if item.WantedShow, err = decodeFlag(elemWantedShow, w.WantedShow, index); err != nil {
		return wanted.Item{}, err
	}
	return item, nil
}

func decodeFlag(field string, code *string, index int) (*wanted.Flag, error) {
	if code == nil {
		return nil, nil
	}
	f, ok := flagCodes.value(*code)
	if !ok {
		return nil, unknownCode(field, *code, index, "flag")
	}
	return &f, nil
}

func unknownCode(field, value string, index int, what string) error {
	return errors.NewDecodeError(field, value, index, "unknown "+what+" code", errors.ErrUnknownCode)
}

// fromItem converts a domain item into its wire mirror.
func fromItem(item wanted.Item, index int) (wireItem, error) {
	code, ok := itemTypeCodes.code(item.Type)
	if !ok {
		return wireItem{}, errors.NewEncodeError(elemItemType, item.Type.String(), index, "no code for item type", errors.ErrUnknownCode)
	}
	if item.ID == "" {
		return wireItem{}, errors.NewEncodeError(elemItemID, "", index, "item id is empty", errors.ErrMissingField)
	}
	w := wireItem{
		ItemType:     code,
		ItemID:       item.ID,
		Remarks:      item.Remarks,
		WantedListID: item.WantedListID,
	}
	if item.Color != nil {
		c := int8(*item.Color)
		w.Color = &c
	}
	if item.MaxPrice != nil {
		s := item.MaxPrice.String()
		w.MaxPrice = &s
	}
	var err error
	if w.MinQty, err = encodeQty(elemMinQty, item.MinQty, index); err != nil {
		return wireItem{}, err
	}
	if w.QtyFilled, err = encodeQty(elemQtyFilled, item.QtyFilled, index); err != nil {
		return wireItem{}, err
	}
	if item.Condition != nil {
		c, ok := conditionCodes.code(*item.Condition)
		if !ok {
			return wireItem{}, errors.NewEncodeError(elemCondition, item.Condition.String(), index, "no code for condition", errors.ErrUnknownCode)
		}
		w.Condition = &c
	}
	if w.Notify, err = encodeFlag(elemNotify, item.Notify, index); err != nil {
		return wireItem{}, err
	}
	if w.WantedShow, err = encodeFlag(elemWantedShow, item.WantedShow, index); err != nil {
		return wireItem{}, err
	}
	return w, nil
}

func encodeQty(field string, qty *int, index int) (*int32, error) {
	if qty == nil {
		return nil, nil
	}
	if *qty < 0 || *qty > maxQty {
		return nil, errors.NewEncodeError(field, strconv.Itoa(*qty), index, "quantity outside 0..2147483647", errors.ErrOutOfRange)
	}
	q := int32(*qty)
	return &q, nil
}

func encodeFlag(field string, f *wanted.Flag, index int) (*string, error) {
	if f == nil {
		return nil, nil
	}
	c, ok := flagCodes.code(*f)
	if !ok {
		return nil, errors.NewEncodeError(field, f.String(), index, "no code for flag", errors.ErrUnknownCode)
	}
	return &c, nil
}
