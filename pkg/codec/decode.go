package codec

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/agentstation/brickline/pkg/errors"
	"github.com/agentstation/brickline/pkg/stats"
	"github.com/agentstation/brickline/pkg/wanted"
)

const maxQty = math.MaxInt32

var (
	inventoryExpr = xpath.MustCompile("/" + elemInventory)
	itemsExpr     = xpath.MustCompile(elemItem)
)

// Decode parses a wanted-list payload into a List. The XML declaration and
// whitespace between tags are optional. Items keep document order.
func Decode(text string) (wanted.List, error) {
	var list wanted.List
	err := decode(text, func(item wanted.Item) {
		list.Items = append(list.Items, item)
	})
	if err != nil {
		return wanted.List{}, err
	}
	return list, nil
}

// DecodeWithStatistics decodes text and folds the statistics of every item
// in the same pass.
func DecodeWithStatistics(text string) (wanted.List, stats.Statistics, error) {
	var (
		list wanted.List
		agg  stats.Aggregator
	)
	err := decode(text, func(item wanted.Item) {
		list.Items = append(list.Items, item)
		agg.Add(item)
	})
	if err != nil {
		return wanted.List{}, stats.Statistics{}, err
	}
	return list, agg.Statistics(), nil
}

func decode(text string, yield func(wanted.Item)) error {
	doc, err := xmlquery.Parse(strings.NewReader(text))
	if err != nil {
		return errors.NewDecodeError("", "", errors.NoIndex, "not well-formed XML",
			fmt.Errorf("%w: %w", errors.ErrMalformed, err))
	}
	root := xmlquery.QuerySelector(doc, inventoryExpr)
	if root == nil {
		return errors.NewDecodeError(elemInventory, "", errors.NoIndex, "root element INVENTORY not found", errors.ErrMissingField)
	}
	for i, node := range xmlquery.QuerySelectorAll(root, itemsExpr) {
		w, err := readItem(node, i)
		if err != nil {
			return err
		}
		item, err := w.toItem(i)
		if err != nil {
			return err
		}
		yield(item)
	}
	return nil
}

// readItem walks the element children of one ITEM node into its wire mirror.
// Unknown elements are skipped; a known element may appear at most once.
func readItem(node *xmlquery.Node, index int) (wireItem, error) {
	var (
		w    wireItem
		seen = make(map[string]bool)
	)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}
		name := child.Data
		if !isKnownElement(name) {
			continue
		}
		if seen[name] {
			return wireItem{}, errors.NewDecodeError(name, child.InnerText(), index, "element appears more than once", errors.ErrDuplicateField)
		}
		seen[name] = true
		if err := w.set(name, child.InnerText(), index); err != nil {
			return wireItem{}, err
		}
	}
	for _, name := range []string{elemItemType, elemItemID} {
		if !seen[name] {
			return wireItem{}, errors.NewDecodeError(name, "", index, "required element missing", errors.ErrMissingField)
		}
	}
	if w.ItemID == "" {
		return wireItem{}, errors.NewDecodeError(elemItemID, "", index, "item id is empty", errors.ErrMissingField)
	}
	return w, nil
}

func isKnownElement(name string) bool {
	switch name {
	case elemItemType, elemItemID, elemColor, elemMaxPrice, elemMinQty, elemQtyFilled,
		elemCondition, elemRemarks, elemNotify, elemWantedShow, elemWantedListID:
		return true
	}
	return false
}

// set stores raw under the named field. Numeric and code values are trimmed;
// free text is kept as written.
func (w *wireItem) set(name, raw string, index int) error {
	trimmed := strings.TrimSpace(raw)
	switch name {
	case elemItemType:
		w.ItemType = trimmed
	case elemItemID:
		w.ItemID = raw
	case elemColor:
		v, err := strconv.ParseInt(trimmed, 10, 8)
		if err != nil {
			return errors.NewDecodeError(name, raw, index, "color must be an integer in -128..127", errors.ErrOutOfRange)
		}
		c := int8(v)
		w.Color = &c
	case elemMaxPrice:
		w.MaxPrice = &trimmed
	case elemMinQty:
		q, err := parseQty(name, raw, trimmed, index)
		if err != nil {
			return err
		}
		w.MinQty = q
	case elemQtyFilled:
		q, err := parseQty(name, raw, trimmed, index)
		if err != nil {
			return err
		}
		w.QtyFilled = q
	case elemCondition:
		w.Condition = &trimmed
	case elemRemarks:
		w.Remarks = &raw
	case elemNotify:
		w.Notify = &trimmed
	case elemWantedShow:
		w.WantedShow = &trimmed
	case elemWantedListID:
		w.WantedListID = &raw
	}
	return nil
}

func parseQty(name, raw, trimmed string, index int) (*int32, error) {
	v, err := strconv.ParseInt(trimmed, 10, 32)
	if err != nil || v < 0 {
		return nil, errors.NewDecodeError(name, raw, index, "quantity must be an integer in 0..2147483647", errors.ErrOutOfRange)
	}
	q := int32(v)
	return &q, nil
}
