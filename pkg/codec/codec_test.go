package codec_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/brickline/internal/utils/ptr"
	"github.com/agentstation/brickline/pkg/codec"
	"github.com/agentstation/brickline/pkg/errors"
	"github.com/agentstation/brickline/pkg/stats"
	"github.com/agentstation/brickline/pkg/wanted"
)

var fixtures = []string{
	"bricklink_example.xml",
	"test_wanted_list_1.xml",
	"test_wanted_list_2.xml",
	"test_wanted_list_3.xml",
}

// readFixture returns a testdata file with its line breaks removed, which is
// the compact form Encode produces.
func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return strings.ReplaceAll(string(data), "\n", "")
}

func bothModes(t *testing.T) map[string]*codec.Encoder {
	t.Helper()
	direct, err := codec.NewEncoder()
	require.NoError(t, err)
	legacy, err := codec.NewEncoder(codec.WithMode(codec.ModeLegacy))
	require.NoError(t, err)
	return map[string]*codec.Encoder{"direct": direct, "legacy": legacy}
}

func TestEncodeSingleItem(t *testing.T) {
	item := wanted.TestItem(t, wanted.ItemTypePart, "3622", ptr.To(wanted.Color(11)), nil)
	item.QtyFilled = ptr.To(4)

	want := `<?xml version="1.0" encoding="UTF-8"?><INVENTORY><ITEM><ITEMTYPE>P</ITEMTYPE><ITEMID>3622</ITEMID><COLOR>11</COLOR><QTYFILLED>4</QTYFILLED></ITEM></INVENTORY>`
	for name, enc := range bothModes(t) {
		t.Run(name, func(t *testing.T) {
			got, err := enc.Encode(wanted.NewList(item))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEncodeBricklinkExample(t *testing.T) {
	list := wanted.NewList(
		wanted.Item{Type: wanted.ItemTypePart, ID: "3622", Color: ptr.To(wanted.Color(11)), QtyFilled: ptr.To(4)},
		wanted.Item{Type: wanted.ItemTypePart, ID: "3039"},
		wanted.Item{
			Type:      wanted.ItemTypePart,
			ID:        "3001",
			Color:     ptr.To(wanted.Color(5)),
			MaxPrice:  ptr.To(wanted.MustParsePrice("1")),
			MinQty:    ptr.To(100),
			Condition: ptr.To(wanted.ConditionNew),
			Remarks:   ptr.To("for MOC AB154A"),
			Notify:    ptr.To(wanted.FlagNo),
		},
	)

	for name, enc := range bothModes(t) {
		t.Run(name, func(t *testing.T) {
			got, err := enc.Encode(list)
			require.NoError(t, err)
			assert.Equal(t, readFixture(t, "bricklink_example.xml"), got)
		})
	}
}

func TestEncodeEmptyList(t *testing.T) {
	for name, enc := range bothModes(t) {
		t.Run(name, func(t *testing.T) {
			got, err := enc.Encode(wanted.List{})
			require.NoError(t, err)
			assert.Equal(t, codec.Header+"<INVENTORY></INVENTORY>", got)
		})
	}
}

func TestEncodeEscapesText(t *testing.T) {
	item := wanted.TestPart(t, "3001", 5, 1)
	item.Remarks = ptr.To("bricks & <plates>")

	got, err := codec.Encode(wanted.NewList(item))
	require.NoError(t, err)
	assert.Contains(t, got, "<REMARKS>bricks &amp; &lt;plates&gt;</REMARKS>")

	back, err := codec.Decode(got)
	require.NoError(t, err)
	assert.Equal(t, "bricks & <plates>", *back.Items[0].Remarks)
}

func TestFixtureRoundTrip(t *testing.T) {
	for _, name := range fixtures {
		for mode, enc := range bothModes(t) {
			t.Run(name+"/"+mode, func(t *testing.T) {
				text := readFixture(t, name)

				list, err := codec.Decode(text)
				require.NoError(t, err)
				require.NotZero(t, list.Len())

				got, err := enc.Encode(list)
				require.NoError(t, err)
				assert.Equal(t, text, got)

				again, err := codec.Decode(got)
				require.NoError(t, err)
				if diff := cmp.Diff(list, again); diff != "" {
					t.Errorf("decode(encode(list)) mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestDecodeBricklinkExample(t *testing.T) {
	list, err := codec.Decode(readFixture(t, "bricklink_example.xml"))
	require.NoError(t, err)

	want := wanted.NewList(
		wanted.Item{Type: wanted.ItemTypePart, ID: "3622", Color: ptr.To(wanted.Color(11)), QtyFilled: ptr.To(4)},
		wanted.Item{Type: wanted.ItemTypePart, ID: "3039"},
		wanted.Item{
			Type:      wanted.ItemTypePart,
			ID:        "3001",
			Color:     ptr.To(wanted.Color(5)),
			MaxPrice:  ptr.To(wanted.PriceFromCents(100)),
			MinQty:    ptr.To(100),
			Condition: ptr.To(wanted.ConditionNew),
			Remarks:   ptr.To("for MOC AB154A"),
			Notify:    ptr.To(wanted.FlagNo),
		},
	)
	if diff := cmp.Diff(want, list); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRichFixture(t *testing.T) {
	list, err := codec.Decode(readFixture(t, "test_wanted_list_3.xml"))
	require.NoError(t, err)
	require.Equal(t, 5, list.Len())

	set := list.Items[0]
	assert.Equal(t, wanted.ItemTypeSet, set.Type)
	assert.Nil(t, set.Color)
	assert.Equal(t, "45.50", set.MaxPrice.String())
	assert.Equal(t, wanted.ConditionSealed, *set.Condition)
	assert.Equal(t, "Magic Shop & accessories", *set.Remarks)
	assert.Equal(t, wanted.FlagYes, *set.WantedShow)
	assert.Equal(t, "1234567", *set.WantedListID)

	assert.Equal(t, wanted.ItemTypeMinifig, list.Items[1].Type)
	assert.Equal(t, 1, *list.Items[1].QtyFilled)

	zero := list.Items[2]
	assert.Equal(t, wanted.Color(0), *zero.Color)
	assert.Equal(t, 0, *zero.MinQty)

	assert.Equal(t, wanted.Color(-1), *list.Items[3].Color)
	assert.Equal(t, wanted.ConditionNotProvided, *list.Items[3].Condition)
	assert.Equal(t, "", *list.Items[3].Remarks)

	assert.Equal(t, wanted.ItemTypeInstruction, list.Items[4].Type)
}

func TestDecodeTolerance(t *testing.T) {
	compact := `<INVENTORY><ITEM><ITEMTYPE>P</ITEMTYPE><ITEMID>3001</ITEMID><COLOR>5</COLOR><MINQTY>3</MINQTY></ITEM></INVENTORY>`
	want := wanted.NewList(wanted.TestPart(t, "3001", 5, 3))

	tests := []struct {
		name string
		text string
	}{
		{"no declaration", compact},
		{"declaration", codec.Header + compact},
		{"indented", codec.Header + "\n<INVENTORY>\n  <ITEM>\n    <ITEMTYPE>P</ITEMTYPE>\n    <ITEMID>3001</ITEMID>\n    <COLOR> 5 </COLOR>\n    <MINQTY>\n3\n</MINQTY>\n  </ITEM>\n</INVENTORY>\n"},
		{"unknown elements", `<INVENTORY><NOTE>x</NOTE><ITEM><ITEMTYPE>P</ITEMTYPE><EXTRA>1</EXTRA><ITEMID>3001</ITEMID><COLOR>5</COLOR><MINQTY>3</MINQTY></ITEM></INVENTORY>`},
		{"element order", `<INVENTORY><ITEM><MINQTY>3</MINQTY><COLOR>5</COLOR><ITEMID>3001</ITEMID><ITEMTYPE>P</ITEMTYPE></ITEM></INVENTORY>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Decode(tt.text)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeEmptyInventory(t *testing.T) {
	list, err := codec.Decode(codec.Header + "<INVENTORY></INVENTORY>")
	require.NoError(t, err)
	assert.Equal(t, 0, list.Len())
}

func TestDecodeErrors(t *testing.T) {
	item := func(body string) string {
		return "<INVENTORY><ITEM><ITEMTYPE>P</ITEMTYPE><ITEMID>1</ITEMID></ITEM><ITEM>" + body + "</ITEM></INVENTORY>"
	}

	tests := []struct {
		name     string
		text     string
		field    string
		value    string
		index    int
		sentinel error
	}{
		{"unknown item type", item("<ITEMTYPE>Z</ITEMTYPE><ITEMID>3001</ITEMID>"), "ITEMTYPE", "Z", 1, errors.ErrUnknownCode},
		{"unknown condition", item("<ITEMTYPE>P</ITEMTYPE><ITEMID>3001</ITEMID><CONDITION>Q</CONDITION>"), "CONDITION", "Q", 1, errors.ErrUnknownCode},
		{"unknown flag", item("<ITEMTYPE>P</ITEMTYPE><ITEMID>3001</ITEMID><NOTIFY>maybe</NOTIFY>"), "NOTIFY", "maybe", 1, errors.ErrUnknownCode},
		{"color out of range", item("<ITEMTYPE>P</ITEMTYPE><ITEMID>3001</ITEMID><COLOR>200</COLOR>"), "COLOR", "200", 1, errors.ErrOutOfRange},
		{"color not a number", item("<ITEMTYPE>P</ITEMTYPE><ITEMID>3001</ITEMID><COLOR>red</COLOR>"), "COLOR", "red", 1, errors.ErrOutOfRange},
		{"negative quantity", item("<ITEMTYPE>P</ITEMTYPE><ITEMID>3001</ITEMID><MINQTY>-1</MINQTY>"), "MINQTY", "-1", 1, errors.ErrOutOfRange},
		{"quantity overflow", item("<ITEMTYPE>P</ITEMTYPE><ITEMID>3001</ITEMID><QTYFILLED>2147483648</QTYFILLED>"), "QTYFILLED", "2147483648", 1, errors.ErrOutOfRange},
		{"bad price", item("<ITEMTYPE>P</ITEMTYPE><ITEMID>3001</ITEMID><MAXPRICE>cheap</MAXPRICE>"), "MAXPRICE", "cheap", 1, errors.ErrMalformed},
		{"missing item id", item("<ITEMTYPE>P</ITEMTYPE>"), "ITEMID", "", 1, errors.ErrMissingField},
		{"missing item type", item("<ITEMID>3001</ITEMID>"), "ITEMTYPE", "", 1, errors.ErrMissingField},
		{"empty item id", item("<ITEMTYPE>P</ITEMTYPE><ITEMID></ITEMID>"), "ITEMID", "", 1, errors.ErrMissingField},
		{"duplicate color", item("<ITEMTYPE>P</ITEMTYPE><ITEMID>3001</ITEMID><COLOR>1</COLOR><COLOR>2</COLOR>"), "COLOR", "2", 1, errors.ErrDuplicateField},
		{"missing root", "<WANTED></WANTED>", "INVENTORY", "", errors.NoIndex, errors.ErrMissingField},
		{"empty input", "", "INVENTORY", "", errors.NoIndex, errors.ErrMissingField},
		{"not well formed", "<INVENTORY><ITEM></INVENTORY>", "", "", errors.NoIndex, errors.ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(tt.text)
			require.Error(t, err)
			assert.True(t, errors.IsDecodeError(err))
			assert.ErrorIs(t, err, tt.sentinel)

			var de *errors.DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.field, de.Field)
			assert.Equal(t, tt.value, de.Value)
			assert.Equal(t, tt.index, de.Index)
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	valid := wanted.TestPart(t, "3001", 5, 1)

	tests := []struct {
		name     string
		mutate   func(*wanted.Item)
		field    string
		sentinel error
	}{
		{"invalid item type", func(i *wanted.Item) { i.Type = wanted.ItemType(99) }, "ITEMTYPE", errors.ErrUnknownCode},
		{"zero item type", func(i *wanted.Item) { i.Type = 0 }, "ITEMTYPE", errors.ErrUnknownCode},
		{"empty id", func(i *wanted.Item) { i.ID = "" }, "ITEMID", errors.ErrMissingField},
		{"invalid condition", func(i *wanted.Item) { i.Condition = ptr.To(wanted.Condition(42)) }, "CONDITION", errors.ErrUnknownCode},
		{"invalid flag", func(i *wanted.Item) { i.WantedShow = ptr.To(wanted.Flag(7)) }, "WANTEDSHOW", errors.ErrUnknownCode},
		{"negative quantity", func(i *wanted.Item) { i.MinQty = ptr.To(-5) }, "MINQTY", errors.ErrOutOfRange},
		{"quantity too large", func(i *wanted.Item) { i.QtyFilled = ptr.To(1 << 40) }, "QTYFILLED", errors.ErrOutOfRange},
	}
	for _, tt := range tests {
		for mode, enc := range bothModes(t) {
			t.Run(tt.name+"/"+mode, func(t *testing.T) {
				bad := valid.Clone()
				tt.mutate(&bad)

				_, err := enc.Encode(wanted.NewList(valid, bad))
				require.Error(t, err)
				assert.True(t, errors.IsEncodeError(err))
				assert.ErrorIs(t, err, tt.sentinel)

				var ee *errors.EncodeError
				require.True(t, errors.As(err, &ee))
				assert.Equal(t, tt.field, ee.Field)
				assert.Equal(t, 1, ee.Index)
			})
		}
	}
}

func TestRepairLegacy(t *testing.T) {
	one := "<ITEM><ITEMTYPE>P</ITEMTYPE><ITEMID>3001</ITEMID></ITEM>"
	two := one + "<ITEM><ITEMTYPE>S</ITEMTYPE><ITEMID>6020-1</ITEMID></ITEM>"

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"one item", "<INVENTORY><ITEM>" + one + "</ITEM></INVENTORY>", codec.Header + "<INVENTORY>" + one + "</INVENTORY>", false},
		{"two items", "<INVENTORY><ITEM>" + two + "</ITEM></INVENTORY>", codec.Header + "<INVENTORY>" + two + "</INVENTORY>", false},
		{"empty wrapper", "<INVENTORY><ITEM></ITEM></INVENTORY>", codec.Header + "<INVENTORY></INVENTORY>", false},
		{"already direct", "<INVENTORY>" + one + "</INVENTORY>", "", true},
		{"already direct two items", "<INVENTORY>" + two + "</INVENTORY>", "", true},
		{"no items", "<INVENTORY></INVENTORY>", "", true},
		{"declaration present", codec.Header + "<INVENTORY><ITEM>" + one + "</ITEM></INVENTORY>", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.RepairLegacy(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrEncode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFinalize(t *testing.T) {
	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?><INVENTORY></INVENTORY>`, codec.Finalize("<INVENTORY></INVENTORY>"))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    codec.Mode
		wantErr bool
	}{
		{"", codec.ModeDirect, false},
		{"direct", codec.ModeDirect, false},
		{" Legacy ", codec.ModeLegacy, false},
		{"LEGACY", codec.ModeLegacy, false},
		{"fast", codec.ModeDirect, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := codec.ParseMode(tt.in)
			if tt.wantErr {
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}

	_, err := codec.NewEncoder(codec.WithMode(codec.Mode(9)))
	assert.Error(t, err)
	assert.Equal(t, "Mode(9)", codec.Mode(9).String())
}

func mustParse(t *testing.T, s string) codec.Mode {
	t.Helper()
	m, err := codec.ParseMode(s)
	require.NoError(t, err)
	return m
}

func TestDecodeWithStatistics(t *testing.T) {
	text := readFixture(t, "bricklink_example.xml")

	list, got, err := codec.DecodeWithStatistics(text)
	require.NoError(t, err)
	assert.Equal(t, stats.Statistics{TotalItems: 3, TotalParts: 102, UniqueItemColorCount: 3, UniqueColorCount: 2}, got)

	plain, err := codec.Decode(text)
	require.NoError(t, err)
	assert.True(t, plain.Equal(list))
	assert.Equal(t, stats.Aggregate(plain), got)

	_, _, err = codec.DecodeWithStatistics("<INVENTORY>")
	assert.Error(t, err)
}

func TestCodes(t *testing.T) {
	for _, typ := range wanted.ItemTypes() {
		code, ok := codec.ItemTypeCode(typ)
		assert.True(t, ok, typ.String())
		assert.Len(t, code, 1)
	}
	code, _ := codec.ItemTypeCode(wanted.ItemTypeOriginalBox)
	assert.Equal(t, "O", code)

	for _, c := range wanted.Conditions() {
		_, ok := codec.ConditionCode(c)
		assert.True(t, ok, c.String())
	}
	code, _ = codec.ConditionCode(wanted.ConditionNotProvided)
	assert.Equal(t, "X", code)

	code, _ = codec.FlagCode(wanted.FlagYes)
	assert.Equal(t, "Y", code)
	_, ok := codec.FlagCode(wanted.Flag(0))
	assert.False(t, ok)
}
