package reconcile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/brickline/internal/utils/ptr"
	"github.com/agentstation/brickline/pkg/codec"
	"github.com/agentstation/brickline/pkg/errors"
	"github.com/agentstation/brickline/pkg/reconcile"
	"github.com/agentstation/brickline/pkg/wanted"
)

func loadFixture(t *testing.T, name string) wanted.List {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "codec", "testdata", name))
	require.NoError(t, err)
	list, err := codec.Decode(string(data))
	require.NoError(t, err)
	return list
}

// quantities maps each merged key to its MinQty, nil when absent.
func quantities(list wanted.List) map[string]*int {
	out := make(map[string]*int, list.Len())
	for _, item := range list.Items {
		out[item.ID] = item.MinQty
	}
	return out
}

func find(t *testing.T, list wanted.List, id string) wanted.Item {
	t.Helper()
	for _, item := range list.Items {
		if item.ID == id {
			return item
		}
	}
	t.Fatalf("item %s not in merged list", id)
	return wanted.Item{}
}

func TestLegacyAccumulate(t *testing.T) {
	tests := []struct {
		name               string
		existing, incoming *int
		want               int
	}{
		{"both present", ptr.To(20), ptr.To(10), 30},
		{"both absent", nil, nil, 2},
		{"incoming absent", ptr.To(20), nil, 21},
		{"existing absent", nil, ptr.To(20), 21},
		{"zero incoming", ptr.To(3), ptr.To(0), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reconcile.LegacyAccumulate(tt.existing, tt.incoming))
		})
	}

	assert.Equal(t, 20, reconcile.SumAccumulate(nil, ptr.To(20)))
	assert.Equal(t, 1, reconcile.SumAccumulate(nil, nil))
	assert.Equal(t, 21, reconcile.SumAccumulate(ptr.To(20), nil))
}

func TestReconcileQuantities(t *testing.T) {
	tests := []struct {
		name      string
		primary   *int
		secondary *int
		want      int
	}{
		{"20 and 10", ptr.To(20), ptr.To(10), 30},
		{"neither has quantity", nil, nil, 2},
		{"secondary has none", ptr.To(20), nil, 21},
		{"primary has none", nil, ptr.To(20), 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := wanted.NewList(wanted.TestItem(t, wanted.ItemTypePart, "3001", ptr.To(wanted.Color(5)), tt.primary))
			s := wanted.NewList(wanted.TestItem(t, wanted.ItemTypePart, "3001", ptr.To(wanted.Color(5)), tt.secondary))

			merged := reconcile.Reconcile(p, s)
			require.Equal(t, 1, merged.Len())
			require.NotNil(t, merged.Items[0].MinQty)
			assert.Equal(t, tt.want, *merged.Items[0].MinQty)
		})
	}
}

func TestReconcileMetadataFromPrimary(t *testing.T) {
	left := wanted.TestPart(t, "3001", 5, 1)
	left.Remarks = ptr.To("left")
	left.Condition = ptr.To(wanted.ConditionNew)
	right := wanted.TestPart(t, "3001", 5, 2)
	right.Remarks = ptr.To("right")
	right.MaxPrice = ptr.To(wanted.MustParsePrice("0.10"))

	lr := reconcile.Reconcile(wanted.NewList(left), wanted.NewList(right))
	rl := reconcile.Reconcile(wanted.NewList(right), wanted.NewList(left))

	assert.Equal(t, "left", *lr.Items[0].Remarks)
	assert.Equal(t, wanted.ConditionNew, *lr.Items[0].Condition)
	assert.Nil(t, lr.Items[0].MaxPrice)

	assert.Equal(t, "right", *rl.Items[0].Remarks)
	assert.Nil(t, rl.Items[0].Condition)
	assert.Equal(t, "0.10", rl.Items[0].MaxPrice.String())

	assert.Equal(t, 3, *lr.Items[0].MinQty)
	assert.Equal(t, 3, *rl.Items[0].MinQty)
	assert.False(t, lr.Equal(rl), "merging is not commutative")
}

func TestReconcileNonCommutativeTotals(t *testing.T) {
	withQty := wanted.NewList(wanted.TestPart(t, "3001", 5, 20))
	without := wanted.NewList(wanted.TestItem(t, wanted.ItemTypePart, "3001", ptr.To(wanted.Color(5)), nil))
	withQty.Items[0].Remarks = ptr.To("a")

	ab := reconcile.Reconcile(withQty, without)
	ba := reconcile.Reconcile(without, withQty)
	assert.Equal(t, 21, *ab.Items[0].MinQty)
	assert.Equal(t, 21, *ba.Items[0].MinQty)
	assert.False(t, ab.Equal(ba))
}

func TestReconcileFixtures(t *testing.T) {
	wl1 := loadFixture(t, "test_wanted_list_1.xml")
	wl2 := loadFixture(t, "test_wanted_list_2.xml")
	example := loadFixture(t, "bricklink_example.xml")

	tests := []struct {
		name      string
		primary   wanted.List
		secondary wanted.List
		want      map[string]*int
		remarks   *string
	}{
		{
			name:      "list 1 then list 2",
			primary:   wl1,
			secondary: wl2,
			want:      map[string]*int{"3000": ptr.To(4), "3001": ptr.To(200), "3622": ptr.To(14), "3623": nil},
			remarks:   ptr.To("Testing"),
		},
		{
			name:      "list 2 then list 1",
			primary:   wl2,
			secondary: wl1,
			want:      map[string]*int{"3000": ptr.To(4), "3001": ptr.To(200), "3622": ptr.To(14), "3623": nil},
			remarks:   nil,
		},
		{
			name:      "list 1 then example",
			primary:   wl1,
			secondary: example,
			want:      map[string]*int{"3001": ptr.To(200), "3039": nil, "3622": ptr.To(5), "3623": nil},
			remarks:   ptr.To("Testing"),
		},
		{
			name:      "example then list 1",
			primary:   example,
			secondary: wl1,
			want:      map[string]*int{"3001": ptr.To(200), "3039": nil, "3622": ptr.To(5), "3623": nil},
			remarks:   ptr.To("for MOC AB154A"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := reconcile.Reconcile(tt.primary, tt.secondary)

			if diff := cmp.Diff(tt.want, quantities(merged)); diff != "" {
				t.Errorf("quantities mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.remarks, find(t, merged, "3001").Remarks)
			assert.Equal(t, merged.Len(), len(tt.want), "one entry per key")
			assert.True(t, merged.Equal(merged.Sorted()), "merged list is key ordered")
		})
	}
}

func TestReconcileOrdering(t *testing.T) {
	primary := wanted.NewList(
		wanted.TestPart(t, "3622", 11, 1),
		wanted.TestPart(t, "3001", 5, 1),
	)
	secondary := wanted.NewList(
		wanted.TestPart(t, "3039", 2, 1),
		wanted.TestItem(t, wanted.ItemTypePart, "3039", nil, nil),
		wanted.TestPart(t, "3001", -1, 1),
		wanted.TestPart(t, "10", 1, 1),
	)

	merged := reconcile.Reconcile(primary, secondary)
	assert.Equal(t, []wanted.Key{
		{ID: "10", Color: 1, HasColor: true},
		{ID: "3001", Color: -1, HasColor: true},
		{ID: "3001", Color: 5, HasColor: true},
		{ID: "3039"},
		{ID: "3039", Color: 2, HasColor: true},
		{ID: "3622", Color: 11, HasColor: true},
	}, merged.Keys())
}

func TestReconcileDeterministic(t *testing.T) {
	wl1 := loadFixture(t, "test_wanted_list_1.xml")
	wl3 := loadFixture(t, "test_wanted_list_3.xml")

	first := reconcile.Reconcile(wl1, wl3)
	for range 20 {
		assert.True(t, first.Equal(reconcile.Reconcile(wl1, wl3)))
	}
}

func TestReconcileDoesNotMutateInputs(t *testing.T) {
	primary := loadFixture(t, "test_wanted_list_1.xml")
	secondary := loadFixture(t, "test_wanted_list_2.xml")
	primaryBefore, secondaryBefore := primary.Clone(), secondary.Clone()

	merged := reconcile.Reconcile(primary, secondary)
	assert.True(t, primary.Equal(primaryBefore))
	assert.True(t, secondary.Equal(secondaryBefore))

	// The result owns its pointers.
	for i := range merged.Items {
		if merged.Items[i].MinQty != nil {
			*merged.Items[i].MinQty = -1
		}
		if merged.Items[i].Remarks != nil {
			*merged.Items[i].Remarks = "changed"
		}
	}
	assert.True(t, primary.Equal(primaryBefore))
	assert.True(t, secondary.Equal(secondaryBefore))
}

func TestReconcileEmpty(t *testing.T) {
	list := wanted.NewList(wanted.TestPart(t, "3001", 5, 3), wanted.TestPart(t, "2456", 1, 1))

	assert.Equal(t, 0, reconcile.Reconcile(wanted.List{}, wanted.List{}).Len())
	assert.True(t, list.Sorted().Equal(reconcile.Reconcile(list, wanted.List{})))
	assert.True(t, list.Sorted().Equal(reconcile.Reconcile(wanted.List{}, list)))
}

func TestReconcileDuplicateKeys(t *testing.T) {
	first := wanted.TestPart(t, "3001", 5, 1)
	first.Remarks = ptr.To("first")
	last := wanted.TestPart(t, "3001", 5, 7)
	last.Remarks = ptr.To("last")

	r, err := reconcile.New()
	require.NoError(t, err)

	res := r.Reconcile(wanted.NewList(first, last), wanted.List{})
	require.Equal(t, 1, res.List.Len())
	assert.Equal(t, "last", *res.List.Items[0].Remarks)
	assert.Equal(t, 7, *res.List.Items[0].MinQty)
	assert.Equal(t, 1, res.Summary.Collapsed)

	// Repeated secondary keys accumulate into the entry the first one created.
	res = r.Reconcile(wanted.List{}, wanted.NewList(first, last))
	require.Equal(t, 1, res.List.Len())
	assert.Equal(t, "first", *res.List.Items[0].Remarks)
	assert.Equal(t, 8, *res.List.Items[0].MinQty)
	assert.Equal(t, reconcile.OriginSecondary, res.Origins[first.Key()])
}

func TestReconcilerSummaryAndOrigins(t *testing.T) {
	wl1 := loadFixture(t, "test_wanted_list_1.xml")
	wl2 := loadFixture(t, "test_wanted_list_2.xml")

	r, err := reconcile.New()
	require.NoError(t, err)
	res := r.Reconcile(wl1, wl2)

	assert.Equal(t, reconcile.Summary{
		PrimaryItems:   3,
		SecondaryItems: 3,
		Matched:        2,
		Added:          1,
		Keys:           4,
	}, res.Summary)

	assert.Equal(t, map[wanted.Key]reconcile.Origin{
		{ID: "3000", Color: 1, HasColor: true}:  reconcile.OriginSecondary,
		{ID: "3001", Color: 5, HasColor: true}:  reconcile.OriginBoth,
		{ID: "3622", Color: 11, HasColor: true}: reconcile.OriginBoth,
		{ID: "3623", Color: 11, HasColor: true}: reconcile.OriginPrimary,
	}, res.Origins)
	assert.Equal(t, "both", reconcile.OriginBoth.String())
	assert.Equal(t, "3 primary + 3 secondary items -> 4 keys (2 matched, 1 added, 0 collapsed)", res.Summary.String())
}

func TestWithAccumulator(t *testing.T) {
	_, err := reconcile.New(reconcile.WithAccumulator(nil))
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	r, err := reconcile.New(reconcile.WithAccumulator(reconcile.SumAccumulate))
	require.NoError(t, err)

	p := wanted.NewList(wanted.TestItem(t, wanted.ItemTypePart, "3001", nil, nil))
	s := wanted.NewList(wanted.TestItem(t, wanted.ItemTypePart, "3001", nil, ptr.To(20)))
	assert.Equal(t, 20, *r.Reconcile(p, s).List.Items[0].MinQty)

	maxOf := func(existing, incoming *int) int {
		return max(ptr.Deref(existing, 0), ptr.Deref(incoming, 0))
	}
	r, err = reconcile.New(reconcile.WithAccumulator(maxOf))
	require.NoError(t, err)
	p = wanted.NewList(wanted.TestPart(t, "3001", 5, 3))
	s = wanted.NewList(wanted.TestPart(t, "3001", 5, 9))
	assert.Equal(t, 9, *r.Reconcile(p, s).List.Items[0].MinQty)
}
