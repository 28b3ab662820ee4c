package gridaxis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderSet_SetOrderAndLookup(t *testing.T) {
	tr := NewTranslator(fixedCount(4))
	o := tr.Order()

	require.NoError(t, o.SetOrder([]int{3, 0, 1, 2}))
	assert.False(t, o.IsIdentity())

	assert.Equal(t, 3, o.PhysicalAt(0))
	assert.Equal(t, 2, o.PhysicalAt(3))
	assert.Equal(t, 0, o.PositionOf(3))
	assert.Equal(t, 1, o.PositionOf(0))

	assert.Equal(t, -1, o.PhysicalAt(4))
	assert.Equal(t, -1, o.PositionOf(-1))
}

func TestOrderSet_ValidationIsAllOrNothing(t *testing.T) {
	tr := NewTranslator(fixedCount(3))
	o := tr.Order()
	require.NoError(t, o.SetOrder([]int{2, 1, 0}))

	var ipe *InvalidPermutationError

	err := o.SetOrder([]int{0, 1})
	require.ErrorAs(t, err, &ipe)
	assert.Equal(t, "length", ipe.Reason)

	err = o.SetOrder([]int{0, 1, 3})
	require.ErrorAs(t, err, &ipe)
	assert.Equal(t, "range", ipe.Reason)
	assert.Equal(t, 3, ipe.Value)

	err = o.SetOrder([]int{0, 1, 1})
	require.ErrorAs(t, err, &ipe)
	assert.Equal(t, "duplicate", ipe.Reason)

	assert.Equal(t, []int{2, 1, 0}, o.Snapshot(), "failed SetOrder keeps previous order")
}

func TestOrderSet_IdentityReset(t *testing.T) {
	tr := NewTranslator(fixedCount(3))
	o := tr.Order()
	require.NoError(t, o.SetOrder([]int{2, 0, 1}))

	o.Identity()
	assert.True(t, o.IsIdentity())
	assert.Equal(t, []int{0, 1, 2}, o.Snapshot())
	assert.Equal(t, 1, o.PhysicalAt(1))
}

func TestOrderSet_SnapshotIsACopy(t *testing.T) {
	tr := NewTranslator(fixedCount(3))
	o := tr.Order()
	require.NoError(t, o.SetOrder([]int{2, 0, 1}))

	snap := o.Snapshot()
	snap[0] = 99
	assert.Equal(t, 2, o.PhysicalAt(0))
}
