package gridaxis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// numberedSource builds an n-row, two-column source with recognizable values.
func numberedSource(n int) *SliceSource {
	rows := make([][]any, n)
	for i := range rows {
		rows[i] = []any{i, "row"}
	}
	return NewSliceSource([]string{"ID", "Label"}, rows)
}

func TestTrimRowsPlugin_TrimAndQuery(t *testing.T) {
	g, err := New(numberedSource(10), WithTrimmedRows())
	require.NoError(t, err)
	trim := g.TrimRows()
	require.True(t, trim.Enabled())

	changed := trim.TrimRows(2, 4, 6)
	assert.True(t, changed)
	assert.Equal(t, []int{2, 4, 6}, trim.TrimmedRows())
	assert.Equal(t, 7, g.VisibleRowCount())

	// visible order is 0,1,3,5,7,8,9 → physical 5 sits at visual 4
	v, ok := g.RowToVisual(5)
	require.True(t, ok)
	assert.Equal(t, 4, v)

	changed = trim.UntrimRows(4)
	assert.True(t, changed)
	assert.Equal(t, []int{2, 6}, trim.TrimmedRows())
	assert.Equal(t, 8, g.VisibleRowCount())

	v, ok = g.RowToVisual(5)
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestTrimRowsPlugin_TrimIsIdempotent(t *testing.T) {
	g, err := New(numberedSource(5), WithTrimmedRows())
	require.NoError(t, err)
	trim := g.TrimRows()

	assert.True(t, trim.TrimRows(1))

	var after *StructuralChange
	g.Bus().Register(AfterTrimRows, func(c *StructuralChange) bool {
		after = c
		return true
	})

	assert.False(t, trim.TrimRows(1))
	assert.Equal(t, []int{1}, trim.TrimmedRows())
	require.NotNil(t, after)
	assert.True(t, after.Valid)
	assert.False(t, after.Changed, "second trim of the same row is a no-op")
}

func TestTrimRowsPlugin_UntrimAbsentIsNoOp(t *testing.T) {
	g, err := New(numberedSource(10), WithTrimmedRows())
	require.NoError(t, err)
	trim := g.TrimRows()

	var after *StructuralChange
	g.Bus().Register(AfterUntrimRows, func(c *StructuralChange) bool {
		after = c
		return true
	})

	assert.False(t, trim.UntrimRows(7))
	assert.Empty(t, trim.TrimmedRows())
	require.NotNil(t, after)
	assert.False(t, after.Changed)
}

func TestTrimRowsPlugin_InvalidBatchRejectedWhole(t *testing.T) {
	g, err := New(numberedSource(4), WithTrimmedRows(0))
	require.NoError(t, err)
	trim := g.TrimRows()

	var before, after *StructuralChange
	g.Bus().Register(BeforeTrimRows, func(c *StructuralChange) bool {
		before = c
		return true
	})
	g.Bus().Register(AfterTrimRows, func(c *StructuralChange) bool {
		after = c
		return true
	})

	assert.False(t, trim.TrimRows(1, 10))
	assert.Equal(t, []int{0}, trim.TrimmedRows(), "registry unchanged by invalid batch")

	require.NotNil(t, before)
	assert.False(t, before.Valid, "before hook observes the rejected attempt")
	require.NotNil(t, after)
	assert.False(t, after.Valid)
	assert.False(t, after.Changed)
}

func TestTrimRowsPlugin_VetoPreventsMutation(t *testing.T) {
	g, err := New(numberedSource(6), WithTrimmedRows())
	require.NoError(t, err)
	trim := g.TrimRows()

	afterFired := false
	g.Bus().Register(BeforeTrimRows, func(c *StructuralChange) bool {
		return false
	})
	g.Bus().Register(AfterTrimRows, func(c *StructuralChange) bool {
		afterFired = true
		assert.False(t, c.Changed)
		return true
	})

	assert.False(t, trim.TrimRows(1, 2))
	assert.Empty(t, trim.TrimmedRows(), "vetoed mutation leaves registry untouched")
	assert.True(t, afterFired, "after event still reports the vetoed attempt")
}

func TestTrimRowsPlugin_EmptyInputFiresHooks(t *testing.T) {
	g, err := New(numberedSource(3), WithTrimmedRows())
	require.NoError(t, err)

	fired := 0
	g.Bus().Register(BeforeTrimRows, func(c *StructuralChange) bool {
		fired++
		assert.True(t, c.Valid)
		return true
	})
	g.Bus().Register(AfterTrimRows, func(c *StructuralChange) bool {
		fired++
		return true
	})

	assert.False(t, g.TrimRows().Trim(nil))
	assert.Equal(t, 2, fired)
}

func TestTrimRowsPlugin_InitialConfigAndLifecycle(t *testing.T) {
	g, err := New(numberedSource(6), WithTrimmedRows(1, 3))
	require.NoError(t, err)
	trim := g.TrimRows()

	assert.True(t, trim.IsTrimmed(1))
	assert.True(t, trim.IsTrimmed(3))
	assert.Equal(t, 4, g.VisibleRowCount())

	trim.Disable()
	assert.False(t, trim.Enabled())
	assert.Equal(t, 6, g.VisibleRowCount(), "disable restores trimmed rows")
	assert.False(t, trim.IsTrimmed(1))

	require.NoError(t, trim.Reconfigure())
	assert.True(t, trim.Enabled())
	assert.Equal(t, []int{1, 3}, trim.TrimmedRows(), "reconfigure replays declared config")
}

func TestTrimRowsPlugin_RuntimeTrimsDropOnReconfigure(t *testing.T) {
	g, err := New(numberedSource(6), WithTrimmedRows(1))
	require.NoError(t, err)
	trim := g.TrimRows()
	trim.TrimRows(4)
	assert.Equal(t, []int{1, 4}, trim.TrimmedRows())

	require.NoError(t, trim.Reconfigure())
	assert.Equal(t, []int{1}, trim.TrimmedRows(), "full reset, not a diff")
}

func TestTrimRowsPlugin_UntrimAll(t *testing.T) {
	g, err := New(numberedSource(6), WithTrimmedRows(0, 2, 4))
	require.NoError(t, err)
	trim := g.TrimRows()

	assert.True(t, trim.UntrimAll())
	assert.Empty(t, trim.TrimmedRows())
	assert.Equal(t, 6, g.VisibleRowCount())
	assert.False(t, trim.UntrimAll(), "nothing left to untrim")
}

func TestTrimRowsPlugin_InvalidInitialConfigFailsNew(t *testing.T) {
	_, err := New(numberedSource(3), WithTrimmedRows(0, 9))
	require.Error(t, err)
	var iie *InvalidIndexError
	assert.ErrorAs(t, err, &iie)
}

func TestTrimRowsPlugin_NotApplicableWithoutSetting(t *testing.T) {
	g, err := New(numberedSource(3))
	require.NoError(t, err)
	trim := g.TrimRows()

	assert.False(t, trim.IsApplicable())
	assert.False(t, trim.Enabled())
	assert.False(t, trim.TrimRows(1), "disabled plugin ignores transforms")
	assert.Equal(t, 3, g.VisibleRowCount())
}
