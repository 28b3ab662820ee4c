package gridaxis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceSource_Counts(t *testing.T) {
	src := NewSliceSource([]string{"A", "B", "C"}, [][]any{
		{1, 2, 3},
		{4, 5},
	})

	assert.Equal(t, 2, src.RowCount())
	assert.Equal(t, 3, src.ColumnCount())
}

func TestSliceSource_CellValue(t *testing.T) {
	src := NewSliceSource([]string{"A", "B"}, [][]any{{1, "x"}, {2}})

	assert.Equal(t, 1, src.CellValue(0, 0))
	assert.Equal(t, "x", src.CellValue(0, 1))
	assert.Nil(t, src.CellValue(1, 1), "short rows read as nil")
	assert.Nil(t, src.CellValue(-1, 0))
	assert.Nil(t, src.CellValue(0, 5))
}

func TestSliceSource_Record(t *testing.T) {
	src := NewSliceSource([]string{"Name", "Age"}, [][]any{{"Alice", 30}})

	rec := src.Record(0)
	assert.Equal(t, "Alice", rec["Name"])
	assert.Equal(t, 30, rec["Age"])
	assert.Nil(t, src.Record(1))
}
