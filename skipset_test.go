package gridaxis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkipSet_AddAndSnapshot(t *testing.T) {
	tr := NewTranslator(fixedCount(10))
	s := tr.Skip(SkipTrim)

	require.NoError(t, s.Add([]int{5, 1, 3, 1, 5}))
	assert.Equal(t, []int{1, 3, 5}, s.Snapshot(), "deduplicated and sorted")
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(2))
}

func TestSkipSet_InvalidBatchLeavesSetUnchanged(t *testing.T) {
	tr := NewTranslator(fixedCount(4))
	s := tr.Skip(SkipTrim)
	require.NoError(t, s.Add([]int{1}))

	err := s.Add([]int{2, 10, -1})
	var iie *InvalidIndexError
	require.ErrorAs(t, err, &iie)
	assert.Equal(t, []int{-1, 10}, iie.Indices)
	assert.Equal(t, 4, iie.Count)

	assert.Equal(t, []int{1}, s.Snapshot(), "no partial application")
}

func TestSkipSet_RemoveAbsentIsNoOp(t *testing.T) {
	tr := NewTranslator(fixedCount(4))
	s := tr.Skip(SkipHide)

	s.Remove([]int{2, 3})
	assert.Equal(t, 0, s.Len())

	require.NoError(t, s.Add([]int{2}))
	s.Remove([]int{2, 3})
	assert.Equal(t, 0, s.Len())
}

func TestSkipSet_Replace(t *testing.T) {
	tr := NewTranslator(fixedCount(6))
	s := tr.Skip(SkipTrim)
	require.NoError(t, s.Add([]int{0, 1}))

	require.NoError(t, s.Replace([]int{4, 5}))
	assert.Equal(t, []int{4, 5}, s.Snapshot())

	err := s.Replace([]int{4, 6})
	assert.Error(t, err)
	assert.Equal(t, []int{4, 5}, s.Snapshot(), "failed replace keeps previous contents")
}

func TestSkipSet_ClearRestoresVisualSpace(t *testing.T) {
	tr := NewTranslator(fixedCount(5))
	s := tr.Skip(SkipTrim)
	require.NoError(t, s.Add([]int{0, 4}))
	assert.Equal(t, 3, tr.VisibleCount())

	s.Clear()
	assert.Equal(t, 5, tr.VisibleCount())
}

func TestSkipSet_KindsAreIndependent(t *testing.T) {
	tr := NewTranslator(fixedCount(5))
	require.NoError(t, tr.Skip(SkipTrim).Add([]int{1}))
	require.NoError(t, tr.Skip(SkipHide).Add([]int{2}))

	tr.Skip(SkipTrim).Clear()
	assert.False(t, tr.IsSkipped(1))
	assert.True(t, tr.IsSkipped(2))
}
