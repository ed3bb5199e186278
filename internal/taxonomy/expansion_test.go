package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpansion_ToggleIsPure(t *testing.T) {
	start := NewExpansion(1, 2)

	next := start.Toggle(2).Toggle(3)

	assert.Equal(t, []int64{1, 2}, start.IDs())
	assert.Equal(t, []int64{1, 3}, next.IDs())
	assert.True(t, next.Contains(3))
	assert.False(t, next.Contains(2))
}

func TestExpansion_ZeroValueUsable(t *testing.T) {
	var e Expansion
	assert.False(t, e.Contains(1))
	assert.Equal(t, 0, e.Len())
	assert.Equal(t, []int64{1}, e.Toggle(1).IDs())
}

func TestExpansion_ExpandCollapseMerge(t *testing.T) {
	roots := mustBuild(t, sampleDirectory())
	info := CollectTreeInfo(roots, "bunting")

	expanded := NewExpansion(404).ExpandAll(info)
	assert.Equal(t, []int64{1, 2, 5, 7, 9}, expanded.IDs())

	collapsed := expanded.CollapseAll()
	assert.Equal(t, 0, collapsed.Len())

	searched := collapsed.Merge(info.AutoExpandIDs)
	assert.Equal(t, []int64{1, 5}, searched.IDs())
}

func TestVisibleRows(t *testing.T) {
	roots := mustBuild(t, sampleDirectory())

	rows := VisibleRows(roots, NewExpansion())
	assert.Equal(t, []int64{1, 7, 9}, rowIDs(rows))

	rows = VisibleRows(roots, NewExpansion(1, 5))
	require.Equal(t, []int64{1, 2, 5, 6, 7, 9}, rowIDs(rows))
	assert.Equal(t, 0, rows[0].Depth)
	assert.Equal(t, 1, rows[1].Depth)
	assert.Equal(t, 2, rows[3].Depth)

	// An expanded node under a collapsed parent stays hidden
	rows = VisibleRows(roots, NewExpansion(2))
	assert.Equal(t, []int64{1, 7, 9}, rowIDs(rows))
}

func rowIDs(rows []Row) []int64 {
	out := make([]int64, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Node.ID)
	}
	return out
}
