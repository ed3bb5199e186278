package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/feederwatch/dashboard/internal/labelcolor"
)

func lanesOf(placements []Placement) []int {
	out := make([]int, len(placements))
	for i, p := range placements {
		out[i] = p.Lane
	}
	return out
}

func TestAssignLanes_ReusesFreedLane(t *testing.T) {
	intervals := []DetectionInterval{
		{SourceID: "a", StartTime: 0, EndTime: 10, Label: "Blue Jay"},
		{SourceID: "b", StartTime: 5, EndTime: 15, Label: "Northern Cardinal"},
		{SourceID: "c", StartTime: 12, EndTime: 20, Label: "Blue Jay"},
	}

	placements := AssignLanes(intervals, 20)

	assert.Equal(t, []int{0, 1, 0}, lanesOf(placements))
	assert.Equal(t, 2, LaneCount(placements))
}

func TestAssignLanes_TouchingIntervalsShareLane(t *testing.T) {
	intervals := []DetectionInterval{
		{StartTime: 0, EndTime: 5},
		{StartTime: 5, EndTime: 10},
	}
	assert.Equal(t, []int{0, 0}, lanesOf(AssignLanes(intervals, 10)))
}

func TestAssignLanes_OutputFollowsInputOrder(t *testing.T) {
	intervals := []DetectionInterval{
		{SourceID: "late", StartTime: 8, EndTime: 9},
		{SourceID: "early", StartTime: 0, EndTime: 10},
		{SourceID: "middle", StartTime: 4, EndTime: 6},
	}

	placements := AssignLanes(intervals, 10)

	require.Len(t, placements, 3)
	for i, p := range placements {
		assert.Equal(t, i, p.Index)
		assert.Equal(t, intervals[i], p.Interval)
	}
	// Sorted order is early, middle, late: early takes lane 0, middle and late
	// both overlap it but not each other.
	assert.Equal(t, []int{1, 0, 1}, lanesOf(placements))
}

func TestAssignLanes_StableOnEqualStart(t *testing.T) {
	intervals := []DetectionInterval{
		{SourceID: "first", StartTime: 2, EndTime: 4},
		{SourceID: "second", StartTime: 2, EndTime: 3},
	}
	assert.Equal(t, []int{0, 1}, lanesOf(AssignLanes(intervals, 10)))
}

func TestAssignLanes_Geometry(t *testing.T) {
	intervals := []DetectionInterval{
		{StartTime: 5, EndTime: 15, Label: "Blue Jay"},
		{StartTime: 18, EndTime: 30, Label: "Blue Jay"}, // runs past the end
		{StartTime: 25, EndTime: 40, Label: "Blue Jay"}, // starts past the end
	}

	placements := AssignLanes(intervals, 20)

	assert.InDelta(t, 25, placements[0].StartPercent, 1e-9)
	assert.InDelta(t, 75, placements[0].EndPercent, 1e-9)
	assert.InDelta(t, 50, placements[0].Width, 1e-9)

	assert.InDelta(t, 90, placements[1].StartPercent, 1e-9)
	assert.InDelta(t, 100, placements[1].EndPercent, 1e-9)
	assert.InDelta(t, 10, placements[1].Width, 1e-9)

	assert.InDelta(t, 100, placements[2].StartPercent, 1e-9)
	assert.InDelta(t, 0, placements[2].Width, 1e-9)
}

func TestAssignLanes_Colors(t *testing.T) {
	placements := AssignLanes([]DetectionInterval{{StartTime: 0, EndTime: 1, Label: "Cardinal"}}, 10)

	require.Len(t, placements, 1)
	assert.Equal(t, "#663B40", placements[0].Color)
	assert.Equal(t, labelcolor.White, placements[0].TextColor)
}

func TestAssignLanes_InvalidDuration(t *testing.T) {
	intervals := []DetectionInterval{{StartTime: 0, EndTime: 1}}

	for _, d := range []float64{0, -5} {
		placements := AssignLanes(intervals, d)
		assert.NotNil(t, placements)
		assert.Empty(t, placements)
	}
	assert.Empty(t, AssignLanes(nil, 10))
}

func genIntervals(t *rapid.T) []DetectionInterval {
	n := rapid.IntRange(0, 30).Draw(t, "n")
	out := make([]DetectionInterval, n)
	for i := range out {
		start := rapid.Float64Range(0, 100).Draw(t, "start")
		length := rapid.Float64Range(0.01, 30).Draw(t, "length")
		out[i] = DetectionInterval{StartTime: start, EndTime: start + length}
	}
	return out
}

func TestProperty_LanesNeverOverlap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		intervals := genIntervals(t)
		placements := AssignLanes(intervals, 120)

		for i := range placements {
			for j := i + 1; j < len(placements); j++ {
				a, b := placements[i], placements[j]
				if a.Lane == b.Lane && overlaps(a.Interval, b.Interval) {
					t.Fatalf("intervals %d and %d share lane %d and overlap", i, j, a.Lane)
				}
			}
		}
	})
}

func TestProperty_DisjointIntervalsUseOneLane(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(t, "n")
		intervals := make([]DetectionInterval, n)
		cursor := 0.0
		for i := range intervals {
			cursor += rapid.Float64Range(0, 5).Draw(t, "gap")
			length := rapid.Float64Range(0.1, 5).Draw(t, "length")
			intervals[i] = DetectionInterval{StartTime: cursor, EndTime: cursor + length}
			cursor += length
		}
		shuffled := rapid.Permutation(intervals).Draw(t, "order")

		if lanes := LaneCount(AssignLanes(shuffled, cursor+1)); lanes != 1 {
			t.Fatalf("disjoint intervals used %d lanes", lanes)
		}
	})
}
