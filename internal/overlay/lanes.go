package overlay

import (
	"cmp"
	"math"
	"slices"

	"github.com/feederwatch/dashboard/internal/labelcolor"
)

// Placement is where one detection interval is drawn on the progress bar.
// Geometry is in percent of the video duration.
type Placement struct {
	Index        int               `json:"index"` // position in the input slice
	Interval     DetectionInterval `json:"interval"`
	Lane         int               `json:"lane"`
	StartPercent float64           `json:"startPercent"`
	EndPercent   float64           `json:"endPercent"`
	Width        float64           `json:"width"`
	Color        string            `json:"color"`
	TextColor    string            `json:"textColor"`
}

// overlaps treats intervals that only touch at an endpoint as disjoint.
func overlaps(a, b DetectionInterval) bool {
	return !(a.EndTime <= b.StartTime || a.StartTime >= b.EndTime)
}

// AssignLanes stacks intervals into display lanes. Intervals are taken in
// start-time order (ties keep input order) and each goes into the lowest lane
// where it overlaps nothing already placed. The result is indexed like the
// input. A non-positive duration yields no placements.
func AssignLanes(intervals []DetectionInterval, duration float64) []Placement {
	if duration <= 0 || len(intervals) == 0 {
		return []Placement{}
	}

	order := make([]int, len(intervals))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(intervals[a].StartTime, intervals[b].StartTime)
	})

	var lanes [][]DetectionInterval
	laneOf := make([]int, len(intervals))
	for _, idx := range order {
		iv := intervals[idx]
		lane := len(lanes)
		for l, placed := range lanes {
			if !slices.ContainsFunc(placed, func(p DetectionInterval) bool { return overlaps(iv, p) }) {
				lane = l
				break
			}
		}
		if lane == len(lanes) {
			lanes = append(lanes, nil)
		}
		lanes[lane] = append(lanes[lane], iv)
		laneOf[idx] = lane
	}

	placements := make([]Placement, len(intervals))
	for i, iv := range intervals {
		startPercent := math.Min(iv.StartTime/duration*100, 100)
		endPercent := math.Min(iv.EndTime/duration*100, 100)
		color := labelcolor.LabelToUniqueHexColor(iv.Label)
		placements[i] = Placement{
			Index:        i,
			Interval:     iv,
			Lane:         laneOf[i],
			StartPercent: startPercent,
			EndPercent:   endPercent,
			Width:        math.Min(endPercent-startPercent, 100-startPercent),
			Color:        color,
			TextColor:    labelcolor.GetContrastTextColor(color),
		}
	}
	return placements
}

// LaneCount returns how many lanes the placements use.
func LaneCount(placements []Placement) int {
	count := 0
	for _, p := range placements {
		count = max(count, p.Lane+1)
	}
	return count
}
