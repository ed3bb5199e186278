package overlay

import (
	"math"

	"github.com/feederwatch/dashboard/internal/labelcolor"
)

// FindNearestFrame returns the sample closest in time to queryTime. The first
// of equally close samples wins. It reports false when frames is empty or the
// closest sample is more than maxDelta seconds away.
func FindNearestFrame(frames []FrameSample, queryTime, maxDelta float64) (FrameSample, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i := range frames {
		if d := math.Abs(frames[i].Timestamp - queryTime); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 || bestDist > maxDelta {
		return FrameSample{}, false
	}
	return frames[best], true
}

// TrackBox is a box to draw for one track at the current playback time.
type TrackBox struct {
	TrackID   string      `json:"trackId"`
	Label     string      `json:"label"`
	Frame     FrameSample `json:"frame"`
	Color     string      `json:"color"`
	TextColor string      `json:"textColor"`
}

// ActiveTracks returns a box for every track whose time range covers
// queryTime and which has a sample within maxDelta. Boxes with invalid
// geometry are skipped. Order follows tracks.
func ActiveTracks(tracks []Track, queryTime, maxDelta float64) []TrackBox {
	boxes := make([]TrackBox, 0, len(tracks))
	for i := range tracks {
		tr := &tracks[i]
		if queryTime < tr.StartTime || queryTime > tr.EndTime {
			continue
		}
		frame, ok := FindNearestFrame(tr.Frames, queryTime, maxDelta)
		if !ok || !frame.BoundingBox.Valid() {
			continue
		}
		color := labelcolor.LabelToUniqueHexColor(tr.Label)
		boxes = append(boxes, TrackBox{
			TrackID:   tr.ID,
			Label:     tr.Label,
			Frame:     frame,
			Color:     color,
			TextColor: labelcolor.GetContrastTextColor(color),
		})
	}
	return boxes
}
