package overlay

import (
	"github.com/feederwatch/dashboard/internal/logger"
)

// Frame is everything drawn over the player at one playback position.
type Frame struct {
	VideoID    string      `json:"videoId"`
	Time       float64     `json:"time"`
	Placements []Placement `json:"placements"`
	Lanes      int         `json:"lanes"`
	Boxes      []TrackBox  `json:"boxes"`
}

// Compose lays out the detection bars of v and the track boxes visible at
// queryTime. Detections with an empty or inverted time range are left out.
func Compose(v *Video, queryTime, maxDelta float64) Frame {
	valid := make([]DetectionInterval, 0, len(v.Detections))
	for _, d := range v.Detections {
		if d.StartTime < 0 || d.StartTime >= d.EndTime {
			continue
		}
		valid = append(valid, d)
	}
	if skipped := len(v.Detections) - len(valid); skipped > 0 {
		GetLogger().Debug("Skipping detections with invalid time range",
			logger.String("video_id", v.ID),
			logger.Int("skipped", skipped))
	}

	placements := AssignLanes(valid, v.Duration)
	if v.Duration <= 0 && len(valid) > 0 {
		GetLogger().Debug("Video has no duration, detection bars omitted",
			logger.String("video_id", v.ID))
	}

	return Frame{
		VideoID:    v.ID,
		Time:       queryTime,
		Placements: placements,
		Lanes:      LaneCount(placements),
		Boxes:      ActiveTracks(v.Tracks, queryTime, maxDelta),
	}
}
