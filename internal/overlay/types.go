// Package overlay computes what the video player draws over playback: stacked
// detection bars on the progress bar and the tracked bounding boxes for the
// current frame.
package overlay

import (
	"github.com/feederwatch/dashboard/internal/logger"
)

// DefaultMaxFrameDelta is how far, in seconds, a frame sample may be from the
// playback position before its box is considered stale.
const DefaultMaxFrameDelta = 0.3

// DetectionInterval is a time range in which a species or track was identified.
type DetectionInterval struct {
	SourceID  string  `json:"sourceId" yaml:"sourceId"`
	StartTime float64 `json:"startTime" yaml:"startTime"`
	EndTime   float64 `json:"endTime" yaml:"endTime"`
	Label     string  `json:"label" yaml:"label"`
}

// BoundingBox is x1, y1, x2, y2 normalized to the frame size.
type BoundingBox [4]float64

// Valid reports whether the box lies inside the frame with positive area.
func (b BoundingBox) Valid() bool {
	x1, y1, x2, y2 := b[0], b[1], b[2], b[3]
	return x1 >= 0 && y1 >= 0 && x2 <= 1 && y2 <= 1 && x1 < x2 && y1 < y2
}

// FrameSample is one timestamped box of a tracked subject.
type FrameSample struct {
	Timestamp   float64     `json:"timestamp" yaml:"timestamp"`
	BoundingBox BoundingBox `json:"boundingBox" yaml:"boundingBox"`
}

// Track is a tracked subject with its per-frame boxes.
type Track struct {
	ID        string        `json:"id" yaml:"id"`
	Label     string        `json:"label" yaml:"label"`
	StartTime float64       `json:"startTime" yaml:"startTime"`
	EndTime   float64       `json:"endTime" yaml:"endTime"`
	Frames    []FrameSample `json:"frames" yaml:"frames"`
}

// Video is the part of a video record the overlay needs.
type Video struct {
	ID         string              `json:"id" yaml:"id"`
	Duration   float64             `json:"duration" yaml:"duration"`
	Detections []DetectionInterval `json:"detections" yaml:"detections"`
	Tracks     []Track             `json:"tracks" yaml:"tracks"`
}

// GetLogger returns the overlay package logger.
func GetLogger() logger.Logger {
	return logger.Global().Module("overlay")
}
