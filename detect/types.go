/*
NAME
  types.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package detect implements the scene-change detection driver: it pulls
// frames from a Decoder collaborator, pads each into the working buffer
// pair, runs motion search and macroblock classification between
// consecutive frames, applies the verdict inequality, and accumulates the
// ordered list of cuts.
package detect

import "fmt"

// RawFrame is a single decoded grayscale frame, as delivered by a Decoder.
// Data is borrowed for the duration of a single call to the driver and is
// not retained past it.
type RawFrame struct {
	Data        []byte // W*H bytes, row-major, one byte per luma pixel.
	Width       int
	Height      int
	PTS         float64 // Seconds.
	FrameNumber int     // 0-indexed, strictly increasing with step 1.
}

// Metadata describes the video a Decoder is reading, known up front.
type Metadata struct {
	TotalFrames int
	Duration    float64
	FPS         float64
	Width       int
	Height      int
}

// Scene is one detected cut.
type Scene struct {
	FrameNumber int
	Timestamp   float64
	Timecode    string
}

// Result is the ordered output of a Detect call.
type Result struct {
	Scenes   []Scene
	Metadata ResultMetadata
}

// ResultMetadata carries the source video metadata plus summary statistics
// computed once detection completes.
type ResultMetadata struct {
	Metadata
	RunID string // Stable identifier for this Detect invocation.

	// Run-length statistics over the gaps between consecutive cuts, in
	// frames. Unset (zero) when fewer than two cuts were found.
	MeanRunLength   float64
	StdDevRunLength float64
}

// Progress reports driver advancement through the decoded sequence.
type Progress struct {
	CurrentFrame int
	TotalFrames  int
	Percent      float64
	ETASeconds   float64
}

// Timecode formats seconds as HH:MM:SS.mmm.
func Timecode(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalMillis := int64(seconds*1000 + 0.5)
	ms := totalMillis % 1000
	totalSeconds := totalMillis / 1000
	s := totalSeconds % 60
	totalMinutes := totalSeconds / 60
	m := totalMinutes % 60
	h := totalMinutes / 60
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}
