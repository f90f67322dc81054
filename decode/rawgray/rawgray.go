/*
NAME
  rawgray.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package rawgray implements a detect.Decoder for a raw planar-grayscale
// stream: fixed-size W*H records, one per frame, back to back, with no
// container framing. It plays the same niche device/file.AVFile fills in
// ausocean-av for raw h264 byte streams — a dependency-free source used by
// this repository's own tests and benchmarks, and a legitimate capture
// format for instruments that already emit luma planes.
package rawgray

import (
	"io"

	"github.com/pkg/errors"

	"github.com/framecut/scenecut/detect"
)

// Decoder reads fixed-size grayscale frames from an io.Reader.
type Decoder struct {
	r     io.Reader
	w, h  int
	fps   float64
	total int
	frame int
	buf   []byte
}

// New returns a Decoder reading w*h grayscale frames from r. total and fps
// populate the reported detect.Metadata; pass 0 for total if unknown (a
// stream of unknown length).
func New(r io.Reader, w, h int, fps float64, total int) *Decoder {
	return &Decoder{
		r:     r,
		w:     w,
		h:     h,
		fps:   fps,
		total: total,
		buf:   make([]byte, w*h),
	}
}

// Metadata implements detect.Decoder.
func (d *Decoder) Metadata() detect.Metadata {
	var duration float64
	if d.fps > 0 {
		duration = float64(d.total) / d.fps
	}
	return detect.Metadata{
		TotalFrames: d.total,
		Duration:    duration,
		FPS:         d.fps,
		Width:       d.w,
		Height:      d.h,
	}
}

// Next implements detect.Decoder. It returns io.EOF once the underlying
// reader is exhausted at a frame boundary; a partial trailing record is a
// decode error.
func (d *Decoder) Next() (detect.RawFrame, error) {
	_, err := io.ReadFull(d.r, d.buf)
	if err == io.EOF {
		return detect.RawFrame{}, io.EOF
	}
	if err != nil {
		return detect.RawFrame{}, errors.Wrap(err, "rawgray: short read")
	}

	out := make([]byte, len(d.buf))
	copy(out, d.buf)

	f := detect.RawFrame{
		Data:        out,
		Width:       d.w,
		Height:      d.h,
		FrameNumber: d.frame,
	}
	if d.fps > 0 {
		f.PTS = float64(d.frame) / d.fps
	}
	d.frame++
	return f, nil
}

// Close implements detect.Decoder. The underlying io.Reader is owned by
// the caller and is not closed here unless it also implements io.Closer.
func (d *Decoder) Close() error {
	if c, ok := d.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
