//go:build withcv
// +build withcv

/*
NAME
  cv.go

DESCRIPTION
  A detect.Decoder backed by gocv's VideoCapture, decoding real video
  container formats (mp4, mkv, avi, ...) to grayscale luma planes. Gated
  behind the withcv build tag exactly as ausocean-av gates every file that
  touches gocv (filter/diff.go, filter/knn.go, cmd/rv/probe.go), since gocv
  requires a cgo-linked OpenCV install that isn't available in every build
  environment.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package cv implements a detect.Decoder using gocv.VideoCapture.
package cv

import (
	"image"
	"io"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/framecut/scenecut/detect"
)

func init() {
	detect.SetDefaultOpener(Open)
}

// Decoder decodes a video file to grayscale frames via OpenCV.
type Decoder struct {
	cap   *gocv.VideoCapture
	meta  detect.Metadata
	frame int
	gray  gocv.Mat
	color gocv.Mat
}

// Open opens path for reading and probes its metadata up front, the way
// ausocean-av's device.AVDevice implementations report their capabilities
// before Start is called.
func Open(path string) (detect.Decoder, error) {
	cap, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", path)
	}

	fps := cap.Get(gocv.VideoCaptureFPS)
	total := int(cap.Get(gocv.VideoCaptureFrameCount))
	w := int(cap.Get(gocv.VideoCaptureFrameWidth))
	h := int(cap.Get(gocv.VideoCaptureFrameHeight))

	var duration float64
	if fps > 0 {
		duration = float64(total) / fps
	}

	return &Decoder{
		cap: cap,
		meta: detect.Metadata{
			TotalFrames: total,
			Duration:    duration,
			FPS:         fps,
			Width:       w,
			Height:      h,
		},
		color: gocv.NewMat(),
		gray:  gocv.NewMat(),
	}, nil
}

// Metadata implements detect.Decoder.
func (d *Decoder) Metadata() detect.Metadata { return d.meta }

// Next implements detect.Decoder. Frames are converted to grayscale with
// the same gocv.CvtColor(..., gocv.ColorBGRToGray) call filter.Diff.Detect
// uses in ausocean-av.
func (d *Decoder) Next() (detect.RawFrame, error) {
	if !d.cap.Read(&d.color) || d.color.Empty() {
		return detect.RawFrame{}, io.EOF
	}
	gocv.CvtColor(d.color, &d.gray, gocv.ColorBGRToGray)

	w, h := d.gray.Cols(), d.gray.Rows()
	data := make([]byte, w*h)
	region, err := d.gray.DataPtrUint8()
	if err != nil {
		return detect.RawFrame{}, errors.Wrap(err, "could not read decoded frame data")
	}
	copy(data, region[:w*h])

	pts := d.cap.Get(gocv.VideoCapturePosMsec) / 1000
	f := detect.RawFrame{
		Data:        data,
		Width:       w,
		Height:      h,
		PTS:         pts,
		FrameNumber: d.frame,
	}
	d.frame++
	return f, nil
}

// Close implements detect.Decoder, releasing the gocv resources, which
// must be freed manually since they're backed by cgo.
func (d *Decoder) Close() error {
	d.gray.Close()
	d.color.Close()
	return d.cap.Close()
}

// Bounds reports the decoded frame rectangle, useful for callers that want
// to sanity-check dimensions before starting detection.
func (d *Decoder) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.meta.Width, d.meta.Height)
}
