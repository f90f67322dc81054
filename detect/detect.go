/*
NAME
  detect.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package detect

import "github.com/pkg/errors"

// DefaultOpener constructs a Decoder for a video file path. It is nil
// until a decode package installs one via SetDefaultOpener — decode/cv
// does this from its init() function when the binary is built with the
// withcv build tag, mirroring how ausocean-av gates its gocv-backed files.
// Tests and callers who already have a Decoder (e.g. decode/rawgray) should
// call DetectFrames directly instead of going through Detect.
var DefaultOpener func(path string) (Decoder, error)

// SetDefaultOpener installs the Decoder constructor Detect uses.
func SetDefaultOpener(open func(path string) (Decoder, error)) {
	DefaultOpener = open
}

// Detect is the top-level operation from spec.md §6: open path with the
// registered decoder and run the detection driver over it.
func Detect(path string, opts Options) (Result, error) {
	if DefaultOpener == nil {
		return Result{}, errors.New("detect: no decoder registered; build with -tags withcv, blank-import a decode package, or call DetectFrames directly")
	}
	dec, err := DefaultOpener(path)
	if err != nil {
		return Result{}, errors.Wrap(ErrDecoder, err.Error())
	}
	defer dec.Close()
	return DetectFrames(dec, opts)
}
