/*
NAME
  errors.go

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

// Sentinel errors the driver can return, per spec.md §7. DecoderError and
// AllocationFailure are wrapped with context via github.com/pkg/errors
// before being returned, so callers can still errors.Is/As against these.
var (
	// ErrInvalidFrame indicates a W*H mismatch, a zero or >8192 dimension,
	// or an empty plane. Fatal; aborts detection.
	ErrInvalidFrame = errors.New("detect: invalid frame")

	// ErrDecoder wraps a failure surfaced by the Decoder collaborator.
	// Fatal; aborts detection.
	ErrDecoder = errors.New("detect: decoder error")

	// ErrAllocation indicates the frame could not be padded into the
	// working buffer allocated for its dimensions.
	ErrAllocation = errors.New("detect: allocation failure")
)

// maxDimension is the largest legal frame width or height, per spec.md §3.
const maxDimension = 8192

func validateFrame(f RawFrame) error {
	if f.Width <= 0 || f.Height <= 0 {
		return errors.Wrapf(ErrInvalidFrame, "non-positive dimensions %dx%d", f.Width, f.Height)
	}
	if f.Width > maxDimension || f.Height > maxDimension {
		return errors.Wrapf(ErrInvalidFrame, "dimensions %dx%d exceed max %d", f.Width, f.Height, maxDimension)
	}
	if len(f.Data) < f.Width*f.Height {
		return errors.Wrapf(ErrInvalidFrame, "len(data)=%d < W*H=%d", len(f.Data), f.Width*f.Height)
	}
	return nil
}
