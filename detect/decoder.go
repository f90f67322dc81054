/*
NAME
  decoder.go

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

// Decoder is the external collaborator contract this detector consumes: a
// lazy, in-order sequence of RawFrame records plus the video metadata known
// up front. Implementations live in the decode package; this interface is
// declared here, at the point of use, the way ausocean-av's device.AVDevice
// and revid.Logger interfaces are declared beside their consumers rather
// than beside their implementations.
type Decoder interface {
	// Metadata returns the video's metadata. Safe to call at any time.
	Metadata() Metadata

	// Next returns the next decoded frame in order, or io.EOF once the
	// sequence is exhausted. Any other error is a DecoderError, fatal to
	// the in-progress detection.
	Next() (RawFrame, error)

	// Close releases resources held by the decoder.
	Close() error
}
