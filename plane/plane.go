/*
NAME
  plane.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package plane implements the padded-plane memory model that the motion
// search and macroblock classifier read from. A Plane is a macroblock-
// aligned, edge-replicated copy of a single luma frame; it lets motion
// search address any offset within Edge pixels of a legal macroblock
// without bounds checks.
package plane

// Edge is the replicated border width, in pixels, on all four sides of a
// padded plane. It must be at least the largest legal motion search range
// (search_limit(fcode) for fcode=6 is 512, but the window is clipped to the
// plane before use, so 64 is sufficient for the bounded diamond search this
// package supports).
const Edge = 64

// mbSize is the macroblock edge length in pixels.
const mbSize = 16

// Params holds the macroblock geometry derived from a frame's dimensions.
// It is computed once per resolution and reused for every frame at that
// resolution.
type Params struct {
	W, H   int // Source frame dimensions.
	MBW    int // ceil(W/16)
	MBH    int // ceil(H/16)
	EW, EH int // Padded plane dimensions.
}

// NewParams derives macroblock and padded-plane geometry from a frame size.
func NewParams(w, h int) Params {
	mbw := ceilDiv(w, mbSize)
	mbh := ceilDiv(h, mbSize)
	return Params{
		W:   w,
		H:   h,
		MBW: mbw,
		MBH: mbh,
		EW:  mbw*mbSize + 2*Edge,
		EH:  mbh*mbSize + 2*Edge,
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Plane is a padded, edge-replicated luma plane. Data is row-major with
// stride EW; the source frame's top-left pixel lives at Data[Edge*EW+Edge].
type Plane struct {
	Data   []byte
	Params Params
}

// New allocates a Plane sized for p. The returned Plane's Data is zeroed;
// callers must call Pad before reading from it.
func New(p Params) *Plane {
	return &Plane{
		Data:   make([]byte, p.EW*p.EH),
		Params: p,
	}
}

// Stride returns the row stride of the plane, i.e. EW.
func (pl *Plane) Stride() int { return pl.Params.EW }

// At returns the pixel at the interior-relative coordinate (x, y), where
// (0,0) is the source frame's top-left pixel. x and y may range over
// [-Edge, EW-Edge) and [-Edge, EH-Edge) respectively without going out of
// bounds, per the padding invariant.
func (pl *Plane) At(x, y int) byte {
	return pl.Data[(y+Edge)*pl.Params.EW+(x+Edge)]
}

// Offset returns the index into Data of the interior-relative coordinate
// (x, y). Useful for block routines that want to do their own stride
// arithmetic instead of calling At per pixel.
func (pl *Plane) Offset(x, y int) int {
	return (y+Edge)*pl.Params.EW + (x + Edge)
}
