/*
NAME
  pad.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package plane

import "github.com/pkg/errors"

// errShortSrc is returned by Pad when src is too small for the plane's
// declared W*H.
var errShortSrc = errors.New("plane: source buffer shorter than W*H")

// Pad copies the W*H row-major luma plane src into pl, edge-replicating on
// all four sides so that any read within Edge pixels of a legal macroblock
// never goes out of bounds. src is borrowed only for the duration of this
// call and is not retained.
//
// Steps mirror the reference algorithm exactly:
//  1. zero the destination,
//  2. copy each source row into the interior,
//  3. replicate the right edge out to the macroblock-aligned width,
//  4. replicate the bottom edge out to the macroblock-aligned height,
//  5. replicate the top and bottom interior rows into the Edge-pixel border,
//  6. replicate the left and right interior columns into the Edge-pixel border.
func (pl *Plane) Pad(src []byte) error {
	p := pl.Params
	if len(src) < p.W*p.H {
		return errors.Wrapf(errShortSrc, "len(src)=%d want >= %d", len(src), p.W*p.H)
	}

	for i := range pl.Data {
		pl.Data[i] = 0
	}

	alignedW := p.MBW * mbSize
	alignedH := p.MBH * mbSize

	// 2. Copy interior rows.
	for y := 0; y < p.H; y++ {
		dstStart := (y+Edge)*p.EW + Edge
		copy(pl.Data[dstStart:dstStart+p.W], src[y*p.W:(y+1)*p.W])
	}

	// 3. Right-edge macroblock alignment.
	if p.W < alignedW {
		for y := 0; y < p.H; y++ {
			rowStart := (y+Edge)*p.EW + Edge
			last := pl.Data[rowStart+p.W-1]
			for x := p.W; x < alignedW; x++ {
				pl.Data[rowStart+x] = last
			}
		}
	}

	// 4. Bottom-edge macroblock alignment, using the already right-extended
	// last row.
	if p.H < alignedH {
		srcRowStart := (p.H - 1 + Edge) * p.EW
		for y := p.H; y < alignedH; y++ {
			dstRowStart := (y + Edge) * p.EW
			copy(pl.Data[dstRowStart+Edge:dstRowStart+Edge+alignedW], pl.Data[srcRowStart+Edge:srcRowStart+Edge+alignedW])
		}
	}

	// 5. Top/bottom border replication.
	topRow := Edge * p.EW
	bottomRow := (Edge + alignedH - 1) * p.EW
	for i := 0; i < Edge; i++ {
		copy(pl.Data[i*p.EW:i*p.EW+p.EW], pl.Data[topRow:topRow+p.EW])
		dst := (p.EH - 1 - i) * p.EW
		copy(pl.Data[dst:dst+p.EW], pl.Data[bottomRow:bottomRow+p.EW])
	}

	// 6. Left/right border replication, for every row including the
	// borders just written above.
	for y := 0; y < p.EH; y++ {
		rowStart := y * p.EW
		left := pl.Data[rowStart+Edge]
		for x := 0; x < Edge; x++ {
			pl.Data[rowStart+x] = left
		}
		right := pl.Data[rowStart+Edge+alignedW-1]
		for x := Edge + alignedW; x < p.EW; x++ {
			pl.Data[rowStart+x] = right
		}
	}

	return nil
}
