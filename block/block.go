/*
NAME
  block.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package block implements the pure block-statistics primitives the motion
// search and macroblock classifier are built from: sum-of-absolute-
// differences between same-sized blocks in two planes, and the spatial
// variance of a single block. All functions are deterministic, allocation-
// free, and operate on plane.Plane's padded, stride-EW byte buffers.
package block

import "github.com/framecut/scenecut/plane"

// SAD16 returns the sum of absolute differences between the 16x16 blocks at
// interior-relative (ax, ay) in a and (bx, by) in b.
func SAD16(a *plane.Plane, ax, ay int, b *plane.Plane, bx, by int) uint32 {
	return sad(a, ax, ay, b, bx, by, 16)
}

// SAD8 returns the sum of absolute differences between the 8x8 blocks at
// interior-relative (ax, ay) in a and (bx, by) in b.
func SAD8(a *plane.Plane, ax, ay int, b *plane.Plane, bx, by int) uint32 {
	return sad(a, ax, ay, b, bx, by, 8)
}

func sad(a *plane.Plane, ax, ay int, b *plane.Plane, bx, by int, size int) uint32 {
	as, bs := a.Stride(), b.Stride()
	aOff := a.Offset(ax, ay)
	bOff := b.Offset(bx, by)
	var sum uint32
	for row := 0; row < size; row++ {
		aRow := a.Data[aOff+row*as : aOff+row*as+size]
		bRow := b.Data[bOff+row*bs : bOff+row*bs+size]
		for col := 0; col < size; col++ {
			av, bv := int(aRow[col]), int(bRow[col])
			if av > bv {
				sum += uint32(av - bv)
			} else {
				sum += uint32(bv - av)
			}
		}
	}
	return sum
}

// SADSelfMean8 returns the sum of absolute deviations of the 8x8 block at
// interior-relative (x, y) in pl from its own mean — the residual a
// spatial-only (intra) predictor would leave behind. Used by the
// macroblock classifier as the four-subquadrant intra cost.
func SADSelfMean8(pl *plane.Plane, x, y int) uint32 {
	stride := pl.Stride()
	off := pl.Offset(x, y)
	var sum uint32
	for row := 0; row < 8; row++ {
		r := pl.Data[off+row*stride : off+row*stride+8]
		for col := 0; col < 8; col++ {
			sum += uint32(r[col])
		}
	}
	mean := sum / 64

	var dev uint32
	for row := 0; row < 8; row++ {
		r := pl.Data[off+row*stride : off+row*stride+8]
		for col := 0; col < 8; col++ {
			p := uint32(r[col])
			if p > mean {
				dev += p - mean
			} else {
				dev += mean - p
			}
		}
	}
	return dev
}

// Variance16 returns the spatial variance of the 16x16 block at
// interior-relative (x, y) in pl, computed as sum(p^2) - sum(p)^2/256 using
// 32-bit integer accumulators as required to reproduce reference output
// bit-for-bit.
func Variance16(pl *plane.Plane, x, y int) uint32 {
	stride := pl.Stride()
	off := pl.Offset(x, y)
	var sum, sumSq uint32
	for row := 0; row < 16; row++ {
		r := pl.Data[off+row*stride : off+row*stride+16]
		for col := 0; col < 16; col++ {
			p := uint32(r[col])
			sum += p
			sumSq += p * p
		}
	}
	return sumSq - (sum*sum)/256
}
