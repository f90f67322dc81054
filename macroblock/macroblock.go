/*
NAME
  macroblock.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package macroblock classifies each 16x16 macroblock of a frame as
// "intra" (poorly predicted from the reference frame) or "inter", and
// accumulates the per-frame statistics the verdict package consumes.
package macroblock

import (
	"github.com/framecut/scenecut/block"
	"github.com/framecut/scenecut/motion"
	"github.com/framecut/scenecut/plane"
)

// Bias is the small constant added to the spatial-only cost when deciding
// intra vs inter. The reference implementation uses 0.
const Bias = 0

// Block holds a single macroblock's classification result. It is transient:
// recomputed every frame, never persisted across frames.
type Block struct {
	MV       motion.Vector
	SAD      uint32 // Motion-compensated SAD against the reference frame.
	Variance uint32 // Spatial variance of the current block.
	IsIntra  bool
}

// Stats accumulates per-frame totals across all macroblocks.
type Stats struct {
	IntraCount  int
	SumSADInter uint64
	SumVariance uint64
}

// Classify runs motion search and the intra/inter decision for every
// macroblock of cur against prev, in raster order, writing results into
// blocks (which must be sized MBW*MBH and is reused across frames by the
// caller) and returning the accumulated frame statistics.
func Classify(prev, cur *plane.Plane, p plane.Params, fcode int, blocks []Block) Stats {
	var stats Stats
	for my := 0; my < p.MBH; my++ {
		for mx := 0; mx < p.MBW; mx++ {
			idx := my*p.MBW + mx
			b := classifyOne(prev, cur, mx, my, fcode)
			blocks[idx] = b

			if b.IsIntra {
				stats.IntraCount++
			}
			stats.SumSADInter += uint64(b.SAD)
			stats.SumVariance += uint64(b.Variance)
		}
	}
	return stats
}

func classifyOne(prev, cur *plane.Plane, mx, my, fcode int) Block {
	res := motion.Search(prev, cur, mx, my, fcode)

	x, y := mx*16, my*16
	variance := block.Variance16(cur, x, y)

	var sadIntra uint32
	for _, sub := range [4][2]int{{0, 0}, {8, 0}, {0, 8}, {8, 8}} {
		sadIntra += block.SADSelfMean8(cur, x+sub[0], y+sub[1])
	}

	isIntra := res.SAD > sadIntra+Bias

	return Block{
		MV:       res.MV,
		SAD:      res.SAD,
		Variance: variance,
		IsIntra:  isIntra,
	}
}
