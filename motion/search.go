/*
NAME
  search.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package motion

import (
	"github.com/framecut/scenecut/block"
	"github.com/framecut/scenecut/plane"
)

// Result is the outcome of a motion search: the best vector found and its
// raw (unpenalized) SAD against the reference frame.
type Result struct {
	MV  Vector
	SAD uint32
}

// neighbors are the four orthogonal search-step directions, evaluated in
// this fixed order every round so that the tie-break rule in less is the
// only source of ties, never iteration order.
var neighbors = [4]Vector{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Search finds the integer motion vector for the 16x16 macroblock at
// macroblock index (mx, my) in cur, minimizing the bit-cost-penalized SAD
// against prev. It starts at the zero vector and walks a small-diamond
// pattern: at each round it evaluates the four orthogonal neighbors of the
// current best, moves to whichever strictly improves the penalized cost
// (ties broken per the tie-break rule in less), and halves the step size
// whenever no neighbor improves. The search stops when the step would fall
// below one pixel, or when the legal search window is exhausted.
//
// prev and cur must share the same Params.
func Search(prev, cur *plane.Plane, mx, my, fcode int) Result {
	window := SearchLimit(fcode)
	if window > plane.Edge {
		window = plane.Edge
	}

	px, py := mx*16, my*16

	costAt := func(mv Vector) (uint32, uint32) {
		sad := block.SAD16(prev, px+mv.DX, py+mv.DY, cur, px, py)
		return cost(sad, mv), sad
	}

	best := mvZero
	bestCost, bestSAD := costAt(best)

	inWindow := func(mv Vector) bool {
		return mv.DX >= -window && mv.DX <= window && mv.DY >= -window && mv.DY <= window
	}

	step := largestPow2LE(window)
	if step < 1 {
		return Result{MV: best, SAD: bestSAD}
	}

	for step >= 1 {
		improved := false
		var candBest Vector
		var candBestCost, candBestSAD uint32
		haveCand := false

		for _, d := range neighbors {
			cand := add(best, Vector{d.DX * step, d.DY * step})
			if !inWindow(cand) {
				continue
			}
			c, s := costAt(cand)
			if !haveCand || c < candBestCost || (c == candBestCost && less(cand, candBest)) {
				candBest, candBestCost, candBestSAD = cand, c, s
				haveCand = true
			}
		}

		if haveCand && candBestCost < bestCost {
			best, bestCost, bestSAD = candBest, candBestCost, candBestSAD
			improved = true
		}

		if !improved {
			step /= 2
		}
	}

	return Result{MV: best, SAD: bestSAD}
}

// largestPow2LE returns the largest power of two that is <= n, or 0 if
// n < 1.
func largestPow2LE(n int) int {
	if n < 1 {
		return 0
	}
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}
