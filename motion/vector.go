/*
NAME
  vector.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package motion implements the integer-pixel motion search used by the
// macroblock classifier: a bounded diamond search that finds the motion
// vector minimizing a bit-cost-penalized SAD against a reference frame.
package motion

// Vector is an integer motion vector, in whole pixels.
type Vector struct {
	DX, DY int
}

// mvZero is the zero motion vector, always the search's starting point.
var mvZero = Vector{0, 0}

// SearchLimit returns the maximum magnitude, in pixels, a motion vector
// component may take for the given fcode: 16 * 2^(fcode-1).
func SearchLimit(fcode int) int {
	return 16 << uint(fcode-1)
}

// add returns a+b.
func add(a, b Vector) Vector {
	return Vector{a.DX + b.DX, a.DY + b.DY}
}

// less reports whether a should be preferred over b under equal cost,
// per the tie-break rule: smaller |dx|+|dy|, then smaller dy, then
// smaller dx.
func less(a, b Vector) bool {
	am := abs(a.DX) + abs(a.DY)
	bm := abs(b.DX) + abs(b.DY)
	if am != bm {
		return am < bm
	}
	if a.DY != b.DY {
		return a.DY < b.DY
	}
	return a.DX < b.DX
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
