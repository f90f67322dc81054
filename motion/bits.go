/*
NAME
  bits.go

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

// lambda is the bit-cost penalty weight applied to a candidate vector's
// estimated coding cost during motion search.
const lambda = 2

// bits returns the variable-length-code cost, in bits, of coding the
// motion vector (dx, dy) relative to a zero predictor. This is the exact
// rule spec.md §4.3 gives, not an approximation:
//
//	bits(0,0) = 1
//	bits(d,0) or bits(0,d) = 1 + 2*floor(log2(|d|+1)), d != 0
//	bits(dx,dy) = bits(dx,0) + bits(0,dy), otherwise
func bits(dx, dy int) int {
	if dx == 0 && dy == 0 {
		return 1
	}
	return bits1D(dx) + bits1D(dy)
}

// bits1D returns the single-axis code length for a component d, with the
// convention bits1D(0) = 0 so that bits(d,0) = bits1D(d) and
// bits(0,0) is special-cased to 1 in bits above.
func bits1D(d int) int {
	if d == 0 {
		return 0
	}
	return 1 + 2*log2Floor(abs(d)+1)
}

// log2Floor returns floor(log2(n)) for n >= 1.
func log2Floor(n int) int {
	r := 0
	for n > 1 {
		n >>= 1
		r++
	}
	return r
}

// cost returns the bit-penalized search cost for a candidate vector given
// its raw SAD.
func cost(sad uint32, mv Vector) uint32 {
	return sad + uint32(lambda*bits(mv.DX, mv.DY))
}
