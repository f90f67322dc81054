/*
NAME
  verdict.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package verdict implements the frame-level cut/no-cut decision: the two
// intra-density thresholds indexed by sensitivity, and the cooldown
// inequality that combines them with the intra-block count and the time
// since the previous cut.
package verdict

// Sensitivity selects the pair of thresholds the Decide inequality uses.
type Sensitivity int

const (
	Low Sensitivity = iota
	Medium
	High
	Custom
)

// Thresholds holds the two density thresholds from spec.md §4.5.
type Thresholds struct {
	T1 int
	T2 int
}

// table maps each built-in sensitivity to its {T1, T2} pair.
var table = map[Sensitivity]Thresholds{
	Low:    {T1: 3000, T2: 150},
	Medium: {T1: 2000, T2: 90},
	High:   {T1: 1000, T2: 50},
}

// For returns the thresholds for a built-in sensitivity. It panics if s is
// Custom; callers must supply their own Thresholds in that case — see
// detect.Options.CustomThresholds.
func For(s Sensitivity) Thresholds {
	t, ok := table[s]
	if !ok {
		panic("verdict: For called with a sensitivity that has no built-in table (Custom?)")
	}
	return t
}

// Decide applies the cut condition from spec.md §4.5:
//
//	I*T1 > N*T2*intraCount   (intra density, scaled by cooldown, exceeds threshold)
//	intraCount >= 2          (never cut two frames in a row)
//
// n is MBW*MBH, intraMBCount is the frame's intra macroblock count, and
// intraCount is the number of frames since the last emitted cut (or since
// startup).
func Decide(t Thresholds, n, intraMBCount, intraCount int) bool {
	if intraCount < 2 {
		return false
	}
	return int64(intraMBCount)*int64(t.T1) > int64(n)*int64(t.T2)*int64(intraCount)
}
