/*
NAME
  smoothing.go

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

// applySmoothing implements the temporalSmoothing post-filter: a cut is
// dropped unless at least s.MinConsecutive cuts (itself included) lie
// within s.Window/2 frames of it on either side. The
// frame-0 seed is always kept, per the invariant that it is always the
// first element of Scenes.
func applySmoothing(scenes []Scene, s Smoothing) []Scene {
	if s.Window <= 0 || s.MinConsecutive <= 1 || len(scenes) == 0 {
		return scenes
	}

	half := s.Window / 2
	kept := make([]Scene, 0, len(scenes))
	for i, sc := range scenes {
		if i == 0 {
			kept = append(kept, sc)
			continue
		}
		count := 0
		for _, other := range scenes[1:] {
			if abs(other.FrameNumber-sc.FrameNumber) <= half {
				count++
			}
		}
		if count >= s.MinConsecutive {
			kept = append(kept, sc)
		}
	}
	return kept
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
