/*
NAME
  metadata.go

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

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// newRunID returns a stable identifier for one Detect/DetectFrames
// invocation. It plays no part in the detection algorithm itself; it's
// attached to Result.Metadata so results from distinct runs can be told
// apart.
func newRunID() string {
	return uuid.NewString()
}

// runLengthStats returns the mean and (population) standard deviation of
// the frame gaps between consecutive cuts. Used only to annotate
// Result.Metadata (written out by the json formatter); never consulted by the
// detection algorithm, so the float64 arithmetic here introduces no
// determinism risk to the bit-exact verdict path.
func runLengthStats(runLengths []int) (mean, stddev float64) {
	if len(runLengths) == 0 {
		return 0, 0
	}
	xs := make([]float64, len(runLengths))
	for i, v := range runLengths {
		xs[i] = float64(v)
	}
	mean, std := stat.PopMeanStdDev(xs, nil)
	return mean, std
}
