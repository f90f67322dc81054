/*
NAME
  aegisub.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package format

import (
	"fmt"
	"io"

	"github.com/framecut/scenecut/detect"
)

// Aegisub writes the "keyframe format v1" header, then one frame number
// per line, per spec.md §6.
type Aegisub struct{}

func (Aegisub) Format(w io.Writer, r detect.Result) error {
	if _, err := fmt.Fprintf(w, "# keyframe format v1\nfps %g\n", r.Metadata.FPS); err != nil {
		return err
	}
	for _, sc := range r.Scenes {
		if _, err := fmt.Fprintf(w, "%d\n", sc.FrameNumber); err != nil {
			return err
		}
	}
	return nil
}
