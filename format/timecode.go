/*
NAME
  timecode.go

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

// Timecode writes one HH:MM:SS.mmm per line, per spec.md §6. The
// per-scene Timecode field is already formatted by detect.Timecode, so
// this formatter is a thin loop.
type Timecode struct{}

func (Timecode) Format(w io.Writer, r detect.Result) error {
	for _, sc := range r.Scenes {
		if _, err := fmt.Fprintf(w, "%s\n", sc.Timecode); err != nil {
			return err
		}
	}
	return nil
}
