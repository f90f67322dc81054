/*
NAME
  csv.go

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
	"encoding/csv"
	"io"
	"strconv"

	"github.com/framecut/scenecut/detect"
)

// CSV writes a header row "frame,timestamp,timecode" followed by one row
// per cut, per spec.md §6.
type CSV struct{}

func (CSV) Format(w io.Writer, r detect.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"frame", "timestamp", "timecode"}); err != nil {
		return err
	}
	for _, sc := range r.Scenes {
		row := []string{
			strconv.Itoa(sc.FrameNumber),
			strconv.FormatFloat(sc.Timestamp, 'f', -1, 64),
			sc.Timecode,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
