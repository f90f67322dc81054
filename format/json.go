/*
NAME
  json.go

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
	"encoding/json"
	"io"

	"github.com/framecut/scenecut/detect"
)

// JSON writes {scenes, metadata} pretty-printed, per spec.md §6.
type JSON struct{}

func (JSON) Format(w io.Writer, r detect.Result) error {
	out := struct {
		Scenes   []detect.Scene        `json:"scenes"`
		Metadata detect.ResultMetadata `json:"metadata"`
	}{
		Scenes:   r.Scenes,
		Metadata: r.Metadata,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
