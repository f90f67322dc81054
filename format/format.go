/*
NAME
  format.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package format implements the output formatters from spec.md §6: json,
// csv, aegisub and timecode. Each is a small, self-contained file, the way
// ausocean-av keeps one filter implementation per file under filter/.
package format

import (
	"io"

	"github.com/framecut/scenecut/detect"
)

// Formatter writes a detect.Result to w in some textual representation.
type Formatter interface {
	Format(w io.Writer, r detect.Result) error
}

// ByName returns the Formatter registered under name, or false if name is
// not one of "json", "csv", "aegisub", "timecode".
func ByName(name string) (Formatter, bool) {
	f, ok := registry[name]
	return f, ok
}

var registry = map[string]Formatter{
	"json":     JSON{},
	"csv":      CSV{},
	"aegisub":  Aegisub{},
	"timecode": Timecode{},
}
