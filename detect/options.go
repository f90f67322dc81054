/*
NAME
  options.go

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
	"github.com/framecut/scenecut/logging"
	"github.com/framecut/scenecut/verdict"
)

// SearchRange selects the fcode, and therefore the motion search window
// size, per spec.md §4.7.
type SearchRange int

const (
	Auto SearchRange = iota
	Small
	MediumRange
	Large
)

// Smoothing is the optional temporal-smoothing post-filter. When set, a
// cut is only kept in the final Scenes list if at least MinConsecutive
// emitted cuts (itself included, the frame-0 seed not counted) lie within
// Window/2 frames of it. The cuts counted are the driver's own output, so
// they are already subject to the cooldown guard; no frame is re-evaluated.
// This
// resolves an open question in spec.md §9: the reference repository
// declares but never applies this option, so it is implemented here as an
// opt-in post-filter, disabled by default.
type Smoothing struct {
	Window         int
	MinConsecutive int
}

// Options configures a single Detect/DetectFrames call. It plays the role
// revid/config.Config plays for revid: one struct, defaults filled in by
// Validate, passed once to the constructor.
type Options struct {
	Sensitivity       verdict.Sensitivity
	CustomThresholds  verdict.Thresholds // Used only when Sensitivity == verdict.Custom.
	SearchRange       SearchRange
	TemporalSmoothing *Smoothing

	OnProgress func(Progress)
	OnScene    func(Scene)
	Logger     logging.Logger

	// FailFast, when true (the default), causes Detect to return an error
	// (and no result) on any DecoderError. When false, the cuts
	// accumulated so far are returned alongside the error, per spec.md §7.
	FailFast bool
}

// Validate fills in defaults the way Config.Validate does for revid: a
// nil Logger becomes a no-op logger. FailFast is left as the caller set
// it; it is false in the zero Options value and true in DefaultOptions.
func (o *Options) Validate() {
	if o.Logger == nil {
		o.Logger = logging.NoOp()
	}
}

// DefaultOptions returns an Options with FailFast set and Medium
// sensitivity, the same starting point the CLI uses before applying flags.
func DefaultOptions() Options {
	return Options{
		Sensitivity: verdict.Medium,
		SearchRange: Auto,
		FailFast:    true,
	}
}

// thresholds resolves the Thresholds this call should use.
func (o Options) thresholds() verdict.Thresholds {
	if o.Sensitivity == verdict.Custom {
		return o.CustomThresholds
	}
	return verdict.For(o.Sensitivity)
}

// fcode resolves the SearchRange (and frame dimensions, for Auto) to a
// motion-search fcode, per spec.md §4.7.
func (o Options) fcode(w, h int) int {
	switch o.SearchRange {
	case Small:
		return 2
	case MediumRange:
		return 4
	case Large:
		return 6
	default: // Auto.
		area := w * h
		switch {
		case area <= 720*480:
			return 3
		case area <= 1920*1080:
			return 4
		default:
			return 5
		}
	}
}
