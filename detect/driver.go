/*
NAME
  driver.go

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
	"io"

	"github.com/pkg/errors"

	"github.com/framecut/scenecut/macroblock"
	"github.com/framecut/scenecut/plane"
	"github.com/framecut/scenecut/verdict"
)

// state is the single piece of cross-frame state the driver owns: the two
// padded-plane buffers (swapped, never copied, never reallocated unless the
// resolution changes), the reused macroblock slice, and the intraCount
// cooldown counter. Never shared outside the driver, never mutated
// concurrently, so no locks are required.
type state struct {
	params     plane.Params
	prev, cur  *plane.Plane
	blocks     []macroblock.Block
	intraCount int
	fcode      int
	bootstrap  bool // true until prev holds valid data for params.
}

func (s *state) reset(f RawFrame, opts Options) {
	s.params = plane.NewParams(f.Width, f.Height)
	s.cur = plane.New(s.params)
	s.prev = plane.New(s.params)
	s.blocks = make([]macroblock.Block, s.params.MBW*s.params.MBH)
	s.intraCount = 1
	s.fcode = opts.fcode(f.Width, f.Height)
	s.bootstrap = true
}

// DetectFrames runs the detection driver over dec and returns the ordered
// cuts plus metadata. This is the core, decoder-agnostic entry point;
// Detect wraps it with a path-to-Decoder step.
func DetectFrames(dec Decoder, opts Options) (Result, error) {
	opts.Validate()
	log := opts.Logger
	th := opts.thresholds()

	meta := dec.Metadata()
	result := Result{
		Scenes: []Scene{{FrameNumber: 0, Timestamp: 0, Timecode: Timecode(0)}},
		Metadata: ResultMetadata{
			Metadata: meta,
		},
	}

	var st state
	var runLengths []int
	lastCutFrame := 0
	frameIndex := 0

	for {
		f, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			wrapped := errors.Wrap(ErrDecoder, err.Error())
			if opts.FailFast {
				return Result{}, wrapped
			}
			return finish(result, opts, runLengths), wrapped
		}

		if err := validateFrame(f); err != nil {
			return finish(result, opts, runLengths), err
		}

		reallocated := st.prev == nil || st.params.W != f.Width || st.params.H != f.Height
		if reallocated {
			if frameIndex > 0 {
				log.Info("resolution changed, reallocating buffers", "frame", f.FrameNumber, "width", f.Width, "height", f.Height)
			}
			st.reset(f, opts)
		}

		if err := st.cur.Pad(f.Data); err != nil {
			return finish(result, opts, runLengths), errors.Wrap(ErrAllocation, err.Error())
		}

		switch {
		case frameIndex == 0:
			// Frame 0's cut is the pre-seeded {0,0} entry; no verdict runs
			// since there is no predecessor.
		case st.bootstrap:
			// A resolution change invalidated prev mid-stream: the driver
			// re-bootstraps, forcing a cut for this frame exactly as it
			// would for frame 0, since there is no valid predecessor at
			// the new resolution to compare against.
			sc := Scene{FrameNumber: f.FrameNumber, Timestamp: f.PTS, Timecode: Timecode(f.PTS)}
			result.Scenes = append(result.Scenes, sc)
			runLengths = append(runLengths, f.FrameNumber-lastCutFrame)
			lastCutFrame = f.FrameNumber
			if opts.OnScene != nil {
				opts.OnScene(sc)
			}
			st.intraCount = 1
		default:
			n := st.params.MBW * st.params.MBH
			stats := macroblock.Classify(st.prev, st.cur, st.params, st.fcode, st.blocks)
			if verdict.Decide(th, n, stats.IntraCount, st.intraCount) {
				sc := Scene{FrameNumber: f.FrameNumber, Timestamp: f.PTS, Timecode: Timecode(f.PTS)}
				result.Scenes = append(result.Scenes, sc)
				runLengths = append(runLengths, f.FrameNumber-lastCutFrame)
				lastCutFrame = f.FrameNumber
				if opts.OnScene != nil {
					opts.OnScene(sc)
				}
				st.intraCount = 1
			} else {
				st.intraCount++
			}
		}

		st.bootstrap = false
		st.prev, st.cur = st.cur, st.prev
		frameIndex++

		if opts.OnProgress != nil {
			opts.OnProgress(progressFor(f, meta, frameIndex))
		}
	}

	return finish(result, opts, runLengths), nil
}

func progressFor(f RawFrame, meta Metadata, processed int) Progress {
	p := Progress{CurrentFrame: f.FrameNumber, TotalFrames: meta.TotalFrames}
	if meta.TotalFrames > 0 {
		p.Percent = 100 * float64(processed) / float64(meta.TotalFrames)
		if meta.FPS > 0 {
			remaining := meta.TotalFrames - processed
			if remaining > 0 {
				p.ETASeconds = float64(remaining) / meta.FPS
			}
		}
	}
	return p
}

func finish(result Result, opts Options, runLengths []int) Result {
	if opts.TemporalSmoothing != nil {
		result.Scenes = applySmoothing(result.Scenes, *opts.TemporalSmoothing)
	}
	result.Metadata.RunID = newRunID()
	result.Metadata.MeanRunLength, result.Metadata.StdDevRunLength = runLengthStats(runLengths)
	return result
}
