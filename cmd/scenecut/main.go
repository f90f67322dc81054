/*
NAME
  main.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main implements scenecut, the command-line front end for
// spec.md §6: decode a video file, run the detector over it, and write
// the cut list in one of the supported output formats.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/framecut/scenecut/detect"
	"github.com/framecut/scenecut/format"
	"github.com/framecut/scenecut/logging"
	"github.com/framecut/scenecut/verdict"
)

// Current software version.
const version = "v0.1.0"

// Logging configuration, matching cmd/rv's lumberjack constants.
const (
	logMaxSize   = 500 // MB
	logMaxBackup = 10
	logMaxAge    = 28 // days
	pkg          = "scenecut: "
)

func main() {
	var (
		outPath     = flag.String("output", "-", "output path, or - for stdout")
		outFormat   = flag.String("format", "json", "output format: json, csv, aegisub, timecode")
		sensitivity = flag.String("sensitivity", "medium", "cut sensitivity: low, medium, high")
		searchRange = flag.String("search-range", "auto", "motion search window: auto, small, medium, large")
		logPath     = flag.String("log", "", "path to a log file; defaults to stderr when empty")
		quiet       = flag.Bool("quiet", false, "suppress progress output on stderr")
		verbose     = flag.Bool("verbose", false, "enable debug-level logging")
		showVersion = flag.Bool("version", false, "show version")
	)
	flag.StringVar(outPath, "o", "-", "shorthand for -output")
	flag.StringVar(outFormat, "f", "json", "shorthand for -format")
	flag.StringVar(sensitivity, "s", "medium", "shorthand for -sensitivity")
	flag.BoolVar(quiet, "q", false, "shorthand for -quiet")
	flag.BoolVar(verbose, "v", false, "shorthand for -verbose")
	flag.Usage = usage
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	inPath := flag.Arg(0)

	level := logging.Info
	if *verbose {
		level = logging.Debug
	}
	var log logging.Logger
	if *logPath != "" {
		log = logging.NewFile(*logPath, level)
	} else {
		log = logging.New(level, os.Stderr, true)
	}

	fm, ok := format.ByName(*outFormat)
	if !ok {
		log.Fatal(pkg+"unknown output format", "format", *outFormat)
	}

	sens, err := parseSensitivity(*sensitivity)
	if err != nil {
		log.Fatal(pkg+"bad sensitivity flag", "error", err.Error())
	}

	sr, err := parseSearchRange(*searchRange)
	if err != nil {
		log.Fatal(pkg+"bad search-range flag", "error", err.Error())
	}

	opts := detect.DefaultOptions()
	opts.Sensitivity = sens
	opts.SearchRange = sr
	opts.Logger = log
	if !*quiet {
		opts.OnScene = func(sc detect.Scene) {
			log.Info("cut detected", "frame", sc.FrameNumber, "timecode", sc.Timecode)
		}
		opts.OnProgress = func(p detect.Progress) {
			log.Debug("progress", "frame", p.CurrentFrame, "percent", p.Percent)
		}
	}

	log.Info("starting scenecut", "version", version, "input", inPath)
	result, err := detect.Detect(inPath, opts)
	if err != nil {
		log.Fatal(pkg+"detection failed", "error", err.Error())
	}

	var w io.Writer = os.Stdout
	if *outPath != "-" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatal(pkg+"could not create output file", "error", err.Error())
		}
		defer f.Close()
		w = f
	}

	if err := fm.Format(w, result); err != nil {
		log.Fatal(pkg+"could not write output", "error", err.Error())
	}
	log.Info("done", "cuts", len(result.Scenes)-1)
}

func parseSensitivity(s string) (verdict.Sensitivity, error) {
	switch s {
	case "low":
		return verdict.Low, nil
	case "medium":
		return verdict.Medium, nil
	case "high":
		return verdict.High, nil
	default:
		return 0, fmt.Errorf("unknown sensitivity %q", s)
	}
}

func parseSearchRange(s string) (detect.SearchRange, error) {
	switch s {
	case "auto":
		return detect.Auto, nil
	case "small":
		return detect.Small, nil
	case "medium":
		return detect.MediumRange, nil
	case "large":
		return detect.Large, nil
	default:
		return 0, fmt.Errorf("unknown search range %q", s)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: scenecut [flags] <input-video>\n\n")
	flag.PrintDefaults()
}
