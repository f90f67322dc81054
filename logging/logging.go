/*
NAME
  logging.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package logging provides the Logger interface scenecut's packages log
// through, shaped like ausocean/utils/logging's interface (level methods
// taking a message plus variadic key-value pairs) so that config- and
// driver-level code reads the way revid's does. The default implementation
// is backed by zerolog for structured output, writing through a
// lumberjack.Logger for rotation when file output is requested.
package logging

// Severity levels, in increasing order, mirroring
// ausocean/utils/logging's Debug/Info/Warning/Error/Fatal levels.
const (
	Debug int8 = iota
	Info
	Warning
	Error
	Fatal
)

// Logger is the logging interface scenecut code depends on. Callers pass
// alternating key/value pairs after the message, e.g.:
//
//	log.Info("resolution changed", "width", w, "height", h)
type Logger interface {
	Debug(msg string, kv ...interface{})
	Info(msg string, kv ...interface{})
	Warning(msg string, kv ...interface{})
	Error(msg string, kv ...interface{})
	Fatal(msg string, kv ...interface{})
}

// noop discards everything. It is the default used when callers don't
// supply a Logger, so detect's driver never needs a nil check at the call
// site.
type noop struct{}

func (noop) Debug(string, ...interface{})   {}
func (noop) Info(string, ...interface{})    {}
func (noop) Warning(string, ...interface{}) {}
func (noop) Error(string, ...interface{})   {}
func (noop) Fatal(string, ...interface{})   {}

// NoOp returns a Logger that discards everything.
func NoOp() Logger { return noop{} }
