/*
NAME
  zerolog.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package logging

import (
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// zlogger is a Logger backed by zerolog.
type zlogger struct {
	log      zerolog.Logger
	level    int8
	suppress bool
}

// New returns a Logger that writes structured records to w at or above
// level. If suppress is true, records below level are silently dropped
// rather than merely filtered by zerolog's own level gate — mirroring the
// Suppress field semantics of ausocean-av's config.Config.
func New(level int8, w io.Writer, suppress bool) Logger {
	return &zlogger{
		// The package's level constants share zerolog's numbering
		// (Debug=0 ... Fatal=4), so level maps directly onto its gate.
		log:      zerolog.New(w).Level(zerolog.Level(level)).With().Timestamp().Logger(),
		level:    level,
		suppress: suppress,
	}
}

// NewFile returns a Logger that writes to a rotating log file via
// lumberjack, the way cmd/rv/main.go wires its file logger: fixed max
// size, backup count and age, matching the teacher's constants.
func NewFile(path string, level int8) Logger {
	fileLog := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    500, // MB
		MaxBackups: 10,
		MaxAge:     28, // days
	}
	return New(level, fileLog, true)
}

func (z *zlogger) emit(level int8, event *zerolog.Event, msg string, kv []interface{}) {
	if z.suppress && level < z.level {
		return
	}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		event = event.Interface(key, kv[i+1])
	}
	event.Msg(msg)
}

func (z *zlogger) Debug(msg string, kv ...interface{}) {
	z.emit(Debug, z.log.Debug(), msg, kv)
}

func (z *zlogger) Info(msg string, kv ...interface{}) {
	z.emit(Info, z.log.Info(), msg, kv)
}

func (z *zlogger) Warning(msg string, kv ...interface{}) {
	z.emit(Warning, z.log.Warn(), msg, kv)
}

func (z *zlogger) Error(msg string, kv ...interface{}) {
	z.emit(Error, z.log.Error(), msg, kv)
}

func (z *zlogger) Fatal(msg string, kv ...interface{}) {
	z.emit(Fatal, z.log.Fatal(), msg, kv)
}
