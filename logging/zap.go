// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is a [Logger] forwarding records to a [*zap.Logger].
//
// [LevelFatal] records are written at error level with a "fatal" field so
// that zap never terminates the process.
//
// Construct using [NewZapLogger].
type ZapLogger struct {
	// ErrClassifier classifies the errors attached to records.
	//
	// Set by [NewZapLogger] to [DefaultErrClassifier].
	ErrClassifier ErrClassifier

	name   string
	level  Level
	logger *zap.Logger
}

var _ Logger = &ZapLogger{}

// NewZapLogger returns a [*ZapLogger] called name forwarding records at or
// above level to logger.
func NewZapLogger(name string, logger *zap.Logger, level Level) *ZapLogger {
	return &ZapLogger{
		ErrClassifier: DefaultErrClassifier,
		name:          name,
		level:         level,
		logger:        logger,
	}
}

// zapLevel maps l onto the [zapcore.Level] scale.
func zapLevel(l Level) zapcore.Level {
	switch l {
	case LevelTrace, LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Name implements [Logger].
func (z *ZapLogger) Name() string {
	return z.name
}

// CheckLevel implements [Logger].
func (z *ZapLogger) CheckLevel(level Level) bool {
	return level >= z.level && level < LevelOff && z.logger.Core().Enabled(zapLevel(level))
}

// Log implements [Logger].
func (z *ZapLogger) Log(msg *LogMsg) {
	entry := z.logger.Check(zapLevel(msg.Level), msg.Msg)
	if entry == nil {
		return
	}
	entry.Time = msg.Time
	fields := []zap.Field{zap.String("logger", msg.LoggerName)}
	if msg.Level == LevelFatal {
		fields = append(fields, zap.Bool("fatal", true))
	}
	if msg.Err != nil {
		fields = append(fields,
			zap.Error(msg.Err),
			zap.String("errClass", classifyErr(z.ErrClassifier, msg.Err)),
		)
	}
	entry.Write(fields...)
}

// Flush implements [Logger].
func (z *ZapLogger) Flush() error {
	return z.logger.Sync()
}
