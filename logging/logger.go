// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"fmt"
	"time"
)

// Logger receives log records.
//
// Implementations must be safe for concurrent use.
type Logger interface {
	// Name returns the logger name.
	Name() string

	// Log emits msg. Callers check the level with CheckLevel first.
	Log(msg *LogMsg)

	// Flush writes any buffered records.
	Flush() error

	// CheckLevel reports whether records of the given level are emitted.
	CheckLevel(level Level) bool
}

// timeNow is the clock used by the helpers.
var timeNow = time.Now

// Log formats and emits a record through logger if it accepts level.
func Log(logger Logger, level Level, format string, args ...any) {
	LogErr(logger, level, nil, format, args...)
}

// LogErr is like [Log] and attaches err to the record.
func LogErr(logger Logger, level Level, err error, format string, args ...any) {
	if !logger.CheckLevel(level) {
		return
	}
	logger.Log(&LogMsg{
		Msg:        fmt.Sprintf(format, args...),
		LoggerName: logger.Name(),
		Level:      level,
		Time:       timeNow(),
		Err:        err,
	})
}

// Trace logs at [LevelTrace].
func Trace(logger Logger, format string, args ...any) {
	Log(logger, LevelTrace, format, args...)
}

// Debug logs at [LevelDebug].
func Debug(logger Logger, format string, args ...any) {
	Log(logger, LevelDebug, format, args...)
}

// Info logs at [LevelInfo].
func Info(logger Logger, format string, args ...any) {
	Log(logger, LevelInfo, format, args...)
}

// Warn logs at [LevelWarn].
func Warn(logger Logger, format string, args ...any) {
	Log(logger, LevelWarn, format, args...)
}

// Error logs at [LevelError].
func Error(logger Logger, format string, args ...any) {
	Log(logger, LevelError, format, args...)
}

// Fatal logs at [LevelFatal].
//
// It does not terminate the process.
func Fatal(logger Logger, format string, args ...any) {
	Log(logger, LevelFatal, format, args...)
}
