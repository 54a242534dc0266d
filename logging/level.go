// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrInvalidLevel indicates that a string does not name a [Level].
var ErrInvalidLevel = errors.New("invalid log level")

// Level is the severity of a [LogMsg].
type Level int

// Supported levels, from the least to the most severe.
//
// A logger whose level is Off accepts nothing.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	LevelOff
)

var levelNames = [...]string{
	LevelTrace: "Trace",
	LevelDebug: "Debug",
	LevelInfo:  "Info",
	LevelWarn:  "Warn",
	LevelError: "Error",
	LevelFatal: "Fatal",
	LevelOff:   "OFF",
}

// String returns the level name.
func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel returns the [Level] whose name is s, ignoring case.
func ParseLevel(s string) (Level, error) {
	for idx, name := range levelNames {
		if strings.EqualFold(name, s) {
			return Level(idx), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// MarshalText implements [encoding.TextMarshaler].
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// slogLevel maps l onto the [slog.Level] scale.
func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelTrace:
		return slog.LevelDebug - 4
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelError + 4
	}
}
