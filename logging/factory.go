// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.uber.org/zap"
)

// ErrUnknownSink indicates that a [Sink] is not supported.
var ErrUnknownSink = errors.New("unknown sink")

// Sink names a kind of [Logger] a [*Factory] can create.
type Sink string

// Supported sinks.
const (
	SinkConsole = Sink("console")
	SinkSlog    = Sink("slog")
	SinkZap     = Sink("zap")
	SinkNull    = Sink("null")
)

// valid reports whether s is a supported sink or empty.
func (s Sink) valid() bool {
	switch s {
	case "", SinkConsole, SinkSlog, SinkZap, SinkNull:
		return true
	default:
		return false
	}
}

// Factory creates loggers sharing the same outputs.
//
// All fields have sensible defaults set by [NewFactory].
type Factory struct {
	// Writer is the output of console loggers.
	//
	// Set by [NewFactory] to [os.Stderr].
	Writer io.Writer

	// Level is the minimum level of the created loggers.
	//
	// Set by [NewFactory] to [LevelInfo].
	Level Level

	// FlushLevel is the minimum level flushing console loggers.
	//
	// Set by [NewFactory] to [LevelTrace].
	FlushLevel Level

	// Slog is the destination of slog loggers.
	//
	// Set by [NewFactory] to a text logger writing to [os.Stderr].
	Slog *slog.Logger

	// Zap is the destination of zap loggers.
	//
	// Set by [NewFactory] to [zap.NewNop].
	Zap *zap.Logger

	// ErrClassifier classifies errors in structured loggers.
	//
	// Set by [NewFactory] to [DefaultErrClassifier].
	ErrClassifier ErrClassifier
}

// NewFactory creates a [*Factory] with sensible defaults.
func NewFactory() *Factory {
	return &Factory{
		Writer:     os.Stderr,
		Level:      LevelInfo,
		FlushLevel: LevelTrace,
		Slog: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: LevelTrace.slogLevel(),
		})),
		Zap:           zap.NewNop(),
		ErrClassifier: DefaultErrClassifier,
	}
}

// CreateLogger returns a console [Logger] called name.
func (f *Factory) CreateLogger(name string) Logger {
	logger := NewConsoleLogger(name, f.Writer, f.Level)
	logger.SetFlushLevel(f.FlushLevel)
	return logger
}

// CreateSinkLogger returns a [Logger] called name of the given sink.
//
// Returns [ErrUnknownSink] for unsupported sinks.
func (f *Factory) CreateSinkLogger(name string, sink Sink) (Logger, error) {
	switch sink {
	case SinkConsole, "":
		return f.CreateLogger(name), nil
	case SinkSlog:
		logger := NewSlogLogger(name, f.Slog, f.Level)
		logger.ErrClassifier = f.ErrClassifier
		return logger, nil
	case SinkZap:
		logger := NewZapLogger(name, f.Zap.Named(name), f.Level)
		logger.ErrClassifier = f.ErrClassifier
		return logger, nil
	case SinkNull:
		return Null, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSink, sink)
	}
}
