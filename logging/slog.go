// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"context"
	"log/slog"
)

// SlogLogger is a [Logger] forwarding records to a [*slog.Logger].
//
// Each record carries the logger name as the "logger" attribute. When the
// record has an error, the "err" and "errClass" attributes are added.
//
// Construct using [NewSlogLogger].
type SlogLogger struct {
	// ErrClassifier classifies the errors attached to records.
	//
	// Set by [NewSlogLogger] to [DefaultErrClassifier].
	ErrClassifier ErrClassifier

	name   string
	level  Level
	logger *slog.Logger
}

var _ Logger = &SlogLogger{}

// NewSlogLogger returns a [*SlogLogger] called name forwarding records at
// or above level to logger.
func NewSlogLogger(name string, logger *slog.Logger, level Level) *SlogLogger {
	return &SlogLogger{
		ErrClassifier: DefaultErrClassifier,
		name:          name,
		level:         level,
		logger:        logger,
	}
}

// Name implements [Logger].
func (s *SlogLogger) Name() string {
	return s.name
}

// CheckLevel implements [Logger].
func (s *SlogLogger) CheckLevel(level Level) bool {
	return level >= s.level && level < LevelOff &&
		s.logger.Enabled(context.Background(), level.slogLevel())
}

// Log implements [Logger].
func (s *SlogLogger) Log(msg *LogMsg) {
	ctx := context.Background()
	record := slog.NewRecord(msg.Time, msg.Level.slogLevel(), msg.Msg, 0)
	record.AddAttrs(slog.String("logger", msg.LoggerName))
	if msg.Err != nil {
		record.AddAttrs(
			slog.Any("err", msg.Err),
			slog.String("errClass", classifyErr(s.ErrClassifier, msg.Err)),
		)
	}
	s.logger.Handler().Handle(ctx, record)
}

// Flush implements [Logger].
func (s *SlogLogger) Flush() error {
	return nil
}
