// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"time"

	"github.com/bassosimone/atom/logging"
)

// Config holds common configuration for an [*Application].
//
// All fields have sensible defaults set by [NewConfig].
type Config struct {
	// FrameRate is the maximum number of frames per second.
	//
	// Non-positive values disable pacing.
	//
	// Set by [NewConfig] to 60.
	FrameRate float64

	// MaxFrames stops the loop after the given number of frames.
	//
	// Zero means no limit.
	//
	// Set by [NewConfig] to 0.
	MaxFrames uint64

	// Logger receives the lifecycle events.
	//
	// Set by [NewConfig] to [logging.Null].
	Logger logging.Logger

	// NewWindow creates the application window.
	//
	// Set by [NewConfig] to a function returning a [*HeadlessWindow].
	NewWindow WindowFactory

	// TimeNow returns the current time.
	//
	// Set by [NewConfig] to [time.Now].
	TimeNow func() time.Time
}

// NewConfig creates a [*Config] with sensible defaults.
func NewConfig() *Config {
	return &Config{
		FrameRate: 60,
		MaxFrames: 0,
		Logger:    logging.Null,
		NewWindow: NewHeadlessWindowFactory(),
		TimeNow:   time.Now,
	}
}
