// SPDX-License-Identifier: GPL-3.0-or-later

package logging

// NullLogger is a [Logger] that accepts no level and discards everything.
type NullLogger struct{}

// Null is the shared [NullLogger].
var Null Logger = NullLogger{}

// Name implements [Logger].
func (NullLogger) Name() string {
	return "NullLogger"
}

// Log implements [Logger].
func (NullLogger) Log(msg *LogMsg) {
	// nothing
}

// Flush implements [Logger].
func (NullLogger) Flush() error {
	return nil
}

// CheckLevel implements [Logger].
func (NullLogger) CheckLevel(level Level) bool {
	return false
}
