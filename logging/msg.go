// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import "time"

// LogMsg is a single log record.
type LogMsg struct {
	// Msg is the formatted message.
	Msg string

	// LoggerName is the name of the logger emitting the record.
	LoggerName string

	// Level is the record severity.
	Level Level

	// Time is when the record was created.
	Time time.Time

	// Err is the optional error the record is about.
	Err error
}
