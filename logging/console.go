// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"bufio"
	"io"
	"os"

	"github.com/bassosimone/atom/memory"
	"github.com/mattn/go-isatty"
)

// ConsoleTimeFormat is the timestamp layout used by [*ConsoleLogger].
const ConsoleTimeFormat = "2006-01-02 15:04:05.000"

// ANSI colours for each level, indexed by [Level].
var levelColors = [...]string{
	LevelTrace: "\x1b[90m",
	LevelDebug: "\x1b[36m",
	LevelInfo:  "\x1b[32m",
	LevelWarn:  "\x1b[33m",
	LevelError: "\x1b[31m",
	LevelFatal: "\x1b[1;31m",
}

const colorReset = "\x1b[0m"

// ConsoleLogger is a [Logger] writing lines such as
//
//	[2024-01-02 15:04:05.000] [app] [Info]: message: error
//
// to an [io.Writer]. Output is buffered and flushed after each record at
// or above the flush level, and on [*ConsoleLogger.Flush].
//
// Construct using [NewConsoleLogger].
type ConsoleLogger struct {
	name       string
	level      Level
	flushLevel Level
	color      bool
	mu         memory.Mutex
	w          *bufio.Writer
}

var _ Logger = &ConsoleLogger{}

// NewConsoleLogger returns a [*ConsoleLogger] called name that writes
// records at or above level to w. Levels are coloured when w is a terminal.
func NewConsoleLogger(name string, w io.Writer, level Level) *ConsoleLogger {
	return &ConsoleLogger{
		name:       name,
		level:      level,
		flushLevel: LevelTrace,
		color:      isTerminal(w),
		w:          bufio.NewWriter(w),
	}
}

// isTerminal reports whether w is a terminal or a Cygwin pseudo-terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// SetFlushLevel sets the minimum level that triggers a flush after writing.
//
// The default is [LevelTrace], flushing after every record.
func (c *ConsoleLogger) SetFlushLevel(level Level) {
	c.mu.Lock()
	c.flushLevel = level
	c.mu.Unlock()
}

// Name implements [Logger].
func (c *ConsoleLogger) Name() string {
	return c.name
}

// CheckLevel implements [Logger].
func (c *ConsoleLogger) CheckLevel(level Level) bool {
	return level >= c.level && level < LevelOff
}

// Log implements [Logger].
func (c *ConsoleLogger) Log(msg *LogMsg) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.w.WriteString("[")
	c.w.WriteString(msg.Time.Format(ConsoleTimeFormat))
	c.w.WriteString("] [")
	c.w.WriteString(msg.LoggerName)
	c.w.WriteString("] [")
	if c.color && msg.Level >= 0 && int(msg.Level) < len(levelColors) {
		c.w.WriteString(levelColors[msg.Level])
		c.w.WriteString(msg.Level.String())
		c.w.WriteString(colorReset)
	} else {
		c.w.WriteString(msg.Level.String())
	}
	c.w.WriteString("]: ")
	c.w.WriteString(msg.Msg)
	if msg.Err != nil {
		c.w.WriteString(": ")
		c.w.WriteString(msg.Err.Error())
	}
	c.w.WriteByte('\n')

	if msg.Level >= c.flushLevel {
		c.w.Flush()
	}
}

// Flush implements [Logger].
func (c *ConsoleLogger) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.w.Flush()
}
