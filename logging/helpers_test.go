// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bassosimone/slogstub"
)

// newCapturingLogger returns a logger that captures all log records into the
// returned slice. The caller can inspect the slice after exercising the code
// under test to verify which events were emitted.
func newCapturingLogger() (*slog.Logger, *[]slog.Record) {
	var records []slog.Record
	handler := &slogstub.FuncHandler{
		EnabledFunc: func(ctx context.Context, level slog.Level) bool {
			return true
		},
		HandleFunc: func(ctx context.Context, record slog.Record) error {
			records = append(records, record)
			return nil
		},
	}
	return slog.New(handler), &records
}

// recordAttrs returns the attributes of record as a map.
func recordAttrs(record slog.Record) map[string]string {
	attrs := map[string]string{}
	record.Attrs(func(attr slog.Attr) bool {
		attrs[attr.Key] = attr.Value.String()
		return true
	})
	return attrs
}

// mockLogger is a [Logger] recording what it receives.
type mockLogger struct {
	name     string
	level    Level
	flushErr error

	mu      sync.Mutex
	msgs    []LogMsg
	flushes int
}

func newMockLogger(name string) *mockLogger {
	return &mockLogger{name: name}
}

func (m *mockLogger) Name() string {
	return m.name
}

func (m *mockLogger) Log(msg *LogMsg) {
	m.mu.Lock()
	m.msgs = append(m.msgs, *msg)
	m.mu.Unlock()
}

func (m *mockLogger) Flush() error {
	m.mu.Lock()
	m.flushes++
	m.mu.Unlock()
	return m.flushErr
}

func (m *mockLogger) CheckLevel(level Level) bool {
	return level >= m.level
}
