// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"sync"
)

// Errors returned by [*Registry].
var (
	// ErrNilLogger indicates an attempt to register a nil logger.
	ErrNilLogger = errors.New("nil logger")

	// ErrEmptyKey indicates an empty registration key.
	ErrEmptyKey = errors.New("empty logger key")

	// ErrLoggerExists indicates that the key is already registered.
	ErrLoggerExists = errors.New("logger already registered")

	// ErrLoggerNotFound indicates that the key is not registered.
	ErrLoggerNotFound = errors.New("logger not found")
)

// Registry maps keys to loggers and holds a default logger.
//
// The zero value is not ready to use; construct using [NewRegistry].
// A Registry is safe for concurrent use.
type Registry struct {
	mu            sync.RWMutex
	loggers       map[string]Logger
	defaultLogger Logger
}

// NewRegistry returns an empty [*Registry] whose default logger is [Null].
func NewRegistry() *Registry {
	return &Registry{
		loggers:       make(map[string]Logger),
		defaultLogger: Null,
	}
}

func checkEntry(key string, logger Logger) error {
	if isNilLogger(logger) {
		return ErrNilLogger
	}
	if key == "" {
		return ErrEmptyKey
	}
	return nil
}

// isNilLogger reports whether logger is nil or a nil pointer to one of
// the loggers of this package. Nil pointers of other types are not
// detected and must not be registered.
func isNilLogger(logger Logger) bool {
	switch v := logger.(type) {
	case nil:
		return true
	case *ConsoleLogger:
		return v == nil
	case *SlogLogger:
		return v == nil
	case *ZapLogger:
		return v == nil
	default:
		return false
	}
}

// loggerKey returns the name of logger, or "" when logger is nil.
func loggerKey(logger Logger) string {
	if isNilLogger(logger) {
		return ""
	}
	return logger.Name()
}

// Register registers logger under its name.
//
// Returns [ErrNilLogger], [ErrEmptyKey] or [ErrLoggerExists].
func (r *Registry) Register(logger Logger) error {
	return r.RegisterAs(loggerKey(logger), logger)
}

// RegisterAs registers logger under key.
//
// Returns [ErrNilLogger], [ErrEmptyKey] or [ErrLoggerExists].
func (r *Registry) RegisterAs(key string, logger Logger) error {
	if err := checkEntry(key, logger); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, found := r.loggers[key]; found {
		return fmt.Errorf("%w: %q", ErrLoggerExists, key)
	}
	r.loggers[key] = logger
	return nil
}

// ForceRegister registers logger under its name, replacing any logger
// registered under the same name.
//
// Returns [ErrNilLogger] or [ErrEmptyKey].
func (r *Registry) ForceRegister(logger Logger) error {
	return r.ForceRegisterAs(loggerKey(logger), logger)
}

// ForceRegisterAs registers logger under key, replacing any logger
// registered under the same key.
//
// Returns [ErrNilLogger] or [ErrEmptyKey].
func (r *Registry) ForceRegisterAs(key string, logger Logger) error {
	if err := checkEntry(key, logger); err != nil {
		return err
	}
	r.mu.Lock()
	r.loggers[key] = logger
	r.mu.Unlock()
	return nil
}

// TryRegister is like [*Registry.Register] but reports success as a bool.
func (r *Registry) TryRegister(logger Logger) bool {
	return r.Register(logger) == nil
}

// TryRegisterAs is like [*Registry.RegisterAs] but reports success as a bool.
func (r *Registry) TryRegisterAs(key string, logger Logger) bool {
	return r.RegisterAs(key, logger) == nil
}

// Unregister removes the logger registered under key.
//
// Returns [ErrEmptyKey] or [ErrLoggerNotFound].
func (r *Registry) Unregister(key string) error {
	_, err := r.UnregisterAndGet(key)
	return err
}

// TryUnregister is like [*Registry.Unregister] but reports success as a bool.
func (r *Registry) TryUnregister(key string) bool {
	return r.Unregister(key) == nil
}

// UnregisterAndGet removes and returns the logger registered under key.
//
// Returns [ErrEmptyKey] or [ErrLoggerNotFound].
func (r *Registry) UnregisterAndGet(key string) (Logger, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	logger, found := r.loggers[key]
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrLoggerNotFound, key)
	}
	delete(r.loggers, key)
	return logger, nil
}

// UnregisterAll removes every registered logger.
//
// The default logger is not affected.
func (r *Registry) UnregisterAll() {
	r.mu.Lock()
	clear(r.loggers)
	r.mu.Unlock()
}

// Get returns the logger registered under key.
func (r *Registry) Get(key string) (Logger, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	logger, found := r.loggers[key]
	return logger, found
}

// GetOrDefault returns the logger registered under key or the default
// logger when there is none.
func (r *Registry) GetOrDefault(key string) Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if logger, found := r.loggers[key]; found {
		return logger
	}
	return r.defaultLogger
}

// Has reports whether a logger is registered under key.
func (r *Registry) Has(key string) bool {
	_, found := r.Get(key)
	return found
}

// Keys returns the registered keys in ascending order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.loggers))
}

// All returns an iterator over a snapshot of the registered loggers in
// ascending key order.
func (r *Registry) All() iter.Seq2[string, Logger] {
	r.mu.RLock()
	snapshot := maps.Clone(r.loggers)
	r.mu.RUnlock()
	return func(yield func(string, Logger) bool) {
		for _, key := range slices.Sorted(maps.Keys(snapshot)) {
			if !yield(key, snapshot[key]) {
				return
			}
		}
	}
}

// DefaultLogger returns the default logger. The result is never nil.
func (r *Registry) DefaultLogger() Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultLogger
}

// SetDefaultLogger sets the default logger. A nil logger selects [Null].
func (r *Registry) SetDefaultLogger(logger Logger) {
	if isNilLogger(logger) {
		logger = Null
	}
	r.mu.Lock()
	r.defaultLogger = logger
	r.mu.Unlock()
}

// FlushAll flushes the registered loggers and the default logger and
// returns the joined errors.
func (r *Registry) FlushAll() error {
	r.mu.RLock()
	loggers := slices.Collect(maps.Values(r.loggers))
	loggers = append(loggers, r.defaultLogger)
	r.mu.RUnlock()

	var errs []error
	for _, logger := range loggers {
		if err := logger.Flush(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", logger.Name(), err))
		}
	}
	return errors.Join(errs...)
}
