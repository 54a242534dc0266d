// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bassosimone/atom/containers"
	"github.com/bassosimone/atom/logging"
	"github.com/bassosimone/atom/memory"
	"github.com/bassosimone/runtimex"
)

// ErrInvalidWindowProps indicates that [WindowProps] have a non-positive size.
var ErrInvalidWindowProps = errors.New("invalid window props")

// WindowFactory creates a [Window].
type WindowFactory func(props WindowProps) (Window, error)

// NewHeadlessWindowFactory returns a [WindowFactory] creating [*HeadlessWindow].
func NewHeadlessWindowFactory() WindowFactory {
	return func(props WindowProps) (Window, error) {
		return NewHeadlessWindow(props), nil
	}
}

// WindowManager creates windows and tracks the open ones.
//
// Construct using [NewWindowManager].
type WindowManager struct {
	factory WindowFactory
	logger  logging.Logger
	mu      memory.Mutex
	windows *containers.DynArr[Window]
}

// NewWindowManager returns a [*WindowManager] creating windows with factory
// and logging to logger.
func NewWindowManager(factory WindowFactory, logger logging.Logger) *WindowManager {
	return &WindowManager{
		factory: factory,
		logger:  logger,
		windows: containers.NewDynArr[Window](nil),
	}
}

// CreateWindow creates and tracks a new window.
//
// Returns [ErrInvalidWindowProps] when the size is not positive.
func (m *WindowManager) CreateWindow(props WindowProps) (Window, error) {
	if props.Width <= 0 || props.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidWindowProps, props.Width, props.Height)
	}
	window, err := m.factory(props)
	if err != nil {
		logging.LogErr(m.logger, logging.LevelError, err, "cannot create window %q", props.Name)
		return nil, err
	}
	memory.WithLock(&m.mu, func() {
		runtimex.Assert(m.windows.InsertBack(window) == nil)
	})
	logging.Info(m.logger, "window %q created: %dx%d", props.Name, props.Width, props.Height)
	return window, nil
}

// CloseWindow closes window and stops tracking it.
//
// It reports whether window was tracked.
func (m *WindowManager) CloseWindow(window Window) bool {
	var removed int
	memory.WithLock(&m.mu, func() {
		removed = m.windows.RemoveIf(func(w Window) bool { return w == window })
	})
	if removed <= 0 {
		return false
	}
	window.Close()
	logging.Info(m.logger, "window %q closed", window.Props().Name)
	return true
}

// CloseAll closes every tracked window.
func (m *WindowManager) CloseAll() {
	for _, window := range m.Windows() {
		m.CloseWindow(window)
	}
}

// Windows returns the tracked windows in creation order.
func (m *WindowManager) Windows() []Window {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.windows.Data())
}
