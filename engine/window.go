// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"fmt"

	"github.com/bassosimone/atom/containers"
	"github.com/bassosimone/atom/memory"
	"github.com/bassosimone/runtimex"
)

// WindowProps describes a window.
type WindowProps struct {
	// Name is the window title.
	Name string

	// Width is the width in pixels.
	Width int

	// Height is the height in pixels.
	Height int
}

// DefaultWindowProps returns the props of the default application window.
func DefaultWindowProps() WindowProps {
	return WindowProps{Name: "Sandbox", Width: 1920, Height: 1080}
}

// WindowEventKind is the kind of a [WindowEvent].
type WindowEventKind int

// Supported window event kinds.
const (
	WindowResized WindowEventKind = iota + 1
	WindowFocused
	WindowUnfocused
	WindowClosed
)

// String returns the kind name.
func (k WindowEventKind) String() string {
	switch k {
	case WindowResized:
		return "Resized"
	case WindowFocused:
		return "Focused"
	case WindowUnfocused:
		return "Unfocused"
	case WindowClosed:
		return "Closed"
	default:
		return fmt.Sprintf("WindowEventKind(%d)", int(k))
	}
}

// WindowEvent is dispatched by a [Window] through its [Event].
type WindowEvent struct {
	// Kind is the event kind.
	Kind WindowEventKind

	// Width is the new width for [WindowResized].
	Width int

	// Height is the new height for [WindowResized].
	Height int
}

// Window is an application window.
type Window interface {
	// Props returns the current window props.
	Props() WindowProps

	// Events returns the event dispatching the window events.
	Events() *Event[WindowEvent]

	// Update processes the pending window events.
	Update()

	// Close closes the window and dispatches [WindowClosed] once.
	Close()

	// IsClosed reports whether the window was closed.
	IsClosed() bool
}

// HeadlessWindow is a [Window] without an on-screen surface.
//
// Events posted with [*HeadlessWindow.Post] are dispatched by the next
// Update, the same way a real window drains its platform queue.
//
// Construct using [NewHeadlessWindow].
type HeadlessWindow struct {
	events  Event[WindowEvent]
	mu      memory.Mutex
	props   WindowProps
	pending *containers.DynArr[WindowEvent]
	updates uint64
	closed  bool
}

var _ Window = &HeadlessWindow{}

// NewHeadlessWindow returns a [*HeadlessWindow] with the given props.
func NewHeadlessWindow(props WindowProps) *HeadlessWindow {
	return &HeadlessWindow{
		props:   props,
		pending: containers.NewDynArr[WindowEvent](nil),
	}
}

// Props implements [Window].
func (w *HeadlessWindow) Props() WindowProps {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.props
}

// Events implements [Window].
func (w *HeadlessWindow) Events() *Event[WindowEvent] {
	return &w.events
}

// Post queues ev for dispatching by the next Update.
func (w *HeadlessWindow) Post(ev WindowEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()
	runtimex.Assert(w.pending.InsertBack(ev) == nil)
}

// Update implements [Window].
//
// Resize events update the props before being dispatched. A close event
// closes the window.
func (w *HeadlessWindow) Update() {
	w.mu.Lock()
	queue := containers.NewDynArr[WindowEvent](nil)
	queue.MoveFrom(w.pending)
	w.updates++
	w.mu.Unlock()

	for ev := range queue.Values() {
		switch ev.Kind {
		case WindowResized:
			w.mu.Lock()
			w.props.Width, w.props.Height = ev.Width, ev.Height
			w.mu.Unlock()
		case WindowClosed:
			w.Close()
			continue
		}
		w.events.Dispatch(ev)
	}
}

// Updates returns the number of Update calls.
func (w *HeadlessWindow) Updates() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.updates
}

// Close implements [Window].
func (w *HeadlessWindow) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.mu.Unlock()
	w.events.Dispatch(WindowEvent{Kind: WindowClosed})
}

// IsClosed implements [Window].
func (w *HeadlessWindow) IsClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}
