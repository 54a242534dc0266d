// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/bassosimone/atom/logging"
	"github.com/bassosimone/atom/uuids"
	"golang.org/x/time/rate"
)

// Frame is the input of the [FrameStage] run by an [*Application].
type Frame struct {
	// Index is the zero-based frame number.
	Index uint64

	// Time is when the frame started.
	Time time.Time

	// Delta is the time elapsed since the previous frame, zero for the
	// first frame.
	Delta time.Duration

	// Window is the application window.
	Window Window
}

// Application owns a window and runs the frame loop.
//
// Construct using [NewApplication].
type Application struct {
	cfg         Config
	manager     *WindowManager
	window      Window
	stage       FrameStage
	unsubscribe func()
}

// NewApplication creates the application window from props and returns an
// [*Application] running stage once per frame. A nil stage does nothing.
func NewApplication(cfg *Config, props WindowProps, stage FrameStage) (*Application, error) {
	if stage == nil {
		stage = Compose()
	}
	manager := NewWindowManager(cfg.NewWindow, cfg.Logger)
	window, err := manager.CreateWindow(props)
	if err != nil {
		return nil, err
	}
	app := &Application{
		cfg:     *cfg,
		manager: manager,
		window:  window,
		stage:   stage,
	}
	app.unsubscribe = window.Events().Subscribe(app.onWindowEvent)
	return app, nil
}

// Window returns the application window.
func (a *Application) Window() Window {
	return a.window
}

func (a *Application) onWindowEvent(ev WindowEvent) {
	logging.Debug(a.cfg.Logger, "window %q event: %s %dx%d",
		a.window.Props().Name, ev.Kind, ev.Width, ev.Height)
}

// Run runs the frame loop until ctx is done, the window is closed or
// [Config.MaxFrames] frames have run.
//
// It returns the context error when ctx is done, the stage error when the
// stage fails, and nil otherwise.
func (a *Application) Run(ctx context.Context) error {
	runID := uuids.NewV7()
	limiter := newFrameLimiter(a.cfg.FrameRate)
	logging.Info(a.cfg.Logger, "run %s started: window %q, %g fps", runID, a.window.Props().Name, a.cfg.FrameRate)

	var (
		frames uint64
		last   time.Time
		err    error
	)
	for {
		if a.cfg.MaxFrames > 0 && frames >= a.cfg.MaxFrames {
			break
		}
		if err = ctx.Err(); err != nil {
			break
		}
		if err = limiter.Wait(ctx); err != nil {
			break
		}
		a.window.Update()
		if a.window.IsClosed() {
			break
		}

		now := a.cfg.TimeNow()
		frame := Frame{Index: frames, Time: now, Window: a.window}
		if frames > 0 {
			frame.Delta = now.Sub(last)
		}
		last = now

		if _, err = a.stage.Call(ctx, frame); err != nil {
			err = fmt.Errorf("frame %d: %w", frames, err)
			break
		}
		frames++
	}

	logging.LogErr(a.cfg.Logger, levelFor(err), err, "run %s stopped after %d frames", runID, frames)
	return err
}

// Close unsubscribes from the window events and closes the window.
func (a *Application) Close() {
	a.unsubscribe()
	a.manager.CloseAll()
}

func newFrameLimiter(frameRate float64) *rate.Limiter {
	if frameRate <= 0 || math.IsInf(frameRate, 1) {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(frameRate), 1)
}

func levelFor(err error) logging.Level {
	if err != nil {
		return logging.LevelWarn
	}
	return logging.LevelInfo
}
