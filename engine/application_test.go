// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bassosimone/atom"
	"github.com/bassosimone/atom/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestConfig returns a [*Config] without pacing and with a fake clock
// advancing by step on every call.
func newTestConfig(step time.Duration) *Config {
	cfg := NewConfig()
	cfg.FrameRate = 0
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg.TimeNow = func() time.Time {
		now = now.Add(step)
		return now
	}
	return cfg
}

// recordFrames returns a [FrameStage] appending the frames it sees.
func recordFrames(frames *[]Frame) FrameStage {
	return StageFunc[Frame, atom.Unit](func(ctx context.Context, f Frame) (atom.Unit, error) {
		*frames = append(*frames, f)
		return atom.Unit{}, nil
	})
}

func TestApplicationRun(t *testing.T) {
	t.Run("stops after MaxFrames", func(t *testing.T) {
		cfg := newTestConfig(10 * time.Millisecond)
		cfg.MaxFrames = 5
		var frames []Frame
		app, err := NewApplication(cfg, DefaultWindowProps(), recordFrames(&frames))
		require.NoError(t, err)
		defer app.Close()

		require.NoError(t, app.Run(context.Background()))
		require.Len(t, frames, 5)
		for idx, frame := range frames {
			assert.Equal(t, uint64(idx), frame.Index)
			assert.Same(t, app.Window(), frame.Window)
		}
		assert.Equal(t, time.Duration(0), frames[0].Delta)
		assert.Equal(t, 10*time.Millisecond, frames[1].Delta)
		assert.Equal(t, uint64(5), app.Window().(*HeadlessWindow).Updates())
	})

	t.Run("stops when the window closes", func(t *testing.T) {
		cfg := newTestConfig(time.Millisecond)
		var count int
		stage := StageFunc[Frame, atom.Unit](func(ctx context.Context, f Frame) (atom.Unit, error) {
			count++
			if f.Index == 2 {
				f.Window.(*HeadlessWindow).Post(WindowEvent{Kind: WindowClosed})
			}
			return atom.Unit{}, nil
		})
		app, err := NewApplication(cfg, DefaultWindowProps(), stage)
		require.NoError(t, err)

		require.NoError(t, app.Run(context.Background()))
		assert.Equal(t, 3, count)
		assert.True(t, app.Window().IsClosed())
	})

	t.Run("stops when the context is done", func(t *testing.T) {
		cfg := newTestConfig(time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		var count int
		stage := StageFunc[Frame, atom.Unit](func(ctx context.Context, f Frame) (atom.Unit, error) {
			count++
			if count == 3 {
				cancel()
			}
			return atom.Unit{}, nil
		})
		app, err := NewApplication(cfg, DefaultWindowProps(), stage)
		require.NoError(t, err)

		err = app.Run(ctx)
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 3, count)
	})

	t.Run("returns the stage error", func(t *testing.T) {
		cfg := newTestConfig(time.Millisecond)
		wantErr := errors.New("stage failed")
		stage := StageFunc[Frame, atom.Unit](func(ctx context.Context, f Frame) (atom.Unit, error) {
			if f.Index == 1 {
				return atom.Unit{}, wantErr
			}
			return atom.Unit{}, nil
		})
		app, err := NewApplication(cfg, DefaultWindowProps(), stage)
		require.NoError(t, err)

		err = app.Run(context.Background())
		require.ErrorIs(t, err, wantErr)
		assert.Contains(t, err.Error(), "frame 1")
	})

	t.Run("paces frames with the limiter", func(t *testing.T) {
		cfg := NewConfig()
		cfg.FrameRate = 200
		cfg.MaxFrames = 6
		app, err := NewApplication(cfg, DefaultWindowProps(), nil)
		require.NoError(t, err)

		start := time.Now()
		require.NoError(t, app.Run(context.Background()))
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("logs window events and lifecycle", func(t *testing.T) {
		sl, records := newCapturingSlog()
		cfg := newTestConfig(time.Millisecond)
		cfg.MaxFrames = 1
		cfg.Logger = logging.NewSlogLogger("engine", sl, logging.LevelTrace)
		app, err := NewApplication(cfg, DefaultWindowProps(), nil)
		require.NoError(t, err)
		app.Window().(*HeadlessWindow).Post(WindowEvent{Kind: WindowFocused})

		require.NoError(t, app.Run(context.Background()))
		app.Close()

		var messages []string
		for _, record := range *records {
			messages = append(messages, record.Message)
		}
		require.Len(t, messages, 5)
		assert.Equal(t, `window "Sandbox" created: 1920x1080`, messages[0])
		assert.Contains(t, messages[1], "started")
		assert.Equal(t, `window "Sandbox" event: Focused 0x0`, messages[2])
		assert.Contains(t, messages[3], "stopped after 1 frames")
		assert.Equal(t, `window "Sandbox" closed`, messages[4])
	})
}

func TestNewApplication(t *testing.T) {
	t.Run("rejects invalid window props", func(t *testing.T) {
		_, err := NewApplication(NewConfig(), WindowProps{Name: "bad"}, nil)
		require.ErrorIs(t, err, ErrInvalidWindowProps)
	})

	t.Run("Close closes the window and unsubscribes", func(t *testing.T) {
		app, err := NewApplication(NewConfig(), DefaultWindowProps(), nil)
		require.NoError(t, err)
		window := app.Window()
		assert.Equal(t, 1, window.Events().Len())
		app.Close()
		assert.True(t, window.IsClosed())
		assert.Equal(t, 0, window.Events().Len())
	})
}
