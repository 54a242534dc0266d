// SPDX-License-Identifier: GPL-3.0-or-later

// Package engine contains a minimal application shell.
//
// An [*Application] owns a [Window] created through a [*WindowManager]
// and runs a frame loop: each frame updates the window, which dispatches
// its pending [WindowEvent] values through an [Event], and then calls the
// frame [Stage]. The loop stops when the context is done, the window is
// closed, or [Config.MaxFrames] frames have run. A [golang.org/x/time/rate.Limiter] paces
// the frames at [Config.FrameRate].
//
// The only window implementation is [*HeadlessWindow], which has no
// on-screen surface and receives events through [*HeadlessWindow.Post].
package engine
