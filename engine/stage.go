// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"context"

	"github.com/bassosimone/atom"
)

// Stage is a step of the frame pipeline that accepts an input and
// returns a result.
//
// Stage instances can be composed using [Compose2] and [Compose3] to
// create type-safe pipelines where the output of one step flows to the
// input of the next.
type Stage[A, B any] interface {
	Call(ctx context.Context, input A) (B, error)
}

// FrameStage is the [Stage] run once per frame by an [*Application].
type FrameStage = Stage[Frame, atom.Unit]

// StageFunc wraps a function as a [Stage] implementation.
type StageFunc[A, B any] func(ctx context.Context, input A) (B, error)

// Call implements [Stage].
func (f StageFunc[A, B]) Call(ctx context.Context, input A) (B, error) {
	return f(ctx, input)
}

// Compose2 returns the [Stage] feeding the result of s1 to s2.
//
// s2 is skipped when s1 fails or when ctx is done in between, in which
// case the zero value and the error are returned.
func Compose2[A, B, C any](s1 Stage[A, B], s2 Stage[B, C]) Stage[A, C] {
	return StageFunc[A, C](func(ctx context.Context, input A) (C, error) {
		var zero C
		mid, err := s1.Call(ctx, input)
		if err != nil {
			return zero, err
		}
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		return s2.Call(ctx, mid)
	})
}

// Compose3 chains three [Stage] instances together.
func Compose3[A, B, C, D any](s1 Stage[A, B], s2 Stage[B, C], s3 Stage[C, D]) Stage[A, D] {
	return Compose2(s1, Compose2(s2, s3))
}

// Compose runs the given frame stages in order, stopping at the first
// error. With no stages it does nothing.
func Compose(stages ...FrameStage) FrameStage {
	return StageFunc[Frame, atom.Unit](func(ctx context.Context, frame Frame) (atom.Unit, error) {
		for _, stage := range stages {
			if _, err := stage.Call(ctx, frame); err != nil {
				return atom.Unit{}, err
			}
		}
		return atom.Unit{}, nil
	})
}

// Discard adapts a [Stage] so that it returns [atom.Unit], which turns a
// pipeline ending with any type into a [FrameStage].
func Discard[A, B any](s Stage[A, B]) Stage[A, atom.Unit] {
	return StageFunc[A, atom.Unit](func(ctx context.Context, input A) (atom.Unit, error) {
		_, err := s.Call(ctx, input)
		return atom.Unit{}, err
	})
}
