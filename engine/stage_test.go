// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/bassosimone/atom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageFunc(t *testing.T) {
	called := false
	stage := StageFunc[int, string](func(ctx context.Context, input int) (string, error) {
		called = true
		return strconv.Itoa(input), nil
	})

	output, err := stage.Call(context.Background(), 42)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "42", output)
}

func TestCompose2(t *testing.T) {
	double := StageFunc[int, int](func(ctx context.Context, n int) (int, error) {
		return 2 * n, nil
	})
	format := StageFunc[int, string](func(ctx context.Context, n int) (string, error) {
		return strconv.Itoa(n), nil
	})

	t.Run("success path", func(t *testing.T) {
		result, err := Compose2[int, int, string](double, format).Call(context.Background(), 21)
		require.NoError(t, err)
		assert.Equal(t, "42", result)
	})

	t.Run("first stage fails", func(t *testing.T) {
		wantErr := errors.New("s1 failed")
		failing := StageFunc[int, int](func(ctx context.Context, n int) (int, error) {
			return 0, wantErr
		})
		never := StageFunc[int, string](func(ctx context.Context, n int) (string, error) {
			t.Fatal("s2 should not be called")
			return "", nil
		})
		_, err := Compose2[int, int, string](failing, never).Call(context.Background(), 1)
		require.ErrorIs(t, err, wantErr)
	})

	t.Run("context done between stages", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancelling := StageFunc[int, int](func(ctx context.Context, n int) (int, error) {
			cancel()
			return n, nil
		})
		never := StageFunc[int, string](func(ctx context.Context, n int) (string, error) {
			t.Fatal("s2 should not be called")
			return "", nil
		})
		result, err := Compose2[int, int, string](cancelling, never).Call(ctx, 1)
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, "", result)
	})

	t.Run("three stages", func(t *testing.T) {
		length := StageFunc[string, int](func(ctx context.Context, s string) (int, error) {
			return len(s), nil
		})
		result, err := Compose3[int, int, string, int](double, format, length).Call(context.Background(), 500)
		require.NoError(t, err)
		assert.Equal(t, 4, result)
	})
}

func TestCompose(t *testing.T) {
	t.Run("runs stages in order", func(t *testing.T) {
		var order []int
		mk := func(id int) FrameStage {
			return StageFunc[Frame, atom.Unit](func(ctx context.Context, f Frame) (atom.Unit, error) {
				order = append(order, id)
				return atom.Unit{}, nil
			})
		}
		_, err := Compose(mk(1), mk(2), mk(3)).Call(context.Background(), Frame{})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, order)
	})

	t.Run("stops at the first error", func(t *testing.T) {
		wantErr := errors.New("stage failed")
		var after bool
		failing := StageFunc[Frame, atom.Unit](func(ctx context.Context, f Frame) (atom.Unit, error) {
			return atom.Unit{}, wantErr
		})
		trailing := StageFunc[Frame, atom.Unit](func(ctx context.Context, f Frame) (atom.Unit, error) {
			after = true
			return atom.Unit{}, nil
		})
		_, err := Compose(failing, trailing).Call(context.Background(), Frame{})
		require.ErrorIs(t, err, wantErr)
		assert.False(t, after)
	})

	t.Run("empty composition", func(t *testing.T) {
		_, err := Compose().Call(context.Background(), Frame{})
		require.NoError(t, err)
	})

	t.Run("Discard turns a pipeline into a frame stage", func(t *testing.T) {
		index := StageFunc[Frame, uint64](func(ctx context.Context, f Frame) (uint64, error) {
			return f.Index, nil
		})
		var stage FrameStage = Discard[Frame, uint64](index)
		_, err := stage.Call(context.Background(), Frame{Index: 3})
		require.NoError(t, err)
	})
}
