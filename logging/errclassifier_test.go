// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/bassosimone/errclass"
	"github.com/stretchr/testify/assert"
)

func TestDefaultErrClassifier(t *testing.T) {
	// Should return empty string for nil error
	result := DefaultErrClassifier.Classify(nil)
	assert.Equal(t, "", result)

	// Should classify known errors using errclass
	result = DefaultErrClassifier.Classify(context.DeadlineExceeded)
	assert.Equal(t, errclass.ETIMEDOUT, result)

	// Should return EGENERIC for unknown errors
	result = DefaultErrClassifier.Classify(errors.New("unknown error"))
	assert.Equal(t, errclass.EGENERIC, result)
}

func TestErrClassifierFunc(t *testing.T) {
	classifier := ErrClassifierFunc(func(err error) string {
		return "ECUSTOM"
	})
	assert.Equal(t, "ECUSTOM", classifier.Classify(errors.New("any")))
}

func TestClassifyErr(t *testing.T) {
	custom := ErrClassifierFunc(func(err error) string {
		return "ECUSTOM"
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, "", classifyErr(custom, nil))
	})

	t.Run("nil classifier", func(t *testing.T) {
		assert.Equal(t, "", classifyErr(nil, errors.New("any")))
	})

	t.Run("configured classifier", func(t *testing.T) {
		assert.Equal(t, "ECUSTOM", classifyErr(custom, errors.New("any")))
	})
}
