// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import "github.com/bassosimone/errclass"

// ErrClassifier maps the error attached to a [LogMsg] to a short label
// (e.g., "ETIMEDOUT") emitted by the structured sinks as errClass.
type ErrClassifier interface {
	Classify(err error) string
}

// ErrClassifierFunc is a function implementing [ErrClassifier].
type ErrClassifierFunc func(error) string

var _ ErrClassifier = ErrClassifierFunc(nil)

// Classify implements [ErrClassifier].
func (f ErrClassifierFunc) Classify(err error) string {
	return f(err)
}

// DefaultErrClassifier labels errors with [errclass.New].
var DefaultErrClassifier = ErrClassifierFunc(errclass.New)

// classifyErr returns the label of err, or the empty string when err is
// nil or no classifier is configured.
func classifyErr(c ErrClassifier, err error) string {
	if c == nil || err == nil {
		return ""
	}
	return c.Classify(err)
}
