// SPDX-License-Identifier: GPL-3.0-or-later

package ranges

import "errors"

// ErrIndexOutOfRange is returned by checked accessors when the index is
// not within [0, count).
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrEmptyRange is returned by checked accessors that need at least one element.
var ErrEmptyRange = errors.New("range is empty")
