// SPDX-License-Identifier: GPL-3.0-or-later

package memory

import "sync"

// Lockable is a lock with a non-blocking acquisition attempt.
type Lockable interface {
	Lock()
	TryLock() bool
	Unlock()
}

// noCopy makes go vet's copylocks check reject copies of the enclosing struct.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Mutex is a mutual exclusion lock.
//
// The zero value is an unlocked mutex. A Mutex must not be copied.
type Mutex struct {
	noCopy noCopy
	mu     sync.Mutex
}

var _ Lockable = &Mutex{}

// Lock blocks until the mutex is acquired.
func (m *Mutex) Lock() {
	m.mu.Lock()
}

// TryLock acquires the mutex if it is free and reports whether it did.
func (m *Mutex) TryLock() bool {
	return m.mu.TryLock()
}

// Unlock releases the mutex.
//
// Unlocking a mutex that is not locked is a run-time error.
func (m *Mutex) Unlock() {
	m.mu.Unlock()
}

// WithLock runs fn while holding lk.
func WithLock(lk Lockable, fn func()) {
	lk.Lock()
	defer lk.Unlock()
	fn()
}
