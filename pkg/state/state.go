// Package state holds application state shared between setup callbacks.
//
// Setup runs again after every reload, so state kept in local variables of
// setup would reset. A [Shared] value is created once by the program and
// captured by the callbacks instead:
//
//	count := state.NewShared(0)
//	app.Run(ctx, func(win *toolkit.Window) {
//		inc, _ := toolkit.Lookup[*toolkit.Button](win, "inc")
//		inc.SetCallback(func(toolkit.Widget) {
//			count.With(func(v *int) { *v++ })
//		})
//	})
package state

import "sync"

// Shared is a value guarded by a mutex. The zero value holds the zero T.
type Shared[T any] struct {
	mu sync.Mutex
	v  T
}

// NewShared returns a Shared holding v.
func NewShared[T any](v T) *Shared[T] {
	return &Shared[T]{v: v}
}

// With runs fn while holding the lock. fn must not call other methods of s.
func (s *Shared[T]) With(fn func(v *T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.v)
}

// Get returns a copy of the value.
func (s *Shared[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v
}

// Set replaces the value.
func (s *Shared[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v = v
}

// Update replaces the value with fn(old) and returns the new value.
func (s *Shared[T]) Update(fn func(T) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v = fn(s.v)
	return s.v
}

// Lock locks the value for a sequence of calls to Value.
func (s *Shared[T]) Lock() { s.mu.Lock() }

// Unlock releases a lock taken with Lock.
func (s *Shared[T]) Unlock() { s.mu.Unlock() }

// Value returns a pointer to the value. The caller must hold the lock.
func (s *Shared[T]) Value() *T { return &s.v }
