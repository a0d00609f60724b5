package vec

import "sync"

// SafeVec is a mutex-protected wrapper around Vec for concurrent access.
// Growth relocates the buffer, so unsynchronized readers of a shared Vec
// can observe a stale address; SafeVec serializes every operation instead.
// All operations come with the overhead of mutex locking.
type SafeVec[T any] struct {
	mu sync.Mutex
	v  *Vec[T]
}

// NewSafeVec creates a new thread-safe, empty Vec.
func NewSafeVec[T any]() *SafeVec[T] {
	return &SafeVec[T]{v: New[T]()}
}

// NewSafeVecWithCapacity creates a thread-safe Vec with room for n
// elements allocated up front.
func NewSafeVecWithCapacity[T any](n int) *SafeVec[T] {
	return &SafeVec[T]{v: WithCapacity[T](n)}
}

// Push thread-safely appends value.
func (s *SafeVec[T]) Push(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Push(value)
}

// Pop thread-safely removes and returns the last element.
func (s *SafeVec[T]) Pop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Pop()
}

// Insert thread-safely places value at index.
func (s *SafeVec[T]) Insert(index int, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Insert(index, value)
}

// Remove thread-safely deletes and returns the element at index,
// preserving the order of the rest.
func (s *SafeVec[T]) Remove(index int) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Remove(index)
}

// SwapRemove thread-safely deletes and returns the element at index by
// moving the last element into its slot.
func (s *SafeVec[T]) SwapRemove(index int) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.SwapRemove(index)
}

// Get thread-safely returns the element at index.
func (s *SafeVec[T]) Get(index int) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Get(index)
}

// Set thread-safely replaces the element at index.
func (s *SafeVec[T]) Set(index int, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(index, value)
}

// Len thread-safely returns the number of live elements.
func (s *SafeVec[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Len()
}

// Cap thread-safely returns the current capacity.
func (s *SafeVec[T]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Cap()
}

// Clear thread-safely drops every live element, keeping capacity.
func (s *SafeVec[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Clear()
}

// Snapshot returns a copy of the live elements. The copy does not alias
// the backing buffer, so it stays valid across later mutation.
func (s *SafeVec[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, s.v.Len())
	copy(out, s.v.Slice())
	return out
}
