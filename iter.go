package vec

import "unsafe"

// IntoIter consumes a Vec front to back. It holds sole ownership of the
// backing buffer it took from the source Vec; elements it never yields
// are reclaimed by the collector together with the buffer once the
// iterator itself becomes unreachable.
type IntoIter[T any] struct {
	buf  RawBuf[T]
	next int
	len  int
}

// IntoIter moves the buffer and length out of v and returns a consuming
// iterator over them. v is reset to empty and remains usable.
func (v *Vec[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{buf: v.buf, len: v.len}
	v.buf = NewRawBuf[T]()
	v.len = 0
	return it
}

// Next yields the next element and true, or the zero value and false once
// the iterator is exhausted. Yielded slots are zeroed so the buffer stops
// retaining elements whose ownership has moved to the caller.
func (it *IntoIter[T]) Next() (T, bool) {
	var zero T
	if it.next == it.len {
		return zero, false
	}
	s := unsafe.Slice((*T)(it.buf.Ptr()), it.len)
	value := s[it.next]
	s[it.next] = zero
	it.next++
	if it.next == it.len {
		// Exhausted: drop the slab immediately rather than waiting for
		// the iterator itself to go away.
		it.buf = NewRawBuf[T]()
		it.len = 0
		it.next = 0
	}
	return value, true
}

// Remaining returns the number of elements not yet yielded.
func (it *IntoIter[T]) Remaining() int {
	return it.len - it.next
}
