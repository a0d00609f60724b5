package vec

import "unsafe"

// Vec is a growable contiguous array: a RawBuf plus the count of live
// elements. Slots [0, Len()) hold initialized values; slots beyond are
// spare capacity and are never exposed. Not goroutine-safe by default.
// Use SafeVec for concurrent access.
type Vec[T any] struct {
	buf RawBuf[T]
	len int
}

// New returns an empty Vec. Nothing is allocated until the first push.
func New[T any]() *Vec[T] {
	return &Vec[T]{buf: NewRawBuf[T]()}
}

// WithCapacity returns an empty Vec with room for n elements allocated
// up front.
func WithCapacity[T any](n int) *Vec[T] {
	return &Vec[T]{buf: RawBufWithCapacity[T](n)}
}

// WithCapacityZeroed is WithCapacity with zero-filled backing memory.
func WithCapacityZeroed[T any](n int) *Vec[T] {
	return &Vec[T]{buf: RawBufWithCapacityZeroed[T](n)}
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int {
	return v.len
}

// Cap returns the current capacity.
func (v *Vec[T]) Cap() int {
	return v.buf.Cap()
}

// Ptr returns the base address of the backing buffer. Any growth
// invalidates it.
func (v *Vec[T]) Ptr() unsafe.Pointer {
	return v.buf.Ptr()
}

// setLen asserts a new length without initializing or finalizing any
// slot. Callers take over the initialization invariant themselves, so
// this stays restricted to in-package use.
func (v *Vec[T]) setLen(n int) {
	if n > v.Cap() {
		panic("vec: length exceeds capacity")
	}
	v.len = n
}

// Push appends value, growing the buffer first if it is full.
// Amortized O(1).
func (v *Vec[T]) Push(value T) {
	if v.len == v.Cap() {
		v.buf.ReserveForPush(v.len)
	}
	*v.at(v.len) = value
	v.len++
}

// Pop removes and returns the last element, transferring ownership out.
// The second return is false on an empty Vec.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if v.len == 0 {
		return zero, false
	}
	v.len--
	p := v.at(v.len)
	value := *p
	// Zero the vacated slot so the buffer no longer retains the element.
	*p = zero
	return value, true
}

// Insert places value at index, shifting [index, Len()) one slot to the
// right. index may equal Len(), which appends. O(Len()-index).
func (v *Vec[T]) Insert(index int, value T) {
	if index < 0 || index > v.len {
		panic("vec: insert index out of bounds")
	}
	if v.len == v.Cap() {
		v.buf.Reserve(v.len, 1)
	}
	if index < v.len {
		s := unsafe.Slice((*T)(v.buf.Ptr()), v.len+1)
		copy(s[index+1:], s[index:v.len])
	}
	*v.at(index) = value
	v.setLen(v.len + 1)
}

// Remove deletes and returns the element at index, shifting the tail
// left by one. Preserves the relative order of the remaining elements.
// O(Len()-index).
func (v *Vec[T]) Remove(index int) T {
	if index < 0 || index >= v.len {
		panic("vec: remove index out of bounds")
	}
	var zero T
	s := unsafe.Slice((*T)(v.buf.Ptr()), v.len)
	value := s[index]
	copy(s[index:], s[index+1:])
	s[v.len-1] = zero
	v.setLen(v.len - 1)
	return value
}

// SwapRemove deletes and returns the element at index by moving the last
// element into its slot. O(1); does not preserve order.
func (v *Vec[T]) SwapRemove(index int) T {
	if index < 0 || index >= v.len {
		panic("vec: swap-remove index out of bounds")
	}
	var zero T
	s := unsafe.Slice((*T)(v.buf.Ptr()), v.len)
	value := s[index]
	s[index] = s[v.len-1]
	s[v.len-1] = zero
	v.setLen(v.len - 1)
	return value
}

// Slice returns the live range [0, Len()) as a contiguous view:
// indexable, iterable, mutable in place. The view's capacity equals its
// length, so append on it always copies out and can never write into the
// Vec's spare slots. Growth invalidates the view.
func (v *Vec[T]) Slice() []T {
	return unsafe.Slice((*T)(v.buf.Ptr()), v.len)
}

// Get returns the element at index, bounds-checked.
func (v *Vec[T]) Get(index int) T {
	return v.Slice()[index]
}

// Set replaces the element at index, bounds-checked.
func (v *Vec[T]) Set(index int, value T) {
	v.Slice()[index] = value
}

// Clear drops every live element and resets the length to zero.
// Capacity is retained for reuse.
func (v *Vec[T]) Clear() {
	clear(v.Slice())
	v.setLen(0)
}

// at returns the address of slot i without bounds checks. Callers
// guarantee i < Cap().
func (v *Vec[T]) at(i int) *T {
	var zero T
	return (*T)(unsafe.Add(v.buf.Ptr(), uintptr(i)*unsafe.Sizeof(zero)))
}
