package vec

import (
	"math"
	"unsafe"
)

// MinCapacity is the smallest capacity a non-zero-sized buffer grows to
// the first time it leaves zero capacity.
const MinCapacity = 4

// zerobase backs the dangling pointer handed out before any allocation
// exists. It must never be dereferenced through a RawBuf.
var zerobase uintptr

// RawBuf owns a contiguous heap region sized for Cap() elements of T.
// It tracks capacity only and has no notion of how many slots hold live
// values; that discipline belongs to Vec. Not goroutine-safe.
type RawBuf[T any] struct {
	ptr unsafe.Pointer
	cap int
}

// NewRawBuf returns an empty buffer. No allocation is performed; the
// pointer is a dangling sentinel until the first growth.
func NewRawBuf[T any]() RawBuf[T] {
	return RawBuf[T]{ptr: unsafe.Pointer(&zerobase)}
}

// RawBufWithCapacity returns a buffer with room for exactly n elements,
// allocated eagerly. For zero-sized T nothing is allocated and capacity
// stays reported as unbounded.
func RawBufWithCapacity[T any](n int) RawBuf[T] {
	b := NewRawBuf[T]()
	if n > 0 {
		b.allocate(n)
	}
	return b
}

// RawBufWithCapacityZeroed is RawBufWithCapacity with the additional
// guarantee that the backing memory is zero-filled. Only meaningful when
// the all-zero bit pattern is a valid T, a contract the caller upholds.
func RawBufWithCapacityZeroed[T any](n int) RawBuf[T] {
	// make zero-fills unconditionally, so both constructors share the
	// allocation path; this variant is the one that promises it.
	return RawBufWithCapacity[T](n)
}

// Cap returns the number of element slots currently backed by allocated
// storage. For zero-sized T it reports math.MaxInt: such elements consume
// no memory and can never run out of room.
func (b *RawBuf[T]) Cap() int {
	if sizeOf[T]() == 0 {
		return math.MaxInt
	}
	return b.cap
}

// Ptr returns the base address of the buffer. Dereferencing beyond
// [0, Cap()) is undefined, and any growth invalidates the address.
func (b *RawBuf[T]) Ptr() unsafe.Pointer {
	return b.ptr
}

// Reserve ensures capacity for at least length+additional elements. It is
// a no-op when the current capacity already suffices. Growth relocates
// the buffer; every address previously obtained from Ptr is invalid the
// moment Reserve grows.
func (b *RawBuf[T]) Reserve(length, additional int) {
	if additional <= b.Cap()-length {
		return
	}
	b.grow(length, additional)
}

// ReserveForPush reserves room for a single extra element.
func (b *RawBuf[T]) ReserveForPush(length int) {
	b.Reserve(length, 1)
}

// grow computes the new capacity as the larger of double the current one
// and the exact requirement, clamped up to MinCapacity. Amortizes
// reallocation to O(1) per appended element.
func (b *RawBuf[T]) grow(length, additional int) {
	if sizeOf[T]() == 0 {
		// Capacity is already the maximum representable count, so
		// needing more means the element count overflowed.
		panic("vec: capacity overflow")
	}
	if additional > math.MaxInt-length {
		panic("vec: capacity overflow")
	}
	required := length + additional
	newCap := 2 * b.cap
	if newCap < required {
		newCap = required
	}
	if newCap < MinCapacity {
		newCap = MinCapacity
	}
	b.allocate(newCap)
}

// allocate moves the buffer into a fresh slab of n slots, copying the old
// contents. The old slab is left to the collector once no view aliases it.
func (b *RawBuf[T]) allocate(n int) {
	size := sizeOf[T]()
	if size == 0 {
		return
	}
	if n > math.MaxInt/size {
		panic("vec: capacity overflow")
	}
	slab := make([]T, n)
	if b.cap > 0 {
		copy(slab, unsafe.Slice((*T)(b.ptr), b.cap))
	}
	b.ptr = unsafe.Pointer(&slab[0])
	b.cap = n
}

// sizeOf returns the storage size of T in bytes.
func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
