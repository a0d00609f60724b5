// Package vec implements a growable contiguous array over a manually
// managed raw buffer.
//
// # Overview
//
// A Vec owns a single heap allocation sized for its capacity and tracks
// how many leading slots hold live elements. Appending is amortized O(1):
// when the buffer fills, capacity doubles (starting at 4) and the
// elements relocate to a fresh allocation. The package is layered in one
// direction:
//
//   - RawBuf: allocation, growth and the zero-sized-type case; knows
//     nothing about element liveness
//   - Vec: length tracking and every element-level operation
//
// # Basic Usage
//
//	v := vec.New[int]()
//
//	v.Push(1)
//	v.Push(2)
//	v.Insert(0, 0)
//
//	last, ok := v.Pop()       // 2, true
//	first := v.Remove(0)      // 0, order preserved
//	_ = v.SwapRemove(0)       // O(1), order not preserved
//
//	for i, x := range v.Slice() {
//		_ = i + x
//	}
//
// # Thread Safety
//
// Vec is not thread-safe: growth relocates the buffer, and a concurrent
// reader would observe a stale address. For concurrent access, use
// SafeVec:
//
//	sv := vec.NewSafeVec[int]()
//	sv.Push(42)
//	items := sv.Snapshot()
//
// # Growth
//
// Starting from empty, the first push allocates 4 slots; thereafter
// capacity doubles, or jumps directly to a larger explicit Reserve
// request. Capacity never shrinks. A request whose byte size cannot be
// represented panics; allocator exhaustion is fatal. Zero-sized element
// types never allocate and report an unbounded capacity, while the
// length still counts elements exactly.
//
// # Important Notes
//
//   - Slice views alias the backing buffer and are invalidated by any
//     operation that can grow it
//   - Pop, Remove and SwapRemove zero the vacated slot, so the Vec never
//     retains elements whose ownership has moved to the caller
//   - IntoIter takes the whole buffer out of a Vec and consumes it front
//     to back; the source Vec is left empty and reusable
//
// # Metrics and Monitoring
//
// Vec exposes a statistics snapshot for monitoring memory usage:
//
//	stats := v.Stats()
//	fmt.Printf("Utilization: %.2f%%\n", stats.Utilization * 100)
//	fmt.Printf("Bytes in use: %d\n", stats.SizeInUse)
package vec
