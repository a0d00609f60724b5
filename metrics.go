package vec

// SizeInUse returns the number of bytes occupied by live elements.
// Always 0 for zero-sized element types.
func (v *Vec[T]) SizeInUse() int {
	return v.len * sizeOf[T]()
}

// CapacityBytes returns the total bytes of backing storage. Zero-sized
// element types never allocate, so this is 0 for them even though the
// reported capacity is unbounded.
func (v *Vec[T]) CapacityBytes() int {
	return v.buf.cap * sizeOf[T]()
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 when nothing is allocated.
func (v *Vec[T]) Utilization() float64 {
	if sizeOf[T]() == 0 || v.buf.cap == 0 {
		return 0
	}
	return float64(v.len) / float64(v.buf.cap)
}

// Stats returns a snapshot of Vec statistics.
func (v *Vec[T]) Stats() VecStats {
	return VecStats{
		Len:           v.Len(),
		Cap:           v.Cap(),
		SizeInUse:     v.SizeInUse(),
		CapacityBytes: v.CapacityBytes(),
		Utilization:   v.Utilization(),
	}
}

// VecStats contains statistical information about a Vec.
type VecStats struct {
	Len           int     // Live elements
	Cap           int     // Element slots backed by storage
	SizeInUse     int     // Bytes occupied by live elements
	CapacityBytes int     // Total bytes of backing storage
	Utilization   float64 // Ratio of live elements to capacity (0.0-1.0)
}

// Thread-safe metrics for SafeVec

// SizeInUse thread-safely returns the bytes occupied by live elements.
func (s *SafeVec[T]) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.SizeInUse()
}

// CapacityBytes thread-safely returns the total bytes of backing storage.
func (s *SafeVec[T]) CapacityBytes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.CapacityBytes()
}

// Utilization thread-safely returns the ratio of live elements to capacity.
func (s *SafeVec[T]) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Utilization()
}

// Stats thread-safely returns a snapshot of Vec statistics.
func (s *SafeVec[T]) Stats() VecStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Stats()
}
