package vector

// Reallocations returns how many times this vector replaced its buffer.
func (v *Vector[T]) Reallocations() int {
	return v.reallocations
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if v.capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(v.capacity)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() Metrics {
	return Metrics{
		Size:          v.size,
		Capacity:      v.capacity,
		Reallocations: v.reallocations,
		Utilization:   v.Utilization(),
	}
}

// Metrics contains statistical information about a vector.
type Metrics struct {
	Size          int     // Live elements
	Capacity      int     // Allocated slots
	Reallocations int     // Buffer replacements since construction
	Utilization   float64 // Ratio of size to capacity (0.0-1.0)
}
