package vector

// CapacityRequest asks NewReserved for an empty vector with Capacity slots
// preallocated.
type CapacityRequest struct {
	Capacity int
}

// Reserve returns a CapacityRequest for n slots.
func Reserve(n int) CapacityRequest {
	return CapacityRequest{Capacity: n}
}

// NewReserved returns an empty vector with r.Capacity slots allocated.
func NewReserved[T any](r CapacityRequest, opts ...Option) *Vector[T] {
	v := newVector[T](opts)
	v.buf = NewBuffer[T](r.Capacity)
	v.capacity = r.Capacity
	return v
}

// WithCapacity is shorthand for NewReserved(Reserve(n), opts...).
func WithCapacity[T any](n int, opts ...Option) *Vector[T] {
	return NewReserved[T](Reserve(n), opts...)
}
