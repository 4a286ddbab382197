package vector

import (
	"github.com/go-kit/log"
)

// Vector is a growable array of T backed by exactly one Buffer.
// Slots [0, Size()) hold live elements; slots [Size(), Capacity()) are
// allocated but logically absent.
//
// A Vector must not be copied by value; use Clone or Move. The zero value
// is an empty vector ready to use. Not goroutine-safe.
type Vector[T any] struct {
	size     int
	capacity int
	buf      Buffer[T]

	logger        log.Logger
	reallocations int
}

// New returns an empty vector with no allocation.
func New[T any](opts ...Option) *Vector[T] {
	return newVector[T](opts)
}

// NewSized returns a vector of n zero-valued elements with capacity n.
func NewSized[T any](n int, opts ...Option) *Vector[T] {
	v := newVector[T](opts)
	v.buf = NewBuffer[T](n)
	v.size, v.capacity = n, n
	return v
}

// NewFilled returns a vector of n copies of value with capacity n.
func NewFilled[T any](n int, value T, opts ...Option) *Vector[T] {
	v := newVector[T](opts)
	v.buf = AdoptBuffer(allocFilled(n, value))
	v.size, v.capacity = n, n
	return v
}

// Of returns a vector holding values in order, with capacity len(values).
func Of[T any](values ...T) *Vector[T] {
	return FromSlice(values)
}

// FromSlice returns a vector holding a copy of values, with capacity
// len(values). The vector never aliases values.
func FromSlice[T any](values []T, opts ...Option) *Vector[T] {
	v := newVector[T](opts)
	v.buf = AdoptBuffer(allocCopy(values, len(values)))
	v.size, v.capacity = len(values), len(values)
	return v
}

func newVector[T any](opts []Option) *Vector[T] {
	c := newConfig(opts)
	return &Vector[T]{logger: c.logger}
}

// Clone returns a deep copy of the live elements in a fresh buffer with the
// same capacity as v.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{
		size:     v.size,
		capacity: v.capacity,
		buf:      AdoptBuffer(allocCopy(v.buf.slots[:v.size], v.capacity)),
		logger:   v.logger,
	}
}

// Move transfers v's buffer into a new vector. v is left empty and may be
// reused.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{
		size:     v.size,
		capacity: v.capacity,
		buf:      v.buf.Move(),
		logger:   v.logger,
	}
	v.size, v.capacity = 0, 0
	return out
}

// CopyFrom replaces v's contents with a deep copy of src. Copying a vector
// into itself leaves it unchanged.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if v == src {
		return
	}
	tmp := src.Clone()
	v.Swap(tmp)
}

// MoveFrom takes over src's buffer, dropping v's previous one. src is left
// empty. Moving a vector into itself leaves it unchanged.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.buf = src.buf.Move()
	v.size, v.capacity = src.size, src.capacity
	src.size, src.capacity = 0, 0
}

// Swap exchanges contents with other in O(1). Loggers and reallocation
// counters stay with their vector.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int {
	return v.capacity
}

// IsEmpty reports whether Size() == 0.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Clear drops all elements in O(1). Capacity and slot contents are kept.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// ToSlice returns a copy of the live elements.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, v.size)
	copy(out, v.buf.slots[:v.size])
	return out
}
