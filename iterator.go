package vector

import (
	"iter"
	"unsafe"
)

// Iterator is a random-access position in a vector's buffer. It stays
// valid until the next operation that reallocates the buffer or shifts the
// element it refers to.
type Iterator[T any] struct {
	slots []T // live range of the buffer when the iterator was taken
	i     int
}

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return v.iteratorAt(0)
}

// End returns an iterator one past the last element.
func (v *Vector[T]) End() Iterator[T] {
	return v.iteratorAt(v.size)
}

func (v *Vector[T]) iteratorAt(i int) Iterator[T] {
	return Iterator[T]{slots: v.buf.slots[:v.size], i: i}
}

// Value returns the element at the iterator.
func (it Iterator[T]) Value() T { return it.slots[it.i] }

// Ptr returns a pointer to the element at the iterator.
func (it Iterator[T]) Ptr() *T { return &it.slots[it.i] }

// Set overwrites the element at the iterator.
func (it Iterator[T]) Set(x T) { it.slots[it.i] = x }

// Index returns the offset of the iterator from Begin().
func (it Iterator[T]) Index() int { return it.i }

func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }
func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

// Add returns the iterator moved by n positions.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.i += n
	return it
}

// Sub returns the distance from other to it.
func (it Iterator[T]) Sub(other Iterator[T]) int { return it.i - other.i }

// Equal reports whether both iterators denote the same position of the
// same buffer.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.i == other.i && sameBlock(it.slots, other.slots)
}

// Less reports whether it comes before other.
func (it Iterator[T]) Less(other Iterator[T]) bool { return it.i < other.i }

// ConstIterator is a read-only Iterator.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// CBegin returns a read-only iterator to the first element.
func (v *Vector[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{it: v.Begin()}
}

// CEnd returns a read-only iterator one past the last element.
func (v *Vector[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{it: v.End()}
}

func (c ConstIterator[T]) Value() T                          { return c.it.Value() }
func (c ConstIterator[T]) Index() int                        { return c.it.i }
func (c ConstIterator[T]) Next() ConstIterator[T]            { return c.Add(1) }
func (c ConstIterator[T]) Prev() ConstIterator[T]            { return c.Add(-1) }
func (c ConstIterator[T]) Add(n int) ConstIterator[T]        { return ConstIterator[T]{it: c.it.Add(n)} }
func (c ConstIterator[T]) Sub(other ConstIterator[T]) int    { return c.it.Sub(other.it) }
func (c ConstIterator[T]) Equal(other ConstIterator[T]) bool { return c.it.Equal(other.it) }
func (c ConstIterator[T]) Less(other ConstIterator[T]) bool  { return c.it.Less(other.it) }

// All returns an iterator over index/element pairs of the live range.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.slots[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf.slots[i]) {
				return
			}
		}
	}
}

// sameBlock reports whether a and b view the same allocation.
func sameBlock[T any](a, b []T) bool {
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}
