package vector

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Resize changes the number of live elements to n.
//
// Shrinking only moves the end marker. Growing within capacity resets the
// newly exposed slots to the zero value. Growing past capacity reallocates
// to exactly max(2*Capacity(), n) slots.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic("vector: negative size")
	}
	switch {
	case n <= v.size:
	case n <= v.capacity:
		zeroSlots(v.buf.slots[v.size:n])
	default:
		// Fresh slots are already zero.
		v.grow(max(v.capacity*2, n), "resize")
	}
	v.size = n
}

// Reserve makes sure at least n slots are allocated. It is a no-op if
// n <= Capacity(); otherwise capacity becomes exactly n.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.capacity {
		return
	}
	v.grow(n, "reserve")
}

// PushBack appends x, doubling capacity when the buffer is full.
func (v *Vector[T]) PushBack(x T) {
	v.Resize(v.size + 1)
	v.buf.slots[v.size-1] = x
}

// PopBack drops the last element. It is a no-op on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
}

// Insert places x before pos and returns an iterator to it. pos must be in
// [Begin(), End()] of the current buffer. Every iterator obtained before
// the call is invalidated.
func (v *Vector[T]) Insert(pos Iterator[T], x T) Iterator[T] {
	if debugChecks {
		v.assertOwns(pos.slots)
	}
	return v.iteratorAt(v.InsertAt(pos.i, x))
}

// InsertAt places x at index i, shifting [i, Size()) one slot right, and
// returns i. i must be in [0, Size()].
func (v *Vector[T]) InsertAt(i int, x T) int {
	if debugChecks {
		v.assertPosition(i)
	}
	v.makeRoom(i, 1)
	v.buf.slots[i] = x
	return i
}

// InsertValues places values at index i, in order, and returns i.
// i must be in [0, Size()].
func (v *Vector[T]) InsertValues(i int, values ...T) int {
	if debugChecks {
		v.assertPosition(i)
	}
	if len(values) == 0 {
		return i
	}
	v.makeRoom(i, len(values))
	copy(v.buf.slots[i:], values)
	return i
}

// Erase removes the element at pos and returns an iterator to the element
// that took its place, or End(). pos must be in [Begin(), End()).
func (v *Vector[T]) Erase(pos Iterator[T]) Iterator[T] {
	if debugChecks {
		v.assertOwns(pos.slots)
	}
	return v.iteratorAt(v.EraseAt(pos.i))
}

// EraseAt removes the element at index i, shifting (i, Size()) one slot
// left, and returns i. i must be in [0, Size()).
func (v *Vector[T]) EraseAt(i int) int {
	if debugChecks {
		v.assertElement(i)
	}
	copy(v.buf.slots[i:v.size-1], v.buf.slots[i+1:v.size])
	v.size--
	return i
}

// makeRoom opens count slots at index i and grows size by count. With
// spare capacity the tail is shifted in place; otherwise the elements are
// merged into a new buffer of max(2*capacity, size+count) slots. The opened
// slots hold stale values and must be overwritten by the caller.
func (v *Vector[T]) makeRoom(i, count int) {
	need := v.size + count
	if need <= v.capacity {
		// copy is memmove: overlapping ranges are safe.
		copy(v.buf.slots[i+count:need], v.buf.slots[i:v.size])
		v.size = need
		return
	}

	newCapacity := max(v.capacity*2, need)
	nb := NewBuffer[T](newCapacity)
	copy(nb.slots, v.buf.slots[:i])
	copy(nb.slots[i+count:], v.buf.slots[i:v.size])
	v.replace(&nb, "insert")
	v.size = need
}

// grow moves the live elements into a new buffer of exactly newCapacity
// slots. Size is unchanged.
func (v *Vector[T]) grow(newCapacity int, op string) {
	nb := NewBuffer[T](newCapacity)
	copy(nb.slots, v.buf.slots[:v.size])
	v.replace(&nb, op)
}

// replace installs nb as v's buffer and drops the previous one.
func (v *Vector[T]) replace(nb *Buffer[T], op string) {
	old := v.capacity
	v.buf.Swap(nb)
	nb.Free()
	v.capacity = v.buf.Len()
	v.reallocations++

	level.Debug(v.log()).Log(
		"msg", "vector reallocated",
		"op", op,
		"size", v.size,
		"old_capacity", old,
		"new_capacity", v.capacity,
	)
}

func (v *Vector[T]) log() log.Logger {
	if v.logger == nil {
		return log.NewNopLogger()
	}
	return v.logger
}
