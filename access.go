package vector

// Index returns element i without a range check against Size(). The caller
// guarantees 0 <= i < Size(); builds with the vectordebug tag assert it.
func (v *Vector[T]) Index(i int) T {
	if debugChecks {
		v.assertElement(i)
	}
	return v.buf.slots[i]
}

// Ref returns a pointer to element i. Same contract as Index. The pointer
// is invalidated by any reallocation.
func (v *Vector[T]) Ref(i int) *T {
	if debugChecks {
		v.assertElement(i)
	}
	return &v.buf.slots[i]
}

// Set stores x as element i. Same contract as Index.
func (v *Vector[T]) Set(i int, x T) {
	if debugChecks {
		v.assertElement(i)
	}
	v.buf.slots[i] = x
}

// At returns element i, or an error matching ErrOutOfRange if i is not in
// [0, Size()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, outOfRange(i, v.size)
	}
	return v.buf.slots[i], nil
}

// AtRef is the checked counterpart of Ref.
func (v *Vector[T]) AtRef(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, outOfRange(i, v.size)
	}
	return &v.buf.slots[i], nil
}
