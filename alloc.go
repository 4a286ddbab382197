package vector

// allocSlots returns a block of n zero-valued slots, or nil if n == 0.
// A negative n is a caller bug and panics.
func allocSlots[T any](n int) []T {
	if n < 0 {
		panic("vector: negative buffer length")
	}
	if n == 0 {
		return nil
	}
	return make([]T, n)
}

// allocFilled returns a block of n slots, every one set to value.
func allocFilled[T any](n int, value T) []T {
	s := allocSlots[T](n)
	for i := range s {
		s[i] = value
	}
	return s
}

// allocCopy returns a block of n slots whose prefix is a copy of src.
// n must be at least len(src).
func allocCopy[T any](src []T, n int) []T {
	s := allocSlots[T](n)
	copy(s, src)
	return s
}

// zeroSlots resets every slot of s to the zero value of T.
func zeroSlots[T any](s []T) {
	clear(s)
}
