package vector

import "golang.org/x/exp/constraints"

// Equal reports whether a and b have the same size and equal elements in
// index order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// NotEqual is !Equal(a, b).
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.buf.slots[i], b.buf.slots[i]) {
			return false
		}
	}
	return true
}

// Less reports whether a orders strictly before b lexicographically.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return LessFunc(a, b, func(x, y T) bool { return x < y })
}

// LessEqual is !Less(b, a).
func LessEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// Greater is Less(b, a).
func Greater[T constraints.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// GreaterEqual is !Less(a, b).
func GreaterEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}

// LessFunc is Less with a caller-supplied strict weak ordering. A shorter
// vector that is a prefix of the longer one orders first.
func LessFunc[T any](a, b *Vector[T], less func(T, T) bool) bool {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		x, y := a.buf.slots[i], b.buf.slots[i]
		if less(x, y) {
			return true
		}
		if less(y, x) {
			return false
		}
	}
	return a.size < b.size
}
