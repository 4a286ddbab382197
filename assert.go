package vector

import "fmt"

// The helpers below are only reached behind `if debugChecks`, so release
// builds compile them out of every hot path.

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("vector: assertion failed: "+format, args...))
	}
}

func (v *Vector[T]) assertElement(i int) {
	assertf(i >= 0 && i < v.size, "index %d not in [0, %d)", i, v.size)
}

func (v *Vector[T]) assertPosition(i int) {
	assertf(i >= 0 && i <= v.size, "position %d not in [0, %d]", i, v.size)
}

// assertOwns checks that slots is a view of v's current block, i.e. that an
// iterator was not obtained before a reallocation.
func (v *Vector[T]) assertOwns(slots []T) {
	assertf(sameBlock(slots, v.buf.slots), "stale iterator")
}
