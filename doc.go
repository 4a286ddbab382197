// Package vector implements a growable array (Vector) on top of an
// exclusively owned heap block (Buffer).
//
// # Overview
//
// Buffer is a bare allocation handle: it owns zero or one contiguous block
// of slots and knows nothing about how many of them are in use. Vector
// layers size and capacity bookkeeping on exactly one Buffer and provides:
//
//   - Amortized doubling growth (capacity 0 -> 1 -> 2 -> 4 -> ...)
//   - Unchecked (Index) and checked (At) element access
//   - Insert and Erase with in-place shifting
//   - Random-access iterators and Go range functions
//   - Equality and lexicographic ordering
//
// # Basic Usage
//
//	v := vector.Of(10, 20, 30)
//	v.PushBack(40)             // capacity doubles from 3 to 6
//	v.InsertAt(1, 15)          // [10 15 20 30 40]
//	v.EraseAt(0)               // [15 20 30 40]
//
//	x, err := v.At(7)
//	if errors.Is(err, vector.ErrOutOfRange) {
//		// handle
//	}
//
//	// Preallocate without adding elements
//	w := vector.NewReserved[int](vector.Reserve(100))
//
// # Ownership
//
// Vector and Buffer must not be copied by value; go vet reports such
// copies. Use Clone for a deep copy and Move (or MoveFrom) to transfer the
// buffer, which leaves the source empty and reusable. Copying, moving or
// swapping a vector with itself is a no-op.
//
// # Invalidation
//
// Any operation that reallocates (Resize or Reserve past capacity, Insert
// or PushBack on a full buffer) invalidates every iterator and element
// pointer. Insert and Erase with spare capacity shift elements in place, so
// positions at or after the mutation point refer to different elements
// afterwards.
//
// # Debug Assertions
//
// Index, Ref, Set, Insert and Erase trust their caller. Build with
// -tags vectordebug to turn precondition violations, including use of an
// iterator taken before a reallocation, into panics.
//
// # Thread Safety
//
// Vector is not goroutine-safe. Callers sharing one across goroutines must
// synchronize access themselves.
package vector
