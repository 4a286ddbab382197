package vector

// noCopy may be embedded into structs which must not be copied after
// first use. go vet's copylocks check reports any value copy.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer owns zero or one contiguous block of T slots. It has no notion of
// size: it is a bare allocation handle with exclusive, transferable
// ownership. A Buffer must not be copied; use Move to transfer it.
//
// The zero value is an empty buffer.
type Buffer[T any] struct {
	_     noCopy
	slots []T
}

// NewBuffer allocates a block of n zero-valued slots. If n == 0 the buffer
// stays empty. Panics if n < 0.
func NewBuffer[T any](n int) Buffer[T] {
	return Buffer[T]{slots: allocSlots[T](n)}
}

// AdoptBuffer takes ownership of slots. The caller must not use slots
// through any other owner afterward. Any spare capacity beyond len(slots)
// is not part of the adopted block.
func AdoptBuffer[T any](slots []T) Buffer[T] {
	if len(slots) == 0 {
		return Buffer[T]{}
	}
	return Buffer[T]{slots: slots[:len(slots):len(slots)]}
}

// Valid reports whether the buffer currently owns a block.
func (b *Buffer[T]) Valid() bool {
	return b.slots != nil
}

// Len returns the number of allocated slots, 0 for an empty buffer.
func (b *Buffer[T]) Len() int {
	return len(b.slots)
}

// Get returns the owned block without giving up ownership.
func (b *Buffer[T]) Get() []T {
	return b.slots
}

// Index returns slot i. The caller guarantees 0 <= i < Len().
func (b *Buffer[T]) Index(i int) T {
	return b.slots[i]
}

// Ref returns a pointer to slot i. The caller guarantees 0 <= i < Len().
func (b *Buffer[T]) Ref(i int) *T {
	return &b.slots[i]
}

// Set stores x in slot i. The caller guarantees 0 <= i < Len().
func (b *Buffer[T]) Set(i int, x T) {
	b.slots[i] = x
}

// Release gives up ownership of the block and returns it. The buffer is
// empty afterwards.
func (b *Buffer[T]) Release() []T {
	s := b.slots
	b.slots = nil
	return s
}

// Move transfers the block into a new Buffer and leaves b empty.
func (b *Buffer[T]) Move() Buffer[T] {
	return Buffer[T]{slots: b.Release()}
}

// Swap exchanges the blocks owned by b and other. It never allocates.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Free drops the owned block. Calling Free on an empty buffer is a no-op.
func (b *Buffer[T]) Free() {
	b.slots = nil
}
