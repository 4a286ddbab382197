package vector

import "testing"

func TestNewBuffer(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		valid bool
	}{
		{"empty", 0, false},
		{"single", 1, true},
		{"several", 16, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer[int](tt.n)
			if b.Valid() != tt.valid {
				t.Errorf("NewBuffer(%d).Valid() = %v, want %v", tt.n, b.Valid(), tt.valid)
			}
			if b.Len() != tt.n {
				t.Errorf("NewBuffer(%d).Len() = %d, want %d", tt.n, b.Len(), tt.n)
			}
			for i := 0; i < b.Len(); i++ {
				if b.Index(i) != 0 {
					t.Errorf("slot %d = %d, want 0", i, b.Index(i))
				}
			}
		})
	}
}

func TestBufferZeroValue(t *testing.T) {
	var b Buffer[string]
	if b.Valid() {
		t.Error("zero Buffer should not be valid")
	}
	if b.Get() != nil {
		t.Error("zero Buffer should own no block")
	}
	b.Free() // no-op
	if b.Release() != nil {
		t.Error("Release on empty buffer should return nil")
	}
}

func TestBufferIndexedAccess(t *testing.T) {
	b := NewBuffer[int](3)
	b.Set(0, 10)
	*b.Ref(1) = 20
	b.Get()[2] = 30

	for i, want := range []int{10, 20, 30} {
		if got := b.Index(i); got != want {
			t.Errorf("Index(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestAdoptBuffer(t *testing.T) {
	raw := make([]int, 3, 10)
	raw[0], raw[1], raw[2] = 1, 2, 3

	b := AdoptBuffer(raw)
	if !b.Valid() || b.Len() != 3 {
		t.Fatalf("AdoptBuffer: Valid=%v Len=%d, want true 3", b.Valid(), b.Len())
	}
	if cap(b.Get()) != 3 {
		t.Errorf("adopted block cap = %d, want 3", cap(b.Get()))
	}
	if b.Index(2) != 3 {
		t.Errorf("Index(2) = %d, want 3", b.Index(2))
	}

	empty := AdoptBuffer[int](nil)
	if empty.Valid() {
		t.Error("AdoptBuffer(nil) should be empty")
	}
	empty = AdoptBuffer([]int{})
	if empty.Valid() {
		t.Error("AdoptBuffer of an empty slice should be empty")
	}
}

func TestBufferRelease(t *testing.T) {
	b := NewBuffer[int](4)
	b.Set(3, 7)

	block := b.Release()
	if len(block) != 4 || block[3] != 7 {
		t.Errorf("Release returned %v, want 4 slots ending in 7", block)
	}
	if b.Valid() {
		t.Error("buffer should be empty after Release")
	}
	if b.Len() != 0 {
		t.Errorf("Len after Release = %d, want 0", b.Len())
	}
}

func TestBufferMove(t *testing.T) {
	src := NewBuffer[int](2)
	src.Set(0, 5)
	block := src.Get()

	dst := src.Move()
	if src.Valid() {
		t.Error("source should be empty after Move")
	}
	if !dst.Valid() || dst.Index(0) != 5 {
		t.Error("destination should own the moved block")
	}
	if &dst.Get()[0] != &block[0] {
		t.Error("Move should transfer the block, not copy it")
	}

	// Moving from an empty buffer yields an empty buffer.
	again := src.Move()
	if again.Valid() {
		t.Error("Move of empty buffer should be empty")
	}
}

func TestBufferSwap(t *testing.T) {
	a := NewBuffer[int](1)
	b := NewBuffer[int](3)
	a.Set(0, 1)
	b.Set(0, 2)

	a.Swap(&b)
	if a.Len() != 3 || a.Index(0) != 2 {
		t.Errorf("after Swap a = %v, want 3 slots starting with 2", a.Get())
	}
	if b.Len() != 1 || b.Index(0) != 1 {
		t.Errorf("after Swap b = %v, want [1]", b.Get())
	}

	a.Swap(&a)
	if a.Len() != 3 || a.Index(0) != 2 {
		t.Error("self Swap should be a no-op")
	}

	var empty Buffer[int]
	a.Swap(&empty)
	if a.Valid() || !empty.Valid() {
		t.Error("Swap with empty buffer should exchange ownership")
	}
}

func TestBufferFree(t *testing.T) {
	b := NewBuffer[int](8)
	b.Free()
	if b.Valid() {
		t.Error("buffer should be empty after Free")
	}
	b.Free() // second Free is a no-op
	if b.Valid() {
		t.Error("buffer should stay empty")
	}
}
