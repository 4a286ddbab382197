//go:build vectordebug

package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugAssertions(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"Index past size", func() { v := WithCapacity[int](4); v.PushBack(1); v.Index(1) }},
		{"Ref negative", func() { Of(1).Ref(-1) }},
		{"Set past size", func() { Of(1, 2).Set(2, 0) }},
		{"InsertAt past end", func() { Of(1).InsertAt(2, 0) }},
		{"EraseAt end", func() { Of(1).EraseAt(1) }},
		{"EraseAt on empty", func() { WithCapacity[int](2).EraseAt(0) }},
		{"stale iterator", func() {
			v := Of(1, 2)
			it := v.Begin()
			v.PushBack(3) // reallocates
			v.Insert(it, 0)
		}},
		{"foreign iterator", func() {
			a, b := Of(1), Of(2)
			a.Erase(b.Begin())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, tt.fn)
		})
	}
}

func TestDebugAssertionsAllowValidUse(t *testing.T) {
	v := WithCapacity[int](4)
	assert.NotPanics(t, func() {
		it := v.Insert(v.End(), 1)
		it = v.Insert(it, 0)
		v.Erase(it)
		v.InsertAt(v.Size(), 2)
		_ = v.Index(v.Size() - 1)
	})
}
