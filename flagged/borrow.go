package flagged

import (
	"sync/atomic"

	"github.com/violin0622/lendcell"
	"github.com/violin0622/lendcell/internal/fatal"
	"github.com/violin0622/lendcell/internal/verify"
)

// Borrow is a two-word read handle: the borrowed value and the lender's
// alive flag. It owns neither.
type Borrow[T any] struct {
	value *T
	alive *atomic.Bool
}

var _ lendcell.Borrow[int, *Borrow[int]] = (*Borrow[int])(nil)

// Value returns the borrowed value. In verification builds an access after
// the lender was closed is fatal; in regular builds the check does not exist
// and the access is unconditional.
func (b *Borrow[T]) Value() *T {
	if verify.Enabled && !b.alive.Load() {
		fatal.Fatalf("flagged: borrow used after its lender was closed")
	}
	return b.value
}

// Clone copies the handle. No bookkeeping of any kind.
func (b *Borrow[T]) Clone() *Borrow[T] {
	return &Borrow[T]{value: b.value, alive: b.alive}
}

// Release ends the borrow. In verification builds releasing after the lender
// was closed is fatal, since it proves the borrow outlived its lender; in
// regular builds this is a no-op.
func (b *Borrow[T]) Release() {
	if verify.Enabled && !b.alive.Load() {
		fatal.Fatalf("flagged: borrow released after its lender was closed")
	}
}
