package counted

import (
	"github.com/violin0622/lendcell"
	"github.com/violin0622/lendcell/internal/fatal"
)

// Borrow is a two-word read handle: the borrowed value and the lender's
// liveness state. It owns neither; it only reads through the first and
// accounts itself in the second.
type Borrow[T any] struct {
	value *T
	live  *liveness
}

var _ lendcell.Borrow[int, *Borrow[int]] = (*Borrow[int])(nil)

// Value returns the borrowed value. There is no per-access check; the count
// is the guard, enforced at the lender's Close.
func (b *Borrow[T]) Value() *T {
	return b.value
}

// Clone issues another borrow of the same value, incrementing the count.
// Clones may race freely with releases of other borrows in the same family.
func (b *Borrow[T]) Clone() *Borrow[T] {
	b.live.outstanding.Add(1)
	b.live.s.cloned()
	return &Borrow[T]{value: b.value, live: b.live}
}

// Release returns the borrow to its lender. Each borrow must be released
// exactly once; a second release would let the count reach zero while other
// borrows are still live, so it is treated as fatal.
func (b *Borrow[T]) Release() {
	b.live.s.released()
	if n := b.live.outstanding.Add(-1); n < 0 {
		fatal.Fatalf("counted: borrow released more times than it was lent")
	}
}
