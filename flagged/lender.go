// Package flagged implements the flag-based lending strategy.
//
// The lender keeps a single atomic alive flag, cleared once at Close.
// Issuing, cloning and releasing a borrow are pure copies with no atomic
// operations at all; borrows consult the flag only in verification builds
// (build tag "lendverify"). In regular builds nothing stops a borrow from
// outliving its lender — lifetime discipline is the caller's obligation, and
// the checks are a development aid, not a guarantee.
package flagged

import (
	"runtime"
	"sync/atomic"

	"github.com/go-logr/logr"

	"github.com/violin0622/lendcell"
	"github.com/violin0622/lendcell/internal/verify"
)

// Lender owns a value and an alive flag its borrows can verify against.
type Lender[T any] struct {
	value T
	alive atomic.Bool
	log   logr.Logger
}

var _ lendcell.Lender[int, *Borrow[int]] = (*Lender[int])(nil)

// New wraps value in a live Lender.
func New[T any](value T, opts ...Option[T]) *Lender[T] {
	l := &Lender[T]{
		value: value,
		log:   logr.Discard(),
	}
	l.alive.Store(true)
	for _, o := range opts {
		o(l)
	}
	return l
}

// Value returns the owned value directly.
func (l *Lender[T]) Value() *T {
	return &l.value
}

// Lend issues a borrow. Unlike the counted strategy this is a free copy of
// two addresses; nothing records that the borrow exists.
func (l *Lender[T]) Lend() *Borrow[T] {
	return &Borrow[T]{value: &l.value, alive: &l.alive}
}

// LendDeref issues a borrow of the value a pointer-holding lender points at,
// rather than of the pointer slot itself.
func LendDeref[T any](l *Lender[*T]) *Borrow[T] {
	return &Borrow[T]{value: l.value, alive: &l.alive}
}

// Close marks the lender as torn down. The transition is one-way and does
// not wait for outstanding borrows; any that remain are already a caller
// error, observable only in verification builds.
func (l *Lender[T]) Close() {
	l.alive.Store(false)
	l.log.V(1).Info(`Lender closed.`)
	if verify.Enabled {
		// Give in-flight accesses on other goroutines a window to observe
		// the flag before the caller reuses the value. Best effort only.
		runtime.Gosched()
	}
}
