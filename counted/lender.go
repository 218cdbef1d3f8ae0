// Package counted implements the reference-counted lending strategy.
//
// The lender keeps an atomic count of outstanding borrows: Lend and Clone
// increment it, Release decrements it, and Close aborts the process if it is
// non-zero. A borrow that outlives its lender is therefore caught in every
// build, deterministically, at the owner's teardown point instead of at the
// borrower's access point.
package counted

import (
	"sync/atomic"

	"github.com/go-logr/logr"

	"github.com/violin0622/lendcell"
	"github.com/violin0622/lendcell/internal/fatal"
)

// liveness is the state a Borrow points back into: the outstanding-borrow
// count, plus the traffic counters behind Stats. The count is the invariant
// carrier; the counters are bookkeeping.
type liveness struct {
	outstanding atomic.Int64
	s           stats
}

// Lender owns a value and counts the borrows issued against it.
type Lender[T any] struct {
	value       T
	live        liveness
	log         logr.Logger
	onViolation []func()
}

var _ lendcell.Lender[int, *Borrow[int]] = (*Lender[int])(nil)

// New wraps value in a Lender with no outstanding borrows.
func New[T any](value T, opts ...Option[T]) *Lender[T] {
	l := &Lender[T]{
		value: value,
		log:   logr.Discard(),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Value returns the owned value directly, without touching the count.
func (l *Lender[T]) Value() *T {
	return &l.value
}

// Lend issues a borrow that may be sent to and read from other goroutines.
// The borrow must be released before the lender is closed.
func (l *Lender[T]) Lend() *Borrow[T] {
	l.live.outstanding.Add(1)
	l.live.s.lent()
	return &Borrow[T]{value: &l.value, live: &l.live}
}

// LendDeref issues a borrow of the value a pointer-holding lender points at,
// rather than of the pointer slot itself. It saves the double indirection in
// the common "lend something I already hold by pointer" pattern.
func LendDeref[T any](l *Lender[*T]) *Borrow[T] {
	l.live.outstanding.Add(1)
	l.live.s.lent()
	return &Borrow[T]{value: l.value, live: &l.live}
}

// Close tears the lender down. If any borrow is still outstanding this is a
// fatal lifetime violation: the onViolation callbacks run, the violation is
// logged, and the process terminates. Close with a zero count is a no-op and
// may be repeated.
func (l *Lender[T]) Close() {
	if n := l.live.outstanding.Load(); n != 0 {
		for _, f := range l.onViolation {
			f()
		}
		l.log.Error(nil, `Borrow outlives its lender.`, `outstanding`, n)
		fatal.Fatalf("counted: %d borrow(s) outlive the lender that issued them", n)
	}
}

// Stats returns a snapshot of the borrow traffic on this lender.
// The returned struct is a copy and safe to use without synchronization.
func (l *Lender[T]) Stats() Stats {
	return l.live.snapshot()
}
