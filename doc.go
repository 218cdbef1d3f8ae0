// Package lendcell provides cross-goroutine lending of a value without
// shared ownership.
//
// # Overview
//
// A Lender owns a value and hands out lightweight Borrows: read-only handles
// that other goroutines may hold and dereference concurrently. A Borrow never
// owns or copies the value; it is a back-reference whose validity is entirely
// derivative of its lender's lifetime. The whole point of the package is the
// invariant "a borrow must never observe the value after its lender was
// closed", enforced with one of two strategies:
//
//   - counted: the lender keeps an atomic count of outstanding borrows.
//     Closing a lender while the count is non-zero is a fatal programming
//     error and terminates the process. Enforcement is unconditional.
//   - flagged: the lender keeps a single atomic alive flag. Borrows check it
//     only in verification builds; in regular builds lending, cloning and
//     releasing a borrow cost nothing at all. Lifetime discipline is the
//     caller's obligation.
//
// Pick exactly one strategy per call site by importing either
// [github.com/violin0622/lendcell/counted] or
// [github.com/violin0622/lendcell/flagged]. The two packages export the same
// API, so switching strategies is an import-path change. This package only
// defines the contract both satisfy.
//
// # Basic Usage
//
//	lender := counted.New(config)
//	defer lender.Close()
//
//	borrow := lender.Lend()
//	done := make(chan struct{})
//	go func() {
//		defer close(done)
//		defer borrow.Release()
//		use(*borrow.Value())
//	}()
//	<-done
//
// Every Lend, LendDeref and Clone must be paired with exactly one Release,
// and every Release must happen before Close — hence the join on done above.
//
// # Choosing a Strategy
//
// The counted strategy converts a use-after-close into a deterministic
// process abort at the owner's Close, in every build. It pays one atomic
// add per lend, clone and release.
//
// The flagged strategy pays nothing per operation. In verification builds
// (build tag "lendverify") each access and release loads the alive flag and
// aborts if the lender is already closed; in regular builds the checks are
// compiled out entirely and a lifetime violation goes undetected. Use it
// where the lifetime ordering is structurally obvious and the borrow path is
// hot.
//
// # Read-Only Contract
//
// Value returns a pointer so that no payload copy is ever made, but the
// sharing contract is read-only: mutating the value while borrows are
// outstanding is a data race. The liveness state is the only location the
// package itself mutates concurrently, and it is only ever touched through
// atomic operations.
//
// # Fatal Violations
//
// A detected lifetime violation terminates the process; it is not a
// recoverable error and is deliberately not surfaced as one. Once a borrow
// may alias torn-down state there is nothing sound left to recover to.
//
// # Statistics
//
// The counted strategy exposes borrow traffic via the Stats() method:
//
//	stats := lender.Stats()
//	fmt.Printf("Lent: %d, Outstanding: %d\n", stats.Lent, stats.Outstanding)
//
// The flagged strategy keeps no statistics: any counter on its hot path
// would reintroduce the synchronization the strategy exists to avoid.
package lendcell
