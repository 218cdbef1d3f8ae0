package counted

import "sync/atomic"

// Stats is a read-only snapshot of a lender's borrow traffic.
// Use Lender.Stats() to obtain a snapshot that can be exported
// to any monitoring system (Prometheus, OpenTelemetry, StatsD, etc.).
type Stats struct {
	Lent        int64 // Borrows issued by Lend and LendDeref
	Cloned      int64 // Borrows created by Clone
	Released    int64 // Borrows released
	Outstanding int64 // Borrows currently live
}

// stats uses atomic counters for thread-safe statistics collection.
type stats struct {
	lends    atomic.Int64
	clones   atomic.Int64
	releases atomic.Int64
}

// snapshot returns a read-only copy of current statistics.
func (l *liveness) snapshot() Stats {
	return Stats{
		Lent:        l.s.lends.Load(),
		Cloned:      l.s.clones.Load(),
		Released:    l.s.releases.Load(),
		Outstanding: l.outstanding.Load(),
	}
}

func (c *stats) lent()     { c.lends.Add(1) }
func (c *stats) cloned()   { c.clones.Add(1) }
func (c *stats) released() { c.releases.Add(1) }
