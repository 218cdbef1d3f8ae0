package counted

import "github.com/go-logr/logr"

type Option[T any] func(*Lender[T])

func WithLogr[T any](l logr.Logger) Option[T] {
	return func(c *Lender[T]) { c.log = l }
}

// WithOnViolation registers callbacks to run just before the process aborts
// on a lifetime violation, e.g. to flush logs. They must not assume the
// process survives them.
func WithOnViolation[T any](fn ...func()) Option[T] {
	return func(c *Lender[T]) {
		c.onViolation = append(c.onViolation, fn...)
	}
}
