package flagged

import "github.com/go-logr/logr"

type Option[T any] func(*Lender[T])

func WithLogr[T any](l logr.Logger) Option[T] {
	return func(c *Lender[T]) { c.log = l }
}
