package lendcell

// Borrow is a non-owning, goroutine-sendable read handle issued by a Lender.
// B is the implementation's own borrow type, so Clone stays concrete and
// allocation decisions stay with the implementation.
type Borrow[T any, B any] interface {
	Value() *T
	Clone() B
	Release()
}

// Lender owns a value and issues Borrows against it. Close tears the lender
// down; what happens to borrows still outstanding at that point is the
// strategy's defining trade-off.
type Lender[T any, B Borrow[T, B]] interface {
	Value() *T
	Lend() B
	Close()
}
