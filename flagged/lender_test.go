package flagged_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/violin0622/lendcell/flagged"
)

func TestLender_Value(t *testing.T) {
	l := flagged.New("payload")
	require.Equal(t, "payload", *l.Value())
	l.Close()
}

func TestLender_BorrowSharesStorage(t *testing.T) {
	l := flagged.New(7)
	b := l.Lend()

	require.Same(t, l.Value(), b.Value())
	require.Equal(t, 7, *b.Value())

	b.Release()
	l.Close()
}

func TestLender_LendDeref(t *testing.T) {
	v := 99
	l := flagged.New(&v)
	b := flagged.LendDeref(l)

	// The borrow addresses the pointee, not the pointer slot.
	require.Same(t, &v, b.Value())

	b.Release()
	l.Close()
}

func TestLender_CloneFamily(t *testing.T) {
	l := flagged.New("shared")
	b := l.Lend()

	clones := make([]*flagged.Borrow[string], 8)
	for i := range clones {
		clones[i] = b.Clone()
	}
	for _, c := range clones {
		require.Equal(t, "shared", *c.Value())
		c.Release()
	}
	b.Release()

	l.Close()
}

func TestLender_CrossGoroutineReads(t *testing.T) {
	l := flagged.New(4)
	r1 := make(chan int, 1)
	r2 := make(chan int, 1)

	var wg sync.WaitGroup
	b1 := l.Lend()
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer b1.Release()
		r1 <- *b1.Value()
	}()
	b2 := l.Lend()
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer b2.Release()
		r2 <- *b2.Value()
	}()

	// Releases must land before Close, or verification builds would trip.
	wg.Wait()

	require.Equal(t, 4, <-r1)
	require.Equal(t, 4, <-r2)
	l.Close()
}

func TestLender_ConcurrentOrderedTeardown(t *testing.T) {
	const goroutines = 8

	l := flagged.New(uint64(0xdeadbeef))

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				b := l.Lend()
				c := b.Clone()
				if *b.Value() != 0xdeadbeef || *c.Value() != 0xdeadbeef {
					panic("borrow observed a torn value")
				}
				c.Release()
				b.Release()
			}
		}()
	}
	wg.Wait()

	// Every borrow was released before Close, so this must be silent in
	// both checked and unchecked builds.
	l.Close()
}
