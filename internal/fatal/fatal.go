// Package fatal terminates the process on lifetime-invariant violations.
//
// A detected violation means a borrow may already alias torn-down state, so
// the only sound continuation is no continuation: the default handler writes
// the message and a stack trace to stderr and exits. No error value travels
// up a call chain and nothing is catchable.
package fatal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// Fatalf reports a lifetime-invariant violation and must not return. It is a
// variable only so the violation paths themselves can be exercised in tests;
// a test replacement should panic to preserve the no-return property.
var Fatalf = func(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "lendcell: "+format+"\n", args...)
	os.Stderr.Write(debug.Stack())
	os.Exit(2)
}
