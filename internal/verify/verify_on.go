//go:build lendverify

// Package verify selects between checked and unchecked builds.
package verify

// Enabled reports whether lifetime checks are compiled in. It is a constant
// so that in unchecked builds every guarded check is eliminated outright,
// branch and atomic load included.
const Enabled = true
