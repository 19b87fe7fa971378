//go:build !tlsfdebug

package debug

// Enabled reports whether contract assertions are compiled in.
const Enabled = false
