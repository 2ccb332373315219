// Package debug provides a process-wide toggle gating diagnostic output
// of the hash dispatch engine, off by default so the row loops carry no
// logging cost in production.
package debug

import (
	"log"
	"sync/atomic"
)

var enabled int32 = 0

// Toggle turns diagnostic output on or off.
func Toggle(on bool) {
	val := int32(0)
	if on {
		val = 1
	}
	atomic.StoreInt32(&enabled, val)
}

// Do runs f only when diagnostics are enabled, for side effects too
// expensive to compute unconditionally.
func Do(f func()) {
	if atomic.LoadInt32(&enabled) != 1 {
		return
	}
	f()
}

// Format writes a formatted log line to stderr when diagnostics are
// enabled.
func Format(format string, args ...interface{}) {
	if atomic.LoadInt32(&enabled) != 1 {
		return
	}
	log.Printf(format, args...)
}
