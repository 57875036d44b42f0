// Package wipe provides forced overwrites of sensitive memory.
package wipe

import "runtime"

// Memset overwrites every byte of data with value.
//
// The region stays reachable until the stores complete thanks to
// runtime.KeepAlive, so the compiler cannot discard the writes as dead
// stores even when the slice is about to be freed or reassigned.
// This is the accepted Go pattern for zeroization (golang/go#33325).
// A zero-length slice is a no-op.
func Memset(data []byte, value byte) {
	if len(data) == 0 {
		return
	}
	for i := range data {
		data[i] = value
	}
	runtime.KeepAlive(data)
}

// Zero overwrites every byte of data with zero.
func Zero(data []byte) {
	Memset(data, 0)
}
