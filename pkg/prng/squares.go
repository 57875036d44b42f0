// Package prng implements the Squares counter-based pseudo-random generator.
//
// Output depends only on a key and a counter, so a sequence of draws can be
// replayed exactly, forward or backward, from any starting counter. This is
// what makes it suitable for driving reversible transformations like the
// shuffle package. It is NOT a cryptographically secure generator and must
// never be used to produce key material.
//
// Reference: https://arxiv.org/abs/2004.06278v7
package prng

import "math/bits"

// DefaultKey is the library-wide Squares key.
// Keys should have an irregular bit pattern with roughly equal numbers of
// ones and zeros.
const DefaultKey uint64 = 0x7d8b63f54b86ca59

// Draw computes the Squares output for a given key and counter.
// Identical inputs always yield identical output. All arithmetic wraps.
func Draw(key, counter uint64) uint64 {
	x := counter * key
	y := x
	z := y + key

	x = x*x + y
	x = bits.RotateLeft64(x, 32)

	x = x*x + z
	x = bits.RotateLeft64(x, 32)

	x = x*x + y
	x = bits.RotateLeft64(x, 32)

	x = x*x + z
	t := x
	x = bits.RotateLeft64(x, 32)

	return t ^ (x*x+y)>>32
}

// Squares is a stateful wrapper around Draw that advances or retreats an
// internal counter. It is a plain value type: copies are independent, and
// a single instance must not be shared between goroutines without external
// synchronization.
type Squares struct {
	key     uint64
	counter uint64
}

// New creates a generator using DefaultKey and the provided counter.
func New(counter uint64) Squares {
	return WithKey(DefaultKey, counter)
}

// WithKey creates a generator using the provided key and counter.
func WithKey(key, counter uint64) Squares {
	return Squares{
		key:     key,
		counter: counter,
	}
}

// Next returns the draw at the current counter, then increments the counter.
// The counter wraps on overflow.
func (s *Squares) Next() uint64 {
	result := Draw(s.key, s.counter)
	s.counter++
	return result
}

// Back returns the draw at the current counter, then decrements the counter.
// The counter wraps on underflow.
//
// A forward sequence of draws at counters c, c+1, ... c+n-1 is replayed in
// reverse by starting a fresh generator at c+n-1 and calling Back n times.
func (s *Squares) Back() uint64 {
	result := Draw(s.key, s.counter)
	s.counter--
	return result
}
