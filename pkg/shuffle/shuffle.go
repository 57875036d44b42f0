package shuffle

import (
	"github.com/veilbyte/obfus/pkg/prng"
)

// FisherYates performs seeded, reversible Fisher-Yates shuffling.
// It is immutable after construction and safe to copy; the same value can
// shuffle any number of buffers.
//
// Reference: https://en.wikipedia.org/wiki/Fisher%E2%80%93Yates_shuffle
type FisherYates struct {
	key  uint64
	seed uint64
}

// WithSeed creates a shuffler with the provided seed and the library-wide
// default generator key.
func WithSeed(seed uint64) FisherYates {
	return WithKeySeed(prng.DefaultKey, seed)
}

// WithKeySeed creates a shuffler with a caller-supplied generator key.
// Both key and seed must be retained to reverse the permutation.
func WithKeySeed(key, seed uint64) FisherYates {
	return FisherYates{
		key:  key,
		seed: seed,
	}
}

// Shuffle permutes data in place and returns it.
// An empty slice is returned unchanged.
func (f FisherYates) Shuffle(data []byte) []byte {
	size := uint64(len(data))
	if size == 0 {
		return data
	}
	gen := prng.WithKey(f.key, f.seed)
	for idx := range data {
		swap := gen.Next() % size
		// swap may equal idx; the parallel assignment is a no-op then.
		data[idx], data[swap] = data[swap], data[idx]
	}
	return data
}

// Reverse undoes Shuffle in place and returns data.
// It replays the generator from seed+len-1 downward (wrapping), visiting
// positions in the opposite order, so each transposition is undone exactly.
func (f FisherYates) Reverse(data []byte) []byte {
	size := uint64(len(data))
	if size == 0 {
		return data
	}
	gen := prng.WithKey(f.key, f.seed+size-1)
	for idx := len(data) - 1; idx >= 0; idx-- {
		swap := gen.Back() % size
		data[idx], data[swap] = data[swap], data[idx]
	}
	return data
}

// Shuffled returns a shuffled copy of data, leaving the input untouched.
func (f FisherYates) Shuffled(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	return f.Shuffle(out)
}

// Reversed returns an unshuffled copy of data, leaving the input untouched.
func (f FisherYates) Reversed(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	return f.Reverse(out)
}
