package secure

import (
	"errors"
	"fmt"

	"github.com/veilbyte/obfus/pkg/wipe"
)

const (
	// TagSize is the length of the authentication tag appended by Encrypt.
	TagSize = 16
	// NonceSize is the nonce length required by both supported ciphers.
	NonceSize = 12
)

var (
	ErrBufferOverflow = errors.New("buffer capacity exceeded")
	ErrAuthentication = errors.New("message authentication failed")
)

// RequiredSize returns the buffer capacity needed to encrypt payloadLen
// bytes in place: the payload plus the authentication tag.
func RequiredSize(payloadLen int) int {
	return payloadLen + TagSize
}

// Buffer is a fixed-capacity byte container for staging in-place encryption.
// Capacity is fixed at construction; the logical length grows by Append and
// shrinks only through the zeroing Truncate.
type Buffer struct {
	data []byte
	n    int
}

// NewBuffer creates a Buffer with the given capacity, which should be
// calculated using RequiredSize. It panics if capacity is not greater than
// TagSize, since such a buffer could never hold an encrypted payload.
func NewBuffer(capacity int) *Buffer {
	if capacity <= TagSize {
		panic(fmt.Sprintf("secure: buffer capacity %d cannot hold a %d byte tag and payload", capacity, TagSize))
	}
	return &Buffer{
		data: make([]byte, capacity),
	}
}

// Append copies p into the buffer after the current contents.
// It fails with ErrBufferOverflow, leaving the buffer untouched, if p does
// not fit in the remaining capacity. Appending an empty slice always
// succeeds, including at full capacity.
func (b *Buffer) Append(p []byte) error {
	remaining := len(b.data) - b.n
	if len(p) > remaining {
		return fmt.Errorf("%w: %d bytes into %d remaining", ErrBufferOverflow, len(p), remaining)
	}
	copy(b.data[b.n:], p)
	b.n += len(p)
	return nil
}

// Truncate shrinks the logical length to n, zeroing the freed region before
// it becomes unreachable. Truncate never grows the buffer: values at or
// above the current length are a no-op, and a negative n is treated as 0,
// clearing everything.
func (b *Buffer) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= b.n {
		return
	}
	wipe.Zero(b.data[n:b.n])
	b.n = n
}

// Data returns the written portion of the buffer. The slice aliases the
// buffer's storage; mutations are visible to subsequent operations.
func (b *Buffer) Data() []byte {
	return b.data[:b.n]
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	return b.n
}

// Cap returns the fixed total capacity.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// IsEmpty reports whether no bytes have been written.
func (b *Buffer) IsEmpty() bool {
	return b.n == 0
}
