/*
Package secret provides a tagged container for sensitive values that is
guaranteed to be wiped on release.

A Secret holds either raw binary data or UTF-8 text; the variant is fixed
at construction and there is no third kind. Go has no destructors, so
release is the explicit Destroy method, which forces a zeroing overwrite of
the full storage. Pair construction with a deferred Destroy:

	s, ok := secret.NewText(raw)
	if !ok {
		return errInvalidSecret
	}
	defer s.Destroy()

For secrets that must outlive a scope, Seal moves the contents into a
memguard Enclave, which keeps them encrypted in memory until opened.
*/
package secret

import (
	"unicode/utf8"

	"github.com/veilbyte/obfus/pkg/wipe"
)

// Kind discriminates the two secret variants.
type Kind uint8

const (
	// Binary marks a secret holding raw binary data.
	Binary Kind = iota
	// Text marks a secret holding UTF-8 text.
	Text
)

// Secret is a fixed-size secret value, wiped in full by Destroy.
// It is not safe for concurrent use.
type Secret struct {
	data      []byte
	kind      Kind
	destroyed bool
}

// NewBinary creates a Binary secret holding a copy of data.
func NewBinary(data []byte) *Secret {
	s := &Secret{
		data: make([]byte, len(data)),
		kind: Binary,
	}
	copy(s.data, data)
	return s
}

// NewText creates a Text secret holding a copy of data, validating that it
// is well-formed UTF-8. It reports false, creating nothing, otherwise.
func NewText(data []byte) (*Secret, bool) {
	if !utf8.Valid(data) {
		return nil, false
	}
	return newText(data), true
}

// NewTextUnchecked creates a Text secret without validating the content.
// The caller is responsible for ensuring data is well-formed UTF-8.
func NewTextUnchecked(data []byte) *Secret {
	return newText(data)
}

func newText(data []byte) *Secret {
	s := &Secret{
		data: make([]byte, len(data)),
		kind: Text,
	}
	copy(s.data, data)
	return s
}

// Kind returns the variant fixed at construction.
func (s *Secret) Kind() Kind {
	return s.kind
}

// Len returns the size of the secret in bytes, or 0 once destroyed.
func (s *Secret) Len() int {
	return len(s.data)
}

// Bytes returns the secret's raw bytes, or nil once destroyed.
// The slice aliases the secret's storage and is invalidated by Destroy;
// callers must not retain it past the secret's lifetime.
func (s *Secret) Bytes() []byte {
	if s.destroyed {
		return nil
	}
	return s.data
}

// Str returns the secret as a string for Text secrets.
// It reports false for Binary secrets and destroyed secrets.
// Go strings are immutable copies that cannot be wiped afterwards; prefer
// Bytes when zeroization of every view matters.
func (s *Secret) Str() (string, bool) {
	if s.destroyed || s.kind != Text {
		return "", false
	}
	return string(s.data), true
}

// Destroy wipes the full storage and releases it.
// Safe to call multiple times.
func (s *Secret) Destroy() {
	if s.destroyed {
		return
	}
	wipe.Zero(s.data)
	s.data = nil
	s.destroyed = true
}

// IsDestroyed reports whether the secret has been destroyed.
func (s *Secret) IsDestroyed() bool {
	return s.destroyed
}
