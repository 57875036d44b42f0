package secure

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/veilbyte/obfus/pkg/wipe"
)

// KeySize is the cipher key length in bytes. Both supported ciphers take
// 256-bit keys.
const KeySize = 32

// Crypto encrypts and decrypts the contents of a Buffer in place.
type Crypto struct {
	aead cipher.AEAD
}

// NewCrypto creates a Crypto using AES-256-GCM with the provided key.
func NewCrypto(key [KeySize]byte) (*Crypto, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Crypto{aead: gcm}, nil
}

// NewChaCha20Poly1305 creates a Crypto using ChaCha20-Poly1305 with the
// provided key. The nonce and tag sizes match AES-256-GCM, so the Buffer
// contract is identical.
func NewChaCha20Poly1305(key [KeySize]byte) (*Crypto, error) {
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, err
	}
	return &Crypto{aead: aead}, nil
}

// Encrypt seals the staged contents of buf in place, appending a TagSize
// authentication tag and advancing the length accordingly.
// It fails with ErrBufferOverflow if the tag would not fit in the remaining
// capacity, which means buf was not sized with RequiredSize.
func (c *Crypto) Encrypt(nonce [NonceSize]byte, buf *Buffer) error {
	if TagSize > buf.Cap()-buf.Len() {
		return fmt.Errorf("%w: no room to append a %d byte tag", ErrBufferOverflow, TagSize)
	}
	sealed := c.aead.Seal(buf.data[:0], nonce[:], buf.Data(), nil)
	buf.n = len(sealed)
	return nil
}

// Decrypt verifies and strips the authentication tag of buf.
// On success the plaintext replaces the staged ciphertext and the length
// shrinks by TagSize through the zeroing truncate, so no tag or ciphertext
// bytes remain readable past the plaintext.
//
// On failure it returns ErrAuthentication and the buffer is unchanged.
// Decryption runs through a transient scratch slice rather than directly
// over the storage: the accelerated GCM implementations decrypt before
// comparing tags and zero their output on mismatch, which would destroy
// the staged ciphertext and rule out retrying with the right nonce.
// The scratch is wiped before returning.
func (c *Crypto) Decrypt(nonce [NonceSize]byte, buf *Buffer) error {
	scratch := make([]byte, 0, buf.Len())
	opened, err := c.aead.Open(scratch, nonce[:], buf.Data(), nil)
	if err != nil {
		wipe.Zero(scratch[:cap(scratch)])
		return fmt.Errorf("%w: %v", ErrAuthentication, err)
	}
	copy(buf.data, opened)
	wipe.Zero(opened)
	buf.Truncate(len(opened))
	return nil
}
