/*
Package secure provides a fixed-capacity staging buffer for in-place
authenticated encryption, together with an AEAD wrapper and passphrase key
derivation.

# How it works:

Plaintext is staged into a Buffer sized with RequiredSize, which reserves
room for the cipher's 16-byte authentication tag on top of the payload.
Crypto.Encrypt seals the staged bytes in place, appending the tag;
Crypto.Decrypt verifies and strips the tag in place. Every shrink of the
buffer's logical length routes through a zeroing truncate, so bytes that
leave the valid range are observably cleared rather than merely marked
invalid. This matters when the freed tail held tag or ciphertext bytes that
should not remain readable after a successful decrypt.

Keys can be derived from a passphrase with KeyGenerator, which uses scrypt.
Scrypt is memory and CPU hard, so brute forcing the passphrase from a
captured salt is impractical with sufficient tuning values.

# General guidelines:
  - Size buffers with RequiredSize(len(payload)); constructing a buffer
    whose capacity can't even hold a tag is a programming error and panics.
  - A nonce must never repeat for a given key. This package does not manage
    nonces; callers own that contract.
  - AES-256-GCM is the default cipher, matching the best stdlib support.
    NewChaCha20Poly1305 offers the same buffer contract on platforms
    without AES hardware acceleration.
  - Buffer is not safe for concurrent use; give each goroutine its own.
*/
package secure
