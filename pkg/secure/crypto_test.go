package secure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testKey() (key [KeySize]byte) {
	for i := range key {
		key[i] = 1
	}
	return key
}

func TestCryptoRoundTrip(t *testing.T) {
	const data = "data"
	nonce := [NonceSize]byte{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2}

	crypto, err := NewCrypto(testKey())
	assert.NoError(t, err)

	buffer := NewBuffer(RequiredSize(len(data)))
	assert.NoError(t, buffer.Append([]byte(data)))

	assert.NoError(t, crypto.Encrypt(nonce, buffer))
	assert.Equal(t, RequiredSize(len(data)), buffer.Len())
	assert.NotEqual(t, []byte(data), buffer.Data()[:len(data)])

	// Wrong nonce must fail authentication and leave the staged
	// ciphertext intact so the right nonce can still recover it.
	staged := append([]byte(nil), buffer.Data()...)
	err = crypto.Decrypt([NonceSize]byte{}, buffer)
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.Equal(t, RequiredSize(len(data)), buffer.Len())
	assert.Equal(t, staged, buffer.Data())

	assert.NoError(t, crypto.Decrypt(nonce, buffer))
	assert.Equal(t, len(data), buffer.Len())
	assert.Equal(t, []byte(data), buffer.Data())
}

func TestDecryptZeroesTagRegion(t *testing.T) {
	const data = "payload"
	nonce := [NonceSize]byte{9}

	crypto, err := NewCrypto(testKey())
	assert.NoError(t, err)

	buffer := NewBuffer(RequiredSize(len(data)))
	assert.NoError(t, buffer.Append([]byte(data)))
	assert.NoError(t, crypto.Encrypt(nonce, buffer))
	assert.NoError(t, crypto.Decrypt(nonce, buffer))

	assert.Equal(t, len(data), buffer.Len())
	for i := len(data); i < buffer.Cap(); i++ {
		assert.Equal(t, byte(0), buffer.data[i])
	}
}

func TestEncryptWithoutTagRoom(t *testing.T) {
	crypto, err := NewCrypto(testKey())
	assert.NoError(t, err)

	buffer := NewBuffer(TagSize + 1)
	assert.NoError(t, buffer.Append([]byte("ab")))
	assert.ErrorIs(t, crypto.Encrypt([NonceSize]byte{}, buffer), ErrBufferOverflow)
	assert.Equal(t, 2, buffer.Len())
}

func TestDecryptTamperedData(t *testing.T) {
	const data = "integrity matters"
	nonce := [NonceSize]byte{5}

	crypto, err := NewCrypto(testKey())
	assert.NoError(t, err)

	buffer := NewBuffer(RequiredSize(len(data)))
	assert.NoError(t, buffer.Append([]byte(data)))
	assert.NoError(t, crypto.Encrypt(nonce, buffer))

	buffer.Data()[0] ^= 0xff
	err = crypto.Decrypt(nonce, buffer)
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.Equal(t, RequiredSize(len(data)), buffer.Len())
}

func TestDecryptWrongKey(t *testing.T) {
	const data = "wrong key test"
	nonce := [NonceSize]byte{3}

	crypto, err := NewCrypto(testKey())
	assert.NoError(t, err)
	other, err := NewCrypto([KeySize]byte{7})
	assert.NoError(t, err)

	buffer := NewBuffer(RequiredSize(len(data)))
	assert.NoError(t, buffer.Append([]byte(data)))
	assert.NoError(t, crypto.Encrypt(nonce, buffer))

	assert.ErrorIs(t, other.Decrypt(nonce, buffer), ErrAuthentication)
	assert.NoError(t, crypto.Decrypt(nonce, buffer))
	assert.Equal(t, []byte(data), buffer.Data())
}

func TestChaCha20Poly1305RoundTrip(t *testing.T) {
	const data = "chacha payload"
	nonce := [NonceSize]byte{4}

	crypto, err := NewChaCha20Poly1305(testKey())
	assert.NoError(t, err)

	buffer := NewBuffer(RequiredSize(len(data)))
	assert.NoError(t, buffer.Append([]byte(data)))

	assert.NoError(t, crypto.Encrypt(nonce, buffer))
	assert.Equal(t, RequiredSize(len(data)), buffer.Len())
	assert.NotEqual(t, []byte(data), buffer.Data()[:len(data)])

	assert.NoError(t, crypto.Decrypt(nonce, buffer))
	assert.Equal(t, []byte(data), buffer.Data())
}
