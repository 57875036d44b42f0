package wipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemset(t *testing.T) {
	var empty []byte
	Memset(empty, 1)

	buf := make([]byte, 15)
	for i := range buf {
		buf[i] = 255
	}
	Memset(buf, 1)
	for i := range buf {
		assert.Equal(t, byte(1), buf[i])
	}
}

func TestZero(t *testing.T) {
	buf := []byte("sensitive")
	Zero(buf)
	for i := range buf {
		assert.Equal(t, byte(0), buf[i])
	}
}
