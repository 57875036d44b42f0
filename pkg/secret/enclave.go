package secret

import (
	"errors"

	"github.com/awnumar/memguard"
)

var ErrDestroyed = errors.New("secret has been destroyed")

// Seal moves the secret's contents into a memguard Enclave and destroys
// the secret. The enclave keeps the value encrypted in memory; open it with
// Enclave.Open, and destroy the returned LockedBuffer after use.
//
// memguard.NewEnclave wipes the source buffer itself, so no plaintext copy
// survives in this package's storage.
func (s *Secret) Seal() (*memguard.Enclave, error) {
	if s.destroyed {
		return nil, ErrDestroyed
	}
	if len(s.data) == 0 {
		return nil, errors.New("cannot seal an empty secret")
	}
	enclave := memguard.NewEnclave(s.data)
	s.data = nil
	s.destroyed = true
	return enclave, nil
}
