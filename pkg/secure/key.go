package secure

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	bin "github.com/saylorsolutions/binmap"
	"golang.org/x/crypto/scrypt"
)

const (
	DefaultLargeIterations       uint64 = 1 << 30
	DefaultInteractiveIterations uint64 = 1 << 17
	DefaultRelBlockSize          uint8  = 8
	DefaultCpuCost               uint8  = 1
)

var (
	ErrEmptyPassPhrase = errors.New("cannot use an empty passphrase")
	ErrInvalidSettings = errors.New("invalid key generator settings")
)

// Salt is a slice of secure random bytes that is used with scrypt to derive
// a cipher key from a Passphrase.
type Salt []byte

// Passphrase is a human-readable string used to derive a cipher key.
type Passphrase []byte

// KeyGenerator derives Crypto keys from passphrases using scrypt.
// This package derives keys only; storing or distributing them is the
// caller's concern.
type KeyGenerator struct {
	iterations        uint64
	relativeBlockSize uint8
	cpuCost           uint8
}

func (g *KeyGenerator) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&g.iterations),
		bin.Byte(&g.relativeBlockSize),
		bin.Byte(&g.cpuCost),
	)
}

// MarshalBinary implements encoding.BinaryMarshaler, serializing the
// generator's tuning values. Persist this next to encrypted payloads so the
// same key can be derived again with the same settings.
func (g *KeyGenerator) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := g.mapper().Write(&buf, binary.BigEndian); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, restoring tuning
// values produced by MarshalBinary. Settings that violate the generator's
// invariants are rejected without modifying the receiver.
func (g *KeyGenerator) UnmarshalBinary(data []byte) error {
	next := new(KeyGenerator)
	if err := next.mapper().Read(bytes.NewReader(data), binary.BigEndian); err != nil {
		return err
	}
	if next.iterations <= 1 || next.iterations&(next.iterations-1) != 0 {
		return fmt.Errorf("%w: iterations must be a power of 2 greater than 1", ErrInvalidSettings)
	}
	if next.relativeBlockSize < DefaultRelBlockSize {
		return fmt.Errorf("%w: relative block size must be at least %d", ErrInvalidSettings, DefaultRelBlockSize)
	}
	if next.cpuCost < DefaultCpuCost {
		return fmt.Errorf("%w: cpu cost must be at least %d", ErrInvalidSettings, DefaultCpuCost)
	}
	*g = *next
	return nil
}

type GeneratorOpt = func(*KeyGenerator) error

// SetLongDelayIterations sets a higher iteration count. This is sufficient for infrequent key derivation, or cases where the key will be cached for long periods of time.
// This option is much more resistant to password cracking, and is the default.
func SetLongDelayIterations() GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.iterations = DefaultLargeIterations
		return nil
	}
}

// SetShortDelayIterations sets a lower iteration count. This is appropriate for situations where a shorter delay is desired because of frequent key derivations.
// This option balances speed with password cracking resistance. It's recommended to use longer passwords with this approach.
func SetShortDelayIterations() GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.iterations = DefaultInteractiveIterations
		return nil
	}
}

// SetIterations allows the caller to customize the iteration count.
// Only use this option if you know what you're doing.
func SetIterations(iterations uint64) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if iterations <= 1 {
			return errors.New("iterations cannot be <= 1")
		}
		if iterations&(iterations-1) != 0 {
			return errors.New("iterations must be a power of 2")
		}
		gen.iterations = iterations
		return nil
	}
}

// SetCPUCost sets the parallelism factor for key generation from the default of 1.
// Only use this option if you know what you're doing.
func SetCPUCost(cost uint8) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if cost < DefaultCpuCost {
			return errors.New("cpu cost must be at least 1")
		}
		gen.cpuCost = cost
		return nil
	}
}

// SetRelativeBlockSize sets the relative block size.
// Only use this option if you know what you're doing.
func SetRelativeBlockSize(size uint8) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if size < DefaultRelBlockSize {
			return errors.New("relative block size must be at least 8")
		}
		gen.relativeBlockSize = size
		return nil
	}
}

// NewKeyGenerator creates a new KeyGenerator using the options provided as zero or more GeneratorOpt.
// By default, the generator uses DefaultLargeIterations.
func NewKeyGenerator(opts ...GeneratorOpt) (*KeyGenerator, error) {
	gen := &KeyGenerator{
		iterations:        DefaultLargeIterations,
		relativeBlockSize: DefaultRelBlockSize,
		cpuCost:           DefaultCpuCost,
	}

	for _, opt := range opts {
		if err := opt(gen); err != nil {
			return nil, err
		}
	}
	return gen, nil
}

// GenerateKey will generate a cipher key and a fresh random salt using the
// configuration of the KeyGenerator.
// The salt must be retained to derive the same key again.
func (g *KeyGenerator) GenerateKey(pass Passphrase) (key [KeySize]byte, salt Salt, err error) {
	if len(pass) == 0 {
		return key, nil, ErrEmptyPassPhrase
	}
	salt = make(Salt, KeySize)
	if _, err = rand.Read(salt); err != nil {
		return key, nil, err
	}
	key, err = g.derive(pass, salt)
	return key, salt, err
}

// DeriveKey will recover a key from the given passphrase and the salt
// produced by GenerateKey.
// This doesn't ensure that the given passphrase is the *correct* passphrase used to generate the original key.
func (g *KeyGenerator) DeriveKey(pass Passphrase, salt Salt) (key [KeySize]byte, err error) {
	if len(pass) == 0 {
		return key, ErrEmptyPassPhrase
	}
	if len(salt) != KeySize {
		return key, errors.New("salt length doesn't match key size")
	}
	return g.derive(pass, salt)
}

func (g *KeyGenerator) derive(pass Passphrase, salt Salt) (key [KeySize]byte, err error) {
	raw, err := scrypt.Key(pass, salt, int(g.iterations), int(g.relativeBlockSize), int(g.cpuCost), KeySize)
	if err != nil {
		return key, err
	}
	copy(key[:], raw)
	return key, nil
}
