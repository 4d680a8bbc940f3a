package merkle

import (
	"encoding/hex"

	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/sha3"

	"github.com/dora-network/batch-exchange-utils/errors"
)

// HashSize is the output width of every Hasher.
const HashSize = 32

// Hash is a node of the commitment tree.
type Hash [HashSize]byte

func (h Hash) Bytes() []byte {
	return h[:]
}

// Hex returns the 0x prefixed hex encoding of h.
func (h Hash) Hex() string {
	return "0x" + hex.EncodeToString(h[:])
}

func (h Hash) String() string {
	return h.Hex()
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

func (h *Hash) UnmarshalText(text []byte) error {
	s := string(text)
	if len(s) >= 2 && s[:2] == "0x" {
		s = s[2:]
	}
	if len(s) != 2*HashSize {
		return errors.Newf(errors.InvalidInputError, "hash %q must be %d hex characters", s, 2*HashSize)
	}
	if _, err := hex.Decode(h[:], []byte(s)); err != nil {
		return errors.Wrap(errors.InvalidInputError, err, "invalid hash")
	}
	return nil
}

// Hasher is the hashing primitive the tree is built with.
type Hasher interface {
	Sum(data []byte) Hash
}

// HasherFunc adapts a function to the Hasher interface.
type HasherFunc func(data []byte) Hash

func (f HasherFunc) Sum(data []byte) Hash {
	return f(data)
}

var (
	// SHA256 is the default hasher, matching the commitments the exchange verifies.
	SHA256 Hasher = HasherFunc(func(data []byte) Hash {
		return sha256.Sum256(data)
	})

	Keccak256 Hasher = HasherFunc(func(data []byte) Hash {
		var h Hash
		d := sha3.NewLegacyKeccak256()
		d.Write(data)
		d.Sum(h[:0])
		return h
	})
)

func hashPair(hasher Hasher, left, right Hash) Hash {
	var buf [2 * HashSize]byte
	copy(buf[:HashSize], left[:])
	copy(buf[HashSize:], right[:])
	return hasher.Sum(buf[:])
}
