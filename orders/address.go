package orders

import (
	"encoding/hex"
	"strings"

	"github.com/dora-network/batch-exchange-utils/errors"
)

// AddressLength is the width of an account identifier in bytes.
const AddressLength = 20

// Address identifies an account on the exchange. It is opaque to this package.
type Address [AddressLength]byte

// ParseAddress parses a 40 character hex string, with or without the 0x prefix.
func ParseAddress(s string) (Address, error) {
	var a Address
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != 2*AddressLength {
		return a, errors.Newf(errors.InvalidInputError, "address %q must be %d hex characters", s, 2*AddressLength)
	}
	if _, err := hex.Decode(a[:], []byte(s)); err != nil {
		return a, errors.Wrap(errors.InvalidInputError, err, "invalid address")
	}
	return a, nil
}

// MustParseAddress is like ParseAddress but panics on error. Intended for fixtures.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
