package math

import (
	"math/big"

	"github.com/dora-network/batch-exchange-utils/errors"
)

const (
	Base10 = 10
)

func IsNegative(n *big.Int) bool {
	return n != nil && n.Sign() == -1
}

func IsPositive(n *big.Int) bool {
	return n != nil && n.Sign() > 0
}

func IsZero(n *big.Int) bool {
	return n != nil && n.Sign() == 0
}

func LT(x, y *big.Int) bool {
	return x != nil && y != nil && x.Cmp(y) == -1
}

func EQ(x, y *big.Int) bool {
	return x != nil && y != nil && x.Cmp(y) == 0
}

func GT(x, y *big.Int) bool {
	return x != nil && y != nil && x.Cmp(y) == 1
}

func LTE(x, y *big.Int) bool {
	return EQ(x, y) || LT(x, y)
}

func GTE(x, y *big.Int) bool {
	return EQ(x, y) || GT(x, y)
}

// FitsBits reports whether n is non-negative and can be written in the given number of bits.
func FitsBits(n *big.Int, bits int) bool {
	return n != nil && n.Sign() >= 0 && n.BitLen() <= bits
}

// MaxUint returns 2^bits - 1.
func MaxUint(bits int) *big.Int {
	one := big.NewInt(1)
	return new(big.Int).Sub(new(big.Int).Lsh(one, uint(bits)), one)
}

// Pow10 returns 10^x for non-negative x; 1 otherwise.
func Pow10(x int) *big.Int {
	if x <= 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Exp(big.NewInt(Base10), big.NewInt(int64(x)), nil)
}

// ValidBigInt validates if the value is a valid big int.
func ValidBigInt(value string) (v *big.Int, err error) {
	v, ok := new(big.Int).SetString(value, Base10)
	if !ok {
		return nil, errors.Data("%s is not a valid big.Int", value)
	}
	return v, nil
}

// ValidNotNegativeBigInt validates if the value is a valid and not negative big int.
// Valid values: [0-∞].
func ValidNotNegativeBigInt(value string) (v *big.Int, err error) {
	v, err = ValidBigInt(value)
	if err != nil {
		return nil, err
	}
	if IsNegative(v) {
		return nil, errors.Data("%s is negative", value)
	}
	return v, nil
}
