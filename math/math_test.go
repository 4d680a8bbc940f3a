package math_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dora-network/batch-exchange-utils/math"
)

func TestValidNotNegativeBigInt(t *testing.T) {
	tcs := []struct {
		title  string
		bigInt string
		expErr bool
	}{
		{
			"valid: zero",
			"0",
			false,
		},
		{
			"valid: big number",
			"300000000000000000000",
			false,
		},
		{
			"invalid: negative",
			"-1",
			true,
		},
		{
			"invalid: number with .",
			"12300231.3223",
			true,
		},
		{
			"invalid: number with letters",
			"12300231sdas",
			true,
		},
	}

	for _, tc := range tcs {
		t.Run(
			tc.title, func(t *testing.T) {
				_, err := math.ValidNotNegativeBigInt(tc.bigInt)
				if tc.expErr {
					require.Error(t, err)
					return
				}
				require.NoError(t, err)
			},
		)
	}
}

func TestFitsBits(t *testing.T) {
	t.Run(
		"Should accept the maximum value of a width", func(t *testing.T) {
			assert.True(t, math.FitsBits(math.MaxUint(16), 16))
			assert.True(t, math.FitsBits(big.NewInt(0), 16))
		},
	)

	t.Run(
		"Should reject one above the maximum", func(t *testing.T) {
			n := new(big.Int).Add(math.MaxUint(16), big.NewInt(1))
			assert.Equal(t, "65536", n.String())
			assert.False(t, math.FitsBits(n, 16))
		},
	)

	t.Run(
		"Should reject negative and nil values", func(t *testing.T) {
			assert.False(t, math.FitsBits(big.NewInt(-1), 256))
			assert.False(t, math.FitsBits(nil, 256))
		},
	)
}

func TestPow10(t *testing.T) {
	assert.Equal(t, "1", math.Pow10(0).String())
	assert.Equal(t, "1000000000000000000", math.Pow10(18).String())
}
