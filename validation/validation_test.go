package validation_test

import (
	stderrors "errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dora-network/batch-exchange-utils/errors"
	"github.com/dora-network/batch-exchange-utils/orders"
	"github.com/dora-network/batch-exchange-utils/validation"
)

func validOrder() orders.AuctionOrder {
	return orders.AuctionOrder{
		User:             orders.MustParseAddress("0x1111111111111111111111111111111111111111"),
		SellTokenBalance: big.NewInt(1000),
		BuyToken:         1,
		SellToken:        2,
		ValidFrom:        10,
		ValidUntil:       20,
		PriceNumerator:   big.NewInt(3),
		PriceDenominator: big.NewInt(4),
		RemainingAmount:  big.NewInt(500),
	}
}

func TestValidateOrder(t *testing.T) {
	t.Run(
		"Should accept a well formed order", func(t *testing.T) {
			require.NoError(t, validation.ValidateOrder(validOrder()))

			o := validOrder()
			o.ValidUntil = o.ValidFrom
			o.RemainingAmount = big.NewInt(0)
			require.NoError(t, validation.ValidateOrder(o))
		},
	)

	t.Run(
		"Should reject a missing amount", func(t *testing.T) {
			o := validOrder()
			o.PriceNumerator = nil
			err := validation.ValidateOrder(o)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.InvalidInputError))
			assert.Contains(t, err.Error(), "priceNumerator")
		},
	)

	t.Run(
		"Should reject a negative amount", func(t *testing.T) {
			o := validOrder()
			o.SellTokenBalance = big.NewInt(-1)
			err := validation.ValidateOrder(o)
			assert.True(t, errors.Is(err, errors.InvalidDataErr))
		},
	)

	t.Run(
		"Should reject an inverted validity window", func(t *testing.T) {
			o := validOrder()
			o.ValidFrom = 21
			assert.ErrorIs(t, validation.ValidateOrder(o), errors.ErrValidFromAfterValidUntil)
		},
	)

	t.Run(
		"Should reject a zero denominator", func(t *testing.T) {
			o := validOrder()
			o.PriceDenominator = big.NewInt(0)
			assert.ErrorIs(t, validation.ValidateOrder(o), errors.ErrZeroPriceDenominator)
		},
	)

	t.Run(
		"Should reject identical tokens", func(t *testing.T) {
			o := validOrder()
			o.BuyToken = o.SellToken
			assert.ErrorIs(t, validation.ValidateOrder(o), errors.ErrSameBuyAndSellToken)
		},
	)
}

func TestValidateOrders(t *testing.T) {
	bad := validOrder()
	bad.PriceDenominator = big.NewInt(0)

	require.NoError(t, validation.ValidateOrders(nil))
	require.NoError(t, validation.ValidateOrders([]orders.AuctionOrder{validOrder(), validOrder()}))

	err := validation.ValidateOrders([]orders.AuctionOrder{validOrder(), bad})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrZeroPriceDenominator))
	assert.True(t, errors.Is(err, errors.InvalidDataErr))
	assert.Contains(t, err.Error(), "order 1")
}
