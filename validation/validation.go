// Package validation holds the semantic order checks the binary codec leaves to callers.
package validation

import (
	"fmt"
	"math/big"

	"github.com/dora-network/batch-exchange-utils/errors"
	"github.com/dora-network/batch-exchange-utils/math"
	"github.com/dora-network/batch-exchange-utils/orders"
)

// ValidateOrder reports the first semantic problem with o, or nil.
func ValidateOrder(o orders.AuctionOrder) error {
	amounts := []struct {
		name  string
		value *big.Int
	}{
		{"sellTokenBalance", o.SellTokenBalance},
		{"priceNumerator", o.PriceNumerator},
		{"priceDenominator", o.PriceDenominator},
		{"remainingAmount", o.RemainingAmount},
	}
	for _, a := range amounts {
		if a.value == nil {
			return errors.Newf(errors.InvalidInputError, "%s is required", a.name)
		}
		if math.IsNegative(a.value) {
			return errors.Data("%s is negative", a.name)
		}
	}

	if o.ValidFrom > o.ValidUntil {
		return errors.ErrValidFromAfterValidUntil
	}
	if math.IsZero(o.PriceDenominator) {
		return errors.ErrZeroPriceDenominator
	}
	if o.BuyToken == o.SellToken {
		return errors.ErrSameBuyAndSellToken
	}
	return nil
}

// ValidateOrders validates every order and wraps the first failure with its position.
func ValidateOrders(os []orders.AuctionOrder) error {
	for i, o := range os {
		if err := ValidateOrder(o); err != nil {
			typ := errors.InvalidDataErr
			if errors.Is(err, errors.InvalidInputError) {
				typ = errors.InvalidInputError
			}
			return errors.Wrap(typ, err, fmt.Sprintf("order %d", i))
		}
	}
	return nil
}
