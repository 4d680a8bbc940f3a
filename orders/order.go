package orders

import (
	"math/big"

	"github.com/goccy/go-json"
	"github.com/govalues/decimal"

	"github.com/dora-network/batch-exchange-utils/errors"
	"github.com/dora-network/batch-exchange-utils/math"
)

// AuctionOrder is a single user's standing order, as read from the exchange's state.
// Token fields are indices into the exchange's token list, ValidFrom and ValidUntil are batch ids.
type AuctionOrder struct {
	User             Address
	SellTokenBalance *big.Int
	BuyToken         uint16
	SellToken        uint16
	ValidFrom        uint32
	ValidUntil       uint32
	PriceNumerator   *big.Int
	PriceDenominator *big.Int
	RemainingAmount  *big.Int
}

// Equal compares two orders by value.
func (o AuctionOrder) Equal(x AuctionOrder) bool {
	return o.User == x.User &&
		o.BuyToken == x.BuyToken &&
		o.SellToken == x.SellToken &&
		o.ValidFrom == x.ValidFrom &&
		o.ValidUntil == x.ValidUntil &&
		bigEqual(o.SellTokenBalance, x.SellTokenBalance) &&
		bigEqual(o.PriceNumerator, x.PriceNumerator) &&
		bigEqual(o.PriceDenominator, x.PriceDenominator) &&
		bigEqual(o.RemainingAmount, x.RemainingAmount)
}

func bigEqual(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return math.EQ(a, b)
}

// IsActive is true if the order can take part in the given batch.
func (o AuctionOrder) IsActive(batchID uint32) bool {
	return o.ValidFrom <= batchID && batchID <= o.ValidUntil && math.IsPositive(o.RemainingAmount)
}

// LimitPrice returns PriceNumerator / PriceDenominator rounded down to scale decimal places.
func (o AuctionOrder) LimitPrice(scale int) (decimal.Decimal, error) {
	if o.PriceNumerator == nil || o.PriceDenominator == nil || math.IsZero(o.PriceDenominator) {
		return decimal.Decimal{}, errors.ErrZeroPriceDenominator
	}
	q := new(big.Int).Mul(o.PriceNumerator, math.Pow10(scale))
	q.Quo(q, o.PriceDenominator)
	if !q.IsInt64() {
		return decimal.Decimal{}, errors.Newf(errors.InvalidInputError, "limit price %s does not fit a decimal", q)
	}
	return decimal.New(q.Int64(), scale)
}

type jsonOrder struct {
	User             Address `json:"user"`
	SellTokenBalance string  `json:"sell_token_balance"`
	BuyToken         uint16  `json:"buy_token"`
	SellToken        uint16  `json:"sell_token"`
	ValidFrom        uint32  `json:"valid_from"`
	ValidUntil       uint32  `json:"valid_until"`
	PriceNumerator   string  `json:"price_numerator"`
	PriceDenominator string  `json:"price_denominator"`
	RemainingAmount  string  `json:"remaining_amount"`
}

// MarshalJSON writes the big integer fields as decimal strings.
func (o AuctionOrder) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonOrder{
		User:             o.User,
		SellTokenBalance: bigString(o.SellTokenBalance),
		BuyToken:         o.BuyToken,
		SellToken:        o.SellToken,
		ValidFrom:        o.ValidFrom,
		ValidUntil:       o.ValidUntil,
		PriceNumerator:   bigString(o.PriceNumerator),
		PriceDenominator: bigString(o.PriceDenominator),
		RemainingAmount:  bigString(o.RemainingAmount),
	})
}

func (o *AuctionOrder) UnmarshalJSON(data []byte) error {
	var j jsonOrder
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	ints := []string{j.SellTokenBalance, j.PriceNumerator, j.PriceDenominator, j.RemainingAmount}
	parsed := make([]*big.Int, len(ints))
	for i, s := range ints {
		v, err := math.ValidNotNegativeBigInt(s)
		if err != nil {
			return err
		}
		parsed[i] = v
	}
	*o = AuctionOrder{
		User:             j.User,
		SellTokenBalance: parsed[0],
		BuyToken:         j.BuyToken,
		SellToken:        j.SellToken,
		ValidFrom:        j.ValidFrom,
		ValidUntil:       j.ValidUntil,
		PriceNumerator:   parsed[1],
		PriceDenominator: parsed[2],
		RemainingAmount:  parsed[3],
	}
	return nil
}

func (o *AuctionOrder) MarshalBinary() ([]byte, error) {
	return json.Marshal(o)
}

func (o *AuctionOrder) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, o)
}

func bigString(n *big.Int) string {
	if n == nil {
		return "0"
	}
	return n.String()
}
