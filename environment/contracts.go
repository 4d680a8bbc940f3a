package environment

import (
	"context"
	"math/big"

	"github.com/goccy/go-json"

	"github.com/dora-network/batch-exchange-utils/orders"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Token is a deployed mintable ERC20 token.
//
//counterfeiter:generate . Token
type Token interface {
	Address() orders.Address
	Mint(ctx context.Context, from, to orders.Address, amount *big.Int) error
	Approve(ctx context.Context, from, spender orders.Address, amount *big.Int) error
}

// TokenDeployer deploys a fresh token owned by from.
//
//counterfeiter:generate . TokenDeployer
type TokenDeployer interface {
	Deploy(ctx context.Context, from orders.Address) (Token, error)
}

// Exchange is the batch exchange contract.
//
//counterfeiter:generate . Exchange
type Exchange interface {
	Address() orders.Address
	Owner(ctx context.Context) (orders.Address, error)
	AddToken(ctx context.Context, from, token orders.Address) error
	OpenAccount(ctx context.Context, from orders.Address, accountID uint16) error
}

// MultiCaller forwards arbitrary calldata from its own address.
//
//counterfeiter:generate . MultiCaller
type MultiCaller interface {
	Address() orders.Address
	ExecuteWithCalldata(ctx context.Context, target orders.Address, value *big.Int, calldata []byte) error
}

// CalldataEncoder ABI encodes the calls a MultiCaller forwards.
//
//counterfeiter:generate . CalldataEncoder
type CalldataEncoder interface {
	Approve(spender orders.Address, amount *big.Int) ([]byte, error)
	OpenAccount(accountID uint16) ([]byte, error)
}

// RPC is a JSON-RPC endpoint of a development chain.
//
//counterfeiter:generate . RPC
type RPC interface {
	Call(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}
