package environment_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dora-network/batch-exchange-utils/environment"
	"github.com/dora-network/batch-exchange-utils/environment/environmentfakes"
	"github.com/dora-network/batch-exchange-utils/errors"
	"github.com/dora-network/batch-exchange-utils/orders"
)

var (
	exchangeAddress = orders.MustParseAddress("0x00000000000000000000000000000000000000e0")
	exchangeOwner   = orders.MustParseAddress("0x00000000000000000000000000000000000000e1")
	tokenOwner      = orders.MustParseAddress("0x00000000000000000000000000000000000000f0")
	multiCaller     = orders.MustParseAddress("0x00000000000000000000000000000000000000c0")
	accounts        = []orders.Address{
		orders.MustParseAddress("0x0000000000000000000000000000000000000001"),
		orders.MustParseAddress("0x0000000000000000000000000000000000000002"),
		orders.MustParseAddress("0x0000000000000000000000000000000000000003"),
	}
)

func newExchange() *environmentfakes.FakeExchange {
	exchange := &environmentfakes.FakeExchange{}
	exchange.AddressReturns(exchangeAddress)
	exchange.OwnerReturns(exchangeOwner, nil)
	return exchange
}

func newDeployer() (*environmentfakes.FakeTokenDeployer, *[]*environmentfakes.FakeToken) {
	deployer := &environmentfakes.FakeTokenDeployer{}
	deployed := &[]*environmentfakes.FakeToken{}
	deployer.DeployCalls(func(ctx context.Context, from orders.Address) (environment.Token, error) {
		token := &environmentfakes.FakeToken{}
		var addr orders.Address
		addr[19] = byte(0xa0 + len(*deployed))
		token.AddressReturns(addr)
		*deployed = append(*deployed, token)
		return token, nil
	})
	return deployer, deployed
}

func TestSetupEnvironment(t *testing.T) {
	ctx := context.Background()
	o := environment.New()

	t.Run(
		"Should register, fund, approve and open in order", func(t *testing.T) {
			exchange := newExchange()
			deployer, deployed := newDeployer()

			tokens, err := o.SetupEnvironment(ctx, deployer, exchange, tokenOwner, accounts, 2)
			require.NoError(t, err)
			require.Len(t, tokens, 2)
			require.Len(t, *deployed, 2)

			require.Equal(t, 2, deployer.DeployCallCount())
			_, from := deployer.DeployArgsForCall(0)
			assert.Equal(t, tokenOwner, from)

			require.Equal(t, 2, exchange.AddTokenCallCount())
			for i, token := range tokens {
				_, sender, added := exchange.AddTokenArgsForCall(i)
				assert.Equal(t, exchangeOwner, sender)
				assert.Equal(t, token.Address(), added)
			}

			for _, token := range *deployed {
				require.Equal(t, len(accounts), token.MintCallCount())
				require.Equal(t, len(accounts), token.ApproveCallCount())
				for i, account := range accounts {
					_, minter, to, amount := token.MintArgsForCall(i)
					assert.Equal(t, tokenOwner, minter)
					assert.Equal(t, account, to)
					assert.Equal(t, environment.DefaultAmount, amount.String())

					_, owner, spender, approved := token.ApproveArgsForCall(i)
					assert.Equal(t, account, owner)
					assert.Equal(t, exchangeAddress, spender)
					assert.Equal(t, environment.DefaultAmount, approved.String())
				}
			}

			require.Equal(t, len(accounts), exchange.OpenAccountCallCount())
			for i, account := range accounts {
				_, from, id := exchange.OpenAccountArgsForCall(i)
				assert.Equal(t, account, from)
				assert.Equal(t, uint16(i), id)
			}
		},
	)

	t.Run(
		"Should stop at the first failure", func(t *testing.T) {
			exchange := newExchange()
			deployer, deployed := newDeployer()
			failure := errors.NewInternal("reverted")
			exchange.AddTokenReturnsOnCall(0, failure)

			_, err := o.SetupEnvironment(ctx, deployer, exchange, tokenOwner, accounts, 3)
			assert.ErrorIs(t, err, failure)
			assert.Equal(t, 1, deployer.DeployCallCount())
			assert.Equal(t, 0, (*deployed)[0].MintCallCount())
			assert.Equal(t, 0, exchange.OpenAccountCallCount())
		},
	)

	t.Run(
		"Should not deploy without the exchange owner", func(t *testing.T) {
			exchange := newExchange()
			failure := errors.NewInternal("no owner")
			exchange.OwnerReturns(orders.Address{}, failure)
			deployer, _ := newDeployer()

			_, err := o.RegisterTokens(ctx, deployer, exchange, tokenOwner, 1)
			assert.ErrorIs(t, err, failure)
			assert.Equal(t, 0, deployer.DeployCallCount())
		},
	)

	t.Run(
		"Should fund with a custom amount", func(t *testing.T) {
			exchange := newExchange()
			deployer, deployed := newDeployer()
			custom := environment.New(environment.WithAmount(big.NewInt(5)))

			_, err := custom.SetupEnvironment(ctx, deployer, exchange, tokenOwner, accounts[:1], 1)
			require.NoError(t, err)
			_, _, _, amount := (*deployed)[0].MintArgsForCall(0)
			assert.Equal(t, int64(5), amount.Int64())
		},
	)
}

func TestSetupMultiCaller(t *testing.T) {
	ctx := context.Background()
	o := environment.New()

	exchange := newExchange()
	caller := &environmentfakes.FakeMultiCaller{}
	caller.AddressReturns(multiCaller)
	encoder := &environmentfakes.FakeCalldataEncoder{}
	encoder.ApproveReturns([]byte("approve"), nil)
	encoder.OpenAccountReturns([]byte("open"), nil)

	token := &environmentfakes.FakeToken{}
	token.AddressReturns(orders.MustParseAddress("0x00000000000000000000000000000000000000a0"))

	require.NoError(t, o.SetupMultiCaller(ctx, exchange, tokenOwner, []environment.Token{token}, caller, encoder))

	require.Equal(t, 1, token.MintCallCount())
	_, _, to, _ := token.MintArgsForCall(0)
	assert.Equal(t, multiCaller, to)

	spender, amount := encoder.ApproveArgsForCall(0)
	assert.Equal(t, exchangeAddress, spender)
	assert.Equal(t, environment.DefaultAmount, amount.String())
	assert.Equal(t, environment.MultiCallerAccountID, encoder.OpenAccountArgsForCall(0))

	require.Equal(t, 2, caller.ExecuteWithCalldataCallCount())
	_, target, value, calldata := caller.ExecuteWithCalldataArgsForCall(0)
	assert.Equal(t, token.Address(), target)
	assert.Equal(t, int64(1), value.Int64())
	assert.Equal(t, []byte("approve"), calldata)

	_, target, _, calldata = caller.ExecuteWithCalldataArgsForCall(1)
	assert.Equal(t, exchangeAddress, target)
	assert.Equal(t, []byte("open"), calldata)
}

func TestWaitForNSeconds(t *testing.T) {
	ctx := context.Background()
	rpc := &environmentfakes.FakeRPC{}

	require.NoError(t, environment.New().WaitForNSeconds(ctx, rpc, 3600))
	require.Equal(t, 2, rpc.CallCallCount())

	_, method, params := rpc.CallArgsForCall(0)
	assert.Equal(t, "evm_increaseTime", method)
	assert.Equal(t, []any{uint64(3600)}, params)

	_, method, params = rpc.CallArgsForCall(1)
	assert.Equal(t, "evm_mine", method)
	assert.Empty(t, params)

	failure := errors.NewInternal("node down")
	rpc.CallReturnsOnCall(2, nil, failure)
	assert.ErrorIs(t, environment.New().WaitForNSeconds(ctx, rpc, 1), failure)
	assert.Equal(t, 3, rpc.CallCallCount())
}

func TestSendTxAndGetReturnValue(t *testing.T) {
	ctx := context.Background()

	t.Run(
		"Should return the simulated value once sent", func(t *testing.T) {
			sent := false
			got, err := environment.SendTxAndGetReturnValue(
				ctx,
				func(context.Context) (uint16, error) { return 7, nil },
				func(context.Context) error { sent = true; return nil },
			)
			require.NoError(t, err)
			assert.True(t, sent)
			assert.Equal(t, uint16(7), got)
		},
	)

	t.Run(
		"Should not send when the simulation fails", func(t *testing.T) {
			sent := false
			_, err := environment.SendTxAndGetReturnValue(
				ctx,
				func(context.Context) (uint16, error) { return 0, errors.NewInternal("revert") },
				func(context.Context) error { sent = true; return nil },
			)
			assert.Error(t, err)
			assert.False(t, sent)
		},
	)
}

func TestDecodeAuctionElements(t *testing.T) {
	order := orders.AuctionOrder{
		User:             accounts[0],
		SellTokenBalance: environment.DefaultFunding(),
		BuyToken:         1,
		ValidUntil:       10,
		PriceNumerator:   big.NewInt(2),
		PriceDenominator: big.NewInt(3),
		RemainingAmount:  big.NewInt(4),
	}
	blob, err := orders.Encode(order)
	require.NoError(t, err)

	got, err := environment.DecodeAuctionElements(blob)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, order.Equal(got[0]))

	_, err = environment.DecodeAuctionElements(blob[1:])
	assert.True(t, errors.Is(err, errors.MalformedInputError))
}
