package environment

import (
	"context"
	"fmt"
	"math"
	"math/big"

	"github.com/rs/zerolog"

	"github.com/dora-network/batch-exchange-utils/errors"
	"github.com/dora-network/batch-exchange-utils/orders"
)

const (
	// DefaultAmount is minted to, and approved for, every account by SetupEnvironment: 300 tokens of 18 decimals.
	DefaultAmount = "300000000000000000000"
	// MultiCallerAccountID is the exchange account the multi caller opens.
	MultiCallerAccountID uint16 = 11
)

// DefaultFunding returns DefaultAmount as an integer.
func DefaultFunding() *big.Int {
	n, _ := new(big.Int).SetString(DefaultAmount, 10)
	return n
}

// Orchestrator prepares a development chain for exchange tests. Every step is sequential and the
// first failure aborts the remaining ones.
type Orchestrator struct {
	log    zerolog.Logger
	amount *big.Int
}

type Option func(*Orchestrator)

func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.log = logger
	}
}

// WithAmount overrides the amount SetupEnvironment and SetupMultiCaller fund and approve.
func WithAmount(amount *big.Int) Option {
	return func(o *Orchestrator) {
		o.amount = new(big.Int).Set(amount)
	}
}

func New(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		log:    zerolog.Nop(),
		amount: DefaultFunding(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// FundAccounts mints amount of token to every account, in order.
func (o *Orchestrator) FundAccounts(ctx context.Context, minter orders.Address, accounts []orders.Address, token Token, amount *big.Int) error {
	for _, account := range accounts {
		if err := token.Mint(ctx, minter, account, amount); err != nil {
			return fmt.Errorf("mint %s of token %s to %s: %w", amount, token.Address(), account, err)
		}
	}
	return nil
}

// ApproveContract lets spender transfer amount of token on behalf of every account.
func (o *Orchestrator) ApproveContract(ctx context.Context, spender orders.Address, accounts []orders.Address, token Token, amount *big.Int) error {
	for _, account := range accounts {
		if err := token.Approve(ctx, account, spender, amount); err != nil {
			return fmt.Errorf("approve %s for token %s from %s: %w", spender, token.Address(), account, err)
		}
	}
	return nil
}

// OpenAccounts opens the i-th account at exchange account id i.
func (o *Orchestrator) OpenAccounts(ctx context.Context, exchange Exchange, accounts []orders.Address) error {
	if len(accounts) > math.MaxUint16+1 {
		return errors.Newf(errors.InvalidInputError, "cannot open %d accounts, account ids are 16 bits", len(accounts))
	}
	for i, account := range accounts {
		if err := exchange.OpenAccount(ctx, account, uint16(i)); err != nil {
			return fmt.Errorf("open account %d for %s: %w", i, account, err)
		}
	}
	return nil
}

// RegisterTokens deploys n tokens owned by tokenOwner and lists each of them on the exchange,
// sent by the exchange owner.
func (o *Orchestrator) RegisterTokens(ctx context.Context, deployer TokenDeployer, exchange Exchange, tokenOwner orders.Address, n int) ([]Token, error) {
	owner, err := exchange.Owner(ctx)
	if err != nil {
		return nil, fmt.Errorf("read exchange owner: %w", err)
	}

	tokens := make([]Token, 0, n)
	for i := 0; i < n; i++ {
		token, err := deployer.Deploy(ctx, tokenOwner)
		if err != nil {
			return nil, fmt.Errorf("deploy token %d: %w", i, err)
		}
		tokens = append(tokens, token)
		if err := exchange.AddToken(ctx, owner, token.Address()); err != nil {
			return nil, fmt.Errorf("add token %s: %w", token.Address(), err)
		}
		o.log.Debug().Int("index", i).Str("token", token.Address().String()).Msg("registered token")
	}
	return tokens, nil
}

// SetupEnvironment registers n tokens, funds every account with each of them, approves the
// exchange to spend those funds and finally opens the accounts.
func (o *Orchestrator) SetupEnvironment(ctx context.Context, deployer TokenDeployer, exchange Exchange, tokenOwner orders.Address, accounts []orders.Address, n int) ([]Token, error) {
	tokens, err := o.RegisterTokens(ctx, deployer, exchange, tokenOwner, n)
	if err != nil {
		return nil, err
	}
	for _, token := range tokens {
		if err := o.FundAccounts(ctx, tokenOwner, accounts, token, o.amount); err != nil {
			return nil, err
		}
		if err := o.ApproveContract(ctx, exchange.Address(), accounts, token, o.amount); err != nil {
			return nil, err
		}
	}
	if err := o.OpenAccounts(ctx, exchange, accounts); err != nil {
		return nil, err
	}
	o.log.Info().Int("tokens", len(tokens)).Int("accounts", len(accounts)).Msg("environment ready")
	return tokens, nil
}

// SetupMultiCaller funds the multi caller with every token, approves the exchange through it and
// opens its exchange account. Tokens must already be registered.
func (o *Orchestrator) SetupMultiCaller(ctx context.Context, exchange Exchange, tokenOwner orders.Address, tokens []Token, multiCaller MultiCaller, encoder CalldataEncoder) error {
	one := big.NewInt(1)
	for _, token := range tokens {
		if err := o.FundAccounts(ctx, tokenOwner, []orders.Address{multiCaller.Address()}, token, o.amount); err != nil {
			return err
		}
		calldata, err := encoder.Approve(exchange.Address(), o.amount)
		if err != nil {
			return fmt.Errorf("encode approve for token %s: %w", token.Address(), err)
		}
		if err := multiCaller.ExecuteWithCalldata(ctx, token.Address(), one, calldata); err != nil {
			return fmt.Errorf("approve token %s through multi caller: %w", token.Address(), err)
		}
	}

	calldata, err := encoder.OpenAccount(MultiCallerAccountID)
	if err != nil {
		return fmt.Errorf("encode open account: %w", err)
	}
	if err := multiCaller.ExecuteWithCalldata(ctx, exchange.Address(), one, calldata); err != nil {
		return fmt.Errorf("open account %d through multi caller: %w", MultiCallerAccountID, err)
	}
	return nil
}

// WaitForNSeconds advances the chain clock by seconds and mines a block.
func (o *Orchestrator) WaitForNSeconds(ctx context.Context, rpc RPC, seconds uint64) error {
	if _, err := rpc.Call(ctx, "evm_increaseTime", seconds); err != nil {
		return fmt.Errorf("increase time by %d seconds: %w", seconds, err)
	}
	if _, err := rpc.Call(ctx, "evm_mine"); err != nil {
		return fmt.Errorf("mine block: %w", err)
	}
	return nil
}

// SendTxAndGetReturnValue simulates a transaction to read its return value, then sends it.
// The value is only returned when the transaction was sent.
func SendTxAndGetReturnValue[T any](ctx context.Context, call func(context.Context) (T, error), send func(context.Context) error) (T, error) {
	var zero T
	result, err := call(ctx)
	if err != nil {
		return zero, fmt.Errorf("simulate transaction: %w", err)
	}
	if err := send(ctx); err != nil {
		return zero, fmt.Errorf("send transaction: %w", err)
	}
	return result, nil
}

// DecodeAuctionElements decodes the orders returned by the exchange's encoded order getters.
func DecodeAuctionElements(blob []byte) ([]orders.AuctionOrder, error) {
	return orders.Decode(blob)
}
