// Package migration deploys the batch exchange contracts through an injected Deployer.
package migration

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dora-network/batch-exchange-utils/errors"
	"github.com/dora-network/batch-exchange-utils/orders"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Deployer performs the actual contract deployment on a network.
//
//counterfeiter:generate . Deployer
type Deployer interface {
	// Accounts lists the unlocked accounts of the node, the first one being the default sender.
	Accounts(ctx context.Context) ([]orders.Address, error)
	DeployBatchExchange(ctx context.Context, network string, account orders.Address) (orders.Address, error)
}

type Config struct {
	OnlyMigrateSnappAuction bool           `mapstructure:"only_migrate_snapp_auction" json:"only_migrate_snapp_auction"`
	Network                 string         `mapstructure:"network" json:"network"`
	Account                 orders.Address `mapstructure:"account" json:"account"`
}

func DefaultConfig() Config {
	return Config{
		Network: "development",
	}
}

type options struct {
	log zerolog.Logger
}

type Option func(*options)

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.log = logger
	}
}

// Migrate deploys the BatchExchange unless the config restricts the run to SnappAuction, in which
// case nothing is deployed and the zero address is returned. A zero Account falls back to the
// first account reported by the deployer.
func Migrate(ctx context.Context, cfg Config, deployer Deployer, opts ...Option) (orders.Address, error) {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	if deployer == nil {
		return orders.Address{}, errors.New(errors.InvalidInputError, "deployer is required")
	}
	if cfg.OnlyMigrateSnappAuction {
		o.log.Info().Str("network", cfg.Network).Msg("skipping batch exchange migration")
		return orders.Address{}, nil
	}

	account := cfg.Account
	if account.IsZero() {
		accounts, err := deployer.Accounts(ctx)
		if err != nil {
			return orders.Address{}, fmt.Errorf("listing accounts: %w", err)
		}
		if len(accounts) == 0 {
			return orders.Address{}, errors.Newf(errors.NotFoundError, "no accounts on network %s", cfg.Network)
		}
		account = accounts[0]
	}

	addr, err := deployer.DeployBatchExchange(ctx, cfg.Network, account)
	if err != nil {
		return orders.Address{}, fmt.Errorf("deploying batch exchange on %s: %w", cfg.Network, err)
	}
	o.log.Info().
		Str("network", cfg.Network).
		Str("account", account.String()).
		Str("address", addr.String()).
		Msg("batch exchange deployed")
	return addr, nil
}
