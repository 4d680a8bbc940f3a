package migration

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dora-network/batch-exchange-utils/orders"
)

const (
	envPrefix = "BEU"

	flagOnlyMigrateSnappAuction = "only-migrate-snapp-auction"
	flagNetwork                 = "network"
	flagAccount                 = "account"
)

// NewCommand returns the migrate command. Every flag can also be set through a BEU_ prefixed
// environment variable, e.g. BEU_ONLY_MIGRATE_SNAPP_AUCTION=true.
func NewCommand(deployer Deployer, logger zerolog.Logger) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	cmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Deploy the batch exchange contracts",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := Config{
				OnlyMigrateSnappAuction: v.GetBool(flagOnlyMigrateSnappAuction),
				Network:                 v.GetString(flagNetwork),
			}
			if account := v.GetString(flagAccount); account != "" {
				a, err := orders.ParseAddress(account)
				if err != nil {
					return err
				}
				cfg.Account = a
			}

			addr, err := Migrate(cmd.Context(), cfg, deployer, WithLogger(logger))
			if err != nil {
				return err
			}
			if !addr.IsZero() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), addr.String())
			}
			return nil
		},
	}

	cmd.Flags().Bool(flagOnlyMigrateSnappAuction, defaults.OnlyMigrateSnappAuction, "Restrict the migration to SnappAuction")
	cmd.Flags().String(flagNetwork, defaults.Network, "Network to deploy to")
	cmd.Flags().String(flagAccount, "", "Deploying account, defaults to the first account of the node")

	for _, name := range []string{flagOnlyMigrateSnappAuction, flagNetwork, flagAccount} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
	return cmd
}
