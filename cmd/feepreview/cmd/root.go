package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/provlabs/feerouter/types"
)

const (
	flagConfig       = "config"
	flagExtraBacking = "extra-backing"
	flagBasePool     = "base-pool"
	flagLogLevel     = "log-level"
)

// NewRootCmd creates the feepreview root command.
func NewRootCmd() *cobra.Command {
	v := NewViper()

	rootCmd := &cobra.Command{
		Use:          "feepreview",
		Short:        "Preview how the fee router splits an amount under a fee configuration",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String(flagConfig, "", "fee configuration file (toml, json or yaml)")
	rootCmd.PersistentFlags().String(flagLogLevel, "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		splitCommand(v),
		managedCommand(v),
	)
	return rootCmd
}

func splitCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "split [amount]",
		Short: "Show the treasury, active credit and fee index shares of an amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, amount, logger, err := prepare(cmd, v, args[0])
			if err != nil {
				return err
			}

			result, err := types.ComputeSplit(amount, params)
			if err != nil {
				return err
			}
			logger.Debug("computed split", "amount", amount.String(), "treasury_set", params.HasTreasury())
			return printJSON(cmd, result)
		},
	}
}

func managedCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "managed [amount]",
		Short: "Show how a managed pool divides an amount between its base pool and itself",
		Long: `Show how a managed pool divides an amount between its base pool and itself.

Without --base-pool the system share falls back to the treasury, or is split in
the managed pool when no treasury is configured.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, amount, logger, err := prepare(cmd, v, args[0])
			if err != nil {
				return err
			}

			extraStr, err := cmd.Flags().GetString(flagExtraBacking)
			if err != nil {
				return err
			}
			extra, ok := sdkmath.NewIntFromString(extraStr)
			if !ok {
				return fmt.Errorf("invalid %s %q", flagExtraBacking, extraStr)
			}
			hasBase, err := cmd.Flags().GetBool(flagBasePool)
			if err != nil {
				return err
			}

			preview, err := types.PreviewManagedShare(amount, extra, params, hasBase)
			if err != nil {
				return err
			}
			if !hasBase && params.HasTreasury() && preview.Shares.SystemShare.IsPositive() {
				logger.Info("no base pool, system share paid to treasury", "amount", preview.Shares.SystemShare.String())
			}
			return printJSON(cmd, preview)
		},
	}
	cmd.Flags().String(flagExtraBacking, "0", "backing held outside the pool for this route")
	cmd.Flags().Bool(flagBasePool, true, "whether the managed pool's asset has a live base pool")
	return cmd
}

// prepare loads the fee configuration and parses the amount argument.
func prepare(cmd *cobra.Command, v *viper.Viper, amountArg string) (types.Params, sdkmath.Int, log.Logger, error) {
	logger, err := newLogger(cmd)
	if err != nil {
		return types.Params{}, sdkmath.Int{}, nil, err
	}

	path, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return types.Params{}, sdkmath.Int{}, nil, err
	}
	params, err := LoadParams(v, path)
	if err != nil {
		return types.Params{}, sdkmath.Int{}, nil, err
	}

	amount, ok := sdkmath.NewIntFromString(amountArg)
	if !ok {
		return types.Params{}, sdkmath.Int{}, nil, fmt.Errorf("invalid amount %q", amountArg)
	}
	logger.Debug("loaded fee configuration", "config", path,
		"treasury_split_bps", params.TreasurySplitBps,
		"active_credit_split_bps", params.ActiveCreditSplitBps,
		"managed_pool_system_share_bps", params.ManagedPoolSystemShareBps,
	)
	return params, amount, logger, nil
}

func newLogger(cmd *cobra.Command) (log.Logger, error) {
	levelStr, err := cmd.Flags().GetString(flagLogLevel)
	if err != nil {
		return nil, err
	}
	filter, err := log.ParseLogLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", flagLogLevel, err)
	}
	return log.NewLogger(os.Stderr, log.FilterOption(filter)).With("module", "feepreview"), nil
}

func printJSON(cmd *cobra.Command, value any) error {
	bz, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
