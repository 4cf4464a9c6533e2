package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/provlabs/feerouter/types"
)

// EnvPrefix is the prefix of environment variables overriding config file values.
const EnvPrefix = "FEEPREVIEW"

const (
	keyNativeDenom       = "native_denom"
	keyTreasuryAddress   = "treasury_address"
	keyTreasurySplit     = "treasury_split_bps"
	keyActiveCreditSplit = "active_credit_split_bps"
	keySystemShare       = "managed_pool_system_share_bps"
)

// NewViper returns a viper instance with defaults and env overrides for the fee configuration.
func NewViper() *viper.Viper {
	v := viper.New()
	defaults := types.DefaultParams()
	v.SetDefault(keyNativeDenom, defaults.NativeDenom)
	v.SetDefault(keyTreasuryAddress, defaults.TreasuryAddress)
	v.SetDefault(keyTreasurySplit, defaults.TreasurySplitBps)
	v.SetDefault(keyActiveCreditSplit, defaults.ActiveCreditSplitBps)
	v.SetDefault(keySystemShare, defaults.ManagedPoolSystemShareBps)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadParams reads the fee configuration from path (TOML, JSON or YAML by
// extension) layered under environment overrides. An empty path uses defaults
// and the environment only.
func LoadParams(v *viper.Viper, path string) (types.Params, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return types.Params{}, fmt.Errorf("config file %s not found", path)
			}
			return types.Params{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	params := types.Params{
		NativeDenom:               v.GetString(keyNativeDenom),
		TreasuryAddress:           v.GetString(keyTreasuryAddress),
		TreasurySplitBps:          v.GetUint32(keyTreasurySplit),
		ActiveCreditSplitBps:      v.GetUint32(keyActiveCreditSplit),
		ManagedPoolSystemShareBps: v.GetUint32(keySystemShare),
	}
	if err := params.Validate(); err != nil {
		return types.Params{}, fmt.Errorf("invalid fee configuration: %w", err)
	}
	return params, nil
}
