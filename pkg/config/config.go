// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"strings"

	"github.com/luxfi/stakecli/pkg/constants"
	"github.com/luxfi/stakecli/pkg/txutils"
	"github.com/spf13/viper"
)

const (
	StakingContractKey = "staking-contract"
	AddressHRPKey      = "address-hrp"
	BLSDomainKey       = "bls-domain"
	GasKey             = "gas"
)

// Config is the network parameter table the staking builders run against.
// It is loaded once and never mutated afterwards.
type Config struct {
	StakingContract string              `mapstructure:"staking-contract" json:"staking-contract"`
	AddressHRP      string              `mapstructure:"address-hrp" json:"address-hrp"`
	BLSDomain       string              `mapstructure:"bls-domain" json:"bls-domain"`
	Gas             txutils.GasSchedule `mapstructure:"gas" json:"gas"`
}

// New returns the mainnet parameters.
func New() *Config {
	return &Config{
		StakingContract: constants.StakingContractAddress,
		AddressHRP:      constants.AddressHRP,
		BLSDomain:       constants.BLSDomainSeparationTag,
		Gas:             txutils.DefaultGasSchedule(),
	}
}

// SetDefaults registers the mainnet parameters on v so that config files,
// environment variables and flags only need to override what differs.
func SetDefaults(v *viper.Viper) {
	d := New()
	v.SetDefault(StakingContractKey, d.StakingContract)
	v.SetDefault(AddressHRPKey, d.AddressHRP)
	v.SetDefault(BLSDomainKey, d.BLSDomain)
	v.SetDefault(GasKey+".min-gas-limit", d.Gas.MinGasLimit)
	v.SetDefault(GasKey+".gas-per-data-byte", d.Gas.GasPerDataByte)
	v.SetDefault(GasKey+".costs.stake", d.Gas.Costs.Stake)
	v.SetDefault(GasKey+".costs.unstake", d.Gas.Costs.Unstake)
	v.SetDefault(GasKey+".costs.unbond", d.Gas.Costs.Unbond)
	v.SetDefault(GasKey+".costs.unjail", d.Gas.Costs.Unjail)
	v.SetDefault(GasKey+".costs.change-reward-address", d.Gas.Costs.ChangeRewardAddress)
	v.SetDefault(GasKey+".costs.claim", d.Gas.Costs.Claim)
}

// BindEnv makes every key readable from STAKECLI_* variables, e.g.
// STAKECLI_GAS_MIN_GAS_LIMIT.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load decodes the parameters held by v.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) Validate() error {
	if c.StakingContract == "" {
		return fmt.Errorf("%s must be set", StakingContractKey)
	}
	if c.AddressHRP == "" {
		return fmt.Errorf("%s must be set", AddressHRPKey)
	}
	return nil
}
