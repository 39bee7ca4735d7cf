// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/luxfi/stakecli/pkg/constants"
	"github.com/luxfi/stakecli/pkg/utils"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require := require.New(t)

	conf, err := Load(viper.New())
	require.NoError(err)
	require.Equal(New(), conf)
	require.Equal(constants.StakingContractAddress, conf.StakingContract)
	require.Equal(uint64(constants.MinGasLimit), conf.Gas.MinGasLimit)
	require.Equal(uint64(constants.ClaimCost), conf.Gas.Costs.Claim)
}

func TestLoadFromFile(t *testing.T) {
	require := require.New(t)
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(v.ReadConfig(strings.NewReader(`
address-hrp: test
gas:
  min-gas-limit: 70000
  costs:
    stake: 6000000
    change-reward-address: 42
`)))

	conf, err := Load(v)
	require.NoError(err)
	require.Equal("test", conf.AddressHRP)
	require.Equal(uint64(70000), conf.Gas.MinGasLimit)
	require.Equal(uint64(constants.GasPerDataByte), conf.Gas.GasPerDataByte)
	require.Equal(uint64(6000000), conf.Gas.Costs.Stake)
	require.Equal(uint64(42), conf.Gas.Costs.ChangeRewardAddress)
	require.Equal(uint64(constants.UnjailCost), conf.Gas.Costs.Unjail)
}

func TestLoadFromEnv(t *testing.T) {
	require := require.New(t)
	t.Setenv("STAKECLI_GAS_GAS_PER_DATA_BYTE", "2000")
	t.Setenv("STAKECLI_STAKING_CONTRACT", "erd1contract")
	v := viper.New()
	BindEnv(v)

	conf, err := Load(v)
	require.NoError(err)
	require.Equal(uint64(2000), conf.Gas.GasPerDataByte)
	require.Equal("erd1contract", conf.StakingContract)
}

func TestJSONRoundTrip(t *testing.T) {
	require := require.New(t)
	conf := New()
	conf.AddressHRP = "test"
	conf.Gas.Costs.Unbond = 7

	var buf bytes.Buffer
	require.NoError(utils.WriteJSON(&buf, conf))
	v := viper.New()
	v.SetConfigType("json")
	require.NoError(v.ReadConfig(&buf))

	loaded, err := Load(v)
	require.NoError(err)
	require.Equal(conf, loaded)
}

func TestValidate(t *testing.T) {
	require := require.New(t)
	conf := New()
	conf.StakingContract = ""
	require.ErrorContains(conf.Validate(), StakingContractKey)

	conf = New()
	conf.AddressHRP = ""
	require.ErrorContains(conf.Validate(), AddressHRPKey)
}
