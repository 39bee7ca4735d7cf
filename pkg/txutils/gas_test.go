// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txutils

import (
	"math"
	"testing"

	"github.com/luxfi/stakecli/pkg/constants"
	"github.com/luxfi/stakecli/pkg/models"
	"github.com/stretchr/testify/require"
)

func TestEstimate(t *testing.T) {
	require := require.New(t)
	g := GasSchedule{MinGasLimit: 10, GasPerDataByte: 2}

	gas, err := g.Estimate("claim", 7, 3)
	require.NoError(err)
	require.Equal(uint64(10+5*2+3*7), gas)
	gas, err = g.Estimate("", 7, 0)
	require.NoError(err)
	require.Equal(uint64(10), gas)
	// byte length, not rune count
	gas, err = g.Estimate("é", 0, 1)
	require.NoError(err)
	require.Equal(uint64(10+2*2), gas)
}

func TestEstimateOverflow(t *testing.T) {
	tests := []struct {
		name     string
		schedule GasSchedule
		data     string
		baseCost uint64
		factor   uint64
	}{
		{
			name:     "data cost",
			schedule: GasSchedule{GasPerDataByte: math.MaxUint64},
			data:     "claim",
		},
		{
			name:     "call cost",
			baseCost: math.MaxUint64 / 2,
			factor:   3,
		},
		{
			name:     "sum",
			schedule: GasSchedule{MinGasLimit: math.MaxUint64, GasPerDataByte: 1},
			data:     "x",
		},
		{
			name:     "sum through call cost",
			schedule: GasSchedule{MinGasLimit: math.MaxUint64 - 1},
			baseCost: 2,
			factor:   1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			_, err := tt.schedule.Estimate(tt.data, tt.baseCost, tt.factor)
			require.ErrorIs(err, constants.ErrGasOverflow)
		})
	}

	gas, err := GasSchedule{MinGasLimit: math.MaxUint64 - 1}.Estimate("", 1, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), gas)
}

func TestEstimateOperationDefaults(t *testing.T) {
	require := require.New(t)
	g := DefaultGasSchedule()

	gas, err := g.EstimateOperation(models.Claim, "claim", 1)
	require.NoError(err)
	require.Equal(uint64(constants.MinGasLimit+5*constants.GasPerDataByte+constants.ClaimCost), gas)

	gas, err = g.EstimateOperation(models.Stake, "stake00", 0)
	require.NoError(err)
	require.Equal(uint64(constants.MinGasLimit+7*constants.GasPerDataByte), gas)

	_, err = g.EstimateOperation(models.Operation("getTotalStaked"), "x", 1)
	require.ErrorIs(err, constants.ErrUnknownOperation)
}

func TestBaseCostPerOperation(t *testing.T) {
	costs := SystemCosts{Stake: 1, Unstake: 2, Unbond: 3, Unjail: 4, ChangeRewardAddress: 5, Claim: 6}
	for i, op := range models.Operations {
		c, err := costs.BaseCost(op)
		require.NoError(t, err)
		require.Equal(t, uint64(i+1), c, op.String())
	}
}

func TestGetDisplayName(t *testing.T) {
	for _, op := range models.Operations {
		require.NotEqual(t, "Unknown", GetDisplayName(op))
	}
	require.Equal(t, "Unknown", GetDisplayName(models.Operation("x")))
}
