// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txutils

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/luxfi/stakecli/pkg/constants"
	"github.com/luxfi/stakecli/pkg/models"
)

// SystemCosts holds the base gas cost of each staking contract call.
type SystemCosts struct {
	Stake               uint64 `mapstructure:"stake" json:"stake"`
	Unstake             uint64 `mapstructure:"unstake" json:"unstake"`
	Unbond              uint64 `mapstructure:"unbond" json:"unbond"`
	Unjail              uint64 `mapstructure:"unjail" json:"unjail"`
	ChangeRewardAddress uint64 `mapstructure:"change-reward-address" json:"change-reward-address"`
	Claim               uint64 `mapstructure:"claim" json:"claim"`
}

// BaseCost returns the cost of op.
func (c SystemCosts) BaseCost(op models.Operation) (uint64, error) {
	switch op {
	case models.Stake:
		return c.Stake, nil
	case models.Unstake:
		return c.Unstake, nil
	case models.Unbond:
		return c.Unbond, nil
	case models.Unjail:
		return c.Unjail, nil
	case models.ChangeRewardAddress:
		return c.ChangeRewardAddress, nil
	case models.Claim:
		return c.Claim, nil
	}
	return 0, fmt.Errorf("%w: %q", constants.ErrUnknownOperation, op)
}

// GasSchedule holds the network parameters gas limits are estimated from.
type GasSchedule struct {
	MinGasLimit    uint64      `mapstructure:"min-gas-limit" json:"min-gas-limit"`
	GasPerDataByte uint64      `mapstructure:"gas-per-data-byte" json:"gas-per-data-byte"`
	Costs          SystemCosts `mapstructure:"costs" json:"costs"`
}

func DefaultGasSchedule() GasSchedule {
	return GasSchedule{
		MinGasLimit:    constants.MinGasLimit,
		GasPerDataByte: constants.GasPerDataByte,
		Costs: SystemCosts{
			Stake:               constants.StakeCost,
			Unstake:             constants.UnstakeCost,
			Unbond:              constants.UnbondCost,
			Unjail:              constants.UnjailCost,
			ChangeRewardAddress: constants.ChangeRewardAddressCost,
			Claim:               constants.ClaimCost,
		},
	}
}

// Estimate returns MinGasLimit + len(data)*GasPerDataByte + factor*baseCost,
// with data measured in UTF-8 bytes. A result above math.MaxUint64 fails
// with ErrGasOverflow.
func (g GasSchedule) Estimate(data string, baseCost uint64, factor uint64) (uint64, error) {
	hi, dataCost := bits.Mul64(uint64(len([]byte(data))), g.GasPerDataByte)
	if hi != 0 {
		return 0, fmt.Errorf("%w: data cost", constants.ErrGasOverflow)
	}
	hi, callCost := bits.Mul64(factor, baseCost)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %d x %d call cost", constants.ErrGasOverflow, factor, baseCost)
	}
	sum, carryData := bits.Add64(g.MinGasLimit, dataCost, 0)
	sum, carryCall := bits.Add64(sum, callCost, 0)
	if carryData|carryCall != 0 {
		return 0, fmt.Errorf("%w: total exceeds %d", constants.ErrGasOverflow, uint64(math.MaxUint64))
	}
	return sum, nil
}

// EstimateOperation looks the base cost of op up and estimates its gas limit.
// factor is the number of nodes for node scoped operations and 1 otherwise.
func (g GasSchedule) EstimateOperation(op models.Operation, data string, factor uint64) (uint64, error) {
	baseCost, err := g.Costs.BaseCost(op)
	if err != nil {
		return 0, err
	}
	return g.Estimate(data, baseCost, factor)
}
