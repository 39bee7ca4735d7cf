// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validatormanager

import (
	"github.com/luxfi/stakecli/pkg/models"
	"github.com/luxfi/stakecli/pkg/txutils"
)

type RewardAddressArgs struct {
	RewardAddress string
	EstimateGas   bool
}

type ClaimArgs struct {
	EstimateGas bool
}

// PrepareChangeRewardAddress redirects future rewards of the sender's nodes
// to args.RewardAddress.
func (b *Builder) PrepareChangeRewardAddress(tx *models.TransactionRequest, args RewardAddressArgs) error {
	rewardAddressHex, err := b.addresses.ToHex(args.RewardAddress)
	if err != nil {
		return err
	}
	data, err := txutils.ChangeRewardAddressPayload(rewardAddressHex)
	if err != nil {
		return err
	}
	return b.finalize(tx, models.ChangeRewardAddress, data, 0, args.EstimateGas)
}

func (b *Builder) PrepareClaim(tx *models.TransactionRequest, args ClaimArgs) error {
	return b.finalize(tx, models.Claim, txutils.ClaimPayload(), 0, args.EstimateGas)
}

func (b *Builder) BuildChangeRewardAddress(args RewardAddressArgs) (*models.TransactionRequest, error) {
	return build(func(tx *models.TransactionRequest) error {
		return b.PrepareChangeRewardAddress(tx, args)
	})
}

func (b *Builder) BuildClaim(args ClaimArgs) (*models.TransactionRequest, error) {
	return build(func(tx *models.TransactionRequest) error {
		return b.PrepareClaim(tx, args)
	})
}
