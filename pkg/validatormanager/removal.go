// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validatormanager

import (
	"github.com/luxfi/stakecli/pkg/models"
	"github.com/luxfi/stakecli/pkg/txutils"
)

// NodeKeysArgs describes an unStake, unBond or unJail call. BLSKeys is a
// comma separated list of hex BLS public keys, passed on in order.
type NodeKeysArgs struct {
	BLSKeys     string
	EstimateGas bool
}

func (b *Builder) PrepareUnstake(tx *models.TransactionRequest, args NodeKeysArgs) error {
	return b.prepareNodeKeys(tx, models.Unstake, args)
}

func (b *Builder) PrepareUnbond(tx *models.TransactionRequest, args NodeKeysArgs) error {
	return b.prepareNodeKeys(tx, models.Unbond, args)
}

func (b *Builder) PrepareUnjail(tx *models.TransactionRequest, args NodeKeysArgs) error {
	return b.prepareNodeKeys(tx, models.Unjail, args)
}

func (b *Builder) BuildUnstake(args NodeKeysArgs) (*models.TransactionRequest, error) {
	return build(func(tx *models.TransactionRequest) error {
		return b.PrepareUnstake(tx, args)
	})
}

func (b *Builder) BuildUnbond(args NodeKeysArgs) (*models.TransactionRequest, error) {
	return build(func(tx *models.TransactionRequest) error {
		return b.PrepareUnbond(tx, args)
	})
}

func (b *Builder) BuildUnjail(args NodeKeysArgs) (*models.TransactionRequest, error) {
	return build(func(tx *models.TransactionRequest) error {
		return b.PrepareUnjail(tx, args)
	})
}

func (b *Builder) prepareNodeKeys(tx *models.TransactionRequest, op models.Operation, args NodeKeysArgs) error {
	keys, err := txutils.ParseBLSKeys(args.BLSKeys)
	if err != nil {
		return err
	}
	data, err := txutils.NodeKeysPayload(op, keys)
	if err != nil {
		return err
	}
	return b.finalize(tx, op, data, len(keys), args.EstimateGas)
}
