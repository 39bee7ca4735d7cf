// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validatormanager

import (
	"context"
	"encoding/hex"
	"fmt"
	"runtime"

	"github.com/luxfi/stakecli/pkg/key"
	"github.com/luxfi/stakecli/pkg/models"
	"github.com/luxfi/stakecli/pkg/txutils"
	"github.com/luxfi/stakecli/pkg/validator"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// StakeArgs describes a stake call. Owner wins over Credentials when set.
type StakeArgs struct {
	ValidatorsFile string
	Owner          key.Account
	Credentials    key.Credentials
	RewardAddress  string
	EstimateGas    bool
}

// PrepareStake registers every node of the validators file under the owner
// account. Nodes keep the order of the file; any unreadable key file or
// signing failure aborts the whole call.
func (b *Builder) PrepareStake(ctx context.Context, tx *models.TransactionRequest, args StakeArgs) error {
	manifest, err := validator.LoadManifest(b.fs, args.ValidatorsFile)
	if err != nil {
		return err
	}
	owner := args.Owner
	if owner == nil {
		acc, err := key.LoadAccount(b.fs, b.addresses, args.Credentials)
		if err != nil {
			return err
		}
		defer acc.Clear()
		owner = acc
	}
	keyPaths := validator.KeyPaths(args.ValidatorsFile, manifest)
	proofs, err := b.signOwnershipProofs(ctx, hex.EncodeToString(owner.PublicKey()), keyPaths)
	if err != nil {
		return err
	}
	var rewardAddressHex string
	if args.RewardAddress != "" {
		rewardAddressHex, err = b.addresses.ToHex(args.RewardAddress)
		if err != nil {
			return err
		}
	}
	data, err := txutils.StakePayload(proofs, rewardAddressHex)
	if err != nil {
		return err
	}
	b.log.Info("staking nodes",
		zap.String("owner", owner.Address()),
		zap.Int("nodes", len(proofs)),
		zap.Bool("rewardAddress", rewardAddressHex != ""),
	)
	return b.finalize(tx, models.Stake, data, len(proofs), args.EstimateGas)
}

func (b *Builder) BuildStake(ctx context.Context, args StakeArgs) (*models.TransactionRequest, error) {
	return build(func(tx *models.TransactionRequest) error {
		return b.PrepareStake(ctx, tx, args)
	})
}

// signOwnershipProofs signs ownerPublicKeyHex with the node key found at each
// path. Nodes are signed concurrently, results keep the order of keyPaths.
func (b *Builder) signOwnershipProofs(
	ctx context.Context,
	ownerPublicKeyHex string,
	keyPaths []string,
) ([]models.NodeProof, error) {
	proofs := make([]models.NodeProof, len(keyPaths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, keyPath := range keyPaths {
		i, keyPath := i, keyPath
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			km, err := key.LoadValidatorPEM(b.fs, keyPath)
			if err != nil {
				return err
			}
			defer key.Wipe(km.Seed)
			sig, err := b.signer.SignOwnership(ownerPublicKeyHex, km.Seed)
			if err != nil {
				return fmt.Errorf("node %d (%s): %w", i, keyPath, err)
			}
			proofs[i] = models.NodeProof{BLSPublicKey: km.BLSPublicKey, Signature: sig}
			b.log.Debug("signed ownership proof", zap.Int("node", i), zap.String("blsKey", km.BLSPublicKey))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return proofs, nil
}
