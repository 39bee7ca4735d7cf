// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"crypto/sha256"
	"fmt"
	"path/filepath"

	"github.com/luxfi/stakecli/pkg/address"
	"github.com/luxfi/stakecli/pkg/bls"
	"github.com/luxfi/stakecli/pkg/constants"
	"github.com/luxfi/stakecli/pkg/key"
	"github.com/luxfi/stakecli/pkg/models"
	"github.com/luxfi/stakecli/pkg/utils"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// ValidatorKey is a node key written as a fixture.
type ValidatorKey struct {
	Seed         []byte
	BLSPublicKey string
	Path         string
}

// ValidatorSeed returns a deterministic node seed for index.
func ValidatorSeed(require *require.Assertions, index int) []byte {
	ikm := sha256.Sum256([]byte(fmt.Sprintf("validator-%d", index)))
	seed, err := bls.NewSeed(ikm[:])
	require.NoError(err)
	return seed
}

// WriteValidatorKeys writes count node key files named validatorKey<i>.pem
// into dir.
func WriteValidatorKeys(require *require.Assertions, fs afero.Fs, dir string, count int) []ValidatorKey {
	require.NoError(fs.MkdirAll(dir, constants.DefaultPerms755))
	keys := make([]ValidatorKey, count)
	for i := range keys {
		seed := ValidatorSeed(require, i)
		blsPublicKey, err := bls.PublicKeyHex(seed)
		require.NoError(err)
		path := filepath.Join(dir, fmt.Sprintf("validatorKey%d.pem", i))
		require.NoError(afero.WriteFile(fs, path, key.EncodeValidatorPEM(seed, blsPublicKey), constants.WriteReadUserOnlyPerms))
		keys[i] = ValidatorKey{Seed: seed, BLSPublicKey: blsPublicKey, Path: path}
	}
	return keys
}

// WriteManifest writes a JSON validators file listing pemFiles in order.
func WriteManifest(require *require.Assertions, fs afero.Fs, path string, pemFiles ...string) {
	manifest := models.ValidatorManifest{Validators: make([]models.ValidatorEntry, 0, len(pemFiles))}
	for _, pemFile := range pemFiles {
		manifest.Validators = append(manifest.Validators, models.ValidatorEntry{PemFile: pemFile})
	}
	require.NoError(fs.MkdirAll(filepath.Dir(path), constants.DefaultPerms755))
	f, err := fs.Create(path)
	require.NoError(err)
	defer f.Close()
	require.NoError(utils.WriteJSON(f, manifest))
}

// NewWalletAccount returns a deterministic owner account for index.
func NewWalletAccount(require *require.Assertions, index int) *key.WalletAccount {
	seed := sha256.Sum256([]byte(fmt.Sprintf("wallet-%d", index)))
	acc, err := key.NewWalletAccount(seed[:], address.NewBech32Codec(constants.AddressHRP))
	require.NoError(err)
	return acc
}

// WriteWalletPEM stores acc in the wallet PEM format at path.
func WriteWalletPEM(require *require.Assertions, fs afero.Fs, path string, acc *key.WalletAccount) {
	require.NoError(fs.MkdirAll(filepath.Dir(path), constants.DefaultPerms755))
	require.NoError(afero.WriteFile(fs, path, key.EncodeWalletPEM(acc), constants.WriteReadUserOnlyPerms))
}
