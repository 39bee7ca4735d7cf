// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package key

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"github.com/luxfi/stakecli/pkg/constants"
	"github.com/luxfi/stakecli/pkg/utils"
	"github.com/spf13/afero"
)

// Account is an owner wallet able to stake nodes.
type Account interface {
	PublicKey() []byte
	Address() string
}

// AddressEncoder renders a public key as a human readable address.
type AddressEncoder interface {
	Encode(pubKey []byte) (string, error)
}

var _ Account = &WalletAccount{}

// WalletAccount is an ed25519 wallet key loaded from disk.
type WalletAccount struct {
	seed    []byte
	pubKey  ed25519.PublicKey
	address string
	locked  bool
}

// NewWalletAccount derives the account of a 32 byte ed25519 seed.
func NewWalletAccount(seed []byte, enc AddressEncoder) (*WalletAccount, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: wallet seed is %d bytes, expected %d", constants.ErrKeyMaterialParse, len(seed), ed25519.SeedSize)
	}
	pubKey := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	addr, err := enc.Encode(pubKey)
	if err != nil {
		return nil, err
	}
	acc := &WalletAccount{
		seed:    append([]byte(nil), seed...),
		pubKey:  pubKey,
		address: addr,
	}
	acc.locked = lockMemory(acc.seed)
	return acc, nil
}

// Clear wipes the seed held by the account. The account must not sign or be
// exported afterwards.
func (a *WalletAccount) Clear() {
	if a.locked {
		unlockMemory(a.seed)
		a.locked = false
	}
	Wipe(a.seed)
}

func (a *WalletAccount) PublicKey() []byte {
	return append([]byte(nil), a.pubKey...)
}

func (a *WalletAccount) PublicKeyHex() string {
	return hex.EncodeToString(a.pubKey)
}

func (a *WalletAccount) Address() string {
	return a.address
}

// Seed returns the ed25519 seed of the wallet.
func (a *WalletAccount) Seed() []byte {
	return append([]byte(nil), a.seed...)
}

// Credentials names where the owner wallet is loaded from.
type Credentials struct {
	PEMFile  string
	KeyFile  string
	PassFile string
}

// LoadAccount loads the owner wallet. A PEM file takes precedence over a
// keystore, and a keystore needs its password file.
func LoadAccount(fs afero.Fs, enc AddressEncoder, creds Credentials) (*WalletAccount, error) {
	switch {
	case creds.PEMFile != "":
		return LoadWalletPEM(fs, enc, creds.PEMFile)
	case creds.KeyFile != "" && creds.PassFile != "":
		password, err := utils.ReadTrimmed(fs, creds.PassFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read password file %s: %w", creds.PassFile, err)
		}
		return LoadKeystore(fs, enc, creds.KeyFile, password)
	}
	return nil, constants.ErrMissingAccountCredentials
}

// LoadWalletPEM reads a wallet PEM whose body is the hex text of the seed
// followed by the public key.
func LoadWalletPEM(fs afero.Fs, enc AddressEncoder, path string) (*WalletAccount, error) {
	content, err := afero.ReadFile(fs, utils.ExpandHome(path))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", constants.ErrKeyMaterialParse, path, err)
	}
	_, body, err := decodeHexPEM(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(body) < ed25519.SeedSize {
		return nil, fmt.Errorf("%s: %w: wallet key is %d bytes", path, constants.ErrKeyMaterialParse, len(body))
	}
	return NewWalletAccount(body[:ed25519.SeedSize], enc)
}

// EncodeWalletPEM renders an account in the wallet PEM format.
func EncodeWalletPEM(acc *WalletAccount) []byte {
	body := append(acc.Seed(), acc.pubKey...)
	return encodeHexPEM(acc.address, body)
}
