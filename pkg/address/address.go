// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package address converts between human readable bech32 account addresses
// and the raw public key bytes the staking contract expects.
package address

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/luxfi/stakecli/pkg/constants"
)

// Bech32Codec encodes 32 byte account public keys under a fixed HRP.
type Bech32Codec struct {
	HRP string
}

func NewBech32Codec(hrp string) *Bech32Codec {
	if hrp == "" {
		hrp = constants.AddressHRP
	}
	return &Bech32Codec{HRP: hrp}
}

// Decode returns the public key bytes of addr.
func (c *Bech32Codec) Decode(addr string) ([]byte, error) {
	hrp, data, err := bech32.Decode(strings.TrimSpace(addr))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", constants.ErrInvalidAddress, addr, err)
	}
	if hrp != c.HRP {
		return nil, fmt.Errorf("%w %q: expected prefix %q, got %q", constants.ErrInvalidAddress, addr, c.HRP, hrp)
	}
	pubKey, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", constants.ErrInvalidAddress, addr, err)
	}
	if len(pubKey) != constants.AddressLen {
		return nil, fmt.Errorf("%w %q: expected %d bytes, got %d", constants.ErrInvalidAddress, addr, constants.AddressLen, len(pubKey))
	}
	return pubKey, nil
}

// ToHex returns the lowercase hex of the public key behind addr.
func (c *Bech32Codec) ToHex(addr string) (string, error) {
	pubKey, err := c.Decode(addr)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(pubKey), nil
}

// Encode renders a public key as a bech32 address.
func (c *Bech32Codec) Encode(pubKey []byte) (string, error) {
	if len(pubKey) != constants.AddressLen {
		return "", fmt.Errorf("%w: expected %d bytes, got %d", constants.ErrInvalidAddress, constants.AddressLen, len(pubKey))
	}
	data, err := bech32.ConvertBits(pubKey, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(c.HRP, data)
}
