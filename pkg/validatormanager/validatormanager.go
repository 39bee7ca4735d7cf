// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package validatormanager prepares the transactions that drive a validator
// through its lifecycle on the staking system contract.
//
// Every builder fills Receiver and Data, and GasLimit when gas estimation is
// requested, on a caller owned models.TransactionRequest. Nonce, sender,
// value and signature are left to the caller.
package validatormanager

import (
	"github.com/luxfi/stakecli/pkg/address"
	"github.com/luxfi/stakecli/pkg/bls"
	"github.com/luxfi/stakecli/pkg/config"
	"github.com/luxfi/stakecli/pkg/key"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// AddressCodec converts between bech32 addresses and raw public keys.
type AddressCodec interface {
	key.AddressEncoder
	ToHex(addr string) (string, error)
}

var _ AddressCodec = &address.Bech32Codec{}

// Builder prepares staking contract calls. It holds no per call state and can
// be shared.
type Builder struct {
	conf      *config.Config
	addresses AddressCodec
	fs        afero.Fs
	signer    *bls.Signer
	log       *zap.Logger
}

type Option func(*Builder)

// WithFS reads manifests and key files from fs instead of the OS.
func WithFS(fs afero.Fs) Option {
	return func(b *Builder) {
		b.fs = fs
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(b *Builder) {
		b.log = log
	}
}

func WithAddressCodec(codec AddressCodec) Option {
	return func(b *Builder) {
		b.addresses = codec
	}
}

// New returns a Builder for the network described by conf.
func New(conf *config.Config, opts ...Option) *Builder {
	b := &Builder{
		conf:      conf,
		addresses: address.NewBech32Codec(conf.AddressHRP),
		fs:        afero.NewOsFs(),
		signer:    bls.NewSigner(conf.BLSDomain),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}
