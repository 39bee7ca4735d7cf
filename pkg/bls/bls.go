// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bls signs ownership proofs with node keys on BLS12-381.
//
// Node keys use the minimal-signature-size variant: public keys live in G2
// (96 bytes compressed) and signatures in G1 (48 bytes compressed). Seeds are
// the little-endian encoding of the secret scalar, as stored in validator key
// files.
package bls

import (
	"encoding/hex"
	"fmt"

	"github.com/luxfi/stakecli/pkg/constants"

	blst "github.com/supranational/blst/bindings/go"
)

type (
	SecretKey = blst.SecretKey
	PublicKey = blst.P2Affine
	Signature = blst.P1Affine
)

// Signer produces ownership proofs under a fixed domain separation tag.
type Signer struct {
	dst []byte
}

// NewSigner returns a Signer hashing to G1 with the given domain separation
// tag. An empty tag selects constants.BLSDomainSeparationTag.
func NewSigner(dst string) *Signer {
	if dst == "" {
		dst = constants.BLSDomainSeparationTag
	}
	return &Signer{dst: []byte(dst)}
}

// SecretKeyFromSeed interprets seed as a little-endian scalar.
func SecretKeyFromSeed(seed []byte) (*SecretKey, error) {
	if len(seed) != constants.BLSSeedLen {
		return nil, fmt.Errorf("%w: seed is %d bytes, expected %d", constants.ErrSigning, len(seed), constants.BLSSeedLen)
	}
	be := make([]byte, len(seed))
	for i, b := range seed {
		be[len(seed)-1-i] = b
	}
	sk := new(SecretKey).Deserialize(be)
	if sk == nil {
		return nil, fmt.Errorf("%w: seed is not a valid secret scalar", constants.ErrSigning)
	}
	return sk, nil
}

// SeedFromSecretKey is the inverse of SecretKeyFromSeed.
func SeedFromSecretKey(sk *SecretKey) []byte {
	be := sk.Serialize()
	seed := make([]byte, len(be))
	for i, b := range be {
		seed[len(be)-1-i] = b
	}
	return seed
}

// NewSeed derives a seed from at least 32 bytes of input key material.
func NewSeed(ikm []byte) ([]byte, error) {
	if len(ikm) < 32 {
		return nil, fmt.Errorf("%w: need at least 32 bytes of key material", constants.ErrSigning)
	}
	return SeedFromSecretKey(blst.KeyGen(ikm)), nil
}

func PublicFromSecretKey(sk *SecretKey) *PublicKey {
	return new(PublicKey).From(sk)
}

// PublicKeyHex returns the compressed, hex encoded public key of seed.
func PublicKeyHex(seed []byte) (string, error) {
	sk, err := SecretKeyFromSeed(seed)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(PublicFromSecretKey(sk).Compress()), nil
}

func (s *Signer) Sign(sk *SecretKey, msg []byte) *Signature {
	return new(Signature).Sign(sk, msg, s.dst)
}

// SignOwnership signs the raw bytes of ownerPublicKeyHex with the key derived
// from seed and returns the compressed signature as hex.
func (s *Signer) SignOwnership(ownerPublicKeyHex string, seed []byte) (string, error) {
	msg, err := hex.DecodeString(ownerPublicKeyHex)
	if err != nil {
		return "", fmt.Errorf("%w: owner public key is not hex: %w", constants.ErrSigning, err)
	}
	sk, err := SecretKeyFromSeed(seed)
	if err != nil {
		return "", err
	}
	sig := s.Sign(sk, msg)
	if sig == nil {
		return "", fmt.Errorf("%w: signing failed", constants.ErrSigning)
	}
	return hex.EncodeToString(sig.Compress()), nil
}

// VerifyOwnership checks a hex encoded ownership proof against a hex encoded
// node public key.
func (s *Signer) VerifyOwnership(blsPublicKeyHex, ownerPublicKeyHex, signatureHex string) bool {
	pkBytes, err := hex.DecodeString(blsPublicKeyHex)
	if err != nil {
		return false
	}
	sigBytes, err := hex.DecodeString(signatureHex)
	if err != nil {
		return false
	}
	msg, err := hex.DecodeString(ownerPublicKeyHex)
	if err != nil {
		return false
	}
	pk := new(PublicKey).Uncompress(pkBytes)
	if pk == nil || !pk.KeyValidate() {
		return false
	}
	sig := new(Signature).Uncompress(sigBytes)
	if sig == nil {
		return false
	}
	return sig.Verify(true, pk, false, msg, s.dst)
}

// SignOwnership signs with the default domain separation tag.
func SignOwnership(ownerPublicKeyHex string, seed []byte) (string, error) {
	return NewSigner("").SignOwnership(ownerPublicKeyHex, seed)
}
