// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

// ValidatorManifest lists the nodes an owner stakes for.
type ValidatorManifest struct {
	Validators []ValidatorEntry `json:"validators" yaml:"validators"`
}

// ValidatorEntry points at the key file of one node. PemFile is relative to
// the directory holding the manifest unless absolute.
type ValidatorEntry struct {
	PemFile string `json:"pemFile" yaml:"pemFile"`
}

// NodeKeyMaterial is the identity of one node as read from its key file.
type NodeKeyMaterial struct {
	Seed         []byte
	BLSPublicKey string
}

// NodeProof pairs a node's BLS public key with the owner's ownership proof,
// both hex encoded.
type NodeProof struct {
	BLSPublicKey string
	Signature    string
}
