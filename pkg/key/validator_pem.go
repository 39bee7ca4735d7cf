// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package key

import (
	"encoding/hex"
	"encoding/pem"
	"fmt"
	"strings"

	"github.com/luxfi/stakecli/pkg/constants"
	"github.com/luxfi/stakecli/pkg/models"
	"github.com/luxfi/stakecli/pkg/utils"
	"github.com/spf13/afero"
)

const pemTypePrefix = "PRIVATE KEY for "

// LoadValidatorPEM reads the node key file at path.
func LoadValidatorPEM(fs afero.Fs, path string) (*models.NodeKeyMaterial, error) {
	content, err := afero.ReadFile(fs, utils.ExpandHome(path))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", constants.ErrKeyMaterialParse, path, err)
	}
	km, err := ParseValidatorPEM(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return km, nil
}

// ParseValidatorPEM decodes the first block of a node key file. The block
// type carries the hex BLS public key, the body is the hex text of the seed.
func ParseValidatorPEM(content []byte) (*models.NodeKeyMaterial, error) {
	label, body, err := decodeHexPEM(content)
	if err != nil {
		return nil, err
	}
	pubKey, err := hex.DecodeString(label)
	if err != nil {
		return nil, fmt.Errorf("%w: BLS public key is not hex: %w", constants.ErrKeyMaterialParse, err)
	}
	if len(pubKey) != constants.BLSPublicKeyLen {
		return nil, fmt.Errorf("%w: BLS public key is %d bytes, expected %d", constants.ErrKeyMaterialParse, len(pubKey), constants.BLSPublicKeyLen)
	}
	if len(body) < constants.BLSSeedLen {
		return nil, fmt.Errorf("%w: seed is %d bytes, expected %d", constants.ErrKeyMaterialParse, len(body), constants.BLSSeedLen)
	}
	return &models.NodeKeyMaterial{
		Seed:         body[:constants.BLSSeedLen],
		BLSPublicKey: hex.EncodeToString(pubKey),
	}, nil
}

// EncodeValidatorPEM is the inverse of ParseValidatorPEM.
func EncodeValidatorPEM(seed []byte, blsPublicKeyHex string) []byte {
	return encodeHexPEM(strings.ToLower(blsPublicKeyHex), seed)
}

// decodeHexPEM returns the last word of the block type and the hex decoded
// body of the first PEM block in content.
func decodeHexPEM(content []byte) (string, []byte, error) {
	block, _ := pem.Decode(content)
	if block == nil {
		return "", nil, fmt.Errorf("%w: no PEM block found", constants.ErrKeyMaterialParse)
	}
	fields := strings.Fields(block.Type)
	if !strings.HasPrefix(block.Type, pemTypePrefix) || len(fields) != 4 {
		return "", nil, fmt.Errorf("%w: unexpected PEM header %q", constants.ErrKeyMaterialParse, block.Type)
	}
	body, err := hex.DecodeString(strings.TrimSpace(string(block.Bytes)))
	if err != nil {
		return "", nil, fmt.Errorf("%w: PEM body is not hex: %w", constants.ErrKeyMaterialParse, err)
	}
	return fields[3], body, nil
}

func encodeHexPEM(label string, body []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  pemTypePrefix + label,
		Bytes: []byte(hex.EncodeToString(body)),
	})
}
