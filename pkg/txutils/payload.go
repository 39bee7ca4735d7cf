// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txutils

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/luxfi/stakecli/pkg/constants"
	"github.com/luxfi/stakecli/pkg/models"
)

const argSeparator = "@"

// NewContractCall validates the function name and hex arguments of a call.
func NewContractCall(function string, args ...string) (*models.ContractCall, error) {
	if function == "" || strings.Contains(function, argSeparator) {
		return nil, fmt.Errorf("%w: %q", constants.ErrInvalidFunctionName, function)
	}
	for _, arg := range args {
		if !isLowerHex(arg) {
			return nil, fmt.Errorf("argument %q of %s is not lowercase hex", arg, function)
		}
	}
	return &models.ContractCall{Function: function, Args: args}, nil
}

// EncodeCall renders call as `fn@arg1@arg2`.
func EncodeCall(call *models.ContractCall) string {
	var sb strings.Builder
	sb.WriteString(call.Function)
	for _, arg := range call.Args {
		sb.WriteString(argSeparator)
		sb.WriteString(arg)
	}
	return sb.String()
}

// EncodeLittleEndian renders v as size bytes little-endian hex.
func EncodeLittleEndian(v uint64, size int) (string, error) {
	if size < 8 && v>>(8*uint(size)) != 0 {
		return "", fmt.Errorf("%d does not fit in %d bytes", v, size)
	}
	buf := make([]byte, size)
	for i := 0; i < size && i < 8; i++ {
		buf[i] = byte(v >> (8 * uint(i)))
	}
	return hex.EncodeToString(buf), nil
}

// StakePayload builds the stake call. The one byte node count follows the
// function name directly, then each node contributes its BLS key and
// ownership proof, and the reward address comes last when given.
func StakePayload(proofs []models.NodeProof, rewardAddressHex string) (string, error) {
	if len(proofs) > constants.MaxNodesPerStake {
		return "", fmt.Errorf("%w: %d nodes, at most %d", constants.ErrTooManyNodes, len(proofs), constants.MaxNodesPerStake)
	}
	count, err := EncodeLittleEndian(uint64(len(proofs)), 1)
	if err != nil {
		return "", err
	}
	args := make([]string, 0, 2*len(proofs)+1)
	for _, p := range proofs {
		args = append(args, strings.ToLower(p.BLSPublicKey), strings.ToLower(p.Signature))
	}
	if rewardAddressHex != "" {
		args = append(args, strings.ToLower(rewardAddressHex))
	}
	call, err := NewContractCall(models.Stake.String()+count, args...)
	if err != nil {
		return "", err
	}
	return EncodeCall(call), nil
}

// NodeKeysPayload builds unStake, unBond and unJail calls, one argument per
// BLS key in the given order.
func NodeKeysPayload(op models.Operation, blsKeys []string) (string, error) {
	switch op {
	case models.Unstake, models.Unbond, models.Unjail:
	default:
		return "", fmt.Errorf("%w: %s does not take node keys", constants.ErrUnknownOperation, op)
	}
	call, err := NewContractCall(op.String(), blsKeys...)
	if err != nil {
		return "", err
	}
	return EncodeCall(call), nil
}

func ChangeRewardAddressPayload(rewardAddressHex string) (string, error) {
	call, err := NewContractCall(models.ChangeRewardAddress.String(), strings.ToLower(rewardAddressHex))
	if err != nil {
		return "", err
	}
	return EncodeCall(call), nil
}

func ClaimPayload() string {
	return models.Claim.String()
}

// ParseBLSKeys splits a comma separated list of hex BLS public keys. An
// empty list yields no keys.
func ParseBLSKeys(csv string) ([]string, error) {
	if strings.TrimSpace(csv) == "" {
		return nil, nil
	}
	parts := strings.Split(csv, ",")
	keys := make([]string, 0, len(parts))
	for i, part := range parts {
		k := strings.ToLower(strings.TrimSpace(part))
		if k == "" || !isLowerHex(k) {
			return nil, fmt.Errorf("%w at position %d: %q", constants.ErrInvalidBLSKey, i, part)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func isLowerHex(s string) bool {
	if s == "" || len(s)%2 != 0 {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
