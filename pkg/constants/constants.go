// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

const (
	DefaultPerms755        = 0o755
	WriteReadReadPerms     = 0o644
	WriteReadUserOnlyPerms = 0o600

	BaseDirName = ".stakecli"
	LogDir      = "logs"
	LogFileName = "stakecli.log"

	DefaultConfigFileName = "config"
	DefaultConfigFileType = "json"
	EnvPrefix             = "STAKECLI"

	// StakingContractAddress is the system smart contract receiving every
	// validator lifecycle call.
	StakingContractAddress = "erd1qqqqqqqqqqqqqqqpqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqplllst77y4l"
	AddressHRP             = "erd"
	AddressLen             = 32

	// BLSDomainSeparationTag is the hash-to-curve ciphersuite the staking
	// contract verifies ownership proofs against.
	BLSDomainSeparationTag = "BLS_SIG_BLS12381G1_XMD:SHA-256_SSWU_RO_NUL_"
	BLSSeedLen             = 32
	BLSPublicKeyLen        = 96
	BLSSignatureLen        = 48

	MinGasLimit    = 50_000
	GasPerDataByte = 1_500

	StakeCost               = 5_000_000
	UnstakeCost             = 5_000_000
	UnbondCost              = 5_000_000
	UnjailCost              = 5_000_000
	ChangeRewardAddressCost = 5_000_000
	ClaimCost               = 5_000_000

	// MaxNodesPerStake is bound by the single byte the node count is encoded on.
	MaxNodesPerStake = 255

	YAMLExt = ".yaml"
	YMLExt  = ".yml"
)
