// Copyright (C) 2022-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	ErrManifestNotFound          = errors.New("validators file not found")
	ErrCannotReadValidatorsData  = errors.New("cannot read validators data")
	ErrKeyMaterialParse          = errors.New("cannot parse validator key file")
	ErrSigning                   = errors.New("cannot sign ownership proof")
	ErrInvalidAddress            = errors.New("invalid address")
	ErrMissingAccountCredentials = errors.New("missing account credentials: provide --pem or both --keyfile and --passfile")
	ErrInvalidKeystore           = errors.New("invalid keystore")
	ErrInvalidBLSKey             = errors.New("invalid BLS public key")
	ErrTooManyNodes              = errors.New("too many nodes for a single stake transaction")
	ErrInvalidFunctionName       = errors.New("invalid function name")
	ErrUnknownOperation          = errors.New("unknown staking operation")
	ErrGasOverflow               = errors.New("gas limit overflows uint64")
)
