// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

const (
	ValidatorCmd = "validator"
	KeyCmd       = "key"
	ConfigCmd    = "config"

	EstimateGasFlag = "--estimate-gas"
	JSONFlag        = "--json"
)
