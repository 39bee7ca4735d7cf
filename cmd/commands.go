// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

// Command names exported for testing
const (
	// ValidatorCmd is the validator command name
	ValidatorCmd = "validator"

	// KeyCmd is the key command name
	KeyCmd = "key"

	// ConfigCmd is the config command name
	ConfigCmd = "config"
)
