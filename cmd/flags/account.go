// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"fmt"

	"github.com/luxfi/stakecli/pkg/key"
	"github.com/spf13/cobra"
)

const (
	pemFlag      = "pem"
	keyFileFlag  = "keyfile"
	passFileFlag = "passfile"
)

// AddAccountFlagsToCmd registers the owner wallet flags on cmd and checks
// them before the command runs.
func AddAccountFlagsToCmd(cmd *cobra.Command, creds *key.Credentials) {
	cmd.Flags().StringVar(&creds.PEMFile, pemFlag, "", "owner wallet PEM file")
	cmd.Flags().StringVar(&creds.KeyFile, keyFileFlag, "", "owner wallet JSON keystore")
	cmd.Flags().StringVar(&creds.PassFile, passFileFlag, "", "file holding the keystore password")

	existingPreRunE := cmd.PreRunE
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if existingPreRunE != nil {
			if err := existingPreRunE(cmd, args); err != nil {
				return err
			}
		}
		return ValidateAccountFlags(creds)
	}
}

// ValidateAccountFlags rejects a keystore given without its password file and
// the other way round.
func ValidateAccountFlags(creds *key.Credentials) error {
	if creds.PEMFile != "" {
		return nil
	}
	if creds.KeyFile != "" && creds.PassFile == "" {
		return fmt.Errorf("--%s requires --%s", keyFileFlag, passFileFlag)
	}
	if creds.PassFile != "" && creds.KeyFile == "" {
		return fmt.Errorf("--%s requires --%s", passFileFlag, keyFileFlag)
	}
	return nil
}
