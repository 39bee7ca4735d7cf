// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package keycmd

import (
	"fmt"

	"github.com/luxfi/stakecli/pkg/application"
	"github.com/spf13/cobra"
)

var app *application.StakeCLI

func NewCmd(injectedApp *application.StakeCLI) *cobra.Command {
	app = injectedApp

	cmd := &cobra.Command{
		Use:   "key",
		Short: "Create node keys and owner wallets",
		Long: `The key command suite creates the node keys listed in validators files and the
owner wallets that stake them.

Generated keys are written unencrypted unless --keystore is used. Keep them safe.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}

	// stakecli key create-bls
	cmd.AddCommand(newCreateBLSCmd())

	// stakecli key create-wallet
	cmd.AddCommand(newCreateWalletCmd())

	// stakecli key show
	cmd.AddCommand(newShowCmd())

	return cmd
}
