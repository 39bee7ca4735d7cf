// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"

	"github.com/luxfi/stakecli/pkg/application"
	"github.com/spf13/cobra"
)

var app *application.StakeCLI

func NewCmd(injectedApp *application.StakeCLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and initialize the network parameters",
		Long: `The config command suite shows the network parameters transactions are prepared
with and writes them to a config file for editing.

Parameters are read from flags, then STAKECLI_* environment variables, then the
config file, then the built-in mainnet defaults.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	// stakecli config list
	cmd.AddCommand(newListCmd())
	// stakecli config init
	cmd.AddCommand(newInitCmd())

	return cmd
}
