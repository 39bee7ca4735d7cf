// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validatorcmd

import (
	"fmt"

	"github.com/luxfi/stakecli/cmd/flags"
	"github.com/luxfi/stakecli/pkg/application"
	"github.com/luxfi/stakecli/pkg/models"
	"github.com/luxfi/stakecli/pkg/txutils"
	"github.com/luxfi/stakecli/pkg/ux"
	"github.com/spf13/cobra"
)

var app *application.StakeCLI

// stakecli validator
func NewCmd(injectedApp *application.StakeCLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validator",
		Short: "Prepare validator lifecycle transactions",
		Long: `The validator command suite prepares the calls an owner sends to the staking
system contract to register nodes, take them out of the validator set, get them
out of jail and collect their rewards.

The transactions are printed, not sent. Sign and broadcast them with your wallet.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	// validator stake
	cmd.AddCommand(newStakeCmd())
	// validator unstake
	cmd.AddCommand(newUnstakeCmd())
	// validator unbond
	cmd.AddCommand(newUnbondCmd())
	// validator unjail
	cmd.AddCommand(newUnjailCmd())
	// validator change-reward-address
	cmd.AddCommand(newChangeRewardAddressCmd())
	// validator claim
	cmd.AddCommand(newClaimCmd())
	return cmd
}

func printTransaction(cmd *cobra.Command, op models.Operation, tx *models.TransactionRequest, f flags.TransactionFlags) error {
	if err := ux.PrintTransactionRequest(cmd.OutOrStdout(), op, tx, f.JSON); err != nil {
		return err
	}
	if !f.JSON {
		app.Log.Sugar().Infof("%s transaction prepared for %s", txutils.GetDisplayName(op), tx.Receiver)
	}
	return nil
}
