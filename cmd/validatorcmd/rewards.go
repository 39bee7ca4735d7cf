// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validatorcmd

import (
	"github.com/luxfi/stakecli/cmd/flags"
	"github.com/luxfi/stakecli/pkg/models"
	"github.com/luxfi/stakecli/pkg/validatormanager"
	"github.com/spf13/cobra"
)

// stakecli validator change-reward-address
func newChangeRewardAddressCmd() *cobra.Command {
	var (
		rewardAddress string
		txFlags       flags.TransactionFlags
	)
	cmd := &cobra.Command{
		Use:   "change-reward-address",
		Short: "Prepare a change of the address receiving node rewards",
		Long: `The validator change-reward-address command prepares the changeRewardAddress call
sending the future rewards of every node of the owner to --reward-address.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tx, err := app.ValidatorManager().BuildChangeRewardAddress(validatormanager.RewardAddressArgs{
				RewardAddress: rewardAddress,
				EstimateGas:   txFlags.EstimateGas,
			})
			if err != nil {
				return err
			}
			return printTransaction(cmd, models.ChangeRewardAddress, tx, txFlags)
		},
	}
	cmd.Flags().StringVar(&rewardAddress, "reward-address", "", "new reward address")
	flags.AddTransactionFlagsToCmd(cmd, &txFlags)
	_ = cmd.MarkFlagRequired("reward-address")
	return cmd
}

// stakecli validator claim
func newClaimCmd() *cobra.Command {
	var txFlags flags.TransactionFlags
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Prepare the claim of accumulated rewards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tx, err := app.ValidatorManager().BuildClaim(validatormanager.ClaimArgs{
				EstimateGas: txFlags.EstimateGas,
			})
			if err != nil {
				return err
			}
			return printTransaction(cmd, models.Claim, tx, txFlags)
		},
	}
	flags.AddTransactionFlagsToCmd(cmd, &txFlags)
	return cmd
}
