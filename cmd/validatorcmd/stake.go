// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validatorcmd

import (
	"github.com/luxfi/stakecli/cmd/flags"
	"github.com/luxfi/stakecli/pkg/key"
	"github.com/luxfi/stakecli/pkg/models"
	"github.com/luxfi/stakecli/pkg/validatormanager"
	"github.com/spf13/cobra"
)

type stakeFlags struct {
	validatorsFile string
	rewardAddress  string
	credentials    key.Credentials
	tx             flags.TransactionFlags
}

// stakecli validator stake
func newStakeCmd() *cobra.Command {
	f := &stakeFlags{}
	cmd := &cobra.Command{
		Use:   "stake",
		Short: "Prepare the registration of the nodes of a validators file",
		Long: `The validator stake command signs the owner's public key with every node key
listed in the validators file and prepares the stake call registering those nodes.

The validators file is JSON, or YAML when named *.yaml or *.yml:

  {"validators": [{"pemFile": "node0.pem"}, {"pemFile": "node1.pem"}]}

Key file paths are relative to the validators file. The owner wallet is read from
--pem, or from --keyfile together with --passfile.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return stake(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.validatorsFile, "validators-file", "", "JSON or YAML file listing the node key files")
	cmd.Flags().StringVar(&f.rewardAddress, "reward-address", "", "address receiving the rewards of the nodes (default owner)")
	flags.AddAccountFlagsToCmd(cmd, &f.credentials)
	flags.AddTransactionFlagsToCmd(cmd, &f.tx)
	_ = cmd.MarkFlagRequired("validators-file")
	return cmd
}

func stake(cmd *cobra.Command, f *stakeFlags) error {
	tx, err := app.ValidatorManager().BuildStake(cmd.Context(), validatormanager.StakeArgs{
		ValidatorsFile: f.validatorsFile,
		Credentials:    f.credentials,
		RewardAddress:  f.rewardAddress,
		EstimateGas:    f.tx.EstimateGas,
	})
	if err != nil {
		return err
	}
	return printTransaction(cmd, models.Stake, tx, f.tx)
}
