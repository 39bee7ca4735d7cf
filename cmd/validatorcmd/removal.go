// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validatorcmd

import (
	"github.com/luxfi/stakecli/cmd/flags"
	"github.com/luxfi/stakecli/pkg/models"
	"github.com/luxfi/stakecli/pkg/validatormanager"
	"github.com/spf13/cobra"
)

const nodesPublicKeysFlag = "nodes-public-keys"

type nodeKeysPreparer func(*validatormanager.Builder, validatormanager.NodeKeysArgs) (*models.TransactionRequest, error)

// stakecli validator unstake
func newUnstakeCmd() *cobra.Command {
	return newNodeKeysCmd(
		"unstake",
		"Prepare the removal of nodes from the validator set",
		`The validator unstake command prepares the unStake call taking the given nodes
out of the validator set. Their stake stays locked until it is unbonded.`,
		models.Unstake,
		(*validatormanager.Builder).BuildUnstake,
	)
}

// stakecli validator unbond
func newUnbondCmd() *cobra.Command {
	return newNodeKeysCmd(
		"unbond",
		"Prepare the release of the stake of unstaked nodes",
		`The validator unbond command prepares the unBond call returning the stake of
nodes that were unstaked and went through the unbonding period.`,
		models.Unbond,
		(*validatormanager.Builder).BuildUnbond,
	)
}

// stakecli validator unjail
func newUnjailCmd() *cobra.Command {
	return newNodeKeysCmd(
		"unjail",
		"Prepare the release of jailed nodes",
		`The validator unjail command prepares the unJail call bringing jailed nodes back
into the validator set. The fine is paid through the value of the transaction.`,
		models.Unjail,
		(*validatormanager.Builder).BuildUnjail,
	)
}

func newNodeKeysCmd(use, short, long string, op models.Operation, prepare nodeKeysPreparer) *cobra.Command {
	var (
		blsKeys string
		txFlags flags.TransactionFlags
	)
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: long + `

Nodes are given as a comma separated list of hex BLS public keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tx, err := prepare(app.ValidatorManager(), validatormanager.NodeKeysArgs{
				BLSKeys:     blsKeys,
				EstimateGas: txFlags.EstimateGas,
			})
			if err != nil {
				return err
			}
			return printTransaction(cmd, op, tx, txFlags)
		},
	}
	cmd.Flags().StringVar(&blsKeys, nodesPublicKeysFlag, "", "comma separated BLS public keys of the nodes")
	flags.AddTransactionFlagsToCmd(cmd, &txFlags)
	_ = cmd.MarkFlagRequired(nodesPublicKeysFlag)
	return cmd
}
