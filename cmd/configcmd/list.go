// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"
	"io"

	"github.com/luxfi/stakecli/pkg/config"
	"github.com/luxfi/stakecli/pkg/utils"
	"github.com/luxfi/stakecli/pkg/ux"
	"github.com/spf13/cobra"
)

var listJSON bool

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the effective network parameters",
		Long:  `List the network parameters after merging flags, environment and config file.`,
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cmd.Flags().BoolVar(&listJSON, "json", false, "print the parameters as JSON")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	if listJSON {
		return utils.WriteJSON(w, app.Conf)
	}
	conf := app.Conf

	fmt.Fprintln(w, "[network]")
	printValue(w, config.StakingContractKey, conf.StakingContract)
	printValue(w, config.AddressHRPKey, conf.AddressHRP)
	printValue(w, config.BLSDomainKey, conf.BLSDomain)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[gas]")
	printValue(w, "min-gas-limit", ux.ConvertToStringWithThousandSeparator(conf.Gas.MinGasLimit))
	printValue(w, "gas-per-data-byte", ux.ConvertToStringWithThousandSeparator(conf.Gas.GasPerDataByte))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[gas.costs]")
	printValue(w, "stake", ux.ConvertToStringWithThousandSeparator(conf.Gas.Costs.Stake))
	printValue(w, "unstake", ux.ConvertToStringWithThousandSeparator(conf.Gas.Costs.Unstake))
	printValue(w, "unbond", ux.ConvertToStringWithThousandSeparator(conf.Gas.Costs.Unbond))
	printValue(w, "unjail", ux.ConvertToStringWithThousandSeparator(conf.Gas.Costs.Unjail))
	printValue(w, "change-reward-address", ux.ConvertToStringWithThousandSeparator(conf.Gas.Costs.ChangeRewardAddress))
	printValue(w, "claim", ux.ConvertToStringWithThousandSeparator(conf.Gas.Costs.Claim))

	return nil
}

func printValue(w io.Writer, key, value string) {
	fmt.Fprintf(w, "  %-22s = %s\n", key, value)
}
