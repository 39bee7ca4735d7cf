// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package keycmd

import (
	"github.com/luxfi/stakecli/cmd/flags"
	"github.com/luxfi/stakecli/pkg/key"
	"github.com/luxfi/stakecli/pkg/ux"
	"github.com/spf13/cobra"
)

var showCredentials key.Credentials

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the address of an owner wallet",
		Long: `Show the address and public key of the owner wallet read from --pem, or from
--keyfile together with --passfile.`,
		Args: cobra.NoArgs,
		RunE: show,
	}
	flags.AddAccountFlagsToCmd(cmd, &showCredentials)
	return cmd
}

func show(cmd *cobra.Command, _ []string) error {
	acc, err := key.LoadAccount(app.FS, app.AddressCodec(), showCredentials)
	if err != nil {
		return err
	}
	defer acc.Clear()
	source := showCredentials.PEMFile
	if source == "" {
		source = showCredentials.KeyFile
	}
	return printAccount(cmd, source, acc)
}

func printAccount(cmd *cobra.Command, source string, acc *key.WalletAccount) error {
	table := ux.NewCompatTable(cmd.OutOrStdout())
	table.SetHeader([]string{"Wallet File", "Address", "Public Key"})
	table.AppendCompat([]string{source, acc.Address(), acc.PublicKeyHex()})
	return table.Render()
}
