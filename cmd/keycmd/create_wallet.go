// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package keycmd

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/luxfi/stakecli/pkg/constants"
	"github.com/luxfi/stakecli/pkg/key"
	"github.com/luxfi/stakecli/pkg/utils"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	walletKeystore bool
	walletPassFile string
	walletForce    bool
)

func newCreateWalletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-wallet [walletFile]",
		Short: "Create a new owner wallet",
		Long: `Create a new owner wallet and write it as a PEM file, or as a JSON keystore
encrypted with the password held in --passfile when --keystore is given.

Example:
  stakecli key create-wallet ./wallet.pem
  stakecli key create-wallet ./wallet.json --keystore --passfile ./password.txt`,
		Args: cobra.ExactArgs(1),
		RunE: createWallet,
	}
	cmd.Flags().BoolVar(&walletKeystore, "keystore", false, "write an encrypted JSON keystore")
	cmd.Flags().StringVar(&walletPassFile, "passfile", "", "file holding the keystore password")
	cmd.Flags().BoolVar(&walletForce, "force", false, "overwrite an existing wallet file")
	return cmd
}

func createWallet(cmd *cobra.Command, args []string) error {
	walletPath := utils.ExpandHome(args[0])
	if walletKeystore && walletPassFile == "" {
		return fmt.Errorf("--keystore requires --passfile")
	}
	if utils.FileExists(app.FS, walletPath) && !walletForce {
		return fmt.Errorf("wallet file %s already exists, use --force to overwrite it", walletPath)
	}
	seed := make([]byte, ed25519.SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return fmt.Errorf("failed to generate wallet key: %w", err)
	}
	acc, err := key.NewWalletAccount(seed, app.AddressCodec())
	key.Wipe(seed)
	if err != nil {
		return err
	}
	defer acc.Clear()
	if walletKeystore {
		password, err := utils.ReadTrimmed(app.FS, walletPassFile)
		if err != nil {
			return fmt.Errorf("failed to read password file %s: %w", walletPassFile, err)
		}
		ks, err := key.NewKeystore(acc, password, key.DefaultScryptParams)
		if err != nil {
			return err
		}
		if err := ks.Save(app.FS, walletPath); err != nil {
			return fmt.Errorf("failed to save keystore: %w", err)
		}
	} else {
		if err := afero.WriteFile(app.FS, walletPath, key.EncodeWalletPEM(acc), constants.WriteReadUserOnlyPerms); err != nil {
			return fmt.Errorf("failed to save wallet: %w", err)
		}
	}
	app.Log.Info("created wallet", zap.String("path", walletPath), zap.String("address", acc.Address()))
	return printAccount(cmd, walletPath, acc)
}
