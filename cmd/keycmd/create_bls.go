// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package keycmd

import (
	"crypto/rand"
	"fmt"

	"github.com/luxfi/stakecli/pkg/bls"
	"github.com/luxfi/stakecli/pkg/constants"
	"github.com/luxfi/stakecli/pkg/key"
	"github.com/luxfi/stakecli/pkg/utils"
	"github.com/luxfi/stakecli/pkg/ux"
	"github.com/luxfi/stakecli/pkg/validator"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	blsValidatorsFile string
	blsForce          bool
)

func newCreateBLSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-bls [keyFile]",
		Short: "Create a new BLS node key",
		Long: `Create a new BLS12-381 node key and write it in the node key file format.

The public key is printed and, with --validators-file, the key file is appended to
that validators file so it is registered by the next stake call.

Example:
  stakecli key create-bls ./node0.pem --validators-file ./validators.json`,
		Args: cobra.ExactArgs(1),
		RunE: createBLS,
	}
	cmd.Flags().StringVar(&blsValidatorsFile, "validators-file", "", "append the new key file to this validators file")
	cmd.Flags().BoolVar(&blsForce, "force", false, "overwrite an existing key file")
	return cmd
}

func createBLS(cmd *cobra.Command, args []string) error {
	keyPath := utils.ExpandHome(args[0])
	if utils.FileExists(app.FS, keyPath) && !blsForce {
		return fmt.Errorf("key file %s already exists, use --force to overwrite it", keyPath)
	}
	ikm := make([]byte, constants.BLSSeedLen)
	if _, err := rand.Read(ikm); err != nil {
		return fmt.Errorf("failed to generate BLS key: %w", err)
	}
	seed, err := bls.NewSeed(ikm)
	if err != nil {
		return err
	}
	blsPublicKey, err := bls.PublicKeyHex(seed)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(app.FS, keyPath, key.EncodeValidatorPEM(seed, blsPublicKey), constants.WriteReadUserOnlyPerms); err != nil {
		return fmt.Errorf("failed to save key: %w", err)
	}
	app.Log.Info("created BLS key", zap.String("path", keyPath), zap.String("blsKey", blsPublicKey))

	if blsValidatorsFile != "" {
		manifest, err := validator.AddKeyFile(app.FS, blsValidatorsFile, keyPath)
		if err != nil {
			return err
		}
		app.Log.Info("validators file updated",
			zap.String("path", blsValidatorsFile),
			zap.Int("nodes", len(manifest.Validators)),
		)
	}

	table := ux.NewCompatTable(cmd.OutOrStdout())
	table.SetHeader([]string{"Key File", "BLS Public Key"})
	table.AppendCompat([]string{keyPath, blsPublicKey})
	return table.Render()
}
