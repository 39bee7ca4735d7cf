// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"bytes"
	"fmt"

	"github.com/luxfi/stakecli/pkg/constants"
	"github.com/luxfi/stakecli/pkg/utils"
	"github.com/luxfi/stakecli/pkg/ux"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var initForce bool

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective network parameters to the config file",
		Long: `Write the effective network parameters to $HOME/.stakecli/config.json so they can
be edited for another network.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")

	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	path := app.GetConfigPath()
	if utils.FileExists(app.FS, path) && !initForce {
		return fmt.Errorf("config file %s already exists, use --force to overwrite it", path)
	}
	var buf bytes.Buffer
	if err := utils.WriteJSON(&buf, app.Conf); err != nil {
		return err
	}
	if err := app.FS.MkdirAll(app.GetBaseDir(), constants.DefaultPerms755); err != nil {
		return err
	}
	if err := afero.WriteFile(app.FS, path, buf.Bytes(), constants.WriteReadReadPerms); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	app.Log.Debug("config file written", zap.String("path", path))
	ux.Logger.GreenCheckmarkToUser("Config written to %s", path)
	return nil
}
