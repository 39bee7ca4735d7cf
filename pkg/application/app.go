// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"path/filepath"

	"github.com/luxfi/stakecli/pkg/address"
	"github.com/luxfi/stakecli/pkg/config"
	"github.com/luxfi/stakecli/pkg/constants"
	"github.com/luxfi/stakecli/pkg/validatormanager"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// StakeCLI carries the state shared by every command of a run.
type StakeCLI struct {
	Log     *zap.Logger
	baseDir string
	Conf    *config.Config
	FS      afero.Fs
}

func New() *StakeCLI {
	return &StakeCLI{}
}

func (app *StakeCLI) Setup(baseDir string, log *zap.Logger, conf *config.Config, fs afero.Fs) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.FS = fs
}

func (app *StakeCLI) GetBaseDir() string {
	return app.baseDir
}

func (app *StakeCLI) GetConfigPath() string {
	return filepath.Join(app.baseDir, constants.DefaultConfigFileName+"."+constants.DefaultConfigFileType)
}

// AddressCodec returns the bech32 codec of the configured network.
func (app *StakeCLI) AddressCodec() *address.Bech32Codec {
	return address.NewBech32Codec(app.Conf.AddressHRP)
}

// ValidatorManager returns a transaction builder bound to the app's
// configuration, filesystem and logger.
func (app *StakeCLI) ValidatorManager() *validatormanager.Builder {
	return validatormanager.New(
		app.Conf,
		validatormanager.WithFS(app.FS),
		validatormanager.WithLogger(app.Log.Named("validatormanager")),
		validatormanager.WithAddressCodec(app.AddressCodec()),
	)
}
