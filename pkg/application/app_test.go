// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package application

import (
	"path/filepath"
	"testing"

	"github.com/luxfi/stakecli/pkg/config"
	"github.com/luxfi/stakecli/pkg/constants"
	"github.com/luxfi/stakecli/pkg/models"
	"github.com/luxfi/stakecli/pkg/validatormanager"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *StakeCLI {
	tempDir := t.TempDir()
	app := New()
	app.Setup(tempDir, zap.NewNop(), config.New(), afero.NewMemMapFs())
	return app
}

func TestPaths(t *testing.T) {
	require := require.New(t)
	app := newTestApp(t)

	require.Equal(filepath.Join(app.GetBaseDir(), "config.json"), app.GetConfigPath())
}

func TestAddressCodecUsesConfiguredHRP(t *testing.T) {
	require := require.New(t)
	app := newTestApp(t)
	app.Conf.AddressHRP = "test"

	addr, err := app.AddressCodec().Encode(make([]byte, constants.AddressLen))
	require.NoError(err)
	require.Contains(addr, "test1")
}

func TestValidatorManagerTargetsConfiguredContract(t *testing.T) {
	require := require.New(t)
	app := newTestApp(t)

	tx := &models.TransactionRequest{}
	err := app.ValidatorManager().PrepareClaim(tx, validatormanager.ClaimArgs{})
	require.NoError(err)
	require.Equal(constants.StakingContractAddress, tx.Receiver)
	require.Equal("claim", tx.Data)
}
