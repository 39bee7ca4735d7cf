// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"io"
	"testing"

	"github.com/luxfi/stakecli/pkg/application"
	"github.com/luxfi/stakecli/pkg/config"
	"github.com/luxfi/stakecli/pkg/ux"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func SetupTest(t *testing.T) *require.Assertions {
	// use io.Discard to not print anything
	ux.NewUserLog(zap.NewNop(), io.Discard, io.Discard)
	return require.New(t)
}

// SetupTestApp returns an app with default network parameters running on an
// in-memory filesystem.
func SetupTestApp(t *testing.T) *application.StakeCLI {
	app := application.New()
	app.Setup(t.TempDir(), zap.NewNop(), config.New(), afero.NewMemMapFs())
	ux.NewUserLog(zap.NewNop(), io.Discard, io.Discard)
	return app
}
