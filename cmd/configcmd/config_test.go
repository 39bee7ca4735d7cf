// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/luxfi/stakecli/internal/testutils"
	"github.com/luxfi/stakecli/pkg/application"
	"github.com/luxfi/stakecli/pkg/config"
	"github.com/spf13/afero"
)

func runConfigCmd(injectedApp *application.StakeCLI, args ...string) (string, error) {
	cmd := NewCmd(injectedApp)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	require := testutils.SetupTest(t)
	testApp := testutils.SetupTestApp(t)

	out, err := runConfigCmd(testApp, "list")
	require.NoError(err)
	require.Contains(out, "[gas.costs]")
	require.Contains(out, "5_000_000")
	require.Contains(out, testApp.Conf.StakingContract)

	out, err = runConfigCmd(testApp, "list", "--json")
	require.NoError(err)
	decoded := &config.Config{}
	require.NoError(json.Unmarshal([]byte(out), decoded))
	require.Equal(testApp.Conf, decoded)
}

func TestInit(t *testing.T) {
	require := testutils.SetupTest(t)
	testApp := testutils.SetupTestApp(t)

	_, err := runConfigCmd(testApp, "init")
	require.NoError(err)
	content, err := afero.ReadFile(testApp.FS, testApp.GetConfigPath())
	require.NoError(err)
	written := &config.Config{}
	require.NoError(json.Unmarshal(content, written))
	require.Equal(testApp.Conf, written)

	_, err = runConfigCmd(testApp, "init")
	require.ErrorContains(err, "already exists")
	_, err = runConfigCmd(testApp, "init", "--force")
	require.NoError(err)
}
