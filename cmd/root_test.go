// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"bytes"
	"testing"

	"github.com/luxfi/stakecli/pkg/constants"
	"github.com/stretchr/testify/require"
)

func TestRootCmdRegistersSuites(t *testing.T) {
	require := require.New(t)
	rootCmd := NewRootCmd()

	names := []string{}
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	require.Subset(names, []string{ValidatorCmd, KeyCmd, ConfigCmd})
}

func TestRootCmdRejectsUnknownLogLevel(t *testing.T) {
	require := require.New(t)
	t.Setenv("HOME", t.TempDir())
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{ValidatorCmd, "claim", "--log-level", "loud"})

	require.ErrorContains(rootCmd.Execute(), "invalid log level")
}

func TestRootCmdRejectsMissingConfigFile(t *testing.T) {
	require := require.New(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{ValidatorCmd, "claim", "--config", home + "/nope.yaml"})

	require.ErrorContains(rootCmd.Execute(), "failed to read config file")
}

func TestRootCmdClaim(t *testing.T) {
	require := require.New(t)
	t.Setenv("HOME", t.TempDir())
	out := &bytes.Buffer{}
	rootCmd := NewRootCmd()
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{ValidatorCmd, "claim", "--json"})

	require.NoError(rootCmd.Execute())
	require.Contains(out.String(), `"data": "claim"`)
}

func TestRootCmdUserOutputFollowsCmdWriters(t *testing.T) {
	require := require.New(t)
	t.Setenv("HOME", t.TempDir())
	out := &bytes.Buffer{}
	rootCmd := NewRootCmd()
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{ConfigCmd, "init"})

	require.NoError(rootCmd.Execute())
	require.Contains(out.String(), "Config written to")
}

func TestPrintErrorWritesToCmdErrWriter(t *testing.T) {
	require := require.New(t)
	t.Setenv("HOME", t.TempDir())
	errOut := &bytes.Buffer{}
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs([]string{ValidatorCmd, "unbond", "--nodes-public-keys", "zz"})

	err := rootCmd.Execute()
	require.ErrorIs(err, constants.ErrInvalidBLSKey)
	printError(err)
	require.Contains(errOut.String(), "\nERROR: "+err.Error()+"\n")
}
