// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	require := require.New(t)
	home, err := os.UserHomeDir()
	require.NoError(err)

	require.Equal(filepath.Join(home, "validators.json"), ExpandHome("~/validators.json"))
	require.Equal(home, ExpandHome("~"))
	require.Equal("/tmp/validators.json", ExpandHome("/tmp/validators.json"))
	require.Equal("~other/validators.json", ExpandHome("~other/validators.json"))
	require.Equal("relative/validators.json", ExpandHome("relative/validators.json"))
}

func TestFileExists(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()
	require.NoError(afero.WriteFile(fs, "/keys/node.pem", []byte("x"), 0o600))

	require.True(FileExists(fs, "/keys/node.pem"))
	require.False(FileExists(fs, "/keys"))
	require.False(FileExists(fs, "/keys/missing.pem"))
}

func TestReadTrimmed(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()
	require.NoError(afero.WriteFile(fs, "/pass.txt", []byte("secret\r\n"), 0o600))

	pass, err := ReadTrimmed(fs, "/pass.txt")
	require.NoError(err)
	require.Equal("secret", pass)

	_, err = ReadTrimmed(fs, "/missing.txt")
	require.Error(err)
}

func TestJSONRoundTrip(t *testing.T) {
	require := require.New(t)
	var buf bytes.Buffer
	require.NoError(WriteJSON(&buf, map[string]string{"data": "claim"}))

	var out map[string]string
	require.NoError(ReadJSON(&buf, &out))
	require.Equal("claim", out["data"])

	require.Error(ReadJSON(bytes.NewBufferString("{"), &out))
}
