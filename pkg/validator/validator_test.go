// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/luxfi/stakecli/pkg/constants"
	"github.com/luxfi/stakecli/pkg/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		content  string
		expected []models.ValidatorEntry
		expErr   error
	}{
		{
			name:    "json",
			path:    "/stake/validators.json",
			content: `{"validators":[{"pemFile":"node0.pem","name":"a"},{"pemFile":"/abs/node1.pem"}]}`,
			expected: []models.ValidatorEntry{
				{PemFile: "node0.pem"},
				{PemFile: "/abs/node1.pem"},
			},
		},
		{
			name:     "yaml",
			path:     "/stake/validators.yaml",
			content:  "validators:\n  - pemFile: node0.pem\n    extra: ignored\n",
			expected: []models.ValidatorEntry{{PemFile: "node0.pem"}},
		},
		{
			name:     "missing validators key",
			path:     "/stake/validators.json",
			content:  `{"owner":"me"}`,
			expected: []models.ValidatorEntry{},
		},
		{
			name:     "empty validators",
			path:     "/stake/validators.json",
			content:  `{"validators":[]}`,
			expected: []models.ValidatorEntry{},
		},
		{
			name:    "invalid json",
			path:    "/stake/validators.json",
			content: `{"validators":`,
			expErr:  constants.ErrCannotReadValidatorsData,
		},
		{
			name:    "json but not an object",
			path:    "/stake/validators.json",
			content: `[1,2,3]`,
			expErr:  constants.ErrCannotReadValidatorsData,
		},
		{
			name:    "invalid yaml",
			path:    "/stake/validators.yml",
			content: "validators: [",
			expErr:  constants.ErrCannotReadValidatorsData,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			fs := afero.NewMemMapFs()
			require.NoError(afero.WriteFile(fs, tt.path, []byte(tt.content), 0o644))

			manifest, err := LoadManifest(fs, tt.path)
			if tt.expErr != nil {
				require.ErrorIs(err, tt.expErr)
				require.NotErrorIs(err, constants.ErrManifestNotFound)
				return
			}
			require.NoError(err)
			require.Equal(tt.expected, manifest.Validators)
		})
	}
}

func TestLoadManifestNotFound(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()

	_, err := LoadManifest(fs, "/missing/validators.json")
	require.ErrorIs(err, constants.ErrManifestNotFound)

	require.NoError(fs.MkdirAll("/dir.json", 0o755))
	_, err = LoadManifest(fs, "/dir.json")
	require.ErrorIs(err, constants.ErrManifestNotFound)
}

func TestResolveKeyPath(t *testing.T) {
	require := require.New(t)
	home, err := os.UserHomeDir()
	require.NoError(err)

	require.Equal("/stake/node0.pem", ResolveKeyPath("/stake/validators.json", "node0.pem"))
	require.Equal("/stake/keys/node0.pem", ResolveKeyPath("/stake/validators.json", "./keys/node0.pem"))
	require.Equal("/keys/node0.pem", ResolveKeyPath("/stake/nested/validators.json", "../../keys/node0.pem"))
	require.Equal("/abs/node0.pem", ResolveKeyPath("/stake/validators.json", "/abs/node0.pem"))
	require.Equal(filepath.Join(home, "keys/node0.pem"), ResolveKeyPath("/stake/validators.json", "~/keys/node0.pem"))
	require.Equal(filepath.Join(home, "stake/node0.pem"), ResolveKeyPath("~/stake/validators.json", "node0.pem"))
	require.Equal("node0.pem", ResolveKeyPath("validators.json", "node0.pem"))
}

func TestKeyPaths(t *testing.T) {
	manifest := &models.ValidatorManifest{Validators: []models.ValidatorEntry{
		{PemFile: "b.pem"},
		{PemFile: "a.pem"},
	}}
	require.Equal(t, []string{"/m/b.pem", "/m/a.pem"}, KeyPaths("/m/validators.json", manifest))
}

func TestSaveManifestRoundTrip(t *testing.T) {
	for _, path := range []string{"/out/validators.json", "/out/validators.yaml"} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			require := require.New(t)
			fs := afero.NewMemMapFs()
			manifest := &models.ValidatorManifest{Validators: []models.ValidatorEntry{{PemFile: "a.pem"}, {PemFile: "b.pem"}}}

			require.NoError(SaveManifest(fs, path, manifest))
			loaded, err := LoadManifest(fs, path)
			require.NoError(err)
			require.Equal(manifest, loaded)
		})
	}
}

func TestAddKeyFile(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()

	_, err := AddKeyFile(fs, "/stake/validators.json", "/stake/keys/node0.pem")
	require.NoError(err)
	manifest, err := AddKeyFile(fs, "/stake/validators.json", "/elsewhere/node1.pem")
	require.NoError(err)
	require.Equal([]models.ValidatorEntry{
		{PemFile: "keys/node0.pem"},
		{PemFile: "/elsewhere/node1.pem"},
	}, manifest.Validators)

	loaded, err := LoadManifest(fs, "/stake/validators.json")
	require.NoError(err)
	require.Equal(manifest, loaded)
	require.Equal([]string{"/stake/keys/node0.pem", "/elsewhere/node1.pem"}, KeyPaths("/stake/validators.json", loaded))
}

func TestAddKeyFileRejectsBrokenManifest(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()
	require.NoError(afero.WriteFile(fs, "/stake/validators.json", []byte("{"), 0o644))

	_, err := AddKeyFile(fs, "/stake/validators.json", "/stake/node0.pem")
	require.ErrorIs(err, constants.ErrCannotReadValidatorsData)
}
