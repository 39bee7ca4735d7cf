// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validator

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/luxfi/stakecli/pkg/constants"
	"github.com/luxfi/stakecli/pkg/models"
	"github.com/luxfi/stakecli/pkg/utils"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// LoadManifest reads the validators file at path. JSON is expected unless the
// file has a YAML extension. A missing validators list is an empty one.
func LoadManifest(fs afero.Fs, path string) (*models.ValidatorManifest, error) {
	manifestPath := utils.ExpandHome(path)
	if !utils.FileExists(fs, manifestPath) {
		return nil, fmt.Errorf("%w: %s", constants.ErrManifestNotFound, path)
	}
	content, err := afero.ReadFile(fs, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", constants.ErrManifestNotFound, path, err)
	}
	manifest, err := ParseManifest(content, isYAML(manifestPath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return manifest, nil
}

// ParseManifest decodes a validators file.
func ParseManifest(content []byte, asYAML bool) (*models.ValidatorManifest, error) {
	manifest := &models.ValidatorManifest{}
	var err error
	if asYAML {
		err = yaml.Unmarshal(content, manifest)
	} else {
		err = json.Unmarshal(content, manifest)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrCannotReadValidatorsData, err)
	}
	if manifest.Validators == nil {
		manifest.Validators = []models.ValidatorEntry{}
	}
	return manifest, nil
}

// ResolveKeyPath returns where the key file of an entry lives: pemFile as is
// when absolute or home relative, otherwise joined to the manifest directory.
func ResolveKeyPath(manifestPath, pemFile string) string {
	expanded := utils.ExpandHome(pemFile)
	if filepath.IsAbs(expanded) {
		return expanded
	}
	return filepath.Join(filepath.Dir(utils.ExpandHome(manifestPath)), pemFile)
}

// KeyPaths resolves the key file of every entry of manifest, in order.
func KeyPaths(manifestPath string, manifest *models.ValidatorManifest) []string {
	paths := make([]string, 0, len(manifest.Validators))
	for _, v := range manifest.Validators {
		paths = append(paths, ResolveKeyPath(manifestPath, v.PemFile))
	}
	return paths
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == constants.YAMLExt || ext == constants.YMLExt
}

// SaveManifest writes manifest to path, as YAML when the extension says so.
func SaveManifest(fs afero.Fs, path string, manifest *models.ValidatorManifest) error {
	manifestPath := utils.ExpandHome(path)
	var (
		content []byte
		err     error
	)
	if isYAML(manifestPath) {
		content, err = yaml.Marshal(manifest)
	} else {
		content, err = json.MarshalIndent(manifest, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode validators data: %w", err)
	}
	if err := fs.MkdirAll(filepath.Dir(manifestPath), constants.DefaultPerms755); err != nil {
		return err
	}
	return afero.WriteFile(fs, manifestPath, content, constants.WriteReadReadPerms)
}

// AddKeyFile appends keyPath to the validators file at manifestPath, creating
// the file when missing. The entry is stored relative to the manifest
// directory when keyPath lives below it.
func AddKeyFile(fs afero.Fs, manifestPath, keyPath string) (*models.ValidatorManifest, error) {
	manifest := &models.ValidatorManifest{Validators: []models.ValidatorEntry{}}
	if utils.FileExists(fs, utils.ExpandHome(manifestPath)) {
		var err error
		manifest, err = LoadManifest(fs, manifestPath)
		if err != nil {
			return nil, err
		}
	}
	pemFile := keyPath
	rel, err := filepath.Rel(filepath.Dir(utils.ExpandHome(manifestPath)), utils.ExpandHome(keyPath))
	if err == nil && !strings.HasPrefix(rel, "..") {
		pemFile = rel
	}
	manifest.Validators = append(manifest.Validators, models.ValidatorEntry{PemFile: pemFile})
	if err := SaveManifest(fs, manifestPath, manifest); err != nil {
		return nil, err
	}
	return manifest, nil
}
