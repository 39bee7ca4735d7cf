// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/luxfi/stakecli/pkg/constants"
)

// CreateTmpDir creates a temporary directory with the given prefix
func CreateTmpDir(prefix string) (string, error) {
	dir, err := os.MkdirTemp("", prefix+"*")
	if err != nil {
		return "", err
	}
	return dir, nil
}

// WriteFile writes content to name inside dir and returns the full path
func WriteFile(dir, name string, content []byte) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), constants.DefaultPerms755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, content, constants.WriteReadUserOnlyPerms); err != nil {
		return "", err
	}
	return path, nil
}

// CleanupTmpDir removes a temporary directory if it exists
func CleanupTmpDir(path string) error {
	if path == "" {
		return nil
	}
	// Only remove directories in temp directory
	if strings.HasPrefix(path, os.TempDir()) {
		return os.RemoveAll(path)
	}
	return nil
}
