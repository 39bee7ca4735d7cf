// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"bytes"
	"encoding/json"

	"github.com/luxfi/stakecli/cmd"
	"github.com/luxfi/stakecli/pkg/models"
)

// Run executes the CLI in process and returns what it wrote to stdout.
func Run(args ...string) (string, error) {
	rootCmd := cmd.NewRootCmd()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// RunTx executes a validator command with --json and decodes the request.
func RunTx(args ...string) (*models.TransactionRequest, error) {
	out, err := Run(append(args, JSONFlag)...)
	if err != nil {
		return nil, err
	}
	tx := &models.TransactionRequest{}
	if err := json.Unmarshal([]byte(out), tx); err != nil {
		return nil, err
	}
	return tx, nil
}
