// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"github.com/luxfi/stakecli/pkg/models"
)

func Stake(validatorsFile, walletPEM string, extraArgs ...string) (*models.TransactionRequest, error) {
	args := []string{ValidatorCmd, "stake", "--validators-file", validatorsFile, "--pem", walletPEM}
	return RunTx(append(args, extraArgs...)...)
}

func StakeWithKeystore(validatorsFile, keyFile, passFile string, extraArgs ...string) (*models.TransactionRequest, error) {
	args := []string{ValidatorCmd, "stake", "--validators-file", validatorsFile, "--keyfile", keyFile, "--passfile", passFile}
	return RunTx(append(args, extraArgs...)...)
}

// NodeKeys runs unstake, unbond or unjail for the given BLS keys.
func NodeKeys(command, blsKeys string, extraArgs ...string) (*models.TransactionRequest, error) {
	args := []string{ValidatorCmd, command, "--nodes-public-keys", blsKeys}
	return RunTx(append(args, extraArgs...)...)
}

func ChangeRewardAddress(rewardAddress string, extraArgs ...string) (*models.TransactionRequest, error) {
	args := []string{ValidatorCmd, "change-reward-address", "--reward-address", rewardAddress}
	return RunTx(append(args, extraArgs...)...)
}

func Claim(extraArgs ...string) (*models.TransactionRequest, error) {
	return RunTx(append([]string{ValidatorCmd, "claim"}, extraArgs...)...)
}
