// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

func CreateBLSKey(keyPath, validatorsFile string) (string, error) {
	return Run(KeyCmd, "create-bls", keyPath, "--validators-file", validatorsFile)
}

func CreateWallet(walletPath string) (string, error) {
	return Run(KeyCmd, "create-wallet", walletPath)
}

func CreateKeystore(keystorePath, passFile string) (string, error) {
	return Run(KeyCmd, "create-wallet", keystorePath, "--keystore", "--passfile", passFile)
}

func ShowWallet(walletPath string) (string, error) {
	return Run(KeyCmd, "show", "--pem", walletPath)
}
