// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/luxfi/stakecli/pkg/address"
	"github.com/luxfi/stakecli/pkg/bls"
	"github.com/luxfi/stakecli/pkg/constants"
	"github.com/luxfi/stakecli/pkg/key"
	"github.com/luxfi/stakecli/tests/e2e/commands"
	"github.com/luxfi/stakecli/tests/e2e/utils"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/spf13/afero"
)

const numNodes = 3

func expectedGas(data string, factor uint64) uint64 {
	return constants.MinGasLimit + uint64(len(data))*constants.GasPerDataByte + factor*constants.StakeCost
}

var _ = ginkgo.Describe("[Validator]", ginkgo.Ordered, func() {
	var (
		workDir        string
		validatorsFile string
		walletPEM      string
		owner          *key.WalletAccount
		blsKeys        []string
	)

	ginkgo.BeforeAll(func() {
		var err error
		workDir, err = utils.CreateTmpDir("stakecli-validator")
		gomega.Expect(err).Should(gomega.BeNil())

		fs := afero.NewOsFs()
		validatorsFile = filepath.Join(workDir, "validators.json")
		blsKeys = nil
		for i := 0; i < numNodes; i++ {
			keyPath := filepath.Join(workDir, fmt.Sprintf("node%d.pem", i))
			_, err := commands.CreateBLSKey(keyPath, validatorsFile)
			gomega.Expect(err).Should(gomega.BeNil())
			km, err := key.LoadValidatorPEM(fs, keyPath)
			gomega.Expect(err).Should(gomega.BeNil())
			blsKeys = append(blsKeys, km.BLSPublicKey)
		}

		walletPEM = filepath.Join(workDir, "wallet.pem")
		_, err = commands.CreateWallet(walletPEM)
		gomega.Expect(err).Should(gomega.BeNil())
		owner, err = key.LoadWalletPEM(fs, address.NewBech32Codec(constants.AddressHRP), walletPEM)
		gomega.Expect(err).Should(gomega.BeNil())
	})

	ginkgo.AfterAll(func() {
		gomega.Expect(utils.CleanupTmpDir(workDir)).Should(gomega.Succeed())
	})

	ginkgo.It("prepares the stake call for every node of the validators file", func() {
		tx, err := commands.Stake(validatorsFile, walletPEM, commands.EstimateGasFlag)
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(tx.Receiver).Should(gomega.Equal(constants.StakingContractAddress))

		parts := strings.Split(tx.Data, "@")
		gomega.Expect(parts).Should(gomega.HaveLen(1 + 2*numNodes))
		gomega.Expect(parts[0]).Should(gomega.Equal("stake03"))
		signer := bls.NewSigner("")
		for i, blsKey := range blsKeys {
			gomega.Expect(parts[1+2*i]).Should(gomega.Equal(blsKey))
			gomega.Expect(signer.VerifyOwnership(blsKey, owner.PublicKeyHex(), parts[2+2*i])).Should(gomega.BeTrue())
		}
		gomega.Expect(tx.GasLimit).Should(gomega.Equal(expectedGas(tx.Data, numNodes)))
	})

	ginkgo.It("appends the reward address to the stake call", func() {
		tx, err := commands.Stake(validatorsFile, walletPEM, "--reward-address", owner.Address())
		gomega.Expect(err).Should(gomega.BeNil())
		parts := strings.Split(tx.Data, "@")
		gomega.Expect(parts).Should(gomega.HaveLen(2 + 2*numNodes))
		gomega.Expect(parts[len(parts)-1]).Should(gomega.Equal(owner.PublicKeyHex()))
		gomega.Expect(tx.GasLimit).Should(gomega.BeZero())
	})

	ginkgo.It("stakes for an owner held in a keystore", func() {
		passFile, err := utils.WriteFile(workDir, "password.txt", []byte("correct horse\n"))
		gomega.Expect(err).Should(gomega.BeNil())
		keystore := filepath.Join(workDir, "keystore.json")
		_, err = commands.CreateKeystore(keystore, passFile)
		gomega.Expect(err).Should(gomega.BeNil())
		ksOwner, err := key.LoadKeystore(afero.NewOsFs(), address.NewBech32Codec(constants.AddressHRP), keystore, "correct horse")
		gomega.Expect(err).Should(gomega.BeNil())

		tx, err := commands.StakeWithKeystore(validatorsFile, keystore, passFile)
		gomega.Expect(err).Should(gomega.BeNil())
		parts := strings.Split(tx.Data, "@")
		gomega.Expect(bls.NewSigner("").VerifyOwnership(parts[1], ksOwner.PublicKeyHex(), parts[2])).Should(gomega.BeTrue())
	})

	ginkgo.It("fails without an owner wallet", func() {
		_, err := commands.Run(commands.ValidatorCmd, "stake", "--validators-file", validatorsFile)
		gomega.Expect(err).Should(gomega.MatchError(gomega.ContainSubstring(constants.ErrMissingAccountCredentials.Error())))
	})

	ginkgo.It("fails on a missing validators file", func() {
		_, err := commands.Stake(filepath.Join(workDir, "missing.json"), walletPEM)
		gomega.Expect(err).Should(gomega.MatchError(gomega.ContainSubstring(constants.ErrManifestNotFound.Error())))
	})

	ginkgo.It("prepares unstake, unbond and unjail calls", func() {
		csv := strings.Join(blsKeys, ",")
		for command, function := range map[string]string{
			"unstake": "unStake",
			"unbond":  "unBond",
			"unjail":  "unJail",
		} {
			tx, err := commands.NodeKeys(command, csv, commands.EstimateGasFlag)
			gomega.Expect(err).Should(gomega.BeNil())
			gomega.Expect(tx.Data).Should(gomega.Equal(function + "@" + strings.Join(blsKeys, "@")))
			gomega.Expect(tx.GasLimit).Should(gomega.Equal(expectedGas(tx.Data, numNodes)))
		}
	})

	ginkgo.It("prepares change-reward-address and claim calls", func() {
		tx, err := commands.ChangeRewardAddress(owner.Address(), commands.EstimateGasFlag)
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(tx.Data).Should(gomega.Equal("changeRewardAddress@" + owner.PublicKeyHex()))
		gomega.Expect(tx.GasLimit).Should(gomega.Equal(expectedGas(tx.Data, 1)))

		tx, err = commands.Claim(commands.EstimateGasFlag)
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(tx.Data).Should(gomega.Equal("claim"))
		gomega.Expect(tx.GasLimit).Should(gomega.Equal(uint64(5_057_500)))
	})

	ginkgo.It("uses the network parameters of a config file", func() {
		configFile, err := utils.WriteFile(workDir, "network.yaml", []byte("gas:\n  min-gas-limit: 1\n  gas-per-data-byte: 2\n  costs:\n    claim: 3\n"))
		gomega.Expect(err).Should(gomega.BeNil())

		tx, err := commands.Claim(commands.EstimateGasFlag, "--config", configFile)
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(tx.GasLimit).Should(gomega.Equal(uint64(1 + 5*2 + 3)))
	})

	ginkgo.It("lets the environment override the staking contract", func() {
		gomega.Expect(os.Setenv("STAKECLI_STAKING_CONTRACT", "erd1override")).Should(gomega.Succeed())
		defer os.Unsetenv("STAKECLI_STAKING_CONTRACT")

		tx, err := commands.Claim()
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(tx.Receiver).Should(gomega.Equal("erd1override"))
	})
})
