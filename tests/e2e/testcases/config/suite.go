// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/luxfi/stakecli/pkg/config"
	"github.com/luxfi/stakecli/pkg/constants"
	"github.com/luxfi/stakecli/tests/e2e/commands"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("[Config]", func() {
	configPath := func() string {
		home, err := os.UserHomeDir()
		gomega.Expect(err).Should(gomega.BeNil())
		return filepath.Join(home, constants.BaseDirName, constants.DefaultConfigFileName+"."+constants.DefaultConfigFileType)
	}

	ginkgo.AfterEach(func() {
		_ = os.Remove(configPath())
	})

	ginkgo.It("lists the mainnet parameters by default", func() {
		out, err := commands.ListConfig(commands.JSONFlag)
		gomega.Expect(err).Should(gomega.BeNil())
		conf := &config.Config{}
		gomega.Expect(json.Unmarshal([]byte(out), conf)).Should(gomega.Succeed())
		gomega.Expect(conf).Should(gomega.Equal(config.New()))
	})

	ginkgo.It("reads back the parameters written by init", func() {
		_, err := commands.InitConfig("--address-hrp", "test")
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(configPath()).Should(gomega.BeAnExistingFile())

		out, err := commands.ListConfig(commands.JSONFlag)
		gomega.Expect(err).Should(gomega.BeNil())
		conf := &config.Config{}
		gomega.Expect(json.Unmarshal([]byte(out), conf)).Should(gomega.Succeed())
		gomega.Expect(conf.AddressHRP).Should(gomega.Equal("test"))
		gomega.Expect(conf.StakingContract).Should(gomega.Equal(constants.StakingContractAddress))
	})
})
