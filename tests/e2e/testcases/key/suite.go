// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package key

import (
	"path/filepath"

	"github.com/luxfi/stakecli/pkg/models"
	"github.com/luxfi/stakecli/pkg/validator"
	"github.com/luxfi/stakecli/tests/e2e/commands"
	"github.com/luxfi/stakecli/tests/e2e/utils"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/spf13/afero"
)

var _ = ginkgo.Describe("[Key]", func() {
	var workDir string

	ginkgo.BeforeEach(func() {
		var err error
		workDir, err = utils.CreateTmpDir("stakecli-key")
		gomega.Expect(err).Should(gomega.BeNil())
	})

	ginkgo.AfterEach(func() {
		gomega.Expect(utils.CleanupTmpDir(workDir)).Should(gomega.Succeed())
	})

	ginkgo.It("registers new node keys in a YAML validators file", func() {
		validatorsFile := filepath.Join(workDir, "validators.yaml")
		for _, name := range []string{"a.pem", "b.pem"} {
			_, err := commands.CreateBLSKey(filepath.Join(workDir, name), validatorsFile)
			gomega.Expect(err).Should(gomega.BeNil())
		}

		manifest, err := validator.LoadManifest(afero.NewOsFs(), validatorsFile)
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(manifest.Validators).Should(gomega.Equal([]models.ValidatorEntry{
			{PemFile: "a.pem"},
			{PemFile: "b.pem"},
		}))
	})

	ginkgo.It("refuses to overwrite a key file", func() {
		keyPath := filepath.Join(workDir, "node.pem")
		_, err := commands.Run(commands.KeyCmd, "create-bls", keyPath)
		gomega.Expect(err).Should(gomega.BeNil())
		_, err = commands.Run(commands.KeyCmd, "create-bls", keyPath)
		gomega.Expect(err).Should(gomega.MatchError(gomega.ContainSubstring("already exists")))
	})

	ginkgo.It("shows the address of a new wallet", func() {
		walletPEM := filepath.Join(workDir, "wallet.pem")
		_, err := commands.CreateWallet(walletPEM)
		gomega.Expect(err).Should(gomega.BeNil())

		out, err := commands.ShowWallet(walletPEM)
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(out).Should(gomega.ContainSubstring("erd1"))
	})
})
