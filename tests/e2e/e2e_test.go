// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package e2e

import (
	"os"
	"testing"

	"github.com/luxfi/stakecli/tests/e2e/utils"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	_ "github.com/luxfi/stakecli/tests/e2e/testcases/config"
	_ "github.com/luxfi/stakecli/tests/e2e/testcases/key"
	_ "github.com/luxfi/stakecli/tests/e2e/testcases/validator"
)

func TestE2E(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "stakecli e2e test suites")
}

var homeDir string

var _ = ginkgo.BeforeSuite(func() {
	var err error
	homeDir, err = utils.CreateTmpDir("stakecli-home")
	gomega.Expect(err).Should(gomega.BeNil())
	gomega.Expect(os.Setenv("HOME", homeDir)).Should(gomega.Succeed())
})

var _ = ginkgo.AfterSuite(func() {
	gomega.Expect(os.RemoveAll(homeDir)).Should(gomega.Succeed())
})
