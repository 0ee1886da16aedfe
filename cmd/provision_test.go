/*
Copyright © 2022 - 2023 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Provision", Label("provision", "cmd"), func() {
	var mapFile string
	var tmpDir string

	BeforeEach(func() {
		rootCmd = NewRootCmd()
		_ = NewProvisionCmd(rootCmd, false)

		tmpDir, _ = os.MkdirTemp("", "netprov")
		mapFile = filepath.Join(tmpDir, "hosts.map")
		err := os.WriteFile(mapFile, []byte("ABC123 10.0.0.11 192.168.10.5\n"), 0644)
		Expect(err).To(BeNil())
	})
	AfterEach(func() {
		_ = os.RemoveAll(tmpDir)
	})

	It("renders the document on a dry run without touching the system", func() {
		_, output, err := executeCommandC(rootCmd, "provision",
			"--dry-run", "--serial", "ABC123", "--mapping-file", mapFile)
		Expect(err).To(BeNil())
		Expect(output).To(ContainSubstring("192.168.10.5/24"))
	})
	It("fails before any side effect when the serial has no row", func() {
		_, _, err := executeCommandC(rootCmd, "provision",
			"--dry-run", "--serial", "MISSING", "--mapping-file", mapFile)
		Expect(err).NotTo(BeNil())
	})
})
