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

var _ = Describe("Lookup", Label("lookup", "cmd"), func() {
	var mapFile string
	var tmpDir string

	BeforeEach(func() {
		rootCmd = NewRootCmd()
		_ = NewLookupCmd(rootCmd)

		tmpDir, _ = os.MkdirTemp("", "netprov")
		mapFile = filepath.Join(tmpDir, "hosts.map")
		rows := "ABC123 10.0.0.11 192.168.10.5\nABC-123 10.0.0.99 192.168.10.9\n"
		err := os.WriteFile(mapFile, []byte(rows), 0644)
		Expect(err).To(BeNil())
	})
	AfterEach(func() {
		_ = os.RemoveAll(tmpDir)
	})

	It("prints both addresses for a known serial", func() {
		_, output, err := executeCommandC(rootCmd, "lookup", "ABC123", "--mapping-file", mapFile)
		Expect(err).To(BeNil())
		Expect(output).To(ContainSubstring("controller: 10.0.0.11"))
		Expect(output).To(ContainSubstring("management: 192.168.10.5"))
	})
	It("normalizes the queried serial", func() {
		_, output, err := executeCommandC(rootCmd, "lookup", "ABC 123", "--mapping-file", mapFile)
		Expect(err).To(BeNil())
		Expect(output).To(ContainSubstring("controller: 10.0.0.99"))
	})
	It("fails for an unknown serial", func() {
		_, _, err := executeCommandC(rootCmd, "lookup", "MISSING", "--mapping-file", mapFile)
		Expect(err).NotTo(BeNil())
	})
})
