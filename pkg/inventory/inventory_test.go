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

package inventory_test

import (
	"errors"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/baremetal-ops/netprov/pkg/inventory"
	"github.com/baremetal-ops/netprov/pkg/mocks"
	v1 "github.com/baremetal-ops/netprov/pkg/types/v1"
)

func TestInventorySuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Inventory test suite")
}

var _ = Describe("DMI", Label("inventory"), func() {
	var runner *mocks.FakeRunner
	var dmi *inventory.DMI
	var chroot string

	BeforeEach(func() {
		// Point ghw at an empty chroot so the sysfs DMI entries are
		// absent and the dmidecode fallback kicks in deterministically.
		chroot, _ = os.MkdirTemp("", "netprov")
		Expect(os.Setenv("GHW_CHROOT", chroot)).To(Succeed())

		runner = mocks.NewFakeRunner()
		dmi = inventory.NewDMI(runner, v1.NewNullLogger())
	})
	AfterEach(func() {
		_ = os.Unsetenv("GHW_CHROOT")
		_ = os.RemoveAll(chroot)
	})

	It("falls back to dmidecode and normalizes the serial", func() {
		runner.ReturnValue = []byte("PowerEdge R640 X99\n")
		serial, err := dmi.SerialNumber()
		Expect(err).To(BeNil())
		Expect(serial).To(Equal("PowerEdge-R640-X99"))
		Expect(runner.IncludesCmds([][]string{
			{"dmidecode", "-s", "system-serial-number"},
		})).To(BeNil())
	})
	It("fails when the query tool fails", func() {
		runner.ReturnError = errors.New("dmidecode not available")
		_, err := dmi.SerialNumber()
		Expect(err).NotTo(BeNil())
	})
	It("fails on an empty serial", func() {
		runner.ReturnValue = []byte("\n")
		_, err := dmi.SerialNumber()
		Expect(err).NotTo(BeNil())
	})
	It("rejects vendor placeholder serials", func() {
		runner.ReturnValue = []byte("To be filled by O.E.M.\n")
		_, err := dmi.SerialNumber()
		Expect(err).NotTo(BeNil())
	})
})
