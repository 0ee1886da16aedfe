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

package config_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/baremetal-ops/netprov/pkg/config"
	"github.com/baremetal-ops/netprov/pkg/constants"
	"github.com/baremetal-ops/netprov/pkg/inventory"
	"github.com/baremetal-ops/netprov/pkg/mocks"
	v1 "github.com/baremetal-ops/netprov/pkg/types/v1"
)

func TestConfigSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config test suite")
}

var _ = Describe("Config", Label("config"), func() {
	Describe("NewConfig", func() {
		It("fills sensible defaults", func() {
			c := config.NewConfig()
			Expect(c.Logger).NotTo(BeNil())
			Expect(c.Fs).NotTo(BeNil())
			Expect(c.Runner).NotTo(BeNil())
			Expect(c.Inventory).To(BeAssignableToTypeOf(&inventory.DMI{}))
			Expect(c.Sideband).To(BeNil())
		})
		It("honors injected collaborators", func() {
			runner := mocks.NewFakeRunner()
			inv := &mocks.FakeInventory{Serial: "ABC123"}
			sb := &mocks.FakeSideband{}
			c := config.NewConfig(
				config.WithRunner(runner),
				config.WithInventory(inv),
				config.WithSideband(sb),
			)
			Expect(c.Runner).To(Equal(runner))
			Expect(c.Inventory).To(Equal(inv))
			Expect(c.Sideband).To(Equal(sb))
		})
		It("points the config logger into a logger-less runner", func() {
			runner := mocks.NewFakeRunner()
			c := config.NewConfig(config.WithRunner(runner))
			Expect(runner.GetLogger()).To(Equal(c.Logger))
		})
	})

	Describe("NewProvisionSpec", func() {
		It("carries the fixed topology defaults", func() {
			spec := config.NewProvisionSpec()
			Expect(spec.Nics).To(Equal([]string{"eno1", "eno2"}))
			Expect(spec.BondName).To(Equal("bond0"))
			Expect(spec.BondMode).To(Equal("802.3ad"))
			Expect(spec.VlanID).To(Equal(1000))
			Expect(spec.Prefix).To(Equal(24))
			Expect(spec.Netmask).To(Equal("255.255.255.0"))
			Expect(spec.ManagementGateway).To(Equal(constants.MgmtGateway))
			Expect(spec.ControllerGateway).To(BeEmpty())
			Expect(spec.Channel).To(Equal(1))
			Expect(config.ValidateProvisionSpec(spec)).To(Succeed())
		})
	})

	Describe("ValidateProvisionSpec", func() {
		var spec *v1.ProvisionSpec

		BeforeEach(func() {
			spec = config.NewProvisionSpec()
		})

		It("rejects an empty mapping file", func() {
			spec.MappingFile = ""
			Expect(config.ValidateProvisionSpec(spec)).NotTo(Succeed())
		})
		It("rejects out of range VLAN ids", func() {
			spec.VlanID = 0
			Expect(config.ValidateProvisionSpec(spec)).NotTo(Succeed())
			spec.VlanID = 4095
			Expect(config.ValidateProvisionSpec(spec)).NotTo(Succeed())
		})
		It("collects every problem at once", func() {
			spec.MappingFile = ""
			spec.BondName = ""
			spec.Channel = 0
			err := config.ValidateProvisionSpec(spec)
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("mapping file"))
			Expect(err.Error()).To(ContainSubstring("bond"))
			Expect(err.Error()).To(ContainSubstring("channel"))
		})
	})
})
