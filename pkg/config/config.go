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

package config

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/twpayne/go-vfs"

	"github.com/baremetal-ops/netprov/pkg/constants"
	"github.com/baremetal-ops/netprov/pkg/inventory"
	v1 "github.com/baremetal-ops/netprov/pkg/types/v1"
)

type GenericOptions func(c *v1.Config) error

func WithFs(fs v1.FS) func(c *v1.Config) error {
	return func(c *v1.Config) error {
		c.Fs = fs
		return nil
	}
}

func WithLogger(logger v1.Logger) func(c *v1.Config) error {
	return func(c *v1.Config) error {
		c.Logger = logger
		return nil
	}
}

func WithRunner(runner v1.Runner) func(c *v1.Config) error {
	return func(c *v1.Config) error {
		c.Runner = runner
		return nil
	}
}

func WithInventory(inv v1.HardwareInventory) func(c *v1.Config) error {
	return func(c *v1.Config) error {
		c.Inventory = inv
		return nil
	}
}

func WithSideband(sb v1.SidebandController) func(c *v1.Config) error {
	return func(c *v1.Config) error {
		c.Sideband = sb
		return nil
	}
}

func NewConfig(opts ...GenericOptions) *v1.Config {
	log := v1.NewLogger()

	c := &v1.Config{
		Fs:     vfs.OSFS,
		Logger: log,
	}
	for _, o := range opts {
		err := o(c)
		if err != nil {
			log.Errorf("error applying config option: %s", err.Error())
			return nil
		}
	}

	// delay runner creation after we have run over the options in case we use WithRunner
	if c.Runner == nil {
		c.Runner = &v1.RealRunner{Logger: c.Logger}
	}

	// Now check if the runner has a logger inside, otherwise point our logger into it
	// This can happen if we set the WithRunner option as that doesn't set a logger
	if c.Runner.GetLogger() == nil {
		c.Runner.SetLogger(c.Logger)
	}

	// The inventory needs the final runner for its dmidecode fallback,
	// so it is resolved last. Sideband stays nil unless injected, the
	// provision action builds it from the spec channel.
	if c.Inventory == nil {
		c.Inventory = inventory.NewDMI(c.Runner, c.Logger)
	}

	return c
}

func NewRunConfig(opts ...GenericOptions) *v1.RunConfig {
	config := NewConfig(opts...)
	return &v1.RunConfig{Config: *config}
}

// NewProvisionSpec returns a ProvisionSpec carrying the fixed topology
// this tool provisions, all defaults from pkg/constants.
func NewProvisionSpec() *v1.ProvisionSpec {
	return &v1.ProvisionSpec{
		MappingFile:       constants.MappingFile,
		NetplanDir:        constants.NetplanDir,
		NetplanFile:       constants.NetplanFile,
		Nics:              []string{constants.PrimaryNic, constants.SecondaryNic},
		BondName:          constants.BondName,
		BondMode:          constants.BondMode,
		VlanID:            constants.MgmtVlanID,
		Prefix:            constants.ManagementPrefix,
		Netmask:           constants.DefaultNetmask,
		ManagementGateway: constants.MgmtGateway,
		Channel:           constants.IpmiChannel,
	}
}

// ValidateProvisionSpec collects every setup problem at once instead of
// failing one flag at a time.
func ValidateProvisionSpec(spec *v1.ProvisionSpec) error {
	var errs *multierror.Error

	if spec.MappingFile == "" {
		errs = multierror.Append(errs, fmt.Errorf("undefined mapping file"))
	}
	if len(spec.Nics) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("no physical interfaces to bond"))
	}
	if spec.BondName == "" {
		errs = multierror.Append(errs, fmt.Errorf("undefined bond interface name"))
	}
	if spec.VlanID < 1 || spec.VlanID > 4094 {
		errs = multierror.Append(errs, fmt.Errorf("VLAN id %d out of range", spec.VlanID))
	}
	if spec.Prefix < 1 || spec.Prefix > 32 {
		errs = multierror.Append(errs, fmt.Errorf("prefix length %d out of range", spec.Prefix))
	}
	if spec.Channel < 1 {
		errs = multierror.Append(errs, fmt.Errorf("controller channel %d out of range", spec.Channel))
	}

	return errs.ErrorOrNil()
}
