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

package v1

// Config holds the collaborators every step runs against. All of them
// are injectable so the orchestration is unit-testable without real
// hardware.
type Config struct {
	Logger    Logger
	Fs        FS
	Runner    Runner
	Inventory HardwareInventory
	// Sideband is built per run from the spec channel unless injected.
	Sideband SidebandController
}

// RunConfig is the unmarshal target for config files, env vars and
// flags. The collaborators are never serialized.
type RunConfig struct {
	Config `yaml:"-" mapstructure:",squash"`
}

// ProvisionSpec carries every knob of the one-shot provisioning run.
// Defaults mirror the fixed topology this tool was written for, see
// pkg/constants.
type ProvisionSpec struct {
	MappingFile string `yaml:"mapping-file,omitempty" mapstructure:"mapping-file"`

	// Serial overrides hardware identity resolution when set.
	Serial string `yaml:"serial,omitempty" mapstructure:"serial"`

	// DryRun renders and logs the network document without applying
	// anything to the host or the controller.
	DryRun bool `yaml:"dry-run,omitempty" mapstructure:"dry-run"`

	NetplanDir  string `yaml:"netplan-dir,omitempty" mapstructure:"netplan-dir"`
	NetplanFile string `yaml:"netplan-file,omitempty" mapstructure:"netplan-file"`

	Nics     []string `yaml:"nics,omitempty" mapstructure:"nics"`
	BondName string   `yaml:"bond-name,omitempty" mapstructure:"bond-name"`
	BondMode string   `yaml:"bond-mode,omitempty" mapstructure:"bond-mode"`
	VlanID   int      `yaml:"vlan-id,omitempty" mapstructure:"vlan-id"`

	// Prefix is the shared /24 assumption, Netmask is its dotted-quad
	// twin handed to the controller firmware.
	Prefix  int    `yaml:"prefix,omitempty" mapstructure:"prefix"`
	Netmask string `yaml:"netmask,omitempty" mapstructure:"netmask"`

	// ManagementGateway is the VLAN default route target. An empty
	// value derives it from the management address subnet instead.
	ManagementGateway string `yaml:"management-gateway,omitempty" mapstructure:"management-gateway"`

	// ControllerGateway overrides the gateway pushed to the controller.
	// Empty derives it from the controller address subnet.
	ControllerGateway string `yaml:"controller-gateway,omitempty" mapstructure:"controller-gateway"`

	// Nameservers renders a nameservers block on the VLAN when set.
	// The original template never set any.
	Nameservers []string `yaml:"nameservers,omitempty" mapstructure:"nameservers"`

	// Channel is the controller LAN channel.
	Channel int `yaml:"channel,omitempty" mapstructure:"channel"`
}
