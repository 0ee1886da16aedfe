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

// Package netplan renders and applies the host management network
// document. The topology is fixed: the two physical ports are left
// unconfigured and aggregated into one 802.3ad bond which carries a
// single tagged VLAN holding the management address and the default
// route.
package netplan

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/baremetal-ops/netprov/pkg/constants"
	v1 "github.com/baremetal-ops/netprov/pkg/types/v1"
	"github.com/baremetal-ops/netprov/pkg/utils"
)

// Document is a network version 2 netplan document.
type Document struct {
	Network Network `yaml:"network"`
}

type Network struct {
	Version   int                 `yaml:"version"`
	Renderer  string              `yaml:"renderer"`
	Ethernets map[string]Ethernet `yaml:"ethernets"`
	Bonds     map[string]Bond     `yaml:"bonds"`
	Vlans     map[string]Vlan     `yaml:"vlans"`
}

// Ethernet stays empty on purpose, the physical ports carry no
// configuration of their own, they only feed the bond.
type Ethernet struct{}

type Bond struct {
	Interfaces []string       `yaml:"interfaces"`
	Parameters BondParameters `yaml:"parameters"`
}

type BondParameters struct {
	Mode               string `yaml:"mode"`
	MiiMonitorInterval int    `yaml:"mii-monitor-interval"`
	UpDelay            int    `yaml:"up-delay"`
	DownDelay          int    `yaml:"down-delay"`
}

type Vlan struct {
	ID          int          `yaml:"id"`
	Link        string       `yaml:"link"`
	Addresses   []string     `yaml:"addresses"`
	Nameservers *Nameservers `yaml:"nameservers,omitempty"`
	Routes      []Route      `yaml:"routes"`
}

type Nameservers struct {
	Addresses []string `yaml:"addresses"`
}

type Route struct {
	To  string `yaml:"to"`
	Via string `yaml:"via"`
}

// NewDocument builds the management network document for the given
// management address. The VLAN gateway comes from the spec when set,
// otherwise it is derived from the management address subnet.
func NewDocument(spec *v1.ProvisionSpec, managementIP string) Document {
	gateway := spec.ManagementGateway
	if gateway == "" {
		gateway = utils.DeriveGateway(managementIP)
	}

	ethernets := map[string]Ethernet{}
	for _, nic := range spec.Nics {
		ethernets[nic] = Ethernet{}
	}

	vlan := Vlan{
		ID:        spec.VlanID,
		Link:      spec.BondName,
		Addresses: []string{fmt.Sprintf("%s/%d", managementIP, spec.Prefix)},
		Routes:    []Route{{To: "default", Via: gateway}},
	}
	if len(spec.Nameservers) > 0 {
		vlan.Nameservers = &Nameservers{Addresses: spec.Nameservers}
	}

	return Document{
		Network: Network{
			Version:   2,
			Renderer:  "networkd",
			Ethernets: ethernets,
			Bonds: map[string]Bond{
				spec.BondName: {
					Interfaces: spec.Nics,
					Parameters: BondParameters{
						Mode:               spec.BondMode,
						MiiMonitorInterval: constants.MiiMonitorInterval,
						UpDelay:            constants.BondUpDelay,
						DownDelay:          constants.BondDownDelay,
					},
				},
			},
			Vlans: map[string]Vlan{
				VlanName(spec): vlan,
			},
		},
	}
}

// VlanName is the canonical sub-interface name, '<bond>.<id>'.
func VlanName(spec *v1.ProvisionSpec) string {
	return fmt.Sprintf("%s.%d", spec.BondName, spec.VlanID)
}

// Render marshals the document to YAML.
func Render(doc Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// Write renders the document and overwrites the well known netplan
// file, creating the target directory when missing. Returns the path
// written to.
func Write(fs v1.FS, spec *v1.ProvisionSpec, doc Document) (string, error) {
	data, err := Render(doc)
	if err != nil {
		return "", fmt.Errorf("rendering network document: %w", err)
	}
	if err = utils.MkdirAll(fs, spec.NetplanDir, constants.DirPerm); err != nil {
		return "", fmt.Errorf("creating '%s': %w", spec.NetplanDir, err)
	}
	path := filepath.Join(spec.NetplanDir, spec.NetplanFile)
	if err = fs.WriteFile(path, data, constants.FilePerm); err != nil {
		return "", fmt.Errorf("writing '%s': %w", path, err)
	}
	return path, nil
}

// Apply hands the written document over to netplan. The exit status of
// the apply command is the only success signal, a partially applied
// configuration is not rolled back.
func Apply(runner v1.Runner) error {
	out, err := runner.Run(constants.NetplanBin, "apply")
	if err != nil {
		return fmt.Errorf("netplan apply failed: %w, output: %s", err, out)
	}
	return nil
}
