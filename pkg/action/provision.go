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

package action

import (
	"fmt"

	"github.com/baremetal-ops/netprov/pkg/constants"
	"github.com/baremetal-ops/netprov/pkg/mapping"
	"github.com/baremetal-ops/netprov/pkg/netplan"
	"github.com/baremetal-ops/netprov/pkg/sideband"
	v1 "github.com/baremetal-ops/netprov/pkg/types/v1"
	"github.com/baremetal-ops/netprov/pkg/utils"
)

// ProvisionAction is the one-shot bring-up sequence: resolve the
// machine identity, look up its assigned addresses, configure the host
// management network, configure the out-of-band controller. Strictly
// sequential, the first failing step aborts the whole run and nothing
// is rolled back.
type ProvisionAction struct {
	cfg  *v1.RunConfig
	spec *v1.ProvisionSpec
}

func NewProvisionAction(cfg *v1.RunConfig, spec *v1.ProvisionSpec) *ProvisionAction {
	return &ProvisionAction{cfg: cfg, spec: spec}
}

func (p ProvisionAction) Run() error {
	p.preflight()

	serial, err := p.resolveSerial()
	if err != nil {
		return fmt.Errorf("resolving hardware identity: %w", err)
	}
	p.cfg.Logger.Infof("Provisioning machine with serial '%s'", serial)

	row, err := mapping.Lookup(p.cfg.Fs, p.spec.MappingFile, serial)
	if err != nil {
		return err
	}
	p.cfg.Logger.Infof("Assigned addresses: controller %s, management %s", row.ControllerIP, row.ManagementIP)

	doc := netplan.NewDocument(p.spec, row.ManagementIP)
	if p.spec.DryRun {
		data, err := netplan.Render(doc)
		if err != nil {
			return err
		}
		p.cfg.Logger.Infof("Dry run, would write to %s/%s:\n%s", p.spec.NetplanDir, p.spec.NetplanFile, data)
		return nil
	}

	path, err := netplan.Write(p.cfg.Fs, p.spec, doc)
	if err != nil {
		return err
	}
	p.cfg.Logger.Infof("Wrote host network document to %s", path)

	if err = netplan.Apply(p.cfg.Runner); err != nil {
		return err
	}
	p.cfg.Logger.Info("Applied host network configuration")

	return p.configureController(row.ControllerIP)
}

// resolveSerial prefers an operator override, otherwise asks the
// hardware. Either way the mapping table key normalization applies.
func (p ProvisionAction) resolveSerial() (string, error) {
	if p.spec.Serial != "" {
		return utils.NormalizeSerial(p.spec.Serial), nil
	}
	return p.cfg.Inventory.SerialNumber()
}

// preflight warns about missing tool binaries. Warn only, the per step
// exit status is the authoritative failure signal.
func (p ProvisionAction) preflight() {
	for _, bin := range []string{constants.NetplanBin, constants.IpmitoolBin} {
		if !p.cfg.Runner.CommandExists(bin) {
			p.cfg.Logger.Warnf("'%s' not found in PATH, the corresponding step will fail", bin)
		}
	}
}

// configureController pushes the four sideband settings in their fixed
// order, stopping at the first failure. The controller may be left
// partially configured, there is no corrective action.
func (p ProvisionAction) configureController(ip string) error {
	sb := p.cfg.Sideband
	if sb == nil {
		sb = sideband.NewIpmiTool(p.cfg.Runner, p.spec.Channel)
	}

	gateway := p.spec.ControllerGateway
	if gateway == "" {
		gateway = utils.DeriveGateway(ip)
	}

	if err := sb.SetStatic(); err != nil {
		return fmt.Errorf("setting controller address mode: %w", err)
	}
	if err := sb.SetAddress(ip); err != nil {
		return fmt.Errorf("setting controller address: %w", err)
	}
	if err := sb.SetNetmask(p.spec.Netmask); err != nil {
		return fmt.Errorf("setting controller netmask: %w", err)
	}
	if err := sb.SetGateway(gateway); err != nil {
		return fmt.Errorf("setting controller gateway: %w", err)
	}

	p.cfg.Logger.Infof("Controller network configured: %s netmask %s gateway %s", ip, p.spec.Netmask, gateway)
	return nil
}
