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

// Package sideband talks to the board management controller over the
// local IPMI channel via ipmitool. Every setting is one discrete 'lan
// set' command with its own exit status, there is no transaction and no
// rollback, the controller may end up partially configured if a command
// fails midway.
package sideband

import (
	"fmt"
	"strconv"

	"github.com/baremetal-ops/netprov/pkg/constants"
	v1 "github.com/baremetal-ops/netprov/pkg/types/v1"
)

// IpmiTool implements v1.SidebandController by shelling out to
// ipmitool against a fixed LAN channel.
type IpmiTool struct {
	runner  v1.Runner
	channel int
}

func NewIpmiTool(runner v1.Runner, channel int) *IpmiTool {
	return &IpmiTool{runner: runner, channel: channel}
}

func (i IpmiTool) SetStatic() error {
	return i.lanSet("ipsrc", "static")
}

func (i IpmiTool) SetAddress(ip string) error {
	return i.lanSet("ipaddr", ip)
}

func (i IpmiTool) SetNetmask(mask string) error {
	return i.lanSet("netmask", mask)
}

func (i IpmiTool) SetGateway(ip string) error {
	return i.lanSet("defgw", "ipaddr", ip)
}

func (i IpmiTool) lanSet(args ...string) error {
	cmdArgs := append([]string{"lan", "set", strconv.Itoa(i.channel)}, args...)
	out, err := i.runner.Run(constants.IpmitoolBin, cmdArgs...)
	if err != nil {
		return fmt.Errorf("ipmitool lan set %s failed: %w, output: %s", args[0], err, out)
	}
	return nil
}
