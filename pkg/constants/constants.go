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

package constants

import "os"

const (
	// MappingFile is the default machine mapping table, one
	// '<serial> <controllerIP> <managementIP>' row per machine.
	MappingFile = "hosts.map"

	// NetplanDir and NetplanFile are where the rendered management
	// network document lands. The file is overwritten on every run,
	// ownership of its content belongs to netplan from then on.
	NetplanDir  = "/etc/netplan"
	NetplanFile = "50-mgmt.yaml"

	// Fixed management topology: two physical ports aggregated under
	// one 802.3ad bond carrying a single tagged VLAN.
	PrimaryNic   = "eno1"
	SecondaryNic = "eno2"
	BondName     = "bond0"
	BondMode     = "802.3ad"
	MgmtVlanID   = 1000

	// Link monitoring parameters for the bond, in milliseconds.
	MiiMonitorInterval = 100
	BondUpDelay        = 200
	BondDownDelay      = 200

	// ManagementPrefix is the /24 assumption shared by the host address
	// and the controller netmask. Change it here, nowhere else.
	ManagementPrefix = 24
	DefaultNetmask   = "255.255.255.0"

	// MgmtGateway is the VLAN default route target the original
	// deployment hardcoded. It can be overridden or derived per run.
	MgmtGateway = "10.0.0.254"

	// GatewayHostOctet is the conventional router address within each
	// management /24, used when deriving a gateway from an address.
	GatewayHostOctet = "254"

	// IpmiChannel is the LAN channel of the board management controller.
	IpmiChannel = 1

	DmidecodeBin = "dmidecode"
	NetplanBin   = "netplan"
	IpmitoolBin  = "ipmitool"

	FilePerm os.FileMode = 0600
	DirPerm  os.FileMode = os.ModeDir | os.ModePerm
)
