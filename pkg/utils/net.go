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

package utils

import (
	"fmt"
	"strings"

	"github.com/baremetal-ops/netprov/pkg/constants"
)

// NormalizeSerial turns a raw hardware serial into the mapping table
// join key. Vendors love embedding spaces in DMI strings, the mapping
// files are authored with hyphens instead. The transformation is
// idempotent.
func NormalizeSerial(serial string) string {
	return strings.ReplaceAll(strings.TrimSpace(serial), " ", "-")
}

// DeriveGateway computes the conventional router address of the /24
// an address lives in, first three octets plus .254. The address is
// not validated, a malformed value surfaces when the result is applied.
func DeriveGateway(ip string) string {
	octets := strings.Split(ip, ".")
	if len(octets) < 3 {
		return ip
	}
	return fmt.Sprintf("%s.%s", strings.Join(octets[:3], "."), constants.GatewayHostOctet)
}
