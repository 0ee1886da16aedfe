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

// Package inventory resolves the hardware identity of the local
// machine. DMI product data via ghw is the primary source, dmidecode is
// the fallback for firmwares where the sysfs DMI entries are missing or
// carry vendor placeholders.
package inventory

import (
	"fmt"
	"strings"

	"github.com/jaypipes/ghw"
	ghwUtil "github.com/jaypipes/ghw/pkg/util"

	"github.com/baremetal-ops/netprov/pkg/constants"
	v1 "github.com/baremetal-ops/netprov/pkg/types/v1"
	"github.com/baremetal-ops/netprov/pkg/utils"
)

// Vendor placeholder strings that mean the firmware has no serial
// burned in. Matched case-insensitively.
var placeholderSerials = []string{
	ghwUtil.UNKNOWN,
	"default string",
	"to be filled by o.e.m.",
	"not specified",
	"none",
}

// DMI implements v1.HardwareInventory for the local machine.
type DMI struct {
	runner v1.Runner
	logger v1.Logger
}

func NewDMI(runner v1.Runner, logger v1.Logger) *DMI {
	return &DMI{runner: runner, logger: logger}
}

// SerialNumber returns the normalized system serial number. Identity
// does not change between attempts within one run, so there are no
// retries, a failure here is final.
func (d DMI) SerialNumber() (string, error) {
	product, err := ghw.Product(ghw.WithDisableWarnings())
	if err == nil && usableSerial(product.SerialNumber) {
		return utils.NormalizeSerial(product.SerialNumber), nil
	}
	if err != nil {
		d.logger.Debugf("DMI product query failed: %s", err.Error())
	}

	d.logger.Debug("Falling back to dmidecode for the system serial number")
	out, err := d.runner.Run(constants.DmidecodeBin, "-s", "system-serial-number")
	if err != nil {
		return "", fmt.Errorf("querying system serial number: %w", err)
	}
	serial := strings.TrimSpace(string(out))
	if !usableSerial(serial) {
		return "", fmt.Errorf("hardware reports no usable serial number (got '%s')", serial)
	}
	return utils.NormalizeSerial(serial), nil
}

func usableSerial(serial string) bool {
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return false
	}
	for _, placeholder := range placeholderSerials {
		if strings.EqualFold(serial, placeholder) {
			return false
		}
	}
	return true
}
