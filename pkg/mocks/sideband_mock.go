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

package mocks

import (
	"fmt"
	"strings"
)

// FakeSideband records the configuration calls in order. FailOn makes
// the named call fail so tests can check the sequence aborts there.
type FakeSideband struct {
	Calls  []string
	FailOn string
}

func (f *FakeSideband) SetStatic() error {
	return f.record("static")
}

func (f *FakeSideband) SetAddress(ip string) error {
	return f.record("address " + ip)
}

func (f *FakeSideband) SetNetmask(mask string) error {
	return f.record("netmask " + mask)
}

func (f *FakeSideband) SetGateway(ip string) error {
	return f.record("gateway " + ip)
}

func (f *FakeSideband) record(call string) error {
	if f.FailOn != "" && strings.HasPrefix(call, f.FailOn) {
		return fmt.Errorf("sideband command '%s' failed", call)
	}
	f.Calls = append(f.Calls, call)
	return nil
}
