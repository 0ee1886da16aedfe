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

// FakeInventory returns a canned serial number, or an error when set.
type FakeInventory struct {
	Serial      string
	ReturnError error
}

func (f FakeInventory) SerialNumber() (string, error) {
	if f.ReturnError != nil {
		return "", f.ReturnError
	}
	return f.Serial, nil
}
