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

// SidebandController drives the network setup of the out-of-band
// management controller. Each call maps to one discrete firmware
// command and reports its exit status independently, callers stop at
// the first failure. There is no read-back verification.
type SidebandController interface {
	SetStatic() error
	SetAddress(ip string) error
	SetNetmask(mask string) error
	SetGateway(ip string) error
}
