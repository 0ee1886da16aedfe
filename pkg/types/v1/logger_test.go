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

package v1_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/baremetal-ops/netprov/pkg/types/v1"
)

var _ = Describe("Logger", Label("types", "logger"), func() {
	It("buffers logs when asked to", func() {
		memLog := &bytes.Buffer{}
		logger := v1.NewBufferLogger(memLog)
		logger.Info("hello there")
		Expect(memLog.String()).To(ContainSubstring("hello there"))
	})
	It("reports debug level properly", func() {
		logger := v1.NewNullLogger()
		Expect(v1.IsDebugLevel(logger)).To(BeFalse())
		logger.SetLevel(v1.DebugLevel())
		Expect(v1.IsDebugLevel(logger)).To(BeTrue())
	})
})
