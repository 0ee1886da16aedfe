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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/baremetal-ops/netprov/cmd/config"
)

// NewSerialCmd prints the normalized serial number this machine would
// be looked up under. Needs root, DMI data is privileged.
func NewSerialCmd(root *cobra.Command, requireRoot bool) *cobra.Command {
	c := &cobra.Command{
		Use:   "serial",
		Short: "Print the normalized hardware serial number of this machine",
		Args:  cobra.ExactArgs(0),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if requireRoot {
				return CheckRoot()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ReadConfigRun(viper.GetString("config-dir"))
			if err != nil {
				cfg.Logger.Errorf("Error reading config: %s\n", err)
			}
			cmd.SilenceUsage = true

			serial, err := cfg.Inventory.SerialNumber()
			if err != nil {
				return err
			}
			fmt.Println(serial)
			return nil
		},
	}
	root.AddCommand(c)
	return c
}

// register the subcommand into rootCmd
var _ = NewSerialCmd(rootCmd, true)
