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
	"github.com/baremetal-ops/netprov/pkg/constants"
	"github.com/baremetal-ops/netprov/pkg/mapping"
	"github.com/baremetal-ops/netprov/pkg/utils"
)

// NewLookupCmd builds the read-only mapping table query, handy when
// checking a table entry from a workstation. No root needed, nothing
// is touched.
func NewLookupCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "lookup SERIAL",
		Short: "Print the controller and management addresses assigned to a serial number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ReadConfigRun(viper.GetString("config-dir"))
			if err != nil {
				cfg.Logger.Errorf("Error reading config: %s\n", err)
			}
			cmd.SilenceUsage = true

			// The provision command binds its own mapping-file flag
			// into viper, so read ours directly and fall back to the
			// config/env value when unset.
			mappingFile, _ := cmd.Flags().GetString("mapping-file")
			if !cmd.Flags().Changed("mapping-file") && viper.GetString("mapping-file") != "" {
				mappingFile = viper.GetString("mapping-file")
			}

			row, err := mapping.Lookup(cfg.Fs, mappingFile, utils.NormalizeSerial(args[0]))
			if err != nil {
				return err
			}
			fmt.Printf("controller: %s\nmanagement: %s\n", row.ControllerIP, row.ManagementIP)
			return nil
		},
	}
	root.AddCommand(c)
	c.Flags().StringP("mapping-file", "m", constants.MappingFile, "Machine mapping table to query")
	return c
}

// register the subcommand into rootCmd
var _ = NewLookupCmd(rootCmd)
