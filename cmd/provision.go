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
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/baremetal-ops/netprov/cmd/config"
	"github.com/baremetal-ops/netprov/pkg/action"
	"github.com/baremetal-ops/netprov/pkg/constants"
)

// NewProvisionCmd builds the one-shot bring-up command. requireRoot
// allows tests to run it without the privilege gate.
func NewProvisionCmd(root *cobra.Command, requireRoot bool) *cobra.Command {
	c := &cobra.Command{
		Use:   "provision",
		Short: "Configure the host and controller management network",
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

			spec, err := config.ReadProvisionSpec(cfg)
			if err != nil {
				return err
			}

			cfg.Logger.Infof("Provision called")
			return action.NewProvisionAction(cfg, spec).Run()
		},
	}
	root.AddCommand(c)
	c.Flags().StringP("mapping-file", "m", constants.MappingFile, "Machine mapping table, one '<serial> <controllerIP> <managementIP>' row per machine")
	c.Flags().String("serial", "", "Skip hardware identity resolution and use this serial number")
	c.Flags().Bool("dry-run", false, "Render and log the network document without applying anything")
	c.Flags().String("management-gateway", constants.MgmtGateway, "VLAN default route target, empty derives it from the management address")
	c.Flags().String("controller-gateway", "", "Controller gateway, empty derives it from the controller address")
	_ = viper.BindPFlags(c.Flags())
	return c
}

// register the subcommand into rootCmd
var _ = NewProvisionCmd(rootCmd, true)
