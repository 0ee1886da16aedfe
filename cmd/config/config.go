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

package config

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/baremetal-ops/netprov/pkg/config"
	v1 "github.com/baremetal-ops/netprov/pkg/types/v1"
)

// ReadConfigRun assembles the collaborators and merges the config
// sources: defaults, then <configDir>/config.yaml, then NETPROV_* env
// vars, then any flags already bound into viper by the command.
func ReadConfigRun(configDir string, opts ...config.GenericOptions) (*v1.RunConfig, error) {
	cfg := config.NewRunConfig(opts...)

	// Set debug level
	if viper.GetBool("debug") {
		cfg.Logger.SetLevel(v1.DebugLevel())
	}

	// Set formatter so both file and stdout format are equal
	cfg.Logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:      true,
		DisableColors:    false,
		DisableTimestamp: false,
		FullTimestamp:    true,
	})

	// Logfile
	logfile := viper.GetString("logfile")
	if logfile != "" {
		o, err := cfg.Fs.OpenFile(logfile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, os.ModePerm)

		if err != nil {
			cfg.Logger.Errorf("Could not open %s for logging to file: %s", logfile, err.Error())
		}

		if viper.GetBool("quiet") { // if quiet is set, only set the log to the file
			cfg.Logger.SetOutput(o)
		} else { // else set it to both stdout and the file
			mw := io.MultiWriter(os.Stdout, o)
			cfg.Logger.SetOutput(mw)
		}
	} else { // no logfile
		if viper.GetBool("quiet") { // quiet is enabled so discard all logging
			cfg.Logger.SetOutput(io.Discard)
		} else { // default to stdout
			cfg.Logger.SetOutput(os.Stdout)
		}
	}

	if configDir != "" {
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
		// If a config file is found, read it in.
		_ = viper.MergeInConfig()
	}

	// Set the prefix for vars so we get only the ones starting with NETPROV
	viper.SetEnvPrefix("NETPROV")

	replacer := strings.NewReplacer("-", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv() // read in environment variables that match

	// unmarshal all the vars into the config object
	err := viper.Unmarshal(cfg)
	if err != nil {
		cfg.Logger.Warnf("Error unmarshalling RunConfig: %s", err)
	}

	return cfg, err
}

// ReadProvisionSpec builds the provisioning spec from the topology
// defaults overlaid with anything viper picked up, then validates it.
func ReadProvisionSpec(cfg *v1.RunConfig) (*v1.ProvisionSpec, error) {
	spec := config.NewProvisionSpec()

	err := viper.Unmarshal(spec)
	if err != nil {
		cfg.Logger.Warnf("Error unmarshalling ProvisionSpec: %s", err)
		return nil, err
	}

	err = config.ValidateProvisionSpec(spec)
	if err != nil {
		cfg.Logger.Errorf("Invalid provisioning setup: %s", err)
		return nil, err
	}
	return spec, nil
}
