// Copyright 2024 The Solaris Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package app

import (
	"encoding/json"
	"fmt"

	"github.com/solarisdb/splaymemo/golibs/config"
	"github.com/solarisdb/splaymemo/golibs/errors"
	"github.com/solarisdb/splaymemo/golibs/logging"
	"github.com/solarisdb/splaymemo/pkg/bench"
)

type (
	// Config defines the splaymemo configuration
	Config struct {
		Log    LogConfig    `json:"log"`
		Bench  bench.Config `json:"bench"`
		Output OutputConfig `json:"output"`
	}

	// LogConfig defines the logging settings
	LogConfig struct {
		// Level is one of error, warn, info, debug, trace
		Level string `json:"level"`
		// Format is one of text, json, zap
		Format string `json:"format"`
	}

	// OutputConfig defines where and how the report is written
	OutputConfig struct {
		// Format is table or yaml
		Format string `json:"format"`
		// Path is the report file name, the report goes to stdout if it is empty
		Path string `json:"path"`
		// Metrics specifies whether the collected metrics are written after the report
		Metrics bool `json:"metrics"`
	}
)

const (
	OutputTable = "table"
	OutputYAML  = "yaml"

	// EnvPrefix is the prefix of the environment variables overriding the config
	EnvPrefix = "SPLAYMEMO"
)

// getDefaultConfig returns the default splaymemo config
func getDefaultConfig() *Config {
	return &Config{
		Log:    LogConfig{Level: logging.INFO.String(), Format: logging.FormatText},
		Bench:  bench.GetDefaultConfig(),
		Output: OutputConfig{Format: OutputTable},
	}
}

// BuildConfig returns the config built from the defaults, the cfgFile values (if it is
// not empty) and the environment variables with the EnvPrefix.
func BuildConfig(cfgFile string) (*Config, error) {
	log := logging.NewLogger("splaymemo.ConfigBuilder")
	log.Infof("trying to build config. cfgFile=%s", cfgFile)
	e := config.NewEnricher(*getDefaultConfig())
	fe := config.NewEnricher(Config{})
	err := fe.LoadFromFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("could not read data from the file %s: %w", cfgFile, err)
	}
	// overwrite default
	if err = e.ApplyOther(fe); err != nil {
		return nil, err
	}
	if err = e.ApplyEnvVariables(EnvPrefix, "_"); err != nil {
		return nil, err
	}
	cfg := e.Value()
	return &cfg, nil
}

// Validate checks the config values
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case logging.FormatText, logging.FormatJSON, logging.FormatZap:
	default:
		return fmt.Errorf("unknown log format %q: %w", c.Log.Format, errors.ErrInvalid)
	}
	if c.Output.Format != OutputTable && c.Output.Format != OutputYAML {
		return fmt.Errorf("unknown output format %q: %w", c.Output.Format, errors.ErrInvalid)
	}
	return c.Bench.Validate()
}

// String implements fmt.Stringify interface in a pretty console form
func (c *Config) String() string {
	b, _ := json.MarshalIndent(*c, "", "  ")
	return string(b)
}
