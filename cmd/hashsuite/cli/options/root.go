// Copyright 2025 The HashSuite Authors.
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

// Package options defines the command-line options and flags for the hashsuite CLI.
// Flag values are resolved through viper so every flag can also be set from
// a HASHSUITE_* environment variable or a config file.
package options

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hashsuite/hashsuite/pkg/hashsuite"
	"github.com/hashsuite/hashsuite/pkg/logging"
	"github.com/hashsuite/hashsuite/pkg/utils"
)

// EnvPrefix is the prefix used for environment variables that configure the CLI.
const EnvPrefix = "HASHSUITE"

// DefaultTimeout specifies the default timeout duration for commands.
const DefaultTimeout = time.Minute

// ValidLogLevels lists the valid log level strings.
var ValidLogLevels = []string{"debug", "info", "warn", "error", "silent"}

// ValidLogFormats lists the valid log format strings.
var ValidLogFormats = []string{"text", "json"}

// RootOptions defines flags and options for the root CLI command.
// These options are available globally across all subcommands.
type RootOptions struct {
	// ConfigFile is an optional YAML, JSON or TOML file of flag defaults.
	ConfigFile string
	// LogLevel sets the minimum log level (debug, info, warn, error, silent).
	LogLevel string
	// LogFormat sets the log output format (text, json).
	LogFormat string
	// Timeout sets the maximum duration for command execution.
	Timeout time.Duration
	// LogOutput receives log lines. Nil means stderr.
	LogOutput io.Writer

	v *viper.Viper
}

var _ Interface = (*RootOptions)(nil)

// AddFlags implements the Interface by adding root-level flags to the cobra command.
func (o *RootOptions) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.ConfigFile, "config", "",
		"read flag defaults from a YAML, JSON or TOML file")
	_ = cmd.MarkPersistentFlagFilename("config", "yaml", "yml", "json", "toml")

	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "info",
		"set the minimum log level (debug, info, warn, error, silent)")

	cmd.PersistentFlags().StringVar(&o.LogFormat, "log-format", "text",
		"set the log output format (text, json)")

	cmd.PersistentFlags().DurationVarP(&o.Timeout, "timeout", "t", DefaultTimeout,
		"timeout for commands")
}

// Load resolves every flag of cmd against the environment and the config
// file. Precedence is flag, then environment, then config file, then the flag
// default.
func (o *RootOptions) Load(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := utils.ValidateOptionalFile("config", o.ConfigFile); err != nil {
		return err
	}
	if o.ConfigFile != "" {
		v.SetConfigFile(o.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return hashsuite.NewValidationError("config", fmt.Sprintf("reading %s: %v", o.ConfigFile, err))
		}
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	o.LogLevel = strings.ToLower(v.GetString("log-level"))
	if !slices.Contains(ValidLogLevels, o.LogLevel) {
		return hashsuite.NewValidationError("log-level",
			fmt.Sprintf("%q is not one of %s", o.LogLevel, strings.Join(ValidLogLevels, ", ")))
	}
	o.LogFormat = strings.ToLower(v.GetString("log-format"))
	if !slices.Contains(ValidLogFormats, o.LogFormat) {
		return hashsuite.NewValidationError("log-format",
			fmt.Sprintf("%q is not one of %s", o.LogFormat, strings.Join(ValidLogFormats, ", ")))
	}
	o.Timeout = v.GetDuration("timeout")
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}

	o.v = v
	return nil
}

// Value returns the resolved value of key, or "" before Load.
func (o *RootOptions) Value(key string) string {
	if o.v == nil {
		return ""
	}
	return o.v.GetString(key)
}

// Bool returns the resolved boolean value of key.
func (o *RootOptions) Bool(key string) bool {
	if o.v == nil {
		return false
	}
	return o.v.GetBool(key)
}

// GetLogLevel returns the effective log level based on the options.
func (o *RootOptions) GetLogLevel() logging.LogLevel {
	return logging.ParseLogLevel(o.LogLevel)
}

// GetLogFormat returns the log format based on the options.
func (o *RootOptions) GetLogFormat() logging.LogFormat {
	return logging.ParseLogFormat(o.LogFormat)
}

// NewLogger creates a new logger based on the root options.
func (o *RootOptions) NewLogger() logging.Logger {
	return logging.NewLoggerWithOptions(logging.LoggerOptions{
		Level:  o.GetLogLevel(),
		Format: o.GetLogFormat(),
		Output: o.LogOutput,
	})
}
