/*
PURPOSE:
  Defines the configuration structure and loading logic for process-log.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of the cluster base path and the output location.
  - Decide whether runs after the last vped transition are written.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Needs to support Environment variables overrides (PROCESS_LOG_...) via envconfig.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config), github.com/kelseyhightower/envconfig

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - A missing default config file is not an error; defaults apply.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults reproduce the lab's existing lists.

USAGE:
  cfg, err := config.Load("process_log.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct with yaml and envconfig tags.

RELATED FILES:
  - internal/cli/root.go
*/

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/wipac/process-log/internal/output"
)

// DefaultBasePath is the cluster directory holding the calibration runs.
const DefaultBasePath = "/data/wipac/CTA/target5and7data/runs_320000_through_329999"

// EnvPrefix prefixes every environment override, e.g. PROCESS_LOG_BASE_PATH.
const EnvPrefix = "PROCESS_LOG"

// Environment variables that override file values.
const (
	EnvBasePath      = "PROCESS_LOG_BASE_PATH"
	EnvOutputDir     = "PROCESS_LOG_OUTPUT_DIR"
	EnvOutputPrefix  = "PROCESS_LOG_PREFIX"
	EnvFlushTrailing = "PROCESS_LOG_FLUSH_TRAILING"
	EnvLogLevel      = "PROCESS_LOG_LOG_LEVEL"
)

// DefaultFiles are searched in order when no config path is given.
var DefaultFiles = []string{"process_log.yaml", "process-log.yaml", ".process-log.yaml"}

// Config represents the full configuration for process-log.
type Config struct {
	// BasePath prefixes every calibration file in the lists.
	BasePath string `yaml:"base_path" envconfig:"BASE_PATH"`
	// OutputDir receives the list files.
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
	// Prefix replaces the identifier derived from the input file name.
	Prefix string `yaml:"prefix" envconfig:"PREFIX"`
	// FlushTrailing writes runs after the last transition as a final group.
	FlushTrailing bool   `yaml:"flush_trailing" envconfig:"FLUSH_TRAILING"`
	LogLevel      string `yaml:"log_level" envconfig:"LOG_LEVEL"`

	// Source is the config file that was loaded, empty when none was.
	Source string `yaml:"-" ignored:"true"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		BasePath:  DefaultBasePath,
		OutputDir: ".",
		LogLevel:  "info",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches DefaultFiles in order.
// Environment overrides are applied last and the result is validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				break
			}
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file %s: %w", name, err)
			}
		}
	}

	if path != "" {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		cfg.Source = path
	}

	// Only variables that are set override the file; set-but-empty counts as set.
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the runner cannot use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BasePath) == "" {
		return errors.New("base_path must not be empty")
	}
	if strings.ContainsAny(c.Prefix, `/\`) {
		return fmt.Errorf("prefix %q must not contain path separators", c.Prefix)
	}
	if _, err := output.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
