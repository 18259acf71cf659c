/*
PURPOSE:
  Processes one ramp log: the root command's action.

REQUIREMENTS:
  User-specified:
  - Write the calibration and transfer-function lists.
  - Print a completion message on success, whatever the log level.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load fails or engine run fails.

IMPLEMENTATION RULES:
  - Logic: Load Config -> Override -> Engine.Run.

USAGE:
  process-log --output-dir ./lists 2021-12-22-ramplog.csv

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/cli/root.go
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wipac/process-log/internal/config"
	"github.com/wipac/process-log/internal/engine"
	"github.com/wipac/process-log/internal/output"
)

var (
	outputOverride        string
	basePathOverride      string
	prefixOverride        string
	flushTrailingOverride bool
	logLevelOverride      string
)

func runLog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	summary, err := engine.Run(cfg, args[0])
	if err != nil {
		return err
	}

	output.Logger.Debug("Wrote lists", "files", summary.Files)
	fmt.Fprintf(cmd.OutOrStdout(), "Processing complete: %s, %d runs, %d groups, %d files written, %d trailing runs dropped\n",
		summary.Input, summary.Records, summary.Groups, len(summary.Files), summary.TrailingDropped)
	return nil
}

// loadConfig loads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		cfg.OutputDir = outputOverride
	}
	if flags.Changed("base-path") {
		cfg.BasePath = basePathOverride
	}
	if flags.Changed("prefix") {
		cfg.Prefix = prefixOverride
	}
	if flags.Changed("flush-trailing") {
		cfg.FlushTrailing = flushTrailingOverride
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevelOverride
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := output.Configure(cfg.LogLevel); err != nil {
		return nil, err
	}
	if cfg.Source != "" {
		output.Logger.Debug("Loaded config", "path", cfg.Source)
	}
	return cfg, nil
}

func init() {
	rootCmd.Flags().StringVarP(&outputOverride, "output-dir", "o", "", "Output directory for the lists (default: current directory)")
}
