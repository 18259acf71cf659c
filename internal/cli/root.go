/*
PURPOSE:
  Defines the root Cobra command for process-log.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - `process-log FILE` processes one log file.
  - Standard help and version output.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Errors are printed once, by main.go.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/process-log/main.go
  - Calls: runLog (run.go), child commands (inspect)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.

USAGE:
  Called by main.go.

RELATED FILES:
  - cmd/process-log/main.go
  - internal/cli/run.go
*/

package cli

import (
	"github.com/spf13/cobra"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "process-log FILE",
		Short: "Process log file for ramp current studies",
		Long: `Converts a lab ramp log (header line, then run,ramp,vped rows) into file lists
for calibration processing:

  <name>-cal-list.txt                   every run's calibration file
  <name>-ramp-<ramp>-tf-dac-list.txt    one list per calibration group

A group ends wherever vped does not increase into the next run. <name> is the
input file name without its directory and extension.`,
		Example: `  # Write lists for a log into the current directory
  process-log 2021-12-22-ramplog.csv

  # Write into another directory and keep the runs after the last transition
  process-log -o ./lists --flush-trailing 2021-12-22-ramplog.csv`,
		Args:          cobra.ExactArgs(1),
		RunE:          runLog,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the string printed by --version.
func SetVersion(v string) {
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./process_log.yaml)")
	rootCmd.PersistentFlags().StringVar(&basePathOverride, "base-path", "", "Directory of the calibration files on the cluster")
	rootCmd.PersistentFlags().StringVar(&prefixOverride, "prefix", "", "Output name prefix (default: input file name without extension)")
	rootCmd.PersistentFlags().BoolVar(&flushTrailingOverride, "flush-trailing", false, "Write runs after the last transition as a final group")
	rootCmd.PersistentFlags().StringVar(&logLevelOverride, "log-level", "", "Log level: debug, info, warn, error")
}
