/*
PURPOSE:
  Defines the 'inspect' subcommand.
  Shows how a log would be grouped without writing any list.

REQUIREMENTS:
  Implementation-discovered:
  - Useful validation step before writing lists, e.g. to spot a dropped
    trailing group or a ramp id collision.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Plan(), internal/output.Rows()

ERROR HANDLING:
  - Same errors as the root command; nothing is written either way.

USAGE:
  process-log inspect 2021-12-22-ramplog.csv
  process-log inspect --json 2021-12-22-ramplog.csv | jq .
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wipac/process-log/internal/engine"
	"github.com/wipac/process-log/internal/output"
)

var inspectJSON bool

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Show the calibration groups of a log without writing lists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		plan, err := engine.Plan(cfg, args[0])
		if err != nil {
			return err
		}
		rows := output.Rows(plan)

		out := cmd.OutOrStdout()
		if inspectJSON {
			w := output.NewJSONWriter(out)
			for _, r := range rows {
				if err := w.Write(r); err != nil {
					return err
				}
			}
			return nil
		}

		fmt.Fprintf(out, "%s: %d runs, %d groups\n", args[0], len(plan.Records), len(plan.Groups))
		fmt.Fprintln(out, output.RenderTable(rows))
		if len(plan.UnusedRamps) > 0 {
			fmt.Fprintf(out, "unused ramp ids: %v\n", plan.UnusedRamps)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Print one JSON line per group")
}
