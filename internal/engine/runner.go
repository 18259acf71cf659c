/*
PURPOSE:
  High-level runner that turns one ramp log into its file lists.
  Read -> Plan -> Render -> Write.

REQUIREMENTS:
  User-specified:
  - One calibration list plus one transfer-function list per group.
  - Any failure aborts the run.

  Implementation-discovered:
  - Parsing and grouping finish before the first file is created, so a bad
    log or a group overrun leaves nothing on disk.
  - Dropped trailing runs, unused ramp ids and duplicate list names are
    surprising enough to warn about.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/ramplog, internal/output, internal/config

ERROR HANDLING:
  - Returns the first error; errors from ramplog keep their sentinel for errors.Is.

USAGE:
  summary, err := engine.Run(cfg, "2021-12-22-ramplog.csv")

RELATED FILES:
  - internal/ramplog/partition.go
  - internal/output/writer.go
*/

package engine

import (
	"fmt"
	"os"

	"github.com/wipac/process-log/internal/config"
	"github.com/wipac/process-log/internal/model"
	"github.com/wipac/process-log/internal/output"
	"github.com/wipac/process-log/internal/ramplog"
)

// Plan reads the log at path and groups its records without writing anything.
func Plan(cfg *config.Config, path string) (*model.Plan, error) {
	log, err := ramplog.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}
	output.Logger.Debug("Parsed log", "path", path, "records", len(log.Records))

	id := cfg.Prefix
	if id == "" {
		id = output.Identifier(path)
	}

	plan, err := ramplog.BuildPlan(id, log, ramplog.Options{FlushTrailing: cfg.FlushTrailing})
	if err != nil {
		return nil, fmt.Errorf("failed to group %s: %w", path, err)
	}
	return plan, nil
}

// Run processes the log at path and writes its lists to cfg.OutputDir.
func Run(cfg *config.Config, path string) (*model.Summary, error) {
	plan, err := Plan(cfg, path)
	if err != nil {
		return nil, err
	}

	if len(plan.UnusedRamps) > 0 {
		output.Logger.Warn("Ramp ids without a matching transition", "ramps", plan.UnusedRamps)
	}
	if len(plan.Trailing) > 0 && !plan.TrailingFlushed {
		output.Logger.Warn("Runs after the last transition are not written",
			"count", len(plan.Trailing),
			"first_run", plan.Trailing[0].Run,
			"last_run", plan.Trailing[len(plan.Trailing)-1].Run,
		)
	}

	files := output.Files(plan, cfg.BasePath)
	for _, name := range output.DuplicateNames(files) {
		output.Logger.Warn("Several groups share a list name; the last one wins", "file", name)
	}

	dir := cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, ramplog.NewFileError("create", dir, err)
	}
	paths, err := output.WriteFiles(dir, files)
	if err != nil {
		return nil, fmt.Errorf("failed to write lists: %w", err)
	}

	summary := &model.Summary{
		Input:   path,
		Records: len(plan.Records),
		Groups:  len(plan.Groups),
		Files:   paths,
	}
	if !plan.TrailingFlushed {
		summary.TrailingDropped = len(plan.Trailing)
	}
	return summary, nil
}
