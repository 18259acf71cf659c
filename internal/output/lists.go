/*
PURPOSE:
  Renders the calibration and transfer-function file lists.

REQUIREMENTS:
  User-specified:
  - <id>-cal-list.txt: one `<base>/cal<run>.r1` line per run.
  - <id>-ramp-<ramp>-tf-dac-list.txt: `<base>/cal<run>.r1 <vped>` per run in the group.
  - No trailing newline.

  Implementation-discovered:
  - The base path names a directory on the analysis cluster, so it is
    joined with '/' regardless of the local OS.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/cli (inspect)
  - Consumes: internal/model.Plan

ERROR HANDLING:
  - None (pure formatting).

USAGE:
  files := output.Files(plan, cfg.BasePath)
*/

package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wipac/process-log/internal/model"
)

// Identifier strips the directory and final extension from an input path.
// A dot-file such as ".ramplog" keeps its full name.
func Identifier(path string) string {
	base := filepath.Base(path)
	if id := strings.TrimSuffix(base, filepath.Ext(base)); id != "" {
		return id
	}
	return base
}

// CalListName is the file name of the calibration list for id.
func CalListName(id string) string {
	return fmt.Sprintf("%s-cal-list.txt", id)
}

// TFListName is the file name of the transfer-function list of one ramp.
func TFListName(id string, ramp uint64) string {
	return fmt.Sprintf("%s-ramp-%d-tf-dac-list.txt", id, ramp)
}

// CalPath is the calibration data file of run under base.
func CalPath(base, run string) string {
	return fmt.Sprintf("%s/cal%s.r1", strings.TrimRight(base, "/"), run)
}

// RenderCalList renders one calibration path per record.
func RenderCalList(base string, records []model.Record) string {
	var sb strings.Builder
	for _, r := range records {
		sb.WriteString(CalPath(base, r.Run))
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderTFList renders one `path vped` line per record.
func RenderTFList(base string, records []model.Record) string {
	var sb strings.Builder
	for _, r := range records {
		fmt.Fprintf(&sb, "%s %d\n", CalPath(base, r.Run), r.Vped)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Files renders every output of plan: the calibration list first, then one
// transfer-function list per group in group order.
func Files(plan *model.Plan, base string) []model.OutputFile {
	files := make([]model.OutputFile, 0, len(plan.Groups)+1)
	files = append(files, model.OutputFile{
		Name:    CalListName(plan.ID),
		Content: RenderCalList(base, plan.Records),
	})
	for _, g := range plan.Groups {
		files = append(files, model.OutputFile{
			Name:    TFListName(plan.ID, g.Ramp),
			Content: RenderTFList(base, g.Records),
		})
	}
	return files
}

// DuplicateNames lists file names that occur more than once, in first-seen
// order. Later files with the same name overwrite earlier ones on disk.
func DuplicateNames(files []model.OutputFile) []string {
	seen := make(map[string]int, len(files))
	var dups []string
	for _, f := range files {
		seen[f.Name]++
		if seen[f.Name] == 2 {
			dups = append(dups, f.Name)
		}
	}
	return dups
}
