/*
PURPOSE:
  Summarizes a plan per group and renders it as a table for `inspect`.

REQUIREMENTS:
  Implementation-discovered:
  - Dropped trailing runs must be visible before any list is written.
  - Piped output should not carry box-drawing characters.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (inspect)
  - Dependencies: github.com/jedib0t/go-pretty/v6, github.com/mattn/go-isatty

USAGE:
  fmt.Println(output.RenderTable(output.Rows(plan)))
*/

package output

import (
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/wipac/process-log/internal/model"
)

// Group statuses reported by inspect.
const (
	StatusWritten = "written"
	StatusDropped = "dropped"
)

// GroupRow summarizes one group of a plan.
type GroupRow struct {
	Index    int    `json:"index"`
	Ramp     uint64 `json:"ramp"`
	Runs     int    `json:"runs"`
	FirstRun string `json:"first_run"`
	LastRun  string `json:"last_run"`
	MinVped  int64  `json:"min_vped"`
	MaxVped  int64  `json:"max_vped"`
	File     string `json:"file,omitempty"`
	Status   string `json:"status"`
}

// Rows summarizes every group of plan. An unflushed trailing group is
// reported last with StatusDropped and no file.
func Rows(plan *model.Plan) []GroupRow {
	rows := make([]GroupRow, 0, len(plan.Groups)+1)
	for _, g := range plan.Groups {
		row := summarize(g.Records)
		row.Index = g.Index
		row.Ramp = g.Ramp
		row.File = TFListName(plan.ID, g.Ramp)
		row.Status = StatusWritten
		rows = append(rows, row)
	}
	if len(plan.Trailing) > 0 && !plan.TrailingFlushed {
		row := summarize(plan.Trailing)
		row.Index = len(plan.Groups)
		row.Ramp = plan.Trailing[len(plan.Trailing)-1].Ramp
		row.Status = StatusDropped
		rows = append(rows, row)
	}
	return rows
}

func summarize(records []model.Record) GroupRow {
	row := GroupRow{Runs: len(records)}
	if len(records) == 0 {
		return row
	}
	row.FirstRun = records[0].Run
	row.LastRun = records[len(records)-1].Run
	row.MinVped, row.MaxVped = records[0].Vped, records[0].Vped
	for _, r := range records[1:] {
		row.MinVped = min(row.MinVped, r.Vped)
		row.MaxVped = max(row.MaxVped, r.Vped)
	}
	return row
}

// RenderTable renders rows as a table. Rounded borders are used only when
// stdout is a terminal so piped output stays plain ASCII.
func RenderTable(rows []GroupRow) string {
	tw := table.NewWriter()
	if stdoutIsTerminal() {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	tw.AppendHeader(table.Row{"#", "Ramp", "Runs", "First", "Last", "Vped", "File", "Status"})
	for _, r := range rows {
		file := r.File
		if file == "" {
			file = "-"
		}
		tw.AppendRow(table.Row{
			r.Index,
			r.Ramp,
			r.Runs,
			r.FirstRun,
			r.LastRun,
			strconv.FormatInt(r.MinVped, 10) + ".." + strconv.FormatInt(r.MaxVped, 10),
			file,
			r.Status,
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	return tw.Render()
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
