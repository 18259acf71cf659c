/*
PURPOSE:
  Defines the core data structures used throughout process-log.
  These models represent parsed ramp log records and the grouping plan
  derived from them.

REQUIREMENTS:
  User-specified:
  - One record per log row: run id, ramp id, vped.
  - Groups of consecutive runs keyed by ramp id.

  Implementation-discovered:
  - A single Record type replaces three co-indexed slices so the
    run/ramp/vped columns can never drift out of alignment.
  - JSON tags are needed for `inspect --json`.

ARCHITECTURE INTEGRATION:
  - Used by: internal/ramplog, internal/output, internal/engine
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.

USAGE:
  rec := model.Record{Run: "320101", Ramp: 3, Vped: 1200}

RELATED FILES:
  - internal/ramplog/partition.go
  - internal/output/lists.go
*/

package model

// Record is a single row of a ramp log.
type Record struct {
	Run  string `json:"run"`
	Ramp uint64 `json:"ramp"`
	Vped int64  `json:"vped"`
}

// Log is a parsed ramp log in file order.
type Log struct {
	Records []Record
}

// Runs returns the run ids in file order.
func (l *Log) Runs() []string {
	out := make([]string, len(l.Records))
	for i, r := range l.Records {
		out[i] = r.Run
	}
	return out
}

// Ramps returns the ramp ids in file order, duplicates included.
func (l *Log) Ramps() []uint64 {
	out := make([]uint64, len(l.Records))
	for i, r := range l.Records {
		out[i] = r.Ramp
	}
	return out
}

// Vpeds returns the vped values in file order.
func (l *Log) Vpeds() []int64 {
	out := make([]int64, len(l.Records))
	for i, r := range l.Records {
		out[i] = r.Vped
	}
	return out
}

// Group is one calibration (transfer-function) group: consecutive records
// closed by a vped transition.
type Group struct {
	Index   int      `json:"index"`
	Ramp    uint64   `json:"ramp"`
	Records []Record `json:"records"`
}

// Plan is everything needed to write the outputs for one log, computed
// before any file is touched.
type Plan struct {
	ID      string
	Records []Record
	Groups  []Group

	// Trailing holds the records after the last transition. They are only
	// written when the plan was built with trailing flush enabled, in which
	// case they also appear as the last entry of Groups.
	Trailing        []Record
	TrailingFlushed bool

	// UnusedRamps are deduplicated ramp ids no transition consumed.
	UnusedRamps []uint64
}

// OutputFile is a rendered output list.
type OutputFile struct {
	Name    string
	Content string
}

// Summary reports the outcome of processing one log.
type Summary struct {
	Input           string   `json:"input"`
	Records         int      `json:"records"`
	Groups          int      `json:"groups"`
	Files           []string `json:"files"`
	TrailingDropped int      `json:"trailing_dropped"`
}
