/*
PURPOSE:
  Splits a parsed log into calibration groups.
  Every false entry of the transition mask closes the current group,
  which takes the next deduplicated ramp id as its name.

REQUIREMENTS:
  User-specified:
  - Groups are consumed in order against the deduplicated ramp ids.
  - A boundary with no ramp id left is a GroupOverrun, not a panic.

  Implementation-discovered:
  - The last mask entry is forced true, so records after the last boundary
    never close a group. By default they are dropped, matching the lab's
    existing lists; FlushTrailing keeps them as a final group.
  - The whole plan is computed up front so a bad log writes nothing.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/cli (inspect)
  - Produces: internal/model.Plan

ERROR HANDLING:
  - *OverrunError (errors.Is ErrGroupOverrun) with the offending index.

USAGE:
  plan, err := ramplog.BuildPlan(id, log, ramplog.Options{})

RELATED FILES:
  - internal/ramplog/mask.go
  - internal/ramplog/dedup.go
*/

package ramplog

import (
	"fmt"

	"github.com/wipac/process-log/internal/model"
)

// Options tunes how a plan is built.
type Options struct {
	// FlushTrailing writes the records after the last boundary as a final
	// group named by the ramp id of its last record.
	FlushTrailing bool
}

// BuildPlan derives the deduplicated ramps and transition mask of log and
// partitions its records.
func BuildPlan(id string, log *model.Log, opts Options) (*model.Plan, error) {
	if log == nil || len(log.Records) == 0 {
		return nil, ErrEmptyInput
	}
	mask := TransitionMask(log.Vpeds())
	ramps := DedupRamps(log.Ramps())

	plan, err := Partition(log.Records, mask, ramps, opts)
	if err != nil {
		return nil, err
	}
	plan.ID = id
	return plan, nil
}

// Partition walks records with their mask, closing a group at each false
// entry. ramps names the groups in order.
func Partition(records []model.Record, mask []bool, ramps []uint64, opts Options) (*model.Plan, error) {
	if len(mask) != len(records) {
		return nil, fmt.Errorf("transition mask has %d entries for %d records", len(mask), len(records))
	}

	plan := &model.Plan{Records: records}
	start := 0
	for i := range records {
		if mask[i] {
			continue
		}
		g := len(plan.Groups)
		if g >= len(ramps) {
			return nil, &OverrunError{Index: i, Group: g, Available: len(ramps)}
		}
		plan.Groups = append(plan.Groups, model.Group{
			Index:   g,
			Ramp:    ramps[g],
			Records: records[start : i+1],
		})
		start = i + 1
	}

	if used := len(plan.Groups); used < len(ramps) {
		plan.UnusedRamps = ramps[used:]
	}

	if start < len(records) {
		plan.Trailing = records[start:]
		if opts.FlushTrailing {
			plan.Groups = append(plan.Groups, model.Group{
				Index:   len(plan.Groups),
				Ramp:    plan.Trailing[len(plan.Trailing)-1].Ramp,
				Records: plan.Trailing,
			})
			plan.TrailingFlushed = true
		}
	}

	return plan, nil
}
