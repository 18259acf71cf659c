/*
PURPOSE:
  Collapses repeated ramp ids so each calibration group gets one name.

REQUIREMENTS:
  User-specified:
  - Only adjacent repeats collapse; a ramp id seen again later is a new entry.

ARCHITECTURE INTEGRATION:
  - Called by: internal/ramplog.BuildPlan

USAGE:
  ramps := ramplog.DedupRamps(log.Ramps())
*/

package ramplog

// DedupRamps collapses each run of adjacent equal ramp ids to one entry.
// Non-adjacent repeats are kept: [5 5 3 5] becomes [5 3 5].
func DedupRamps(ramps []uint64) []uint64 {
	out := make([]uint64, 0, len(ramps))
	for i, r := range ramps {
		if i > 0 && r == ramps[i-1] {
			continue
		}
		out = append(out, r)
	}
	return out
}
