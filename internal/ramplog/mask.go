/*
PURPOSE:
  Builds the transition mask that marks where calibration groups end.

REQUIREMENTS:
  User-specified:
  - A group ends at a run whose successor does not have a higher vped.
  - Mask length equals the record count; the last entry is always true.

  Implementation-discovered:
  - Zero and one record are defined explicitly instead of by index arithmetic.

ARCHITECTURE INTEGRATION:
  - Called by: internal/ramplog.BuildPlan

USAGE:
  mask := ramplog.TransitionMask(log.Vpeds())
*/

package ramplog

// TransitionMask marks, for each record, whether vped rises into the next
// record. A false entry closes a calibration group at that record. The last
// entry is always true, so an empty input gives an empty mask and a single
// record gives [true].
func TransitionMask(vpeds []int64) []bool {
	if len(vpeds) == 0 {
		return []bool{}
	}
	mask := make([]bool, len(vpeds))
	for i := 0; i < len(vpeds)-1; i++ {
		mask[i] = vpeds[i+1] > vpeds[i]
	}
	mask[len(vpeds)-1] = true
	return mask
}

// Boundaries counts the group-closing (false) entries of mask.
func Boundaries(mask []bool) int {
	n := 0
	for _, b := range mask {
		if !b {
			n++
		}
	}
	return n
}
