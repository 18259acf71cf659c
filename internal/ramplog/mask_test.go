package ramplog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupRamps(t *testing.T) {
	tests := []struct {
		in   []uint64
		want []uint64
	}{
		{[]uint64{5, 5, 5, 3, 3, 5}, []uint64{5, 3, 5}},
		{[]uint64{5, 5, 3, 5}, []uint64{5, 3, 5}},
		{[]uint64{}, []uint64{}},
		{nil, []uint64{}},
		{[]uint64{7}, []uint64{7}},
		{[]uint64{0, 1, 2}, []uint64{0, 1, 2}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DedupRamps(tt.in), "DedupRamps(%v)", tt.in)
	}
}

func TestDedupRampsDoesNotModifyInput(t *testing.T) {
	in := []uint64{1, 1, 2}
	DedupRamps(in)
	assert.Equal(t, []uint64{1, 1, 2}, in)
}

func TestTransitionMask(t *testing.T) {
	tests := []struct {
		name  string
		vpeds []int64
		want  []bool
	}{
		{"drop then flat", []int64{100, 105, 90, 90}, []bool{true, false, false, true}},
		{"rise then drop", []int64{1, 2, 1}, []bool{true, false, true}},
		{"monotonic", []int64{-5, 0, 5}, []bool{true, true, true}},
		{"single", []int64{7}, []bool{true}},
		{"empty", []int64{}, []bool{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TransitionMask(tt.vpeds))
		})
	}
}

func TestTransitionMaskShape(t *testing.T) {
	inputs := [][]int64{
		{1},
		{3, 2, 1},
		{1, 1, 1, 1},
		{100, 200, 300, 100, 200, 300},
	}
	for _, vpeds := range inputs {
		mask := TransitionMask(vpeds)
		assert.Len(t, mask, len(vpeds))
		assert.True(t, mask[len(mask)-1], "last entry of %v", vpeds)
	}
}

func TestBoundaries(t *testing.T) {
	assert.Equal(t, 0, Boundaries(nil))
	assert.Equal(t, 2, Boundaries([]bool{true, false, false, true}))
}
