package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wipac/process-log/internal/model"
)

func samplePlan(flushed bool) *model.Plan {
	recs := []model.Record{
		{Run: "r1", Ramp: 10, Vped: 1},
		{Run: "r2", Ramp: 10, Vped: 2},
		{Run: "r3", Ramp: 20, Vped: 1},
	}
	plan := &model.Plan{
		ID:       "log",
		Records:  recs,
		Groups:   []model.Group{{Index: 0, Ramp: 10, Records: recs[:2]}},
		Trailing: recs[2:],
	}
	if flushed {
		plan.Groups = append(plan.Groups, model.Group{Index: 1, Ramp: 20, Records: recs[2:]})
		plan.TrailingFlushed = true
	}
	return plan
}

func TestRows(t *testing.T) {
	rows := Rows(samplePlan(false))
	require.Len(t, rows, 2)

	assert.Equal(t, GroupRow{
		Index: 0, Ramp: 10, Runs: 2,
		FirstRun: "r1", LastRun: "r2",
		MinVped: 1, MaxVped: 2,
		File:   "log-ramp-10-tf-dac-list.txt",
		Status: StatusWritten,
	}, rows[0])

	assert.Equal(t, StatusDropped, rows[1].Status)
	assert.Empty(t, rows[1].File)
	assert.Equal(t, uint64(20), rows[1].Ramp)
	assert.Equal(t, 1, rows[1].Runs)
}

func TestRowsFlushedTrailing(t *testing.T) {
	rows := Rows(samplePlan(true))
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, StatusWritten, r.Status)
	}
	assert.Equal(t, "log-ramp-20-tf-dac-list.txt", rows[1].File)
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Rows(samplePlan(false)))
	assert.Contains(t, out, "log-ramp-10-tf-dac-list.txt")
	assert.Contains(t, out, "1..2")
	assert.Contains(t, out, StatusDropped)
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	for _, r := range Rows(samplePlan(false)) {
		require.NoError(t, w.Write(r))
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var got GroupRow
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &got))
	assert.Equal(t, StatusDropped, got.Status)
	assert.Equal(t, "r3", got.FirstRun)
}
