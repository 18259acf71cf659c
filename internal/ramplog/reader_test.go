package ramplog

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wipac/process-log/internal/model"
)

func TestParseRecords(t *testing.T) {
	records, err := ParseRecords("300000,0,123\n300001,1,124")
	require.NoError(t, err)

	log := &model.Log{Records: records}
	assert.Equal(t, []string{"300000", "300001"}, log.Runs())
	assert.Equal(t, []uint64{0, 1}, log.Ramps())
	assert.Equal(t, []int64{123, 124}, log.Vpeds())
}

func TestParse(t *testing.T) {
	t.Run("strips header and keeps order", func(t *testing.T) {
		log, err := Parse("run,ramp,vped\nr1,10,1\nr2,10,2\nr3,20,1\n")
		require.NoError(t, err)
		assert.Equal(t, []model.Record{
			{Run: "r1", Ramp: 10, Vped: 1},
			{Run: "r2", Ramp: 10, Vped: 2},
			{Run: "r3", Ramp: 20, Vped: 1},
		}, log.Records)
	})

	t.Run("CRLF, blank lines and padded fields", func(t *testing.T) {
		log, err := Parse("run,ramp,vped\r\n 320101 , 3 , -40 \r\n\r\n320102,3,12\r\n\n")
		require.NoError(t, err)
		assert.Equal(t, []model.Record{
			{Run: "320101", Ramp: 3, Vped: -40},
			{Run: "320102", Ramp: 3, Vped: 12},
		}, log.Records)
	})

	t.Run("header is discarded even if it looks like data", func(t *testing.T) {
		log, err := Parse("1,2,3\n4,5,6")
		require.NoError(t, err)
		assert.Equal(t, []string{"4"}, log.Runs())
	})
}

func TestParseEmptyInput(t *testing.T) {
	for name, contents := range map[string]string{
		"empty file":            "",
		"header only":           "run,ramp,vped",
		"header with newline":   "run,ramp,vped\n",
		"header and blank rows": "run,ramp,vped\n\n   \n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(contents)
			assert.ErrorIs(t, err, ErrEmptyInput)
		})
	}
}

func TestParseLineErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		kind     error
		line     int
		text     string
	}{
		{"non-numeric ramp", "h\nr1,abc,1", ErrInvalidNumber, 2, "r1,abc,1"},
		{"non-numeric vped", "h\nr1,1,2\nr2,1,x", ErrInvalidNumber, 3, "r2,1,x"},
		{"negative ramp", "h\nr1,-1,5", ErrInvalidNumber, 2, "r1,-1,5"},
		{"too few fields", "h\nr1,1,2\nr2,3", ErrMalformedRecord, 3, "r2,3"},
		{"too many fields", "h\nr1,1,2,4", ErrMalformedRecord, 2, "r1,1,2,4"},
		{"single field", "h\nr1\r\n", ErrMalformedRecord, 2, "r1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.contents)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)

			var le *LineError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.line, le.Line)
			assert.Equal(t, tt.text, le.Text)
			assert.Contains(t, err.Error(), tt.text)
		})
	}
}

func TestParseRecordsCountsFromFirstLine(t *testing.T) {
	_, err := ParseRecords("r1,1,2\nr2,x,3")
	var le *LineError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 2, le.Line)
}

func TestParseKeepsQuotesInRunID(t *testing.T) {
	log, err := Parse("h\n\"r1\",1,2\nr\"1,1,3")
	require.NoError(t, err)
	assert.Equal(t, []string{`"r1"`, `r"1`}, log.Runs())
	assert.Equal(t, []int64{2, 3}, log.Vpeds())
}

func TestParseQuoteDoesNotJoinLines(t *testing.T) {
	_, err := Parse("h\n\"r1\n\",1,2")

	var le *LineError
	require.ErrorAs(t, err, &le)
	assert.ErrorIs(t, err, ErrMalformedRecord)
	assert.Equal(t, 2, le.Line)
	assert.Equal(t, `"r1`, le.Text)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads and parses", func(t *testing.T) {
		path := filepath.Join(dir, "ramplog.csv")
		require.NoError(t, os.WriteFile(path, []byte("run,ramp,vped\n320000,0,100\n"), 0o644))

		log, err := ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"320000"}, log.Runs())
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(dir, "missing.csv")
		_, err := ReadFile(path)
		assert.ErrorIs(t, err, ErrFileNotFound)
		assert.NotErrorIs(t, err, ErrPermissionDenied)

		var fe *FileError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, path, fe.Path)
	})
}

func TestFileErrorSentinels(t *testing.T) {
	denied := &FileError{Op: "create", Path: "/out/list.txt", Err: fs.ErrPermission}
	assert.ErrorIs(t, denied, ErrPermissionDenied)
	assert.NotErrorIs(t, denied, ErrFileNotFound)
	assert.ErrorIs(t, denied, fs.ErrPermission)
	assert.Contains(t, denied.Error(), "/out/list.txt")

	wrapped := NewFileError("read", "log.csv", &fs.PathError{Op: "open", Path: "log.csv", Err: fs.ErrPermission})
	assert.ErrorIs(t, wrapped, ErrPermissionDenied)

	assert.NoError(t, NewFileError("read", "log.csv", nil))
}
