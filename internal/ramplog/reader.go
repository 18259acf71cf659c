/*
PURPOSE:
  Reads ramp logs produced in the lab: one header line followed by
  `run,ramp,vped` rows.

REQUIREMENTS:
  User-specified:
  - Discard the header line.
  - Exactly three comma-separated fields per row.
  - ramp is an unsigned integer, vped a signed integer, run is opaque.

  Implementation-discovered:
  - Lab exports sometimes carry CRLF line endings and trailing blank lines.
  - Field values are trimmed of surrounding whitespace before parsing.
  - There is no quoting: quote characters are part of the run id.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Produces: internal/model.Log

ERROR HANDLING:
  - FileError for open/read failures.
  - ErrEmptyInput when no data rows remain after the header.
  - LineError{Kind: ErrMalformedRecord | ErrInvalidNumber} naming the line.

IMPLEMENTATION RULES:
  - Split on ',' only; one file line is one record.
  - Never drop or reorder records.

USAGE:
  log, err := ramplog.ReadFile("2021-12-22-ramplog.csv")

RELATED FILES:
  - internal/ramplog/errors.go
*/

package ramplog

import (
	"os"
	"strconv"
	"strings"

	"github.com/wipac/process-log/internal/model"
)

const fieldsPerRecord = 3

// ReadFile loads and parses the log at path.
func ReadFile(path string) (*model.Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewFileError("read", path, err)
	}
	return Parse(string(data))
}

// Parse discards the header line of contents and parses the rest.
func Parse(contents string) (*model.Log, error) {
	_, body, found := strings.Cut(contents, "\n")
	if !found {
		return nil, ErrEmptyInput
	}
	records, err := parseRecords(body, 2)
	if err != nil {
		return nil, err
	}
	return &model.Log{Records: records}, nil
}

// ParseRecords parses header-less log rows.
func ParseRecords(body string) ([]model.Record, error) {
	return parseRecords(body, 1)
}

// parseRecords parses body whose first line is file line firstLine.
func parseRecords(body string, firstLine int) ([]model.Record, error) {
	var records []model.Record
	for i, raw := range strings.Split(body, "\n") {
		line := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := firstLine + i

		fields := strings.Split(line, ",")
		if len(fields) != fieldsPerRecord {
			return nil, &LineError{Line: n, Text: line, Kind: ErrMalformedRecord}
		}

		rec, err := parseFields(fields)
		if err != nil {
			return nil, &LineError{Line: n, Text: line, Kind: ErrInvalidNumber, Err: err}
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrEmptyInput
	}
	return records, nil
}

func parseFields(fields []string) (model.Record, error) {
	ramp, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 10, 64)
	if err != nil {
		return model.Record{}, err
	}
	vped, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
	if err != nil {
		return model.Record{}, err
	}
	return model.Record{
		Run:  strings.TrimSpace(fields[0]),
		Ramp: ramp,
		Vped: vped,
	}, nil
}
