/*
PURPOSE:
  Error taxonomy for reading and grouping ramp logs.

REQUIREMENTS:
  User-specified:
  - Failures name the file or line and the reason.

  Implementation-discovered:
  - Callers match on sentinels with errors.Is and pull details with errors.As.

ARCHITECTURE INTEGRATION:
  - Used by: internal/ramplog, internal/output, internal/engine, internal/cli

ERROR HANDLING:
  - Every error here is fatal for the invocation.

RELATED FILES:
  - internal/ramplog/reader.go
  - internal/ramplog/partition.go
*/

package ramplog

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	ErrFileNotFound     = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrEmptyInput       = errors.New("log has no data rows")
	ErrMalformedRecord  = errors.New("malformed record")
	ErrInvalidNumber    = errors.New("invalid number")
	ErrGroupOverrun     = errors.New("more group boundaries than ramp ids")
)

// FileError reports a failure opening, reading or creating a file.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// Is maps the underlying os error onto the package sentinels.
func (e *FileError) Is(target error) bool {
	switch target {
	case ErrFileNotFound:
		return errors.Is(e.Err, fs.ErrNotExist)
	case ErrPermissionDenied:
		return errors.Is(e.Err, fs.ErrPermission)
	}
	return false
}

// NewFileError wraps err for path. A nil err yields nil.
func NewFileError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &FileError{Op: op, Path: path, Err: err}
}

// LineError reports a bad data line. Line is 1-based and counts the header.
type LineError struct {
	Line int
	Text string
	Kind error
	Err  error
}

func (e *LineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d %q: %v: %v", e.Line, e.Text, e.Kind, e.Err)
	}
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Kind)
}

func (e *LineError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// OverrunError reports a transition with no deduplicated ramp id left to
// name its group.
type OverrunError struct {
	// Index is the 0-based record index of the transition.
	Index int
	// Group is the 0-based index of the group that could not be named.
	Group int
	// Available is the number of deduplicated ramp ids.
	Available int
}

func (e *OverrunError) Error() string {
	return fmt.Sprintf("%v: transition at record %d opens group %d but only %d ramp ids are available",
		ErrGroupOverrun, e.Index, e.Group, e.Available)
}

func (e *OverrunError) Is(target error) bool { return target == ErrGroupOverrun }
