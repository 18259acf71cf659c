/*
PURPOSE:
  Writes rendered lists to the output directory.

REQUIREMENTS:
  User-specified:
  - Existing lists with the same name are overwritten.

  Implementation-discovered:
  - Each file goes to a temp file in the same directory and is renamed into
    place, so a list is never left half-written.
  - Files are written in order; a failure part way leaves the earlier lists
    in place.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.OutputFile

ERROR HANDLING:
  - Returns ramplog.FileError so callers can match ErrPermissionDenied / ErrFileNotFound.

USAGE:
  paths, err := output.WriteFiles(dir, files)
*/

package output

import (
	"os"
	"path/filepath"

	"github.com/wipac/process-log/internal/model"
	"github.com/wipac/process-log/internal/ramplog"
)

const filePerm = 0o644

// WriteFiles writes files into dir and returns the written paths in order.
func WriteFiles(dir string, files []model.OutputFile) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	paths := make([]string, 0, len(files))
	for _, f := range files {
		dest := filepath.Join(dir, f.Name)
		if err := writeAtomic(dest, []byte(f.Content)); err != nil {
			return paths, ramplog.NewFileError("create", dest, err)
		}
		Logger.Debug("Wrote list", "path", dest, "bytes", len(f.Content))
		paths = append(paths, dest)
	}
	return paths, nil
}

func writeAtomic(dest string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
