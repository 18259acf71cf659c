/*
PURPOSE:
  Writes plan rows as JSON Lines (NDJSON) for `inspect --json`.
  Optimized for machine parsing and piping into jq.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (inspect)
  - Consumes: output.GroupRow

ERROR HANDLING:
  - Returns the encoder error on write failure.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.
  - Thread-safe.

USAGE:
  w := output.NewJSONWriter(os.Stdout)
  w.Write(row)
*/

package output

import (
	"encoding/json"
	"io"
	"sync"
)

// JSONWriter handles writing rows as JSON lines.
type JSONWriter struct {
	encoder *json.Encoder
	mu      sync.Mutex
}

// NewJSONWriter creates a new JSONWriter on w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{encoder: json.NewEncoder(w)}
}

// Write writes a single row as a JSON line.
func (jw *JSONWriter) Write(r GroupRow) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	return jw.encoder.Encode(r)
}
