package driver

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
)

// Emitter is the Streaming Emitter (spec.md §4.C10): a single buffered
// data sink that writes each file's output, preceded by a delimiter header
// unless suppressed.
type Emitter struct {
	w         *bufio.Writer
	baseDir   string
	noHeader  bool
	multiFile bool
}

// NewEmitter wraps sink in a buffered writer. baseDir is used to compute
// each file's relative-path header; multiFile controls whether headers are
// emitted at all (single-file runs never need a delimiter).
func NewEmitter(sink io.Writer, baseDir string, multiFile, noHeader bool) *Emitter {
	return &Emitter{w: bufio.NewWriter(sink), baseDir: baseDir, noHeader: noHeader, multiFile: multiFile}
}

// Emit writes one file's output, with a leading delimiter line when running
// in multi-file mode and headers are not suppressed.
func (e *Emitter) Emit(path string, output []byte) error {
	if e.multiFile && !e.noHeader {
		rel := path
		if e.baseDir != "" {
			if r, err := filepath.Rel(e.baseDir, path); err == nil {
				rel = r
			}
		}
		if _, err := fmt.Fprintf(e.w, "// === %s ===\n", rel); err != nil {
			return err
		}
	}
	if _, err := e.w.Write(output); err != nil {
		return err
	}
	return nil
}

// Flush must be called on clean exit and on every error path (spec.md
// §4.C10) so buffered output is not lost.
func (e *Emitter) Flush() error {
	return e.w.Flush()
}
