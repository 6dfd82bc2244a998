// Package jsonfile writes each level corpus to <dir>/<level>.json.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/heartmarshall/myenglish-corpus/internal/corpus/emit"
)

// Writer saves corpora as indented JSON arrays of records.
type Writer struct {
	dir string
}

// NewWriter creates a writer rooted at dir. The directory is created on
// first save.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Path returns the file a level is written to.
func (w *Writer) Path(level string) string {
	return filepath.Join(w.dir, level+".json")
}

// SaveCorpus writes c atomically: to a temporary file first, then renamed
// over the target.
func (w *Writer) SaveCorpus(ctx context.Context, c emit.Corpus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.Level == "" {
		return fmt.Errorf("jsonfile: corpus without level")
	}

	data, err := json.MarshalIndent(c.Records, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile: marshal %s: %w", c.Level, err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("jsonfile: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(w.dir, c.Level+".*.tmp")
	if err != nil {
		return fmt.Errorf("jsonfile: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("jsonfile: write %s: %w", c.Level, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("jsonfile: close %s: %w", c.Level, err)
	}
	if err := os.Rename(tmp.Name(), w.Path(c.Level)); err != nil {
		return fmt.Errorf("jsonfile: rename %s: %w", c.Level, err)
	}
	return nil
}

// Load reads a corpus file written by SaveCorpus.
func (w *Writer) Load(level string) ([]emit.Record, error) {
	data, err := os.ReadFile(w.Path(level))
	if err != nil {
		return nil, fmt.Errorf("jsonfile: read %s: %w", level, err)
	}
	var records []emit.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("jsonfile: decode %s: %w", level, err)
	}
	return records, nil
}
