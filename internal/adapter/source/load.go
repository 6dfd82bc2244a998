package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/myenglish-corpus/internal/corpus/merge"
	"github.com/heartmarshall/myenglish-corpus/internal/domain"
)

// maxParallelLoads bounds how many source files are read at once.
const maxParallelLoads = 4

// Spec names a source file. An empty Name defaults to Path; an empty Format
// is guessed from the extension.
type Spec struct {
	Name   string `yaml:"name"`
	Path   string `yaml:"path"`
	Format Format `yaml:"format"`
}

func (s Spec) normalized() Spec {
	if s.Name == "" {
		s.Name = s.Path
	}
	if s.Format == "" {
		s.Format = FormatFromPath(s.Path)
	}
	return s
}

// Load reads one source file.
func Load(spec Spec) (merge.Source, Stats, error) {
	spec = spec.normalized()
	if !spec.Format.IsValid() {
		return merge.Source{}, Stats{}, fmt.Errorf("source %s: unknown format %q", spec.Name, spec.Format)
	}

	f, err := os.Open(spec.Path)
	if err != nil {
		return merge.Source{}, Stats{}, fmt.Errorf("open source %s: %w", spec.Name, err)
	}
	defer f.Close()

	records, stats, err := Parse(f, spec.Format)
	if err != nil {
		return merge.Source{}, stats, fmt.Errorf("parse source %s: %w", spec.Name, err)
	}

	return merge.Source{Name: spec.Name, Records: records}, stats, nil
}

// Parse decodes records of the given format from r.
func Parse(r io.Reader, format Format) ([]domain.RawRecord, Stats, error) {
	switch format {
	case FormatJSON:
		return parseJSON(r)
	case FormatJSONL:
		return parseJSONL(r)
	case FormatCSV:
		return parseCSV(r)
	}
	return nil, Stats{}, fmt.Errorf("unknown format %q", format)
}

// LoadAll reads every spec concurrently and returns the sources in the order
// of specs, which is the merge precedence. The first failure cancels the rest.
func LoadAll(ctx context.Context, specs []Spec) ([]merge.Source, []Stats, error) {
	sources := make([]merge.Source, len(specs))
	stats := make([]Stats, len(specs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)

	for i, spec := range specs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, st, err := Load(spec)
			if err != nil {
				return err
			}
			sources[i], stats[i] = src, st
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return sources, stats, nil
}
