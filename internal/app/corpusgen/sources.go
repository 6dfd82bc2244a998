package corpusgen

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/myenglish-corpus/internal/adapter/source"
	"github.com/heartmarshall/myenglish-corpus/internal/corpus/assemble"
	"github.com/heartmarshall/myenglish-corpus/internal/corpus/derive"
	"github.com/heartmarshall/myenglish-corpus/internal/corpus/merge"
	"github.com/heartmarshall/myenglish-corpus/internal/corpus/tagging"
)

// LoadSources returns the sources in merge precedence: the embedded core
// seed, the configured files in order, then the root combinations.
func LoadSources(ctx context.Context, log *slog.Logger, cfg Config) ([]merge.Source, error) {
	var sources []merge.Source

	if cfg.UseCoreSeed {
		core, err := source.CoreSeed()
		if err != nil {
			return nil, err
		}
		sources = append(sources, core)
	}

	files, stats, err := source.LoadAll(ctx, cfg.Sources)
	if err != nil {
		return nil, fmt.Errorf("load sources: %w", err)
	}
	for i, src := range files {
		log.Info("source loaded",
			slog.String("source", src.Name),
			slog.Int("records", stats[i].Records),
			slog.Int("malformed", stats[i].Malformed),
		)
	}
	sources = append(sources, files...)

	if cfg.UseRoots {
		sources = append(sources, derive.RootSource(derive.DefaultRootRules()))
	}
	return sources, nil
}

// NewAssembler builds an assembler from the default derivation rules and the
// configured tagging tables.
func NewAssembler(cfg Config) (*assemble.Assembler, error) {
	tables := tagging.DefaultTables()
	if cfg.TablesPath != "" {
		t, err := tagging.LoadTables(cfg.TablesPath)
		if err != nil {
			return nil, err
		}
		tables = t
	}
	return assemble.New(derive.NewEngine(nil), tagging.NewResolver(tables), cfg.Seed), nil
}
