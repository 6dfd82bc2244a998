// Package corpusgen runs corpus assembly for every configured level and hands
// the packaged corpora to the configured sinks.
package corpusgen

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/heartmarshall/myenglish-corpus/internal/corpus/assemble"
	"github.com/heartmarshall/myenglish-corpus/internal/corpus/emit"
	"github.com/heartmarshall/myenglish-corpus/internal/corpus/merge"
	"github.com/heartmarshall/myenglish-corpus/internal/domain"
	"github.com/heartmarshall/myenglish-corpus/pkg/ctxutil"
)

// Sink receives one packaged corpus per level.
type Sink interface {
	SaveCorpus(ctx context.Context, c emit.Corpus) error
}

// LevelResult holds the outcome of a single level.
type LevelResult struct {
	Level    string
	Count    int
	Seeds    int
	Derived  int
	Duration time.Duration
	Err      error
}

// Pipeline assembles levels one after another. A failing level is recorded
// and the remaining levels still run.
type Pipeline struct {
	log       *slog.Logger
	cfg       Config
	assembler *assemble.Assembler
	sinks     []Sink
	results   []LevelResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, cfg Config, assembler *assemble.Assembler, sinks ...Sink) *Pipeline {
	return &Pipeline{
		log:       log,
		cfg:       cfg,
		assembler: assembler,
		sinks:     sinks,
	}
}

// Results returns level results in run order after Run completes.
func (p *Pipeline) Results() []LevelResult {
	return slices.Clone(p.results)
}

// HasErrors returns true if any level failed.
func (p *Pipeline) HasErrors() bool {
	return slices.ContainsFunc(p.results, func(r LevelResult) bool { return r.Err != nil })
}

// Run assembles the configured levels from sources. If only is non-empty,
// just the named levels run, still in configured order; naming an unknown
// level is an error. Run stops early only when ctx is done.
func (p *Pipeline) Run(ctx context.Context, sources []merge.Source, only []string) error {
	toRun, err := p.selectLevels(only)
	if err != nil {
		return err
	}

	log := p.log
	if id, ok := ctxutil.RunIDFromCtx(ctx); ok {
		log = log.With(slog.String("run_id", id.String()))
	}

	p.results = p.results[:0]
	for _, level := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		log.Info("starting level",
			slog.String("level", level.Name),
			slog.Int("target", level.Target),
			slog.String("difficulty", level.Range.String()),
		)

		result := p.runLevel(ctx, log, level, sources)
		result.Duration = time.Since(start)
		p.results = append(p.results, result)

		if result.Err != nil {
			log.Warn("level failed",
				slog.String("level", level.Name),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			continue
		}
		log.Info("level completed",
			slog.String("level", level.Name),
			slog.Int("count", result.Count),
			slog.Int("seeds", result.Seeds),
			slog.Int("derived", result.Derived),
			slog.Duration("duration", result.Duration),
		)
	}

	log.Info("pipeline completed", slog.Int("levels_run", len(toRun)))
	return nil
}

func (p *Pipeline) runLevel(ctx context.Context, log *slog.Logger, level domain.Level, sources []merge.Source) LevelResult {
	result := LevelResult{Level: level.Name}

	res, err := p.assembler.Assemble(assemble.Request{
		Level:             level,
		MaxDerivedPerBase: p.cfg.MaxDerivedPerBase,
	}, sources)
	if err != nil {
		result.Err = err
		return result
	}
	result.Seeds = res.Stats.Seeds
	result.Derived = res.Stats.Derived

	if res.Stats.Merge.Invalid > 0 || res.Stats.Clamped > 0 {
		log.Debug("merge stats",
			slog.String("level", level.Name),
			slog.Int("invalid", res.Stats.Merge.Invalid),
			slog.Int("duplicates", res.Stats.Merge.Duplicates),
			slog.Int("clamped", res.Stats.Clamped),
		)
	}

	corpus := emit.Package(level, res.Entries, p.cfg.Order)
	result.Count = len(corpus.Records)

	if p.cfg.DryRun {
		summary := corpus.Summary()
		log.Info("dry run: corpus not saved",
			slog.String("level", level.Name),
			slog.Int("total", summary.Total),
			slog.Any("by_difficulty", summary.ByDifficulty),
		)
		return result
	}

	for _, sink := range p.sinks {
		if err := sink.SaveCorpus(ctx, corpus); err != nil {
			result.Err = fmt.Errorf("save level %s: %w", level.Name, err)
			return result
		}
	}
	return result
}

func (p *Pipeline) selectLevels(only []string) ([]domain.Level, error) {
	all := p.cfg.DomainLevels()
	if len(only) == 0 {
		return all, nil
	}

	filter := make(map[string]bool, len(only))
	for _, name := range only {
		filter[domain.NormalizeText(name)] = true
	}

	var selected []domain.Level
	for _, l := range all {
		key := domain.NormalizeText(l.Name)
		if filter[key] {
			selected = append(selected, l)
			delete(filter, key)
		}
	}
	if len(filter) > 0 {
		return nil, fmt.Errorf("unknown levels: %s", strings.Join(slices.Sorted(maps.Keys(filter)), ", "))
	}
	return selected, nil
}
