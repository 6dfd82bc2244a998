package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-corpus/internal/adapter/jsonfile"
	"github.com/heartmarshall/myenglish-corpus/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-corpus/internal/adapter/postgres/corpusrepo"
	"github.com/heartmarshall/myenglish-corpus/internal/app/corpusgen"
	"github.com/heartmarshall/myenglish-corpus/internal/config"
	"github.com/heartmarshall/myenglish-corpus/pkg/ctxutil"
)

// ErrLevelsFailed is returned by Run when at least one level could not be
// assembled or saved. The other levels were still written.
var ErrLevelsFailed = errors.New("one or more levels failed")

// Options carries command-line overrides.
type Options struct {
	CorpusConfigPath string
	Levels           []string
	DryRun           bool
	Migrate          bool
}

// Compile-time interface assertions.
var (
	_ corpusgen.Sink = (*jsonfile.Writer)(nil)
	_ corpusgen.Sink = (*corpusrepo.Repo)(nil)
)

// Run is the corpus generator entry point. It loads configuration, builds the
// logger, sources and sinks, and runs the pipeline over the selected levels.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	runID := uuid.New()
	ctx = ctxutil.WithRunID(ctx, runID)

	logger := NewLogger(cfg.Log)
	logger.Info("starting corpusgen",
		slog.String("version", BuildVersion()),
		slog.String("run_id", runID.String()),
		slog.String("log_level", cfg.Log.Level),
	)

	corpusCfg, err := corpusgen.LoadConfig(opts.CorpusConfigPath)
	if err != nil {
		return err
	}
	if opts.DryRun {
		corpusCfg.DryRun = true
	}

	sources, err := corpusgen.LoadSources(ctx, logger, *corpusCfg)
	if err != nil {
		return err
	}

	assembler, err := corpusgen.NewAssembler(*corpusCfg)
	if err != nil {
		return err
	}

	sinks := []corpusgen.Sink{jsonfile.NewWriter(corpusCfg.OutputDir)}

	if cfg.Database.Enabled() && !corpusCfg.DryRun {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		if opts.Migrate {
			n, err := postgres.Migrate(ctx, pool)
			if err != nil {
				return err
			}
			logger.Info("migrations applied", slog.Int("count", n))
		}
		sinks = append(sinks, corpusrepo.New(pool))
	} else if opts.Migrate {
		logger.Warn("--migrate ignored: no database configured or dry run")
	}

	pipeline := corpusgen.NewPipeline(logger, *corpusCfg, assembler, sinks...)
	if err := pipeline.Run(ctx, sources, opts.Levels); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	if pipeline.HasErrors() {
		return ErrLevelsFailed
	}
	return nil
}
