// Command corpusgen assembles leveled vocabulary corpora from seed lists and
// writes one JSON file per level, plus the corpus tables when a database is
// configured (DATABASE_DSN).
//
// Flags:
//
//	--corpus-config  path to corpus YAML config file (optional; falls back to CORPUS_* env)
//	--level          comma-separated levels to build (default: all configured)
//	--dry-run        assemble without writing anything
//	--migrate        apply database migrations before saving
//
// Exit codes: 0 = success, 1 = error or at least one failed level.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/myenglish-corpus/internal/app"
)

func main() {
	corpusConfigFlag := flag.String("corpus-config", "", "path to corpus YAML config file")
	levelFlag := flag.String("level", "", "comma-separated levels to build (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "assemble without writing output")
	migrateFlag := flag.Bool("migrate", false, "apply database migrations before saving")
	flag.Parse()

	opts := app.Options{
		CorpusConfigPath: *corpusConfigFlag,
		DryRun:           *dryRunFlag,
		Migrate:          *migrateFlag,
	}
	if *levelFlag != "" {
		for _, l := range strings.Split(*levelFlag, ",") {
			if l = strings.TrimSpace(l); l != "" {
				opts.Levels = append(opts.Levels, l)
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		if errors.Is(err, app.ErrLevelsFailed) {
			slog.Warn("corpusgen completed with errors")
		} else {
			slog.Error("corpusgen failed", slog.String("error", err.Error()))
		}
		cancel()
		os.Exit(1)
	}

	slog.Info("corpusgen completed successfully")
}
