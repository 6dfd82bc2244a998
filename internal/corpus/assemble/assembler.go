// Package assemble builds the corpus of one level: it merges the sources,
// derives new entries until the target size is reached and finalizes every
// entry with examples, tags and relations.
package assemble

import (
	"fmt"
	"slices"

	"github.com/heartmarshall/myenglish-corpus/internal/corpus/derive"
	"github.com/heartmarshall/myenglish-corpus/internal/corpus/examples"
	"github.com/heartmarshall/myenglish-corpus/internal/corpus/merge"
	"github.com/heartmarshall/myenglish-corpus/internal/corpus/tagging"
	"github.com/heartmarshall/myenglish-corpus/internal/domain"
)

// State is a phase of one Assemble call. Phases only move forward.
type State int

const (
	StateMerging State = iota
	StateDeriving
	StateFinalizing
)

func (s State) String() string {
	switch s {
	case StateMerging:
		return "merging"
	case StateDeriving:
		return "deriving"
	case StateFinalizing:
		return "finalizing"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Request describes the corpus to build. MaxDerivedPerBase limits how many
// candidates one visit of a base may admit; zero means no limit.
type Request struct {
	Level             domain.Level
	MaxDerivedPerBase int
}

// Stats summarizes one Assemble call.
type Stats struct {
	Merge   merge.Stats
	Seeds   int // entries in the seed pool before truncation or derivation
	Clamped int // seeds admitted by level tag whose difficulty was moved into range
	Derived int
	Visits  int
}

// Result is an assembled corpus. Entries has exactly Level.Target elements.
type Result struct {
	Entries []domain.LexicalEntry
	Stats   Stats
	States  []State
}

// Assembler is stateless between calls; the tables it holds are read-only.
type Assembler struct {
	engine   *derive.Engine
	resolver *tagging.Resolver
	seed     uint64
}

// New creates an assembler. seed drives the example writer.
func New(engine *derive.Engine, resolver *tagging.Resolver, seed uint64) *Assembler {
	return &Assembler{engine: engine, resolver: resolver, seed: seed}
}

// Assemble builds the corpus for req.Level from sources, curated sources first.
// It returns *domain.InsufficientSourceError when the seed pool is empty or
// derivation runs dry before the target is reached.
func (a *Assembler) Assemble(req Request, sources []merge.Source) (Result, error) {
	level := req.Level
	if err := level.Validate(); err != nil {
		return Result{}, fmt.Errorf("assemble: %w", err)
	}

	res := Result{States: []State{StateMerging}}

	merged, mstats := merge.Merge(sources...)
	res.Stats.Merge = mstats
	seen := merged.KeySet()

	pool := merged.Filter(func(e domain.LexicalEntry) (domain.LexicalEntry, bool) {
		if level.Topic != "" && !a.resolver.InTopic(e, level.Topic) {
			return e, false
		}
		if level.Range.Contains(e.Difficulty) {
			return e, true
		}
		if level.Matches(e.LevelTag()) {
			c := e.Clone()
			c.Difficulty = level.Range.Clamp(e.Difficulty)
			res.Stats.Clamped++
			return c, true
		}
		return e, false
	})
	res.Stats.Seeds = pool.Len()

	if pool.Len() == 0 {
		return Result{}, &domain.InsufficientSourceError{
			Level: level.Name, Target: level.Target, Reason: "no seed entries in range",
		}
	}

	if pool.Len() >= level.Target {
		pool.Truncate(level.Target)
	} else {
		res.States = append(res.States, StateDeriving)
		if err := a.derive(req, pool, seen, &res.Stats); err != nil {
			return Result{}, err
		}
	}

	res.States = append(res.States, StateFinalizing)
	res.Entries = a.finalize(level, pool)
	return res, nil
}

// derive walks the seed entries round-robin until the pool holds
// level.Target entries. Derived entries are never used as bases, so every
// derived entry names a seed as its lemma. A full cycle over the seeds that
// admits nothing means the rules cannot produce anything new.
func (a *Assembler) derive(req Request, pool *merge.Pool, seen domain.KeySet, stats *Stats) error {
	level := req.Level
	seeds := pool.Len()
	cursor, idle := 0, 0

	for pool.Len() < level.Target {
		if idle >= seeds {
			return &domain.InsufficientSourceError{
				Level: level.Name, Target: level.Target, Pool: pool.Len(), Reason: "derivation exhausted",
			}
		}

		base := pool.At(cursor)
		stats.Visits++

		admitted := 0
		for _, cand := range a.engine.Derive(base, seen) {
			if !level.Range.Contains(cand.Difficulty) {
				continue
			}
			if !pool.Add(cand) {
				continue
			}
			seen.Add(cand.Key())
			admitted++
			if pool.Len() == level.Target || admitted == req.MaxDerivedPerBase {
				break
			}
		}
		stats.Derived += admitted

		if admitted > 0 {
			idle = 0
		} else {
			idle++
		}

		cursor = (cursor + 1) % seeds
	}
	return nil
}

// finalize fills examples and resolves tags. In a topic level every entry
// carries the topic tag, derived words included.
func (a *Assembler) finalize(level domain.Level, pool *merge.Pool) []domain.LexicalEntry {
	writer := examples.NewWriter(a.seed)
	out := make([]domain.LexicalEntry, 0, pool.Len())
	for _, e := range pool.Entries() {
		e = a.resolver.Resolve(writer.Fill(e), level.Name)
		if level.Topic != "" && !slices.Contains(e.Tags, level.Topic) {
			e.Tags = append(e.Tags, level.Topic)
		}
		out = append(out, e)
	}
	return out
}
