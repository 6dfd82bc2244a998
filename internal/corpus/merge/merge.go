// Package merge folds lexical sources into one ordered pool keyed by
// canonical headword. The first source to define a headword wins; later
// duplicates are dropped, never merged field by field.
package merge

import (
	"github.com/heartmarshall/myenglish-corpus/internal/domain"
)

// Source is a named, ordered sequence of raw records. Curated sources should
// be listed before bulk-generated ones.
type Source struct {
	Name    string
	Records []domain.RawRecord
	// Kind marks every entry of the source. Empty means seed.
	Kind domain.OriginKind
	// Lemmas optionally names the base headword per record, for sources of
	// synthesized entries. Indexed like Records.
	Lemmas []string
}

// Stats counts what happened to the records of a merge.
type Stats struct {
	Sources    int
	Records    int
	Accepted   int
	Duplicates int
	Invalid    int
}

// Merge processes sources in order. Malformed records are skipped and counted.
func Merge(sources ...Source) (*Pool, Stats) {
	total := 0
	for _, s := range sources {
		total += len(s.Records)
	}

	pool := NewPool(total)
	stats := Stats{Sources: len(sources), Records: total}

	for _, src := range sources {
		for i, raw := range src.Records {
			origin := domain.Origin{Kind: src.Kind, Source: src.Name}
			if i < len(src.Lemmas) {
				origin.Lemma = src.Lemmas[i]
			}

			entry, err := domain.NewLexicalEntry(raw, origin)
			if err != nil {
				stats.Invalid++
				continue
			}
			if !pool.Add(entry) {
				stats.Duplicates++
				continue
			}
			stats.Accepted++
		}
	}

	return pool, stats
}
