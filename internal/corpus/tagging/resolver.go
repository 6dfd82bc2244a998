// Package tagging assigns level, part-of-speech and topic tags and attaches
// synonym and antonym links from static tables.
package tagging

import (
	"github.com/heartmarshall/myenglish-corpus/internal/domain"
)

// Relation list limits.
const (
	MaxSynonyms = 3
	MaxAntonyms = 2
)

// Resolver applies Tables to entries.
type Resolver struct {
	tables *Tables
}

// NewResolver creates a resolver. A nil tables value uses DefaultTables.
func NewResolver(tables *Tables) *Resolver {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Resolver{tables: tables}
}

// Resolve returns a copy of e with tags recomputed as [level, pos, topics...].
// Relations come from the tables when the headword is a key there; otherwise
// the entry keeps its own, trimmed to the list limits. Resolving an already
// resolved entry returns it unchanged.
func (r *Resolver) Resolve(e domain.LexicalEntry, level string) domain.LexicalEntry {
	out := e.Clone()
	key := e.Key()

	topics := r.tables.Topics(key)
	tags := make([]string, 0, 2+len(topics))
	tags = append(tags, level, e.POS().String())
	tags = append(tags, topics...)
	out.Tags = tags

	if syn, ok := r.tables.Synonyms(key); ok {
		out.Synonyms = syn
	}
	if ant, ok := r.tables.Antonyms(key); ok {
		out.Antonyms = ant
	}
	out.Synonyms = limit(out.Synonyms, MaxSynonyms)
	out.Antonyms = limit(out.Antonyms, MaxAntonyms)

	return out
}

// InTopic reports whether the headword of e is listed under topic.
func (r *Resolver) InTopic(e domain.LexicalEntry, topic string) bool {
	return contains(r.tables.Topics(e.Key()), topic)
}

// limit copies at most n items. The result is never nil.
func limit(s []string, n int) []string {
	out := make([]string, 0, min(len(s), n))
	for _, v := range s {
		if len(out) == n {
			break
		}
		out = append(out, v)
	}
	return out
}
