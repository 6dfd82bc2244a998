// Package emit orders finalized entries and packages them as a corpus ready
// for persistence.
package emit

import (
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/myenglish-corpus/internal/domain"
)

// Order selects the record order of a corpus.
type Order string

const (
	OrderAssembly     Order = "assembly"
	OrderAlphabetical Order = "alphabetical"
)

// IsValid reports whether o is a known order.
func (o Order) IsValid() bool {
	switch o {
	case OrderAssembly, OrderAlphabetical:
		return true
	}
	return false
}

// Record is the persisted form of one entry.
type Record struct {
	ID         string   `json:"id"`
	Word       string   `json:"word"`
	Phonetic   string   `json:"phonetic"`
	Definition string   `json:"definition"`
	Examples   []string `json:"examples"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
	Difficulty int      `json:"difficulty"`
	Tags       []string `json:"tags"`
	Etymology  string   `json:"etymology"`
}

// Corpus is the packaged output of one level.
type Corpus struct {
	Level   string
	Range   domain.DifficultyRange
	Records []Record
}

// Package converts entries into records with sequential ids of the form
// "<level>_0001". An empty order keeps the assembly order.
func Package(level domain.Level, entries []domain.LexicalEntry, order Order) Corpus {
	sorted := slices.Clone(entries)
	if order == OrderAlphabetical {
		slices.SortStableFunc(sorted, func(a, b domain.LexicalEntry) int {
			return strings.Compare(a.Key(), b.Key())
		})
	}

	width := max(4, len(fmt.Sprint(len(sorted))))
	records := make([]Record, len(sorted))
	for i, e := range sorted {
		records[i] = Record{
			ID:         fmt.Sprintf("%s_%0*d", level.Name, width, i+1),
			Word:       e.Headword,
			Phonetic:   e.Phonetic,
			Definition: e.Definition,
			Examples:   nonNil(e.Examples),
			Synonyms:   nonNil(e.Synonyms),
			Antonyms:   nonNil(e.Antonyms),
			Difficulty: e.Difficulty,
			Tags:       nonNil(e.Tags),
			Etymology:  e.Etymology,
		}
	}

	return Corpus{Level: level.Name, Range: level.Range, Records: records}
}

// Summary counts records per difficulty and per part-of-speech tag.
type Summary struct {
	Total        int
	ByDifficulty map[int]int
	ByPOS        map[string]int
}

// Summary returns the record counts of c.
func (c Corpus) Summary() Summary {
	s := Summary{
		Total:        len(c.Records),
		ByDifficulty: make(map[int]int),
		ByPOS:        make(map[string]int),
	}
	for _, r := range c.Records {
		s.ByDifficulty[r.Difficulty]++
		if len(r.Tags) > 1 {
			s.ByPOS[r.Tags[1]]++
		}
	}
	return s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}
