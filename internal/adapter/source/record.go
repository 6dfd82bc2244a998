// Package source reads lexical sources from JSON, JSON Lines and CSV files.
// Records that cannot be decoded are counted, not returned as errors; entry
// validation happens later, when sources are merged.
package source

import (
	"strings"

	"github.com/heartmarshall/myenglish-corpus/internal/domain"
)

// Format is the encoding of a source file.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatCSV   Format = "csv"
)

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatJSONL, FormatCSV:
		return true
	}
	return false
}

// FormatFromPath guesses the format from the file extension.
func FormatFromPath(path string) Format {
	switch {
	case strings.HasSuffix(path, ".jsonl"), strings.HasSuffix(path, ".ndjson"):
		return FormatJSONL
	case strings.HasSuffix(path, ".csv"):
		return FormatCSV
	default:
		return FormatJSON
	}
}

// Stats counts what a loader saw.
type Stats struct {
	Records   int
	Malformed int
}

// jsonRecord is the on-disk record shape. Both "word" and "headword" name
// the headword; unknown fields are ignored.
type jsonRecord struct {
	Word       string   `json:"word"`
	Headword   string   `json:"headword"`
	Phonetic   string   `json:"phonetic"`
	Definition string   `json:"definition"`
	Examples   []string `json:"examples"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
	Difficulty int      `json:"difficulty"`
	Tags       []string `json:"tags"`
	Etymology  string   `json:"etymology"`
}

func (r jsonRecord) raw() domain.RawRecord {
	headword := r.Headword
	if headword == "" {
		headword = r.Word
	}
	return domain.RawRecord{
		Headword:   headword,
		Phonetic:   r.Phonetic,
		Definition: r.Definition,
		Examples:   r.Examples,
		Synonyms:   r.Synonyms,
		Antonyms:   r.Antonyms,
		Difficulty: r.Difficulty,
		Tags:       r.Tags,
		Etymology:  r.Etymology,
	}
}
