package domain

import (
	"fmt"
	"slices"
	"strings"
)

// RawRecord is a lexical record as read from a source, before validation.
type RawRecord struct {
	Headword   string
	Phonetic   string
	Definition string
	Examples   []string
	Synonyms   []string
	Antonyms   []string
	Difficulty int
	Tags       []string
	Etymology  string
}

// Origin records where an entry came from. For derived entries Lemma is the
// headword of the base entry and Rule names the affix rule applied.
type Origin struct {
	Kind   OriginKind
	Source string
	Lemma  string
	Rule   string
}

// Etymology describes how a derived entry was formed: "act + -tion" for a
// suffix rule, "re- + act" for a prefix rule. It is empty for seed entries.
func (o Origin) Etymology() string {
	if o.Kind != OriginDerived || o.Lemma == "" || o.Rule == "" {
		return ""
	}
	if strings.HasSuffix(o.Rule, "-") {
		return o.Rule + " + " + o.Lemma
	}
	return o.Lemma + " + " + o.Rule
}

// LexicalEntry is one vocabulary entry of a corpus.
type LexicalEntry struct {
	Headword   string
	Phonetic   string
	Definition string
	Examples   []string
	Synonyms   []string
	Antonyms   []string
	Difficulty int
	Tags       []string
	Etymology  string
	Origin     Origin
}

// NewLexicalEntry validates raw and builds an entry from it.
func NewLexicalEntry(raw RawRecord, origin Origin) (LexicalEntry, error) {
	var errs []FieldError

	headword := strings.TrimSpace(raw.Headword)
	if headword == "" {
		errs = append(errs, FieldError{Field: "headword", Message: "required"})
	}
	if _, err := ParsePartOfSpeech(raw.Definition); err != nil {
		errs = append(errs, FieldError{Field: "definition", Message: err.Error()})
	}
	if raw.Difficulty < MinDifficulty || raw.Difficulty > MaxDifficulty {
		errs = append(errs, FieldError{Field: "difficulty", Message: fmt.Sprintf("must be in [%d,%d] (got %d)", MinDifficulty, MaxDifficulty, raw.Difficulty)})
	}
	if origin.Kind == OriginDerived && origin.Lemma == "" {
		errs = append(errs, FieldError{Field: "origin", Message: "derived entry must reference its base"})
	}
	if len(errs) > 0 {
		return LexicalEntry{}, NewValidationErrors(errs)
	}

	if origin.Kind == "" {
		origin.Kind = OriginSeed
	}
	etymology := strings.TrimSpace(raw.Etymology)
	if etymology == "" {
		etymology = origin.Etymology()
	}

	return LexicalEntry{
		Headword:   headword,
		Phonetic:   FormatPhonetic(raw.Phonetic, headword),
		Definition: strings.TrimSpace(raw.Definition),
		Examples:   compact(raw.Examples),
		Synonyms:   compact(raw.Synonyms),
		Antonyms:   compact(raw.Antonyms),
		Difficulty: raw.Difficulty,
		Tags:       compact(raw.Tags),
		Etymology:  etymology,
		Origin:     origin,
	}, nil
}

// Key returns the canonical dedup key of the entry.
func (e LexicalEntry) Key() string {
	return NormalizeText(e.Headword)
}

// POS returns the part of speech named by the definition marker.
// Entries built by NewLexicalEntry always have one.
func (e LexicalEntry) POS() PartOfSpeech {
	pos, _ := ParsePartOfSpeech(e.Definition)
	return pos
}

// LevelTag returns the first tag, which by convention names the level.
func (e LexicalEntry) LevelTag() string {
	if len(e.Tags) == 0 {
		return ""
	}
	return e.Tags[0]
}

// Clone returns a copy that shares no slices with e.
func (e LexicalEntry) Clone() LexicalEntry {
	c := e
	c.Examples = slices.Clone(e.Examples)
	c.Synonyms = slices.Clone(e.Synonyms)
	c.Antonyms = slices.Clone(e.Antonyms)
	c.Tags = slices.Clone(e.Tags)
	return c
}

// FormatPhonetic wraps a pronunciation placeholder in slashes. An empty
// phonetic falls back to the headword itself.
func FormatPhonetic(phonetic, headword string) string {
	p := strings.Trim(strings.TrimSpace(phonetic), "/[]")
	if p == "" {
		p = strings.ToLower(headword)
	}
	return "/" + p + "/"
}

// KeySet is a set of canonical headword keys.
type KeySet map[string]struct{}

// Has reports whether key is in the set.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Add inserts key into the set.
func (s KeySet) Add(key string) {
	s[key] = struct{}{}
}

// compact trims strings and drops empty ones. The result is never nil.
func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
