package domain

import (
	"fmt"
	"strings"
)

// PartOfSpeech represents the grammatical category of a word.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "noun"
	PartOfSpeechVerb         PartOfSpeech = "verb"
	PartOfSpeechAdjective    PartOfSpeech = "adjective"
	PartOfSpeechAdverb       PartOfSpeech = "adverb"
	PartOfSpeechPronoun      PartOfSpeech = "pronoun"
	PartOfSpeechPreposition  PartOfSpeech = "preposition"
	PartOfSpeechConjunction  PartOfSpeech = "conjunction"
	PartOfSpeechInterjection PartOfSpeech = "interjection"
	PartOfSpeechNumeral      PartOfSpeech = "numeral"
	PartOfSpeechArticle      PartOfSpeech = "article"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb,
		PartOfSpeechPronoun, PartOfSpeechPreposition, PartOfSpeechConjunction,
		PartOfSpeechInterjection, PartOfSpeechNumeral, PartOfSpeechArticle:
		return true
	}
	return false
}

// Marker returns the canonical definition marker for p ("n.", "v.", ...).
func (p PartOfSpeech) Marker() string {
	for _, m := range markerTable {
		if m.pos == p {
			return m.marker
		}
	}
	return ""
}

// markerTable maps definition markers to parts of speech. The first entry for a
// part of speech is its canonical marker.
var markerTable = []struct {
	marker string
	pos    PartOfSpeech
}{
	{"n.", PartOfSpeechNoun},
	{"v.", PartOfSpeechVerb},
	{"vt.", PartOfSpeechVerb},
	{"vi.", PartOfSpeechVerb},
	{"adj.", PartOfSpeechAdjective},
	{"adv.", PartOfSpeechAdverb},
	{"pron.", PartOfSpeechPronoun},
	{"prep.", PartOfSpeechPreposition},
	{"conj.", PartOfSpeechConjunction},
	{"interj.", PartOfSpeechInterjection},
	{"num.", PartOfSpeechNumeral},
	{"art.", PartOfSpeechArticle},
}

// ParsePartOfSpeech reads the leading marker of a definition. Combined markers
// such as "v./n." resolve to the first one.
func ParsePartOfSpeech(definition string) (PartOfSpeech, error) {
	marker, _ := splitMarker(definition)
	if marker == "" {
		return "", fmt.Errorf("definition %q: missing part-of-speech marker", definition)
	}
	for _, m := range markerTable {
		if m.marker == marker {
			return m.pos, nil
		}
	}
	return "", fmt.Errorf("definition %q: unknown part-of-speech marker %q", definition, marker)
}

// Gloss returns the definition text after its part-of-speech marker(s).
func Gloss(definition string) string {
	_, rest := splitMarker(definition)
	return rest
}

// splitMarker separates "v./n. to call" into "v." and "to call".
func splitMarker(definition string) (string, string) {
	s := strings.TrimSpace(definition)
	first := ""
	for {
		end := 0
		for end < len(s) && s[end] >= 'a' && s[end] <= 'z' {
			end++
		}
		if end == 0 || end >= len(s) || s[end] != '.' {
			break
		}
		if first == "" {
			first = strings.ToLower(s[:end+1])
		}
		s = s[end+1:]
		if !strings.HasPrefix(s, "/") {
			break
		}
		s = s[1:]
	}
	if first == "" {
		return "", strings.TrimSpace(definition)
	}
	return first, strings.TrimSpace(s)
}

// OriginKind distinguishes hand-authored entries from synthesized ones.
type OriginKind string

const (
	OriginSeed    OriginKind = "seed"
	OriginDerived OriginKind = "derived"
)

func (k OriginKind) String() string { return string(k) }

func (k OriginKind) IsValid() bool {
	switch k {
	case OriginSeed, OriginDerived:
		return true
	}
	return false
}
