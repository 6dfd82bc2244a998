// Package derive synthesizes new lexical entries from a base entry by
// applying suffix and prefix rules. Spelling changes are best-effort
// approximations; the derived words are not checked against a dictionary.
package derive

import (
	"strings"

	"github.com/heartmarshall/myenglish-corpus/internal/domain"
)

// Engine applies an immutable rule table. It is safe for concurrent use.
type Engine struct {
	rules *Rules
}

// NewEngine creates an engine over rules. A nil rules value uses DefaultRules.
func NewEngine(rules *Rules) *Engine {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Engine{rules: rules}
}

// Derive returns the candidates for base in rule order: suffix rules first,
// then prefix rules. Candidates whose key is in seen, repeats within the call
// and candidates failing entry validation are discarded. Multi-word and
// hyphenated headwords yield nothing. Neither base nor seen is modified.
func (e *Engine) Derive(base domain.LexicalEntry, seen domain.KeySet) []domain.LexicalEntry {
	if strings.ContainsAny(base.Headword, " \t-") {
		return nil
	}
	pos := base.POS()
	if pos != domain.PartOfSpeechVerb && pos != domain.PartOfSpeechNoun && pos != domain.PartOfSpeechAdjective {
		return nil
	}

	word := strings.ToLower(base.Headword)
	gloss := domain.Gloss(base.Definition)
	phonetic := strings.Trim(base.Phonetic, "/")

	c := collector{base: base, seen: seen, local: domain.KeySet{base.Key(): {}}}

	for _, r := range e.rules.Suffixes {
		if r.From != pos {
			continue
		}
		c.add(candidate{
			headword:   r.Apply(word),
			definition: r.To.Marker() + " " + r.Define(gloss),
			phonetic:   phonetic + r.Phonetic,
			rule:       r.Name,
			delta:      r.Delta,
		})
	}

	for _, r := range e.rules.Prefixes {
		if !prefixApplies(r, pos, word, e.rules.MinLength) {
			continue
		}
		c.add(candidate{
			headword:   r.Prefix + word,
			definition: pos.Marker() + " " + r.Define(pos, gloss),
			phonetic:   r.Phonetic + phonetic,
			rule:       r.Prefix + "-",
			delta:      r.Delta,
		})
	}

	return c.out
}

func prefixApplies(r PrefixRule, pos domain.PartOfSpeech, word string, minLength int) bool {
	if !containsPOS(r.POS, pos) {
		return false
	}
	if strings.HasPrefix(word, r.Prefix) {
		return false
	}
	if r.Allows != nil && !r.Allows(word) {
		return false
	}
	return len([]rune(r.Prefix+word)) >= minLength
}

func containsPOS(list []domain.PartOfSpeech, pos domain.PartOfSpeech) bool {
	for _, p := range list {
		if p == pos {
			return true
		}
	}
	return false
}

type candidate struct {
	headword   string
	definition string
	phonetic   string
	rule       string
	delta      int
}

type collector struct {
	base  domain.LexicalEntry
	seen  domain.KeySet
	local domain.KeySet
	out   []domain.LexicalEntry
}

func (c *collector) add(cand candidate) {
	key := domain.NormalizeText(cand.headword)
	if c.seen.Has(key) || c.local.Has(key) {
		return
	}

	entry, err := domain.NewLexicalEntry(domain.RawRecord{
		Headword:   cand.headword,
		Phonetic:   cand.phonetic,
		Definition: cand.definition,
		Difficulty: min(c.base.Difficulty+cand.delta, domain.MaxDifficulty),
	}, domain.Origin{
		Kind:   domain.OriginDerived,
		Source: c.base.Origin.Source,
		Lemma:  c.base.Headword,
		Rule:   cand.rule,
	})
	if err != nil {
		return
	}

	c.local.Add(key)
	c.out = append(c.out, entry)
}
