package derive

import (
	"fmt"

	"github.com/heartmarshall/myenglish-corpus/internal/corpus/merge"
	"github.com/heartmarshall/myenglish-corpus/internal/domain"
)

// RootSourceName names the synthetic source built by RootSource.
const RootSourceName = "roots"

// RootDifficulty is the difficulty of every root-built entry.
const RootDifficulty = 4

// Root is a bound morpheme with its English meaning.
type Root struct {
	Form    string
	Meaning string
}

// RootSuffix attaches to a root and fixes the part of speech of the result.
type RootSuffix struct {
	Suffix   string
	POS      domain.PartOfSpeech
	Template string // %s is replaced by the root meaning
	Phonetic string
}

// RootRules is the root x suffix table.
type RootRules struct {
	Roots    []Root
	Suffixes []RootSuffix
}

// DefaultRootRules returns the built-in Latin root table.
func DefaultRootRules() RootRules {
	return RootRules{
		Roots: []Root{
			{"act", "do"}, {"cap", "take"}, {"cred", "believe"}, {"duc", "lead"},
			{"fact", "make"}, {"form", "shape"}, {"ject", "throw"}, {"lect", "choose"},
			{"port", "carry"}, {"press", "press"}, {"rupt", "break"}, {"scrib", "write"},
			{"sect", "cut"}, {"spect", "look"}, {"struct", "build"}, {"tract", "pull"},
			{"vent", "come"}, {"vis", "see"}, {"voc", "call"}, {"mot", "move"},
		},
		Suffixes: []RootSuffix{
			{Suffix: "ion", POS: domain.PartOfSpeechNoun, Template: "the act of: %s", Phonetic: "ʃn"},
			{Suffix: "ive", POS: domain.PartOfSpeechAdjective, Template: "tending to %s", Phonetic: "ɪv"},
			{Suffix: "or", POS: domain.PartOfSpeechNoun, Template: "one who or that which: %s", Phonetic: "ər"},
		},
	}
}

// RootSource builds a lowest-precedence source from every root x suffix
// combination, in table order. Each record names its root as lemma.
func RootSource(rules RootRules) merge.Source {
	n := len(rules.Roots) * len(rules.Suffixes)
	src := merge.Source{
		Name:    RootSourceName,
		Kind:    domain.OriginDerived,
		Records: make([]domain.RawRecord, 0, n),
		Lemmas:  make([]string, 0, n),
	}

	for _, root := range rules.Roots {
		for _, sfx := range rules.Suffixes {
			src.Records = append(src.Records, domain.RawRecord{
				Headword:   root.Form + sfx.Suffix,
				Phonetic:   root.Form + sfx.Phonetic,
				Definition: sfx.POS.Marker() + " " + fmt.Sprintf(sfx.Template, root.Meaning),
				Difficulty: RootDifficulty,
				Etymology:  fmt.Sprintf("%s (%s) + -%s", root.Form, root.Meaning, sfx.Suffix),
			})
			src.Lemmas = append(src.Lemmas, root.Form)
		}
	}
	return src
}
