package derive

import (
	"strings"

	"github.com/heartmarshall/myenglish-corpus/internal/domain"
)

// DefaultMinLength is the shortest headword a prefix rule may produce.
const DefaultMinLength = 4

// SuffixRule turns a base of one part of speech into a derived form.
type SuffixRule struct {
	Name     string
	From     domain.PartOfSpeech
	To       domain.PartOfSpeech
	Apply    func(headword string) string
	Define   func(gloss string) string
	Phonetic string
	Delta    int
}

// PrefixRule prepends a prefix to a verb or adjective. Allows, when set,
// restricts the bases the prefix attaches to (in-/im-/il-/ir- assimilation).
type PrefixRule struct {
	Prefix   string
	POS      []domain.PartOfSpeech
	Allows   func(headword string) bool
	Define   func(pos domain.PartOfSpeech, gloss string) string
	Phonetic string
	Delta    int
}

// Rules is the immutable rule table used by an Engine.
type Rules struct {
	Suffixes  []SuffixRule
	Prefixes  []PrefixRule
	MinLength int
}

// DefaultRules returns the built-in suffix and prefix tables.
func DefaultRules() *Rules {
	return &Rules{
		Suffixes:  defaultSuffixes(),
		Prefixes:  defaultPrefixes(),
		MinLength: DefaultMinLength,
	}
}

func defaultSuffixes() []SuffixRule {
	return []SuffixRule{
		{
			Name: "-er", From: domain.PartOfSpeechVerb, To: domain.PartOfSpeechNoun,
			Apply:    agentNoun,
			Define:   func(g string) string { return "one who performs the action: " + g },
			Phonetic: "ər", Delta: 1,
		},
		{
			Name: "-tion", From: domain.PartOfSpeechVerb, To: domain.PartOfSpeechNoun,
			Apply:    nominalize,
			Define:   func(g string) string { return "the act or process of: " + g },
			Phonetic: "ʃn", Delta: 1,
		},
		{
			Name: "-ment", From: domain.PartOfSpeechVerb, To: domain.PartOfSpeechNoun,
			Apply:    func(w string) string { return yToI(w) + "ment" },
			Define:   func(g string) string { return "the result of: " + g },
			Phonetic: "mənt", Delta: 1,
		},
		{
			Name: "-able", From: domain.PartOfSpeechVerb, To: domain.PartOfSpeechAdjective,
			Apply:    ableForm,
			Define:   func(g string) string { return "able to be acted on: " + g },
			Phonetic: "əbl", Delta: 1,
		},
		{
			Name: "-al", From: domain.PartOfSpeechNoun, To: domain.PartOfSpeechAdjective,
			Apply:    adjectiveAl,
			Define:   func(g string) string { return "relating to " + g },
			Phonetic: "əl", Delta: 1,
		},
		{
			Name: "-ous", From: domain.PartOfSpeechNoun, To: domain.PartOfSpeechAdjective,
			Apply: func(w string) string {
				if endsConsonantY(w) {
					return w[:len(w)-1] + "ious"
				}
				return dropE(w) + "ous"
			},
			Define:   func(g string) string { return "full of " + g },
			Phonetic: "əs", Delta: 1,
		},
		{
			Name: "-ful", From: domain.PartOfSpeechNoun, To: domain.PartOfSpeechAdjective,
			Apply:    func(w string) string { return yToI(w) + "ful" },
			Define:   func(g string) string { return "characterized by " + g },
			Phonetic: "fəl", Delta: 1,
		},
		{
			Name: "-ly", From: domain.PartOfSpeechAdjective, To: domain.PartOfSpeechAdverb,
			Apply:    adverbLy,
			Define:   func(g string) string { return "in a manner that is " + g },
			Phonetic: "li", Delta: 1,
		},
		{
			Name: "-ness", From: domain.PartOfSpeechAdjective, To: domain.PartOfSpeechNoun,
			Apply:    func(w string) string { return yToI(w) + "ness" },
			Define:   func(g string) string { return "the quality of being " + g },
			Phonetic: "nəs", Delta: 1,
		},
	}
}

var (
	verbAndAdjective = []domain.PartOfSpeech{domain.PartOfSpeechVerb, domain.PartOfSpeechAdjective}
	verbOnly         = []domain.PartOfSpeech{domain.PartOfSpeechVerb}
	adjectiveOnly    = []domain.PartOfSpeech{domain.PartOfSpeechAdjective}
)

func defaultPrefixes() []PrefixRule {
	not := func(_ domain.PartOfSpeech, g string) string { return "not " + g }
	return []PrefixRule{
		{Prefix: "un", POS: verbAndAdjective, Define: not, Phonetic: "ʌn", Delta: 1},
		{Prefix: "in", POS: verbAndAdjective, Allows: startsWithout("bmplr"), Define: not, Phonetic: "ɪn", Delta: 1},
		{Prefix: "im", POS: verbAndAdjective, Allows: startsWith("bmp"), Define: not, Phonetic: "ɪm", Delta: 1},
		{Prefix: "il", POS: verbAndAdjective, Allows: startsWith("l"), Define: not, Phonetic: "ɪl", Delta: 1},
		{Prefix: "ir", POS: verbAndAdjective, Allows: startsWith("r"), Define: not, Phonetic: "ɪr", Delta: 1},
		{Prefix: "dis", POS: verbAndAdjective, Define: not, Phonetic: "dɪs", Delta: 1},
		{Prefix: "non", POS: adjectiveOnly, Define: not, Phonetic: "nɒn", Delta: 1},
		{
			Prefix: "re", POS: verbOnly, Phonetic: "riː", Delta: 1,
			Define: func(_ domain.PartOfSpeech, g string) string { return g + " again" },
		},
		{
			Prefix: "over", POS: verbAndAdjective, Phonetic: "əʊvər", Delta: 1,
			Define: degree("excessively"),
		},
		{
			Prefix: "under", POS: verbAndAdjective, Phonetic: "ʌndər", Delta: 1,
			Define: degree("insufficiently"),
		},
		{
			Prefix: "mis", POS: verbOnly, Phonetic: "mɪs", Delta: 1,
			Define: func(_ domain.PartOfSpeech, g string) string { return g + " wrongly" },
		},
		{
			Prefix: "pre", POS: verbOnly, Phonetic: "priː", Delta: 1,
			Define: func(_ domain.PartOfSpeech, g string) string { return g + " beforehand" },
		},
	}
}

// degree places an adverb after a verb gloss and before an adjective gloss.
func degree(adverb string) func(domain.PartOfSpeech, string) string {
	return func(pos domain.PartOfSpeech, g string) string {
		if pos == domain.PartOfSpeechAdjective {
			return adverb + " " + g
		}
		return g + " " + adverb
	}
}

func startsWith(letters string) func(string) bool {
	return func(w string) bool {
		return w != "" && strings.IndexByte(letters, lower(w[0])) >= 0
	}
}

func startsWithout(letters string) func(string) bool {
	return func(w string) bool {
		return w != "" && strings.IndexByte(letters, lower(w[0])) < 0
	}
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

// agentNoun: act -> actor, create -> creator, teach -> teacher, run -> runner.
func agentNoun(w string) string {
	switch {
	case strings.HasSuffix(w, "ate"):
		return w[:len(w)-1] + "or"
	case strings.HasSuffix(w, "ct"):
		return w + "or"
	case strings.HasSuffix(w, "e"):
		return w + "r"
	case endsConsonantY(w):
		return w[:len(w)-1] + "ier"
	case shouldDouble(w):
		return w + string(last(w)) + "er"
	}
	return w + "er"
}

// nominalize: act -> action, create -> creation, decide -> decision,
// discuss -> discussion, admit -> admission, inform -> information.
func nominalize(w string) string {
	switch {
	case strings.HasSuffix(w, "te"):
		return w[:len(w)-1] + "ion"
	case strings.HasSuffix(w, "ct"), strings.HasSuffix(w, "ss"):
		return w + "ion"
	case strings.HasSuffix(w, "mit"):
		return w[:len(w)-1] + "ssion"
	case strings.HasSuffix(w, "de"):
		return w[:len(w)-2] + "sion"
	case strings.HasSuffix(w, "nd"):
		return w[:len(w)-1] + "sion"
	case endsConsonantY(w):
		return w[:len(w)-1] + "ication"
	case strings.HasSuffix(w, "e"):
		return w[:len(w)-1] + "ation"
	}
	return w + "ation"
}

// ableForm: use -> usable, agree -> agreeable, rely -> reliable.
func ableForm(w string) string {
	switch {
	case endsConsonantY(w):
		return w[:len(w)-1] + "iable"
	case shouldDouble(w):
		return w + string(last(w)) + "able"
	}
	return dropE(w) + "able"
}

// adjectiveAl: nation -> national, culture -> cultural, industry -> industrial.
func adjectiveAl(w string) string {
	if endsConsonantY(w) {
		return w[:len(w)-1] + "ial"
	}
	return dropE(w) + "al"
}

// adverbLy: quick -> quickly, happy -> happily, simple -> simply,
// basic -> basically, full -> fully, true -> truly.
func adverbLy(w string) string {
	n := len(w)
	switch {
	case strings.HasSuffix(w, "ic"):
		return w + "ally"
	case n >= 3 && strings.HasSuffix(w, "le") && !isVowel(w[n-3]):
		return w[:n-1] + "y"
	case strings.HasSuffix(w, "ue"):
		return w[:n-1] + "ly"
	case strings.HasSuffix(w, "ll"):
		return w + "y"
	case endsConsonantY(w):
		return w[:n-1] + "ily"
	}
	return w + "ly"
}
