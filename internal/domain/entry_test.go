package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLexicalEntry_Valid(t *testing.T) {
	t.Parallel()

	raw := RawRecord{
		Headword:   "  quick ",
		Phonetic:   "kwɪk",
		Definition: "adj. fast",
		Examples:   []string{"A quick fox.", "  "},
		Difficulty: 2,
		Tags:       []string{"cet4", "adjective"},
	}

	e, err := NewLexicalEntry(raw, Origin{Source: "core"})
	require.NoError(t, err)

	assert.Equal(t, "quick", e.Headword)
	assert.Equal(t, "/kwɪk/", e.Phonetic)
	assert.Equal(t, []string{"A quick fox."}, e.Examples)
	assert.Equal(t, OriginSeed, e.Origin.Kind)
	assert.Equal(t, PartOfSpeechAdjective, e.POS())
	assert.Equal(t, "cet4", e.LevelTag())
	assert.NotNil(t, e.Synonyms)
	assert.NotNil(t, e.Antonyms)
}

func TestNewLexicalEntry_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    RawRecord
		origin Origin
		fields []string
	}{
		{
			name:   "empty headword",
			raw:    RawRecord{Headword: " ", Definition: "n. thing", Difficulty: 1},
			fields: []string{"headword"},
		},
		{
			name:   "no marker",
			raw:    RawRecord{Headword: "thing", Definition: "a thing", Difficulty: 1},
			fields: []string{"definition"},
		},
		{
			name:   "unknown marker",
			raw:    RawRecord{Headword: "thing", Definition: "x. a thing", Difficulty: 1},
			fields: []string{"definition"},
		},
		{
			name:   "difficulty zero",
			raw:    RawRecord{Headword: "thing", Definition: "n. a thing", Difficulty: 0},
			fields: []string{"difficulty"},
		},
		{
			name:   "difficulty six",
			raw:    RawRecord{Headword: "thing", Definition: "n. a thing", Difficulty: 6},
			fields: []string{"difficulty"},
		},
		{
			name:   "derived without lemma",
			raw:    RawRecord{Headword: "thing", Definition: "n. a thing", Difficulty: 2},
			origin: Origin{Kind: OriginDerived},
			fields: []string{"origin"},
		},
		{
			name:   "everything wrong",
			raw:    RawRecord{Definition: "thing", Difficulty: 9},
			fields: []string{"headword", "definition", "difficulty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewLexicalEntry(tt.raw, tt.origin)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrValidation))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			got := make([]string, 0, len(verr.Errors))
			for _, fe := range verr.Errors {
				got = append(got, fe.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestLexicalEntry_Key(t *testing.T) {
	t.Parallel()

	e := LexicalEntry{Headword: "Tiny"}
	assert.Equal(t, "tiny", e.Key())
}

func TestLexicalEntry_Clone(t *testing.T) {
	t.Parallel()

	e := LexicalEntry{Headword: "act", Tags: []string{"cet4", "verb"}, Examples: []string{"Act now."}}
	c := e.Clone()
	c.Tags[0] = "gre"
	c.Examples[0] = "changed"

	assert.Equal(t, "cet4", e.Tags[0])
	assert.Equal(t, "Act now.", e.Examples[0])
}

func TestFormatPhonetic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		phonetic, headword, want string
	}{
		{"ækt", "act", "/ækt/"},
		{"/ækt/", "act", "/ækt/"},
		{"[ækt]", "act", "/ækt/"},
		{"", "Act", "/act/"},
		{" // ", "go", "/go/"},
	}
	for _, tt := range tests {
		if got := FormatPhonetic(tt.phonetic, tt.headword); got != tt.want {
			t.Errorf("FormatPhonetic(%q, %q) = %q, want %q", tt.phonetic, tt.headword, got, tt.want)
		}
	}
}

func TestKeySet(t *testing.T) {
	t.Parallel()

	s := KeySet{}
	assert.False(t, s.Has("act"))
	s.Add("act")
	assert.True(t, s.Has("act"))
}

func TestOrigin_Etymology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		origin Origin
		want   string
	}{
		{"suffix", Origin{Kind: OriginDerived, Lemma: "act", Rule: "-tion"}, "act + -tion"},
		{"prefix", Origin{Kind: OriginDerived, Lemma: "act", Rule: "re-"}, "re- + act"},
		{"seed", Origin{Kind: OriginSeed, Lemma: "act", Rule: "-tion"}, ""},
		{"no rule", Origin{Kind: OriginDerived, Lemma: "spect"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.origin.Etymology())
		})
	}
}

func TestNewLexicalEntry_Etymology(t *testing.T) {
	t.Parallel()

	raw := RawRecord{Headword: "action", Definition: "n. a deed", Difficulty: 2}

	e, err := NewLexicalEntry(raw, Origin{Kind: OriginDerived, Lemma: "act", Rule: "-tion"})
	require.NoError(t, err)
	assert.Equal(t, "act + -tion", e.Etymology)

	raw.Etymology = " Latin actio "
	e, err = NewLexicalEntry(raw, Origin{Kind: OriginDerived, Lemma: "act", Rule: "-tion"})
	require.NoError(t, err)
	assert.Equal(t, "Latin actio", e.Etymology, "source etymology wins")

	e, err = NewLexicalEntry(RawRecord{Headword: "act", Definition: "v. to do", Difficulty: 1}, Origin{})
	require.NoError(t, err)
	assert.Empty(t, e.Etymology)
}
