package domain

import "testing"

func TestParsePartOfSpeech(t *testing.T) {
	t.Parallel()

	tests := []struct {
		definition string
		want       PartOfSpeech
		wantErr    bool
	}{
		{"n. a thing", PartOfSpeechNoun, false},
		{"v. to do", PartOfSpeechVerb, false},
		{"vt. to take", PartOfSpeechVerb, false},
		{"vi. to go", PartOfSpeechVerb, false},
		{"adj. fast", PartOfSpeechAdjective, false},
		{"adv. quickly", PartOfSpeechAdverb, false},
		{"prep. above", PartOfSpeechPreposition, false},
		{"conj. although", PartOfSpeechConjunction, false},
		{"pron. anyone", PartOfSpeechPronoun, false},
		{"v./n. to call; a call", PartOfSpeechVerb, false},
		{"adj./pron. all", PartOfSpeechAdjective, false},
		{"  n. padded", PartOfSpeechNoun, false},
		{"n.", PartOfSpeechNoun, false},
		{"a thing", "", true},
		{"", "", true},
		{"x. unknown", "", true},
		{"N. upper", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.definition, func(t *testing.T) {
			t.Parallel()
			got, err := ParsePartOfSpeech(tt.definition)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePartOfSpeech(%q) error = %v, wantErr %v", tt.definition, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePartOfSpeech(%q) = %q, want %q", tt.definition, got, tt.want)
			}
		})
	}
}

func TestGloss(t *testing.T) {
	t.Parallel()

	tests := []struct {
		definition, want string
	}{
		{"v. to do", "to do"},
		{"v./n. to call", "to call"},
		{"adj.fast", "fast"},
		{"no marker here", "no marker here"},
	}
	for _, tt := range tests {
		if got := Gloss(tt.definition); got != tt.want {
			t.Errorf("Gloss(%q) = %q, want %q", tt.definition, got, tt.want)
		}
	}
}

func TestPartOfSpeech_Marker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pos  PartOfSpeech
		want string
	}{
		{PartOfSpeechNoun, "n."},
		{PartOfSpeechVerb, "v."},
		{PartOfSpeechAdjective, "adj."},
		{PartOfSpeechAdverb, "adv."},
		{PartOfSpeech("other"), ""},
	}
	for _, tt := range tests {
		if got := tt.pos.Marker(); got != tt.want {
			t.Errorf("%q.Marker() = %q, want %q", tt.pos, got, tt.want)
		}
	}
}

func TestPartOfSpeech_IsValid(t *testing.T) {
	t.Parallel()

	if !PartOfSpeechVerb.IsValid() {
		t.Error("verb should be valid")
	}
	if PartOfSpeech("VERB").IsValid() {
		t.Error("upper-case VERB should not be valid")
	}
}

func TestOriginKind_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind OriginKind
		want bool
	}{
		{OriginSeed, true},
		{OriginDerived, true},
		{OriginKind("generated"), false},
		{OriginKind(""), false},
	}
	for _, tt := range tests {
		if got := tt.kind.IsValid(); got != tt.want {
			t.Errorf("OriginKind(%q).IsValid() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}
