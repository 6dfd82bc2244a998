package assemble

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myenglish-corpus/internal/corpus/derive"
	"github.com/heartmarshall/myenglish-corpus/internal/corpus/merge"
	"github.com/heartmarshall/myenglish-corpus/internal/corpus/tagging"
	"github.com/heartmarshall/myenglish-corpus/internal/domain"
)

func newAssembler() *Assembler {
	return New(derive.NewEngine(derive.DefaultRules()), tagging.NewResolver(tagging.DefaultTables()), 42)
}

func rec(headword, definition string, difficulty int, tags ...string) domain.RawRecord {
	return domain.RawRecord{Headword: headword, Definition: definition, Difficulty: difficulty, Tags: tags}
}

func level(name string, target, lo, hi int) domain.Level {
	return domain.Level{Name: name, Target: target, Range: domain.DifficultyRange{Min: lo, Max: hi}}
}

func seedSource() merge.Source {
	return merge.Source{Name: "seed", Records: []domain.RawRecord{
		rec("act", "v. to do", 1),
		rec("quick", "adj. fast", 2),
		rec("nation", "n. a country", 2),
		rec("create", "v. to make", 2),
		rec("happy", "adj. glad", 1),
		rec("danger", "n. risk", 3),
		rec("obscure", "adj. hidden", 5),
	}}
}

func assertInvariants(t *testing.T, lvl domain.Level, entries []domain.LexicalEntry) {
	t.Helper()

	require.Len(t, entries, lvl.Target)
	seeds := domain.KeySet{}
	for _, e := range entries {
		if e.Origin.Kind == domain.OriginSeed {
			seeds.Add(e.Key())
		}
	}
	keys := domain.KeySet{}
	for _, e := range entries {
		assert.True(t, lvl.Range.Contains(e.Difficulty), "%s difficulty %d outside %s", e.Headword, e.Difficulty, lvl.Range)
		require.NotEmpty(t, e.Tags)
		assert.Equal(t, lvl.Name, e.Tags[0])
		assert.Equal(t, e.POS().String(), e.Tags[1])
		assert.False(t, keys.Has(e.Key()), "duplicate %s", e.Key())
		keys.Add(e.Key())
		assert.NotEmpty(t, e.Examples)
		assert.LessOrEqual(t, len(e.Examples), 3)
		if e.Origin.Kind == domain.OriginDerived {
			assert.True(t, seeds.Has(domain.NormalizeText(e.Origin.Lemma)), "%s derived from non-seed %q", e.Headword, e.Origin.Lemma)
		}
	}
}

func TestAssemble_EndToEndSample(t *testing.T) {
	t.Parallel()

	lvl := level("sample", 3, 1, 5)
	src := merge.Source{Name: "s", Records: []domain.RawRecord{rec("quick", "adj. fast", 2)}}

	res, err := newAssembler().Assemble(Request{Level: lvl}, []merge.Source{src})
	require.NoError(t, err)
	assertInvariants(t, lvl, res.Entries)

	assert.Equal(t, "quick", res.Entries[0].Headword)
	assert.Equal(t, domain.OriginSeed, res.Entries[0].Origin.Kind)
	assert.Equal(t, "quickly", res.Entries[1].Headword)
	assert.Equal(t, 3, res.Entries[1].Difficulty)
	assert.Equal(t, domain.OriginDerived, res.Entries[2].Origin.Kind)
	assert.Equal(t, "quick", res.Entries[2].Origin.Lemma)

	assert.Equal(t, []State{StateMerging, StateDeriving, StateFinalizing}, res.States)
	assert.Equal(t, 1, res.Stats.Seeds)
	assert.Equal(t, 2, res.Stats.Derived)
}

func TestAssemble_TruncatesInMergeOrder(t *testing.T) {
	t.Parallel()

	lvl := level("cet4", 3, 1, 3)
	res, err := newAssembler().Assemble(Request{Level: lvl}, []merge.Source{seedSource()})
	require.NoError(t, err)
	assertInvariants(t, lvl, res.Entries)

	got := []string{res.Entries[0].Headword, res.Entries[1].Headword, res.Entries[2].Headword}
	assert.Equal(t, []string{"act", "quick", "nation"}, got)
	assert.Equal(t, []State{StateMerging, StateFinalizing}, res.States)
	assert.Zero(t, res.Stats.Derived)
}

func TestAssemble_Invariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lvl     domain.Level
		maxBase int
	}{
		{level("cet4", 40, 1, 3), 0},
		{level("cet6", 28, 2, 4), 2},
		{level("gre", 12, 3, 5), 1},
		{level("all", 55, 1, 5), 0},
	}
	for _, tt := range tests {
		t.Run(tt.lvl.Name, func(t *testing.T) {
			t.Parallel()
			res, err := newAssembler().Assemble(Request{Level: tt.lvl, MaxDerivedPerBase: tt.maxBase}, []merge.Source{seedSource()})
			require.NoError(t, err)
			assertInvariants(t, tt.lvl, res.Entries)
			assert.Equal(t, tt.lvl.Target, res.Stats.Seeds+res.Stats.Derived)
		})
	}
}

func TestAssemble_DerivesOnlyFromSeeds(t *testing.T) {
	t.Parallel()

	// act alone yields twelve derivations; a larger target must fail instead
	// of deriving from derived entries such as "actor".
	src := merge.Source{Name: "s", Records: []domain.RawRecord{rec("act", "v. to do", 1)}}

	lvl := level("cet4", 13, 1, 5)
	res, err := newAssembler().Assemble(Request{Level: lvl}, []merge.Source{src})
	require.NoError(t, err)
	assertInvariants(t, lvl, res.Entries)
	for _, e := range res.Entries[1:] {
		assert.Equal(t, "act", e.Origin.Lemma, e.Headword)
	}

	_, err = newAssembler().Assemble(Request{Level: level("cet4", 60, 1, 5)}, []merge.Source{src})
	var ierr *domain.InsufficientSourceError
	require.True(t, errors.As(err, &ierr), "got %v", err)
	assert.Equal(t, 13, ierr.Pool)
}

func TestAssemble_TopicLevel(t *testing.T) {
	t.Parallel()

	src := merge.Source{Name: "s", Records: []domain.RawRecord{
		rec("computer", "n. a machine", 2),
		rec("eat", "v. to take food", 1),
		rec("bread", "n. baked food", 1),
	}}
	lvl := domain.Level{Name: "kitchen", Target: 3, Range: domain.DifficultyRange{Min: 1, Max: 5}, Topic: "food"}

	res, err := newAssembler().Assemble(Request{Level: lvl}, []merge.Source{src})
	require.NoError(t, err)
	assertInvariants(t, lvl, res.Entries)
	assert.Equal(t, 2, res.Stats.Seeds)

	got := []string{res.Entries[0].Headword, res.Entries[1].Headword, res.Entries[2].Headword}
	assert.Equal(t, []string{"eat", "bread", "eater"}, got)
	for _, e := range res.Entries {
		assert.Contains(t, e.Tags, "food", e.Headword)
	}
	assert.Equal(t, []string{"kitchen", "verb", "daily_life", "food"}, res.Entries[0].Tags)
	assert.Equal(t, []string{"kitchen", "noun", "food"}, res.Entries[2].Tags)

	lvl.Topic = "astronomy"
	_, err = newAssembler().Assemble(Request{Level: lvl}, []merge.Source{src})
	assert.True(t, errors.Is(err, domain.ErrInsufficientSource))
}

func TestAssemble_FirstWriteWins(t *testing.T) {
	t.Parallel()

	curated := merge.Source{Name: "curated", Records: []domain.RawRecord{rec("tiny", "adj. very small", 1)}}
	bulk := merge.Source{Name: "bulk", Records: []domain.RawRecord{rec("Tiny", "n. something else", 2)}}
	lvl := level("cet4", 1, 1, 3)

	res, err := newAssembler().Assemble(Request{Level: lvl}, []merge.Source{curated, bulk})
	require.NoError(t, err)
	assert.Equal(t, "adj. very small", res.Entries[0].Definition)
	assert.Equal(t, 1, res.Stats.Merge.Duplicates)

	res, err = newAssembler().Assemble(Request{Level: lvl}, []merge.Source{bulk, curated})
	require.NoError(t, err)
	assert.Equal(t, "n. something else", res.Entries[0].Definition)
}

func TestAssemble_LevelTagClampsDifficulty(t *testing.T) {
	t.Parallel()

	lvl := domain.Level{Name: "cet4", Target: 2, Range: domain.DifficultyRange{Min: 1, Max: 3}, Aliases: []string{"cet-4"}}
	src := merge.Source{Name: "s", Records: []domain.RawRecord{
		rec("abstract", "adj. not concrete", 5, "cet4"),
		rec("ambiguous", "adj. unclear", 4, "CET-4"),
		rec("arcane", "adj. obscure", 5, "gre"),
	}}

	res, err := newAssembler().Assemble(Request{Level: lvl}, []merge.Source{src})
	require.NoError(t, err)
	assertInvariants(t, lvl, res.Entries)
	assert.Equal(t, "abstract", res.Entries[0].Headword)
	assert.Equal(t, 3, res.Entries[0].Difficulty)
	assert.Equal(t, "ambiguous", res.Entries[1].Headword)
	assert.Equal(t, 2, res.Stats.Clamped)
}

func TestAssemble_SeenIncludesFilteredEntries(t *testing.T) {
	t.Parallel()

	// "quickly" exists at difficulty 5 and is out of range; it must not be
	// re-derived from "quick".
	src := merge.Source{Name: "s", Records: []domain.RawRecord{
		rec("quick", "adj. fast", 2),
		rec("quickly", "adv. rapidly", 5),
	}}
	lvl := level("cet4", 2, 1, 3)

	res, err := newAssembler().Assemble(Request{Level: lvl}, []merge.Source{src})
	require.NoError(t, err)
	assert.Equal(t, "quickness", res.Entries[1].Headword)
}

func TestAssemble_Insufficient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sources []merge.Source
		lvl     domain.Level
		pool    int
	}{
		{"no sources", nil, level("cet4", 10, 1, 3), 0},
		{"nothing in range", []merge.Source{{Name: "s", Records: []domain.RawRecord{rec("quick", "adj. fast", 5)}}}, level("cet4", 10, 1, 3), 0},
		{"only malformed", []merge.Source{{Name: "s", Records: []domain.RawRecord{rec("", "adj. fast", 2)}}}, level("cet4", 10, 1, 3), 0},
		{"derivation exhausted", []merge.Source{{Name: "s", Records: []domain.RawRecord{rec("above", "prep. over", 1)}}}, level("cet4", 10, 1, 3), 1},
		{"derived out of range", []merge.Source{{Name: "s", Records: []domain.RawRecord{rec("quick", "adj. fast", 2)}}}, level("easy", 5, 1, 2), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := newAssembler().Assemble(Request{Level: tt.lvl}, tt.sources)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInsufficientSource))

			var ierr *domain.InsufficientSourceError
			require.True(t, errors.As(err, &ierr))
			assert.Equal(t, tt.lvl.Name, ierr.Level)
			assert.Equal(t, tt.lvl.Target, ierr.Target)
			assert.Equal(t, tt.pool, ierr.Pool)
		})
	}
}

func TestAssemble_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := newAssembler().Assemble(Request{Level: level("", 0, 1, 3)}, []merge.Source{seedSource()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestAssemble_Deterministic(t *testing.T) {
	t.Parallel()

	lvl := level("cet6", 25, 2, 4)
	run := func() []byte {
		res, err := newAssembler().Assemble(Request{Level: lvl, MaxDerivedPerBase: 3}, []merge.Source{seedSource()})
		require.NoError(t, err)
		data, err := json.Marshal(res.Entries)
		require.NoError(t, err)
		return data
	}

	first, second := run(), run()
	if diff := cmp.Diff(string(first), string(second)); diff != "" {
		t.Errorf("assembly is not deterministic (-first +second):\n%s", diff)
	}
}

func TestAssemble_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	raw := rec("quick", "adj. fast", 2, "cet4")
	raw.Examples = []string{"Be quick."}
	src := merge.Source{Name: "s", Records: []domain.RawRecord{raw}}

	res, err := newAssembler().Assemble(Request{Level: level("sample", 1, 1, 5)}, []merge.Source{src})
	require.NoError(t, err)

	res.Entries[0].Examples[0] = "changed"
	res.Entries[0].Tags[0] = "changed"
	assert.Equal(t, "Be quick.", raw.Examples[0])
	assert.Equal(t, "cet4", raw.Tags[0])
}

func TestState_String(t *testing.T) {
	t.Parallel()

	for s, want := range map[State]string{
		StateMerging:    "merging",
		StateDeriving:   "deriving",
		StateFinalizing: "finalizing",
		State(9):        "State(9)",
	} {
		assert.Equal(t, want, s.String(), fmt.Sprint(int(s)))
	}
}
