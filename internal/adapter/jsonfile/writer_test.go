package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myenglish-corpus/internal/corpus/emit"
	"github.com/heartmarshall/myenglish-corpus/internal/domain"
)

func sampleCorpus() emit.Corpus {
	lvl := domain.Level{Name: "cet4", Target: 2, Range: domain.DifficultyRange{Min: 1, Max: 3}}
	return emit.Package(lvl, []domain.LexicalEntry{
		{Headword: "act", Phonetic: "/ækt/", Definition: "v. to do", Examples: []string{"Act now."}, Difficulty: 1, Tags: []string{"cet4", "verb"}},
		{Headword: "action", Phonetic: "/ækʃn/", Definition: "n. a deed", Examples: []string{"Take action."}, Difficulty: 2, Tags: []string{"cet4", "noun"}},
	}, emit.OrderAssembly)
}

func TestWriter_SaveCorpus(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	w := NewWriter(dir)
	c := sampleCorpus()

	require.NoError(t, w.SaveCorpus(context.Background(), c))

	data, err := os.ReadFile(filepath.Join(dir, "cet4.json"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[\n  {\n    \"id\": \"cet4_0001\","))
	assert.True(t, strings.HasSuffix(string(data), "]\n"))

	records, err := w.Load("cet4")
	require.NoError(t, err)
	assert.Equal(t, c.Records, records)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1, "temporary file must be gone")
}

func TestWriter_Overwrites(t *testing.T) {
	t.Parallel()

	w := NewWriter(t.TempDir())
	c := sampleCorpus()
	require.NoError(t, w.SaveCorpus(context.Background(), c))

	c.Records = c.Records[:1]
	require.NoError(t, w.SaveCorpus(context.Background(), c))

	records, err := w.Load("cet4")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestWriter_Errors(t *testing.T) {
	t.Parallel()

	w := NewWriter(t.TempDir())

	assert.Error(t, w.SaveCorpus(context.Background(), emit.Corpus{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, w.SaveCorpus(ctx, sampleCorpus()), context.Canceled)

	_, err := w.Load("missing")
	assert.Error(t, err)
}
