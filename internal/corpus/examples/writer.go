// Package examples fills entries that have no example sentences with
// templated ones. All randomness comes from an explicitly seeded source.
package examples

import (
	"fmt"
	"math/rand/v2"

	"github.com/heartmarshall/myenglish-corpus/internal/domain"
)

// MaxExamples is the largest number of examples an entry keeps.
const MaxExamples = 3

var templates = []string{
	"This is an example of using '%s' in a sentence.",
	"The word '%s' is commonly used in English.",
	"Can you use '%s' in your own sentence?",
	"Understanding '%s' is important for learning English.",
}

// Writer is not safe for concurrent use.
type Writer struct {
	rng *rand.Rand
}

// NewWriter returns a writer whose output depends only on seed and the
// sequence of Fill calls.
func NewWriter(seed uint64) *Writer {
	return &Writer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Fill returns a copy of e with 1 to 3 examples. Entries that already have
// examples keep them, trimmed to MaxExamples; otherwise easier words get more
// templated sentences than harder ones.
func (w *Writer) Fill(e domain.LexicalEntry) domain.LexicalEntry {
	out := e.Clone()
	if len(out.Examples) > 0 {
		if len(out.Examples) > MaxExamples {
			out.Examples = out.Examples[:MaxExamples]
		}
		return out
	}

	n := min(max(1, 4-e.Difficulty), MaxExamples)
	perm := w.rng.Perm(len(templates))
	out.Examples = make([]string, 0, n)
	for _, i := range perm[:n] {
		out.Examples = append(out.Examples, fmt.Sprintf(templates[i], e.Headword))
	}
	return out
}
