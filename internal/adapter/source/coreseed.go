package source

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/heartmarshall/myenglish-corpus/internal/corpus/merge"
)

// CoreSeedName names the embedded hand-authored source.
const CoreSeedName = "core"

//go:embed coreseed.json
var coreSeedJSON []byte

// CoreSeed returns the embedded hand-authored seed list. It is meant to be
// merged before any file source.
func CoreSeed() (merge.Source, error) {
	records, _, err := parseJSON(bytes.NewReader(coreSeedJSON))
	if err != nil {
		return merge.Source{}, fmt.Errorf("core seed: %w", err)
	}
	return merge.Source{Name: CoreSeedName, Records: records}, nil
}
