package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/heartmarshall/myenglish-corpus/internal/domain"
)

// List-valued CSV columns use these separators.
const (
	listSeparator    = ";"
	exampleSeparator = "|"
)

// parseCSV reads a CSV file with a header row. Columns are matched by name
// (word or headword, phonetic, definition, difficulty, tags, examples,
// synonyms, antonyms, etymology) in any order. Rows with a non-numeric difficulty are
// counted as malformed.
func parseCSV(r io.Reader) ([]domain.RawRecord, Stats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, Stats{}, nil
		}
		return nil, Stats{}, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["headword"]; !ok {
		if i, ok := cols["word"]; ok {
			cols["headword"] = i
		} else {
			return nil, Stats{}, fmt.Errorf("header: missing word column")
		}
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var (
		records []domain.RawRecord
		stats   Stats
	)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				stats.Malformed++
				continue
			}
			return nil, stats, fmt.Errorf("read row: %w", err)
		}
		if len(row) == 0 {
			continue
		}

		difficulty, err := strconv.Atoi(field(row, "difficulty"))
		if err != nil {
			stats.Malformed++
			continue
		}

		records = append(records, domain.RawRecord{
			Headword:   field(row, "headword"),
			Phonetic:   field(row, "phonetic"),
			Definition: field(row, "definition"),
			Examples:   split(field(row, "examples"), exampleSeparator),
			Synonyms:   split(field(row, "synonyms"), listSeparator),
			Antonyms:   split(field(row, "antonyms"), listSeparator),
			Difficulty: difficulty,
			Tags:       split(field(row, "tags"), listSeparator),
			Etymology:  field(row, "etymology"),
		})
	}

	stats.Records = len(records)
	return records, stats, nil
}

func split(s, sep string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, sep)
}
