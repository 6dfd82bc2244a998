package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/heartmarshall/myenglish-corpus/internal/domain"
)

// maxLineSize is the bufio.Scanner buffer for JSON Lines input (1 MB).
const maxLineSize = 1 << 20

// parseJSON reads a JSON array of records. The array itself must be well
// formed; elements that do not decode as a record are counted as malformed.
func parseJSON(r io.Reader) ([]domain.RawRecord, Stats, error) {
	var items []json.RawMessage
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		if err == io.EOF {
			return nil, Stats{}, nil
		}
		return nil, Stats{}, fmt.Errorf("decode array: %w", err)
	}

	var stats Stats
	records := make([]domain.RawRecord, 0, len(items))
	for _, item := range items {
		var rec jsonRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			stats.Malformed++
			continue
		}
		records = append(records, rec.raw())
	}
	stats.Records = len(records)
	return records, stats, nil
}

// parseJSONL reads one JSON record per line. Blank lines are skipped.
func parseJSONL(r io.Reader) ([]domain.RawRecord, Stats, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var (
		records []domain.RawRecord
		stats   Stats
	)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec jsonRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			stats.Malformed++
			continue
		}
		records = append(records, rec.raw())
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("scan lines: %w", err)
	}

	stats.Records = len(records)
	return records, stats, nil
}
