//go:build integration

package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)
	level := UniqueLevel("smoke")

	_, err := pool.Exec(context.Background(),
		`INSERT INTO corpus_levels (name, min_difficulty, max_difficulty, entry_count) VALUES ($1, 1, 3, 0)`,
		level,
	)
	if err != nil {
		t.Fatalf("insert level: %v", err)
	}

	if n := CountEntries(t, pool, level); n != 0 {
		t.Fatalf("expected no entries, got %d", n)
	}
}
