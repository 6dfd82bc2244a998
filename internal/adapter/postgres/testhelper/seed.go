package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueLevel returns a level name that no other test uses, so tests sharing
// the container do not replace each other's corpora.
func UniqueLevel(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// CountEntries returns the number of stored entries of a level.
func CountEntries(t *testing.T, pool *pgxpool.Pool, level string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM corpus_entries WHERE level = $1`, level,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: count entries: %v", err)
	}
	return n
}
