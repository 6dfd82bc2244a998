// Package corpusrepo stores emitted corpora in PostgreSQL. Saving a level
// replaces whatever was stored for it before, in one transaction.
package corpusrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/myenglish-corpus/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-corpus/internal/corpus/emit"
	"github.com/heartmarshall/myenglish-corpus/internal/domain"
)

// insertChunkSize bounds the rows per INSERT statement so the bind parameter
// count stays well under the PostgreSQL limit of 65535.
const insertChunkSize = 500

// entryNamespace seeds the SHA-1 entry ids, which makes re-saving the same
// corpus produce the same ids.
var entryNamespace = uuid.MustParse("5b0c3f6e-2d1a-4c8e-9a57-0f3e6b9d2c41")

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var entryColumns = []string{
	"id", "level", "record_id", "position", "word", "phonetic", "definition",
	"examples", "synonyms", "antonyms", "difficulty", "tags", "etymology",
}

// LevelInfo describes one stored level.
type LevelInfo struct {
	Name          string    `db:"name"`
	MinDifficulty int       `db:"min_difficulty"`
	MaxDifficulty int       `db:"max_difficulty"`
	EntryCount    int       `db:"entry_count"`
	CreatedAt     time.Time `db:"created_at"`
}

type entryRow struct {
	RecordID   string   `db:"record_id"`
	Word       string   `db:"word"`
	Phonetic   string   `db:"phonetic"`
	Definition string   `db:"definition"`
	Examples   []string `db:"examples"`
	Synonyms   []string `db:"synonyms"`
	Antonyms   []string `db:"antonyms"`
	Difficulty int      `db:"difficulty"`
	Tags       []string `db:"tags"`
	Etymology  string   `db:"etymology"`
}

// Repo provides corpus persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
	tx *postgres.TxManager
}

// New creates a new corpus repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db, tx: postgres.NewTxManager(db)}
}

// EntryID returns the stable row id of a word within a level.
func EntryID(level, word string) uuid.UUID {
	return uuid.NewSHA1(entryNamespace, []byte(level+"\x00"+domain.NormalizeText(word)))
}

// SaveCorpus replaces the stored corpus of c.Level with c.
func (r *Repo) SaveCorpus(ctx context.Context, c emit.Corpus) error {
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)

		if _, err := q.Exec(ctx, `DELETE FROM corpus_levels WHERE name = $1`, c.Level); err != nil {
			return fmt.Errorf("delete level: %w", err)
		}

		if _, err := q.Exec(ctx,
			`INSERT INTO corpus_levels (name, min_difficulty, max_difficulty, entry_count)
			 VALUES ($1, $2, $3, $4)`,
			c.Level, c.Range.Min, c.Range.Max, len(c.Records),
		); err != nil {
			return fmt.Errorf("insert level: %w", err)
		}

		for start := 0; start < len(c.Records); start += insertChunkSize {
			end := min(start+insertChunkSize, len(c.Records))
			if err := insertEntries(ctx, q, c.Level, start, c.Records[start:end]); err != nil {
				return err
			}
		}
		return nil
	})
	return postgres.MapError(err, "corpus level", c.Level)
}

func insertEntries(ctx context.Context, q postgres.Querier, level string, offset int, records []emit.Record) error {
	insert := psql.Insert("corpus_entries").Columns(entryColumns...)
	for i, rec := range records {
		insert = insert.Values(
			EntryID(level, rec.Word), level, rec.ID, offset+i, rec.Word, rec.Phonetic, rec.Definition,
			rec.Examples, rec.Synonyms, rec.Antonyms, rec.Difficulty, rec.Tags,
			rec.Etymology,
		)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert entries %d-%d: %w", offset, offset+len(records)-1, err)
	}
	return nil
}

// GetLevel returns the stored metadata of one level.
func (r *Repo) GetLevel(ctx context.Context, level string) (LevelInfo, error) {
	query, args, err := psql.
		Select("name", "min_difficulty", "max_difficulty", "entry_count", "created_at").
		From("corpus_levels").
		Where(sq.Eq{"name": level}).
		ToSql()
	if err != nil {
		return LevelInfo{}, fmt.Errorf("build select: %w", err)
	}

	var info LevelInfo
	if err := pgxscan.Get(ctx, r.db, &info, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return LevelInfo{}, fmt.Errorf("corpus level %s: %w", level, domain.ErrNotFound)
		}
		return LevelInfo{}, postgres.MapError(err, "corpus level", level)
	}
	return info, nil
}

// ListLevels returns every stored level ordered by name.
func (r *Repo) ListLevels(ctx context.Context) ([]LevelInfo, error) {
	query, args, err := psql.
		Select("name", "min_difficulty", "max_difficulty", "entry_count", "created_at").
		From("corpus_levels").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	levels := []LevelInfo{}
	if err := pgxscan.Select(ctx, r.db, &levels, query, args...); err != nil {
		return nil, postgres.MapError(err, "corpus levels", "*")
	}
	return levels, nil
}

// ListLevel returns the records of a stored level in emitted order.
// An unknown level yields domain.ErrNotFound.
func (r *Repo) ListLevel(ctx context.Context, level string) ([]emit.Record, error) {
	if _, err := r.GetLevel(ctx, level); err != nil {
		return nil, err
	}

	query, args, err := psql.
		Select("record_id", "word", "phonetic", "definition", "examples", "synonyms", "antonyms", "difficulty", "tags", "etymology").
		From("corpus_entries").
		Where(sq.Eq{"level": level}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "corpus level", level)
	}

	records := make([]emit.Record, len(rows))
	for i, row := range rows {
		records[i] = emit.Record{
			ID:         row.RecordID,
			Word:       row.Word,
			Phonetic:   row.Phonetic,
			Definition: row.Definition,
			Examples:   row.Examples,
			Synonyms:   row.Synonyms,
			Antonyms:   row.Antonyms,
			Difficulty: row.Difficulty,
			Tags:       row.Tags,
			Etymology:  row.Etymology,
		}
	}
	return records, nil
}
