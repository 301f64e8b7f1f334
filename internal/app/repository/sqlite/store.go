package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"speech-search/internal/app/errors"
	"speech-search/internal/app/model"
	"speech-search/internal/app/repository"
)

// MemoryDSN returns a DSN for a new, private in-memory database. The name
// is unique per call so separate stores never share data.
func MemoryDSN() string {
	return fmt.Sprintf("file:speechsearch-%s?mode=memory&cache=shared", uuid.NewString())
}

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcripts (
	id         TEXT PRIMARY KEY NOT NULL,
	text       TEXT NOT NULL,
	language   TEXT NOT NULL,
	created_at INTEGER NOT NULL
);`

// maxIDAttempts bounds id regeneration after primary key collisions
const maxIDAttempts = 5

// Store is a TranscriptStore backed by SQLite
type Store struct {
	db    *sql.DB
	newID func() string
	now   func() time.Time
}

// Open opens dsn, creates the schema and returns a ready store.
// An empty dsn opens a fresh in-memory database (see MemoryDSN).
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = MemoryDSN()
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one connection keeps the in-memory database alive and serializes writers
	db.SetMaxOpenConns(1)

	store := New(db)
	if err := store.Migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// New wraps an existing connection pool. The schema must already exist;
// call Migrate otherwise.
func New(db *sql.DB) *Store {
	return &Store{
		db:    db,
		newID: func() string { return uuid.New().String() },
		now:   time.Now,
	}
}

// Migrate creates the transcripts table if needed
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// Insert stores text under a new random id
func (s *Store) Insert(ctx context.Context, text, language string) (*model.Transcript, error) {
	if text == "" {
		return nil, repository.ErrEmptyText
	}

	createdAt := s.now()
	const insertSQL = `INSERT INTO transcripts (id, text, language, created_at) VALUES (?, ?, ?, ?);`

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.newID()
		_, err := s.db.ExecContext(ctx, insertSQL, id, text, language, createdAt.UnixNano())
		if err == nil {
			return &model.Transcript{
				ID:        id,
				Text:      text,
				Language:  language,
				CreatedAt: createdAt,
			}, nil
		}
		if !isPrimaryKeyViolation(err) {
			return nil, errors.Wrap(err, errors.KindInternal, "failed to insert transcript")
		}
	}
	return nil, errors.Newf(errors.KindInternal, "failed to allocate a unique id after %d attempts", maxIDAttempts)
}

// Get returns the record stored under id
func (s *Store) Get(ctx context.Context, id string) (*model.Transcript, error) {
	const querySQL = `SELECT id, text, language, created_at FROM transcripts WHERE id = ?;`

	var (
		t         model.Transcript
		createdAt int64
	)
	err := s.db.QueryRowContext(ctx, querySQL, id).Scan(&t.ID, &t.Text, &t.Language, &createdAt)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, repository.NotFoundError()
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to query transcript")
	}
	t.CreatedAt = time.Unix(0, createdAt)
	return &t, nil
}

// ListAll returns every record ordered by insertion time
func (s *Store) ListAll(ctx context.Context) ([]model.Transcript, error) {
	const querySQL = `SELECT id, text, language, created_at FROM transcripts ORDER BY created_at, rowid;`

	rows, err := s.db.QueryContext(ctx, querySQL)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to list transcripts")
	}
	defer rows.Close()

	transcripts := make([]model.Transcript, 0)
	for rows.Next() {
		var (
			t         model.Transcript
			createdAt int64
		)
		if err := rows.Scan(&t.ID, &t.Text, &t.Language, &createdAt); err != nil {
			return nil, errors.Wrap(err, errors.KindInternal, "db scan failed")
		}
		t.CreatedAt = time.Unix(0, createdAt)
		transcripts = append(transcripts, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to list transcripts")
	}
	return transcripts, nil
}

// Count returns the number of stored records
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transcripts;`).Scan(&count); err != nil {
		return 0, errors.Wrap(err, errors.KindInternal, "failed to count transcripts")
	}
	return count, nil
}

// Close closes the underlying database; an in-memory database is discarded
func (s *Store) Close() error {
	return s.db.Close()
}

func isPrimaryKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if stderrors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

var _ repository.TranscriptStore = (*Store)(nil)
