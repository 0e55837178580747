package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Kamzyled/Love-moyosola/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS matches (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	code           TEXT    NOT NULL,
	category       TEXT    NOT NULL,
	host_name      TEXT    NOT NULL,
	guest_name     TEXT    NOT NULL,
	host_score     INTEGER NOT NULL,
	guest_score    INTEGER NOT NULL,
	question_count INTEGER NOT NULL,
	finished_at    DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_matches_finished_at ON matches(finished_at);
`

// SQLiteStore implements store.Store for SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLite store and applies the schema.
// dbPath is the path to the SQLite database file.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite works best with a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveMatch records a finished match.
func (s *SQLiteStore) SaveMatch(ctx context.Context, m *store.Match) (int64, error) {
	query := `
		INSERT INTO matches (code, category, host_name, guest_name, host_score, guest_score, question_count, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := s.db.ExecContext(ctx, query,
		m.Code, m.Category, m.HostName, m.GuestName,
		m.HostScore, m.GuestScore, m.QuestionCount, m.FinishedAt)
	if err != nil {
		return 0, fmt.Errorf("insert match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id: %w", err)
	}
	return id, nil
}

// ListRecentMatches returns up to limit matches, most recent first.
func (s *SQLiteStore) ListRecentMatches(ctx context.Context, limit int) ([]store.Match, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, code, category, host_name, guest_name, host_score, guest_score, question_count, finished_at
		FROM matches
		ORDER BY finished_at DESC, id DESC
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	var matches []store.Match
	for rows.Next() {
		var m store.Match
		if err := rows.Scan(&m.ID, &m.Code, &m.Category, &m.HostName, &m.GuestName,
			&m.HostScore, &m.GuestScore, &m.QuestionCount, &m.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}
	return matches, nil
}
