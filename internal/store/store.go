package store

import (
	"context"
	"time"
)

// Match is a finished game as recorded in the archive.
type Match struct {
	ID            int64
	Code          string
	Category      string
	HostName      string
	GuestName     string
	HostScore     int
	GuestScore    int
	QuestionCount int
	FinishedAt    time.Time
}

// Store archives finished matches. Live session state never touches the
// store; only completed games are written.
type Store interface {
	// SaveMatch records a finished match and returns its row id.
	SaveMatch(ctx context.Context, m *Match) (int64, error)
	// ListRecentMatches returns up to limit matches, most recent first.
	ListRecentMatches(ctx context.Context, limit int) ([]Match, error)
	// Close releases the underlying resources.
	Close() error
}
