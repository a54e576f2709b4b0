// Package store persists unanswered questions so the support team can mine
// them for new FAQ entries. The sink is optional: without a configured
// Postgres URL the service only logs.
//
// Expected table:
//
//	CREATE TABLE unanswered_questions (
//	    id         TEXT PRIMARY KEY,
//	    question   TEXT NOT NULL,
//	    asked_at   TIMESTAMPTZ NOT NULL,
//	    ip         TEXT,
//	    user_agent TEXT,
//	    referer    TEXT,
//	    client     JSONB
//	);
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// Store wraps the Postgres connection for the unanswered-question sink.
type Store struct {
	DB *sql.DB
}

// UnansweredQuestion is one logged record.
type UnansweredQuestion struct {
	ID        string
	Question  string
	AskedAt   time.Time
	IP        string
	UserAgent string
	Referer   string
	Client    []byte // raw JSON from the widget, opaque to us
}

// NewWithDSN opens and pings a Postgres connection.
func NewWithDSN(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Store{DB: db}, nil
}

// SaveUnanswered inserts one record.
func (s *Store) SaveUnanswered(ctx context.Context, q UnansweredQuestion) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO unanswered_questions (id, question, asked_at, ip, user_agent, referer, client)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		q.ID, q.Question, q.AskedAt, q.IP, q.UserAgent, q.Referer, q.Client)
	if err != nil {
		return fmt.Errorf("insert unanswered question: %w", err)
	}
	return nil
}
