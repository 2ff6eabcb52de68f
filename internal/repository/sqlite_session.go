package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bizlens/bizlens/internal/db"
	"github.com/bizlens/bizlens/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

// Upsert inserts the session or bumps its updated_at. The title is the first
// question asked, so an existing non-empty title is kept. Plain INSERT OR
// REPLACE would delete and re-insert the row, cascading away the session's
// messages, so the conflict clause updates in place.
func (r *SQLiteSessionRepo) Upsert(ctx context.Context, s *domain.ChatSession) error {
	query := `INSERT INTO chat_sessions (id, title, started_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE
		SET title = CASE WHEN chat_sessions.title = '' THEN excluded.title ELSE chat_sessions.title END,
		    updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Title,
		s.StartedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting chat session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.ChatSession, error) {
	query := `SELECT id, title, started_at, updated_at FROM chat_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) List(ctx context.Context, limit int) ([]*domain.ChatSession, error) {
	query := `SELECT id, title, started_at, updated_at FROM chat_sessions
		ORDER BY updated_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing chat sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.ChatSession
	for rows.Next() {
		var s domain.ChatSession
		var startedAtStr, updatedAtStr string
		if err := rows.Scan(&s.ID, &s.Title, &startedAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		session, parseErr := r.populateSession(&s, startedAtStr, updatedAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM chat_sessions WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting chat session: %w", err)
	}
	return nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.ChatSession, error) {
	var s domain.ChatSession
	var startedAtStr, updatedAtStr string

	err := row.Scan(&s.ID, &s.Title, &startedAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("chat session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning chat session: %w", err)
	}

	return r.populateSession(&s, startedAtStr, updatedAtStr)
}

// populateSession fills in parsed fields after scanning raw strings.
func (r *SQLiteSessionRepo) populateSession(s *domain.ChatSession, startedAtStr, updatedAtStr string) (*domain.ChatSession, error) {
	var parseErr error
	s.StartedAt, parseErr = time.Parse(time.RFC3339, startedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing started_at: %w", parseErr)
	}
	s.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return s, nil
}
