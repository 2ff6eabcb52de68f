package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bizlens/bizlens/internal/db"
	"github.com/bizlens/bizlens/internal/domain"
)

// SQLiteMessageRepo implements MessageRepo using a SQLite database.
type SQLiteMessageRepo struct {
	db db.DBTX
}

// NewSQLiteMessageRepo creates a new SQLiteMessageRepo.
func NewSQLiteMessageRepo(conn db.DBTX) *SQLiteMessageRepo {
	return &SQLiteMessageRepo{db: conn}
}

func (r *SQLiteMessageRepo) Create(ctx context.Context, m *domain.ChatMessage) error {
	specVal, err := specToValue(m.Spec)
	if err != nil {
		return err
	}
	query := `INSERT INTO chat_messages (id, session_id, role, content, chart_desc, source, spec_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		m.ID,
		m.SessionID,
		string(m.Role),
		m.Content,
		m.ChartDescription,
		m.Source,
		specVal,
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting chat message: %w", err)
	}
	return nil
}

// ListBySession returns a session's messages oldest first. created_at has
// second resolution, so rowid breaks ties for the two halves of one turn.
func (r *SQLiteMessageRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.ChatMessage, error) {
	query := `SELECT id, session_id, role, content, chart_desc, source, spec_json, created_at
		FROM chat_messages WHERE session_id = ? ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing messages by session: %w", err)
	}
	defer rows.Close()
	return r.scanMessages(rows)
}

// ListRecent returns the newest messages across all sessions, newest first.
func (r *SQLiteMessageRepo) ListRecent(ctx context.Context, limit int) ([]*domain.ChatMessage, error) {
	query := `SELECT id, session_id, role, content, chart_desc, source, spec_json, created_at
		FROM chat_messages ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent messages: %w", err)
	}
	defer rows.Close()
	return r.scanMessages(rows)
}

func (r *SQLiteMessageRepo) CountBySession(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM chat_messages WHERE session_id = ?`, sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting messages: %w", err)
	}
	return count, nil
}

// scanMessages scans multiple messages from *sql.Rows.
func (r *SQLiteMessageRepo) scanMessages(rows *sql.Rows) ([]*domain.ChatMessage, error) {
	var messages []*domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		var role, createdAtStr string
		var specStr sql.NullString

		err := rows.Scan(
			&m.ID, &m.SessionID, &role, &m.Content, &m.ChartDescription, &m.Source, &specStr, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning message row: %w", err)
		}

		m.Role = domain.MessageRole(role)
		m.Spec, err = specFromValue(specStr)
		if err != nil {
			return nil, err
		}
		m.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}

		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}
	return messages, nil
}
