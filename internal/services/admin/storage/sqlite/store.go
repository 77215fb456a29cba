package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/storeadmin/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/storeadmin/internal/services/admin/storage"
	"github.com/louisbranch/storeadmin/internal/services/admin/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const timeFormat = time.RFC3339Nano

// Store provides a SQLite-backed store implementing admin storage interfaces.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at path and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	query := url.Values{}
	query.Add("_pragma", "foreign_keys(1)")
	query.Add("_pragma", "journal_mode(WAL)")
	query.Add("_pragma", "busy_timeout(5000)")
	query.Add("_pragma", "synchronous(NORMAL)")
	dsn := "file:" + filepath.Clean(path) + "?" + query.Encode()

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// PutOperatorSession records a new operator session. Recording an existing
// session is a no-op.
func (s *Store) PutOperatorSession(ctx context.Context, sessionID string, createdAt time.Time) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("session id is required")
	}
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	stamp := createdAt.UTC().Format(timeFormat)
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO operator_sessions (session_id, created_at, last_seen_at) VALUES (?, ?, ?)
		 ON CONFLICT (session_id) DO NOTHING`,
		sessionID, stamp, stamp,
	)
	if err != nil {
		return fmt.Errorf("put operator session: %w", err)
	}
	return nil
}

// TouchOperatorSession updates the session's last activity.
func (s *Store) TouchOperatorSession(ctx context.Context, sessionID string, seenAt time.Time) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx,
		`UPDATE operator_sessions SET last_seen_at = ? WHERE session_id = ?`,
		seenAt.UTC().Format(timeFormat), sessionID,
	); err != nil {
		return fmt.Errorf("touch operator session: %w", err)
	}
	return nil
}

// OperatorSessionExists reports whether the session was recorded.
func (s *Store) OperatorSessionExists(ctx context.Context, sessionID string) (bool, error) {
	if err := s.ready(ctx); err != nil {
		return false, err
	}
	var found int
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT 1 FROM operator_sessions WHERE session_id = ?`, sessionID,
	).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup operator session: %w", err)
	}
	return true, nil
}

// DeleteOperatorSessionsBefore removes idle sessions and, through the foreign
// key, their notifications.
func (s *Store) DeleteOperatorSessionsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	result, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM operator_sessions WHERE last_seen_at < ?`, cutoff.UTC().Format(timeFormat),
	)
	if err != nil {
		return 0, fmt.Errorf("delete operator sessions: %w", err)
	}
	return result.RowsAffected()
}

// PutNotification queues a notification for its session.
func (s *Store) PutNotification(ctx context.Context, notification storage.Notification) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(notification.ID) == "" {
		return fmt.Errorf("notification id is required")
	}
	if strings.TrimSpace(notification.SessionID) == "" {
		return fmt.Errorf("session id is required")
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO notifications (id, session_id, title, message, kind, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		notification.ID,
		notification.SessionID,
		notification.Title,
		notification.Message,
		notification.Kind,
		notification.CreatedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("put notification: %w", err)
	}
	return nil
}

// DrainNotifications returns and deletes the session's notifications in one
// transaction.
func (s *Store) DrainNotifications(ctx context.Context, sessionID string) ([]storage.Notification, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin drain: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx,
		`SELECT id, title, message, kind, created_at FROM notifications
		 WHERE session_id = ? ORDER BY created_at, rowid`, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	var notifications []storage.Notification
	for rows.Next() {
		n := storage.Notification{SessionID: sessionID}
		var createdAt string
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Kind, &createdAt); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		if n.CreatedAt, err = time.Parse(timeFormat, createdAt); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("parse notification time: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("close notification rows: %w", err)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	if len(notifications) == 0 {
		return nil, nil
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM notifications WHERE session_id = ?`, sessionID); err != nil {
		return nil, fmt.Errorf("delete notifications: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit drain: %w", err)
	}
	return notifications, nil
}

var _ storage.Store = (*Store)(nil)
