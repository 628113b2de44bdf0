package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// timeLayout keeps a fixed width so received_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store is the local SQLite inbox for contact messages.
type Store struct {
	db *sql.DB
}

// Open opens the inbox in dataDir/website.db, creating it if needed, and
// brings its schema up to date. ":memory:" gives a private in-memory inbox.
func Open(dataDir string) (*Store, error) {
	dsn := "file::memory:?_pragma=busy_timeout(5000)"
	if dataDir != ":memory:" {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		dsn = "file:" + filepath.Join(dataDir, "website.db") +
			"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// An in-memory database lives on one connection, and the inbox has a
	// single writer.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating inbox: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// migrate applies migrations/NNN_*.sql above the file's user_version, each
// in its own transaction together with the version bump.
func (s *Store) migrate(ctx context.Context) error {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	current, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}
	if latest := len(names); current > latest {
		return fmt.Errorf("schema version %d is newer than this build supports (%d)", current, latest)
	}

	for i, name := range names {
		version := i + 1
		if want := fmt.Sprintf("migrations/%03d_", version); !strings.HasPrefix(name, want) {
			return fmt.Errorf("migration %s out of sequence, expected prefix %s", name, want)
		}
		if version <= current {
			continue
		}

		body, err := migrationsFS.ReadFile(name)
		if err != nil {
			return err
		}
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(body)); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying %s: %w", name, err)
		}
		// PRAGMA does not take bind parameters.
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording version %d: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing %s: %w", name, err)
		}
	}
	return nil
}

// SchemaVersion is the number of migrations applied to the inbox.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return v, nil
}

// SaveContactMessage stores a submission. IDs are unique.
func (s *Store) SaveContactMessage(ctx context.Context, m ContactMessage) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_messages (id, received_at, fullname, email, message, remote_addr)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.ReceivedAt.UTC().Format(timeLayout), m.Fullname, m.Email, m.Message, m.RemoteAddr,
	)
	if err != nil {
		return fmt.Errorf("saving contact message %s: %w", m.ID, err)
	}
	return nil
}

// GetContactMessage loads a single submission by ID.
func (s *Store) GetContactMessage(ctx context.Context, id string) (ContactMessage, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, received_at, fullname, email, message, remote_addr
		FROM contact_messages WHERE id = ?`, id)
	m, err := scanContactMessage(row)
	if err == sql.ErrNoRows {
		return ContactMessage{}, ErrNotFound
	}
	return m, err
}

// ListContactMessages returns the newest submissions first.
func (s *Store) ListContactMessages(ctx context.Context, limit int) ([]ContactMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, received_at, fullname, email, message, remote_addr
		FROM contact_messages ORDER BY received_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing contact messages: %w", err)
	}
	defer rows.Close()

	var out []ContactMessage
	for rows.Next() {
		m, err := scanContactMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// CountContactMessages returns the number of stored submissions.
func (s *Store) CountContactMessages(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM contact_messages").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting contact messages: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContactMessage(row scanner) (ContactMessage, error) {
	var m ContactMessage
	var receivedAt string
	if err := row.Scan(&m.ID, &receivedAt, &m.Fullname, &m.Email, &m.Message, &m.RemoteAddr); err != nil {
		return ContactMessage{}, err
	}
	t, err := time.Parse(timeLayout, receivedAt)
	if err != nil {
		return ContactMessage{}, fmt.Errorf("parsing received_at %q: %w", receivedAt, err)
	}
	m.ReceivedAt = t
	return m, nil
}
