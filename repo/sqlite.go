// Package repo persists completed registrations in SQLite and mirrors
// them into an Excel snapshot.
package repo

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/rose1304003/Finlit-bot/model"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS registrations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    telegram_id INTEGER,
    telegram_username TEXT,
    full_name TEXT,
    workplace TEXT,
    career_field TEXT,
    interests TEXT,
    networking_goals TEXT,
    region TEXT,
    languages TEXT,
    topics TEXT,
    meet_format TEXT,
    self_desc TEXT,
    created_at TEXT
);`

// Columns in table order, shared with the Excel exporter's header row.
var columns = []string{
	"id", "telegram_id", "telegram_username", "full_name", "workplace",
	"career_field", "interests", "networking_goals", "region", "languages",
	"topics", "meet_format", "self_desc", "created_at",
}

// Store persists registrations in a single SQLite table.
type Store struct {
	db *sql.DB
}

// StoredRegistration is a saved record together with its row id.
type StoredRegistration struct {
	ID int64
	model.Registration
}

// Open opens (creating if needed) the SQLite database at path.
func Open(path string) (*Store, error) {
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// EnsureSchema creates the registrations table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Save inserts one registration.
func (s *Store) Save(ctx context.Context, reg model.Registration) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO registrations (
			telegram_id, telegram_username, full_name, workplace, career_field,
			interests, networking_goals, region, languages, topics, meet_format,
			self_desc, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		reg.TelegramID, reg.TelegramUsername, reg.FullName, reg.Workplace,
		reg.CareerField, reg.Interests, reg.NetworkingGoals, reg.Region,
		reg.Languages, reg.Topics, reg.MeetFormat, reg.SelfDesc, reg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save registration: %w", err)
	}
	return nil
}

// CountAll returns the total number of saved registrations.
func (s *Store) CountAll(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}
	return n, nil
}

// ListCreatedAt returns every record's creation timestamp, as stored.
func (s *Store) ListCreatedAt(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT created_at FROM registrations`)
	if err != nil {
		return nil, fmt.Errorf("list creation timestamps: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var ts string
		if err := rows.Scan(&ts); err != nil {
			return nil, fmt.Errorf("scan creation timestamp: %w", err)
		}
		out = append(out, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list creation timestamps: %w", err)
	}
	return out, nil
}

// ListAll returns every registration, newest first.
func (s *Store) ListAll(ctx context.Context) ([]StoredRegistration, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, telegram_id, telegram_username, full_name, workplace,
		       career_field, interests, networking_goals, region, languages,
		       topics, meet_format, self_desc, created_at
		FROM registrations ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var out []StoredRegistration
	for rows.Next() {
		var r StoredRegistration
		if err := rows.Scan(
			&r.ID, &r.TelegramID, &r.TelegramUsername, &r.FullName, &r.Workplace,
			&r.CareerField, &r.Interests, &r.NetworkingGoals, &r.Region, &r.Languages,
			&r.Topics, &r.MeetFormat, &r.SelfDesc, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return out, nil
}
