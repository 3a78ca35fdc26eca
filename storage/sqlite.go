// Package storage is the durable local store backing user state and
// recorded contact inquiries. It is a single SQLite file next to the
// binary; there is no server and no remote database.
package storage

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"dharti/models"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS user_state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS contact_messages (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		message TEXT NOT NULL,
		created_at DATETIME
	);

	CREATE INDEX IF NOT EXISTS idx_contact_created ON contact_messages(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// GetValue reads a user_state blob. A missing key returns ("", false)
// with no error so callers can fall back to empty state.
func (s *SQLiteStore) GetValue(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM user_state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// SetValue replaces a user_state blob wholesale. Writes are small and
// human-triggered, so whole-value upserts are fine.
func (s *SQLiteStore) SetValue(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO user_state (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		key, value, time.Now())
	return err
}

func (s *SQLiteStore) InsertContactMessage(m *models.ContactMessage) error {
	_, err := s.db.Exec(`
		INSERT INTO contact_messages (id, name, email, phone, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Email, m.Phone, m.Message, m.CreatedAt)
	return err
}

func (s *SQLiteStore) GetContactMessages(limit int) ([]models.ContactMessage, error) {
	rows, err := s.db.Query(`
		SELECT id, name, email, phone, message, created_at
		FROM contact_messages ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []models.ContactMessage
	for rows.Next() {
		var m models.ContactMessage
		var phone sql.NullString
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &phone, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Phone = phone.String
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
