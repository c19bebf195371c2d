// Package keystore is the device-local secure store for the auth token and
// the cached user profile. Values live in a small SQLite database with each
// value encrypted individually, so Get/Set/Delete stay atomic per call and
// no multi-key transaction is ever needed.
package keystore

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// The two logical records the app persists.
const (
	KeyAuthToken = "authToken"
	KeyUser      = "user"
)

// ErrNotFound reports that a key has no stored value.
var ErrNotFound = errors.New("keystore: key not found")

//go:embed migrations/*.sql
var migrations embed.FS

// Store wraps the encrypted SQLite key-value database.
type Store struct {
	db  *sql.DB
	box *secretBox
}

// Open opens (creating if needed) the keystore at dbPath, runs migrations,
// and derives the encryption key from the passphrase plus a per-install
// identifier generated on first open.
func Open(dbPath, passphrase string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open keystore db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping keystore db: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run keystore migrations: %w", err)
	}

	installID, salt, err := loadInstall(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	box, err := newSecretBox(passphrase+installID, salt)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init keystore cipher: %w", err)
	}

	return &Store{db: db, box: box}, nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

// loadInstall returns the install identity, creating it on first open.
func loadInstall(db *sql.DB) (string, []byte, error) {
	var installID string
	var salt []byte
	err := db.QueryRow(`SELECT install_id, salt FROM install WHERE id = 1`).Scan(&installID, &salt)
	if err == nil {
		return installID, salt, nil
	}
	if err != sql.ErrNoRows {
		return "", nil, fmt.Errorf("load install identity: %w", err)
	}

	installID = uuid.NewString()
	salt, err = generateSalt()
	if err != nil {
		return "", nil, err
	}
	_, err = db.Exec(`INSERT INTO install (id, install_id, salt, created_at) VALUES (1, ?, ?, ?)`,
		installID, salt, time.Now().UTC())
	if err != nil {
		return "", nil, fmt.Errorf("store install identity: %w", err)
	}
	return installID, salt, nil
}

// Get returns the decrypted value for key, or ErrNotFound.
func (s *Store) Get(key string) (string, error) {
	var blob []byte
	err := s.db.QueryRow(`SELECT value FROM secrets WHERE key = ?`, key).Scan(&blob)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("get %q: %w", key, err)
	}

	plain, err := s.box.open(blob, key)
	if err != nil {
		return "", fmt.Errorf("decrypt %q: %w", key, err)
	}
	return string(plain), nil
}

// Set encrypts and stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	blob, err := s.box.seal([]byte(value), key)
	if err != nil {
		return fmt.Errorf("encrypt %q: %w", key, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO secrets (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, blob, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM secrets WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
