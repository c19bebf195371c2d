package keystore

import (
	"errors"
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "keystore.db"), "test-passphrase")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSetGet(t *testing.T) {
	s := setupTestStore(t)

	if err := s.Set(KeyAuthToken, "tok-123"); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := s.Get(KeyAuthToken)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "tok-123" {
		t.Errorf("authToken = %q, want %q", got, "tok-123")
	}
}

func TestGetMissing(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.Get(KeyUser)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("get missing key: err = %v, want ErrNotFound", err)
	}
}

func TestSetOverwrites(t *testing.T) {
	s := setupTestStore(t)

	if err := s.Set(KeyUser, `{"language":"en"}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(KeyUser, `{"language":"hr"}`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := s.Get(KeyUser)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `{"language":"hr"}` {
		t.Errorf("user = %q, want overwritten value", got)
	}
}

func TestDelete(t *testing.T) {
	s := setupTestStore(t)

	if err := s.Set(KeyAuthToken, "tok"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Delete(KeyAuthToken); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(KeyAuthToken); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get after delete: err = %v, want ErrNotFound", err)
	}

	// Deleting again is a no-op.
	if err := s.Delete(KeyAuthToken); err != nil {
		t.Fatalf("delete absent key: %v", err)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keystore.db")

	s, err := Open(path, "pass")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Set(KeyAuthToken, "persisted"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s, err = Open(path, "pass")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, err := s.Get(KeyAuthToken)
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if got != "persisted" {
		t.Errorf("authToken = %q, want %q", got, "persisted")
	}
}

func TestWrongPassphraseFailsDecrypt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keystore.db")

	s, err := Open(path, "right")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Set(KeyAuthToken, "secret"); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	s, err = Open(path, "wrong")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	if _, err := s.Get(KeyAuthToken); err == nil {
		t.Fatal("expected decrypt failure with wrong passphrase, got nil")
	}
}

func TestValueBoundToKey(t *testing.T) {
	s := setupTestStore(t)

	if err := s.Set(KeyAuthToken, "secret"); err != nil {
		t.Fatalf("set: %v", err)
	}

	// Copy the blob onto another key behind the store's back; decryption
	// must fail because the key name is authenticated data.
	_, err := s.db.Exec(
		`INSERT INTO secrets (key, value, updated_at)
		 SELECT ?, value, updated_at FROM secrets WHERE key = ?`,
		KeyUser, KeyAuthToken,
	)
	if err != nil {
		t.Fatalf("copy blob: %v", err)
	}

	if _, err := s.Get(KeyUser); err == nil {
		t.Fatal("expected decrypt failure for transplanted blob, got nil")
	}
}
