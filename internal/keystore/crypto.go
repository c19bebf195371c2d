package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize  = 16
	nonceSize = 12
	keySize   = 32
	argonTime = 3
	argonMem  = 64 * 1024
	argonPar  = 4
)

// secretBox encrypts individual values with AES-256-GCM under an Argon2id
// derived key. Each stored blob is [12-byte nonce][ciphertext]; the key
// name is bound in as additional data so a blob copied onto another key
// fails to decrypt.
type secretBox struct {
	aead cipher.AEAD
}

func generateSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

func newSecretBox(passphrase string, salt []byte) (*secretBox, error) {
	key := argon2.IDKey([]byte(passphrase), salt, argonTime, argonMem, argonPar, keySize)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &secretBox{aead: aead}, nil
}

func (b *secretBox) seal(plaintext []byte, key string) ([]byte, error) {
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	out := make([]byte, 0, nonceSize+len(plaintext)+b.aead.Overhead())
	out = append(out, nonce...)
	return b.aead.Seal(out, nonce, plaintext, []byte(key)), nil
}

func (b *secretBox) open(blob []byte, key string) ([]byte, error) {
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("encrypted value too small")
	}
	nonce := blob[:nonceSize]
	ciphertext := blob[nonceSize:]

	plaintext, err := b.aead.Open(nil, nonce, ciphertext, []byte(key))
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}
	return plaintext, nil
}
