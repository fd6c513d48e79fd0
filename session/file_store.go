package session

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/chacha20poly1305"
)

// ErrInvalidKeyLength is returned when the provided encryption key length is invalid.
var ErrInvalidKeyLength = errors.New("invalid key length")

// ErrCiphertextCorrupt is returned when a stored entry fails authenticated decryption.
var ErrCiphertextCorrupt = errors.New("session entry corrupt")

// FileStore persists session entries encrypted at rest, one file per key,
// under a single directory. Every value is sealed with XChaCha20-Poly1305
// using a random nonce prepended to the ciphertext, and files are written
// with 0600 permissions via a same-directory rename.
//
//	Docs: docs/session.md
type FileStore struct {
	dir  string
	aead cipher.AEAD
}

// NewFileStore creates a [FileStore] rooted at dir. key must be exactly 32
// bytes ([chacha20poly1305.KeySize]); the directory is created if missing.
func NewFileStore(dir string, key []byte) (*FileStore, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, ErrInvalidKeyLength
	}
	if dir == "" {
		return nil, errors.New("file store directory required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}

	return &FileStore{dir: dir, aead: aead}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".bin")
}

// Get describes the get operation and its observable behavior.
//
// Get may return an error when input validation, dependency calls, or security checks fail.
// Get does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (f *FileStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if len(data) < f.aead.NonceSize() {
		return "", ErrCiphertextCorrupt
	}

	nonce, ciphertext := data[:f.aead.NonceSize()], data[f.aead.NonceSize():]
	plaintext, err := f.aead.Open(nil, nonce, ciphertext, []byte(key))
	if err != nil {
		return "", ErrCiphertextCorrupt
	}

	return string(plaintext), nil
}

// Set describes the set operation and its observable behavior.
//
// Set may return an error when input validation, dependency calls, or security checks fail.
// Set does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (f *FileStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	nonce := make([]byte, f.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// The key name is bound as additional data so a value copied between
	// entry files fails to decrypt.
	sealed := f.aead.Seal(nonce, nonce, []byte(value), []byte(key))

	tmp, err := os.CreateTemp(f.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(sealed); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err := os.Rename(tmpName, f.path(key)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return nil
}

// Delete describes the delete operation and its observable behavior.
//
// Delete may return an error when input validation, dependency calls, or security checks fail.
// Delete does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (f *FileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(f.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}
