// Package passhash derives password verifiers from a plaintext password and a
// per-user random salt. The salt is stored next to the hash so a captured
// table cannot be attacked with precomputed dictionaries.
package passhash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes  = 16
	iterations = 10_000
	keyLength  = 32
)

func NewSalt() (string, error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate salt failed: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

func Hash(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha256.New)
	return hex.EncodeToString(key)
}

func Verify(password, salt, storedHash string) bool {
	computed := Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
