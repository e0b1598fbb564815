package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// secretCost is the bcrypt cost for room passwords. Rooms live only as
	// long as the process, and checks run on the hub goroutine.
	secretCost = bcrypt.MinCost
)

// HashSecret generates a bcrypt hash of a room password. Secrets of any
// length are accepted.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(digest(secret), secretCost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(hash), nil
}

// SecretMatches reports whether secret matches the stored bcrypt hash.
// An empty hash never matches.
func SecretMatches(hash, secret string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), digest(secret)) == nil
}

// digest folds the secret to a fixed size below bcrypt's 72-byte input cap.
func digest(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	out := make([]byte, base64.RawStdEncoding.EncodedLen(len(sum)))
	base64.RawStdEncoding.Encode(out, sum[:])
	return out
}
