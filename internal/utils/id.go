package utils

import "github.com/google/uuid"

// NewID returns a random identifier for connections and relayed messages.
func NewID() string {
	return uuid.NewString()
}
