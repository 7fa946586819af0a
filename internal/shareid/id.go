// Package shareid mints the short public tokens used in share links.
//
// An id is 10 characters of the URL-safe base64 alphabet ([A-Za-z0-9_-]) carrying
// 60 random bits taken from a version 4 UUID. Ids are not checked against storage
// before use; collision resistance comes from the entropy alone.
package shareid

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// Length is the number of characters in a share id.
const Length = 10

// New returns a fresh share id.
func New() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	// skip byte 6 (version nibble) and byte 8 (variant bits)
	b := make([]byte, 0, 14)
	b = append(b, u[0:6]...)
	b = append(b, u[7])
	b = append(b, u[9:16]...)
	return base64.RawURLEncoding.EncodeToString(b)[:Length], nil
}

// Valid reports whether s has the shape of a share id.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
