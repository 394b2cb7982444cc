// Package docid generates identifiers for range documents: UUIDv7 values
// written as 26 characters of Crockford base32, so they sort by creation
// time.
package docid

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Length is the number of characters in an encoded ID.
const Length = 26

// Crockford's base32 alphabet, lower case.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Generate returns a new time-ordered document ID.
func Generate() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate document id: %w", err)
	}
	return Encode(id), nil
}

// GenerateFromReader is like Generate but takes its random bits from r,
// which makes IDs reproducible in tests. A nil reader behaves like
// Generate.
func GenerateFromReader(r io.Reader) (string, error) {
	if r == nil {
		return Generate()
	}
	id, err := uuid.NewV7FromReader(r)
	if err != nil {
		return "", fmt.Errorf("generate document id: %w", err)
	}
	return Encode(id), nil
}

// Encode writes the 128-bit UUID as 26 base32 characters. The value is
// padded on the left with two zero bits, so the first character is 0-7.
func Encode(id uuid.UUID) string {
	out := make([]byte, Length)
	for i := range Length {
		var v byte
		for j := range 5 {
			pos := i*5 + j - 2
			var bit byte
			if pos >= 0 {
				bit = (id[pos/8] >> (7 - pos%8)) & 1
			}
			v = v<<1 | bit
		}
		out[i] = alphabet[v]
	}
	return string(out)
}

// Parse decodes an encoded ID back into its UUID.
func Parse(s string) (uuid.UUID, error) {
	var id uuid.UUID
	if len(s) != Length {
		return id, fmt.Errorf("document ID must be exactly %d characters, got %d", Length, len(s))
	}
	if s[0] > '7' {
		return id, fmt.Errorf("document ID first character must be 0-7, got %c", s[0])
	}

	for i := range Length {
		v := strings.IndexByte(alphabet, s[i])
		if v < 0 {
			return id, fmt.Errorf("invalid character %c at position %d", s[i], i)
		}
		for j := range 5 {
			pos := i*5 + j - 2
			if pos < 0 {
				continue
			}
			if v>>(4-j)&1 == 1 {
				id[pos/8] |= 1 << (7 - pos%8)
			}
		}
	}
	return id, nil
}

// Validate reports whether s is a well-formed document ID.
func Validate(s string) error {
	_, err := Parse(s)
	return err
}
