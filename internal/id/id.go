// Package id generates and recognizes the opaque identifiers the server hands out.
package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	requestPrefix = "req"
	nanoidLength  = 21
)

// Generate creates a prefixed ID such as "req-V1StGXR8_Z5jdHi6B-myT".
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// MustGenerate is like Generate but panics if the system is out of entropy.
func MustGenerate(prefix string) string {
	id, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}

// Request returns a new request ID.
func Request() string {
	return MustGenerate(requestPrefix)
}

// ValidRequest reports whether a client-supplied request ID may be echoed back
// and logged: either a UUID or an ID produced by Request.
func ValidRequest(s string) bool {
	if _, err := uuid.Parse(s); err == nil {
		return true
	}

	rest, ok := strings.CutPrefix(s, requestPrefix+"-")
	if !ok || len(rest) != nanoidLength {
		return false
	}
	for _, c := range rest {
		if !isURLSafe(c) {
			return false
		}
	}
	return true
}

func isURLSafe(c rune) bool {
	return (c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z') ||
		(c >= '0' && c <= '9') ||
		c == '_' || c == '-'
}
