// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// MaxNameLength is the number of characters kept from a display name.
	MaxNameLength = 30
	// MinNameLength is the shortest accepted sanitized display name.
	MinNameLength = 2
)

// SanitizeName trims surrounding whitespace and truncates to MaxNameLength characters
func SanitizeName(raw string) string {
	name := strings.TrimSpace(raw)
	if utf8.RuneCountInString(name) <= MaxNameLength {
		return name
	}
	runes := []rune(name)
	return string(runes[:MaxNameLength])
}

// ValidName reports whether the sanitized form of raw is long enough to identify a participant
func ValidName(raw string) bool {
	return utf8.RuneCountInString(SanitizeName(raw)) >= MinNameLength
}

// FoldName returns the case-folded form used for identity and ordering.
// A Caser is stateful, so one is created per call.
func FoldName(name string) string {
	return cases.Lower(language.Und).String(name)
}

// ParticipantKey derives the identity key of a participant from their name.
// Names that sanitize and lower-case to the same string share a key.
func ParticipantKey(name string) string {
	sum := sha256.Sum256([]byte(FoldName(SanitizeName(name))))
	return hex.EncodeToString(sum[:])
}

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// First 16 hex chars are enough to tell clients apart
	return hex.EncodeToString(sum[:8])
}
