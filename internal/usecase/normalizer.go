package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// stopWords are low-signal words dropped during tokenization
var stopWords = map[string]bool{
	"the": true, "and": true, "or": true, "of": true, "a": true,
	"an": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "with": true, "by": true,
}

// Normalize canonicalizes a raw product name for comparison.
// Converts to lowercase, removes everything that is not a letter, digit or
// whitespace, and collapses whitespace runs into single spaces.
// Idempotent; empty input yields an empty string.
func Normalize(s string) string {
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// Tokenize splits a normalized string into its set of significant tokens.
// Stop words and tokens of length 1 are dropped; duplicates collapse.
func Tokenize(normalized string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, word := range strings.Fields(normalized) {
		if len(word) <= 1 {
			continue
		}
		if stopWords[word] {
			continue
		}
		tokens[word] = struct{}{}
	}
	return tokens
}
