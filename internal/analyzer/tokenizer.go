package analyzer

import (
	"regexp"
	"strings"
)

// Token extraction: maximal runs of ASCII alphanumerics optionally joined by
// single hyphens or slashes, so "ci/cd" and "front-end" stay whole tokens.
var (
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
	wordRegex    = regexp.MustCompile(`[A-Za-z0-9]+(?:[/-][A-Za-z0-9]+)*`)
)

// Tokenizer extracts normalized tokens from free text, filtering against a
// configured stop-word set. The stop-word set is data, not logic: swapping
// it never touches extraction.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a tokenizer with the given stop-word list.
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops}
}

// ExtractTokens strips markup from text and returns its surviving tokens in
// input order, duplicates retained. Tokens are lowercased; tokens shorter
// than 2 characters and stop-listed tokens are dropped.
func (t *Tokenizer) ExtractTokens(text string) []string {
	if text == "" {
		return nil
	}
	plain := htmlTagRegex.ReplaceAllString(text, "")

	words := wordRegex.FindAllString(plain, -1)
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.ToLower(word)
		if len(word) < 2 {
			continue
		}
		if _, stop := t.stopwords[word]; stop {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}
