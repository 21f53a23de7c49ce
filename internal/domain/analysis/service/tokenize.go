package service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTokenLength is the longest token that is still discarded
const minTokenLength = 3

// Tokenize normalizes text into candidate words in first-occurrence order.
// Punctuation and symbols split words, short tokens and stop words are dropped,
// duplicates are kept for counting.
func (s *Service) Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, strings.ToLower(text))

	var tokens []string
	for _, field := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(field) <= minTokenLength {
			continue
		}
		if s.lex.IsStopWord(field) {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}
