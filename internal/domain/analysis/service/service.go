package service

import (
	"strings"

	"github.com/vadim/neo-insight/internal/domain/analysis/entity"
	"github.com/vadim/neo-insight/internal/domain/analysis/lexicon"
)

// Service runs the content analysis pipeline over a batch of posts.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	lex *lexicon.Lexicon
}

// New creates a new analysis service. A nil lexicon selects the built-in one.
func New(lex *lexicon.Lexicon) *Service {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Service{lex: lex}
}

// Analyze produces the aggregate analysis of posts
func (s *Service) Analyze(posts []entity.Post) entity.AnalysisResult {
	result := entity.AnalysisResult{TotalPosts: len(posts)}
	for _, p := range posts {
		if p.IsReel() {
			result.ReelCount++
		} else {
			result.PostCount++
		}
	}

	text := JoinText(posts)
	themes := s.Categorize(Count(s.Tokenize(text)))

	result.Themes = themes
	result.Sentiment = s.Sentiment(text)
	result.ContentType = s.ContentFocus(text, themes)
	result.Engagement = s.Engagement(text)
	result.KeyInsights = s.Insights(text, themes, result.ContentType)
	result.Summary = s.Narrative(result.TotalPosts, themes, result.ContentType, result.Sentiment)

	return result
}

// JoinText builds the lower-cased analysis text: alt text and text content of
// every post, space-joined in extraction order
func JoinText(posts []entity.Post) string {
	parts := make([]string, 0, len(posts)*2)
	for _, p := range posts {
		parts = append(parts, p.AltText, p.TextContent)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// countOccurrences sums every occurrence of every word in text
func countOccurrences(text string, words []string) int {
	total := 0
	for _, w := range words {
		total += strings.Count(text, w)
	}
	return total
}

// countPresent returns how many distinct words occur in text
func countPresent(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
