package service

import (
	"fmt"
	"strings"

	"github.com/vadim/neo-insight/internal/domain/analysis/entity"
	"github.com/vadim/neo-insight/internal/domain/analysis/lexicon"
)

// Narrative composes the prose summary of an analysis
func (s *Service) Narrative(totalPosts int, themes []entity.Theme, contentType string, sentiment entity.Sentiment) string {
	noun := "posts"
	if totalPosts == 1 {
		noun = "post"
	}

	var parts []string
	if len(themes) > 0 {
		parts = append(parts, fmt.Sprintf("This collection of %d %s centers on %s.", totalPosts, noun, themes[0].Name))
	} else {
		parts = append(parts, fmt.Sprintf("This collection of %d %s covers general social media content.", totalPosts, noun))
	}

	parts = append(parts, sentimentClause(sentiment))

	if d, ok := s.matchDomain(contentType); ok {
		parts = append(parts, d.Sentence)
	}

	if len(themes) > 2 {
		parts = append(parts, fmt.Sprintf("Key themes include %s, %s and %s.", themes[0].Name, themes[1].Name, themes[2].Name))
	}

	account := s.lex.FallbackAccount
	if len(themes) > 0 {
		if d, ok := s.matchDomain(themes[0].Name); ok {
			account = d.Account
		}
	}
	parts = append(parts, fmt.Sprintf("Overall, this looks like %s.", withArticle(account)))

	return strings.Join(parts, " ")
}

// matchDomain returns the first domain whose key occurs in label
func (s *Service) matchDomain(label string) (lexicon.Domain, bool) {
	lower := strings.ToLower(label)
	for _, d := range s.lex.Domains {
		if strings.Contains(lower, d.Key) {
			return d, true
		}
	}
	return lexicon.Domain{}, false
}

func sentimentClause(sentiment entity.Sentiment) string {
	switch sentiment {
	case entity.SentimentVeryPositive:
		return "The overall tone is very positive, with enthusiastic language throughout."
	case entity.SentimentPositive:
		return "The overall tone is positive."
	case entity.SentimentNegative:
		return "The overall tone leans negative, with critical or disappointed language."
	default:
		return "The overall tone is neutral and informational."
	}
}

func withArticle(noun string) string {
	if noun == "" {
		return noun
	}
	switch noun[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an " + noun
	}
	return "a " + noun
}
