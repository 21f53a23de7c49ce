package service

import "github.com/vadim/neo-insight/internal/domain/analysis/entity"

const (
	veryPositiveRatio = 1.5
	// a single positive word is never enough for Very Positive
	veryPositiveMinHits = 2
)

// Sentiment scores the lower-cased text against the positive and negative vocabularies
func (s *Service) Sentiment(text string) entity.Sentiment {
	return ClassifySentiment(
		countOccurrences(text, s.lex.Positive),
		countOccurrences(text, s.lex.Negative),
	)
}

// ClassifySentiment turns positive and negative hit counts into a label
func ClassifySentiment(positive, negative int) entity.Sentiment {
	switch {
	case positive >= veryPositiveMinHits && float64(positive) > float64(negative)*veryPositiveRatio:
		return entity.SentimentVeryPositive
	case positive > negative:
		return entity.SentimentPositive
	case negative > positive:
		return entity.SentimentNegative
	default:
		return entity.SentimentNeutral
	}
}
