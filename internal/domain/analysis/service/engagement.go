package service

import "github.com/vadim/neo-insight/internal/domain/analysis/entity"

// engagementWordWeight multiplies hits of call-to-action words
const engagementWordWeight = 2

// Engagement thresholds, each exclusive
const (
	veryHighEngagementScore = 20
	highEngagementScore     = 10
	mediumEngagementScore   = 5
)

// Engagement rates the engagement potential of the lower-cased text
func (s *Service) Engagement(text string) entity.Engagement {
	return EngagementLevel(s.EngagementScore(text))
}

// EngagementScore weighs call-to-action words double, then adds emotional
// words and emoji from the lexicon ranges
func (s *Service) EngagementScore(text string) int {
	score := engagementWordWeight*countOccurrences(text, s.lex.EngagementWords) +
		countOccurrences(text, s.lex.EmotionalWords)

	for _, r := range text {
		for _, rr := range s.lex.EmojiRanges {
			if rr.Contains(r) {
				score++
				break
			}
		}
	}
	return score
}

// EngagementLevel buckets a score into a label
func EngagementLevel(score int) entity.Engagement {
	switch {
	case score > veryHighEngagementScore:
		return entity.EngagementVeryHigh
	case score > highEngagementScore:
		return entity.EngagementHigh
	case score > mediumEngagementScore:
		return entity.EngagementMedium
	default:
		return entity.EngagementLow
	}
}
