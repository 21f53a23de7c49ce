package service

import (
	"fmt"

	"github.com/vadim/neo-insight/internal/domain/analysis/entity"
	"github.com/vadim/neo-insight/internal/domain/analysis/lexicon"
)

// secondaryFocusRatio is the share of the primary strength a secondary theme
// needs to be named in the content type
const secondaryFocusRatio = 0.7

// ContentFocus derives the content-type label from themes and intent words.
// Intents are checked in lexicon order and the first one found wins.
func (s *Service) ContentFocus(text string, themes []entity.Theme) string {
	if len(themes) == 0 {
		return entity.GeneralContentType
	}

	primary := themes[0]
	for _, iv := range s.lex.Intents {
		if containsAny(text, iv.Words) {
			return intentLabel(iv.Intent, primary.Name)
		}
	}

	if len(themes) > 1 && float64(themes[1].Strength) >= secondaryFocusRatio*float64(primary.Strength) {
		return fmt.Sprintf("%s & %s Content", primary.Name, themes[1].Name)
	}
	return primary.Name + " Content"
}

func intentLabel(intent lexicon.Intent, primary string) string {
	switch intent {
	case lexicon.IntentCommercial:
		return "Commercial " + primary + " Content"
	case lexicon.IntentEducational:
		return "Educational " + primary + " Content"
	case lexicon.IntentReview:
		return primary + " Reviews & Recommendations"
	case lexicon.IntentInspirational:
		return "Inspirational " + primary + " Content"
	default:
		return primary + " Content"
	}
}
