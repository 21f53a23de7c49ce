package service

import (
	"sort"

	"github.com/vadim/neo-insight/internal/domain/analysis/entity"
	"github.com/vadim/neo-insight/internal/domain/analysis/lexicon"
)

// topTokenLimit is how many of the most frequent tokens are categorized
const topTokenLimit = 20

// Categorize maps the most frequent tokens onto the lexicon categories.
// Themes come back strongest first; equal strengths keep category order.
func (s *Service) Categorize(freqs *Frequencies) []entity.Theme {
	catchAll := s.lex.CategoryIndex(lexicon.CatchAll)
	assigned := make([][]TokenCount, len(s.lex.Categories))

	for _, tc := range freqs.Top(topTokenLimit) {
		idx := s.bestCategory(tc)
		if idx < 0 {
			idx = catchAll
		}
		if idx < 0 {
			continue
		}
		assigned[idx] = append(assigned[idx], tc)
	}

	themes := make([]entity.Theme, 0, len(assigned))
	for i, tcs := range assigned {
		if len(tcs) == 0 {
			continue
		}
		theme := entity.Theme{
			Name:     s.lex.Categories[i].Name,
			Keywords: make([]string, 0, len(tcs)),
		}
		// tcs is already ordered by descending frequency
		for _, tc := range tcs {
			theme.Strength += tc.Count
			theme.Keywords = append(theme.Keywords, tc.Token)
		}
		themes = append(themes, theme)
	}

	sort.SliceStable(themes, func(i, j int) bool {
		return themes[i].Strength > themes[j].Strength
	})
	return themes
}

// bestCategory picks the category with the highest single-token score for tc,
// the first listed one on a tie. Returns -1 when no vocabulary has the token.
func (s *Service) bestCategory(tc TokenCount) int {
	best, bestScore := -1, 0
	for _, idx := range s.lex.CategoriesFor(tc.Token) {
		score := tc.Count
		if best < 0 || score > bestScore {
			best, bestScore = idx, score
		}
	}
	return best
}
