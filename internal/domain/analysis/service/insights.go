package service

import (
	"fmt"
	"strings"

	"github.com/vadim/neo-insight/internal/domain/analysis/entity"
)

const (
	secondaryInsightRatio = 0.5
	topKeywordCount       = 3
	emotionalInsightHits  = 3
	multiThemeCount       = 3
)

const diversityInsight = "Content spans diverse topics without a dominant theme, typical of a general-interest account."

// Insights produces the qualitative observations about the batch in a fixed order
func (s *Service) Insights(text string, themes []entity.Theme, contentType string) []string {
	if len(themes) == 0 {
		return []string{diversityInsight}
	}

	var ins insightList
	primary := themes[0]

	ins.add(fmt.Sprintf("Strong focus on %s with %d relevant mentions.", primary.Name, primary.Strength))

	if len(themes) > 1 && float64(themes[1].Strength) >= secondaryInsightRatio*float64(primary.Strength) {
		ins.add(fmt.Sprintf("Secondary focus on %s complements the primary theme.", themes[1].Name))
	}

	switch {
	case strings.Contains(contentType, "Commercial"):
		ins.add("Content shows clear commercial intent with sales-oriented messaging.")
	case strings.Contains(contentType, "Educational"):
		ins.add("Content is built to educate, giving followers practical takeaways.")
	case strings.Contains(contentType, "Reviews"):
		ins.add("Reviews and recommendations position the account as a trusted source of opinions.")
	case strings.Contains(contentType, "Inspirational"):
		ins.add("Inspirational messaging aims to motivate and uplift the audience.")
	}

	if len(primary.Keywords) > 0 {
		top := primary.Keywords[:min(topKeywordCount, len(primary.Keywords))]
		ins.add(fmt.Sprintf("Top keywords for %s: %s.", primary.Name, strings.Join(top, ", ")))
	}

	if countPresent(text, s.lex.InsightEmotional) > emotionalInsightHits {
		ins.add("High emotional engagement through expressive, enthusiastic language.")
	}
	if containsAny(text, s.lex.InsightEducation) {
		ins.add("Tutorials and tips add step-by-step educational value.")
	}
	if containsAny(text, s.lex.InsightCommunity) {
		ins.add("Calls to follow and share point to a community-building focus.")
	}
	if containsAny(text, s.lex.InsightTrend) {
		ins.add("References to trending and viral topics show awareness of current trends.")
	}

	if len(themes) > multiThemeCount {
		ins.add(fmt.Sprintf("Diverse content strategy spanning %d distinct themes.", len(themes)))
	}

	return ins.items
}

// insightList keeps insertion order and drops repeats
type insightList struct {
	items []string
}

func (l *insightList) add(s string) {
	for _, existing := range l.items {
		if existing == s {
			return
		}
	}
	l.items = append(l.items, s)
}
