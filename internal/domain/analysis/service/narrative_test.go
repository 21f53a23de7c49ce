package service

import (
	"strings"
	"testing"

	"github.com/vadim/neo-insight/internal/domain/analysis/entity"
)

func TestNarrative(t *testing.T) {
	svc := New(nil)

	automotive := []entity.Theme{
		{Name: "Automotive", Strength: 2},
		{Name: "Lifestyle", Strength: 1},
	}

	tests := []struct {
		name        string
		total       int
		themes      []entity.Theme
		contentType string
		sentiment   entity.Sentiment
		want        string
	}{
		{
			name:        "no themes",
			total:       0,
			contentType: entity.GeneralContentType,
			sentiment:   entity.SentimentNeutral,
			want: "This collection of 0 posts covers general social media content. " +
				"The overall tone is neutral and informational. " +
				"Overall, this looks like a lifestyle account.",
		},
		{
			name:        "single commercial post",
			total:       1,
			themes:      automotive,
			contentType: "Commercial Automotive Content",
			sentiment:   entity.SentimentPositive,
			want: "This collection of 1 post centers on Automotive. " +
				"The overall tone is positive. " +
				"Posts showcase vehicles and automotive details for car enthusiasts. " +
				"Overall, this looks like an automotive account.",
		},
		{
			name:  "top three themes",
			total: 12,
			themes: []entity.Theme{
				{Name: "Art & Culture", Strength: 9},
				{Name: "Travel & Places", Strength: 5},
				{Name: "Food & Cooking", Strength: 2},
			},
			contentType: "Art & Culture Content",
			sentiment:   entity.SentimentVeryPositive,
			want: "This collection of 12 posts centers on Art & Culture. " +
				"The overall tone is very positive, with enthusiastic language throughout. " +
				"Posts display creative work and cultural interests. " +
				"Key themes include Art & Culture, Travel & Places and Food & Cooking. " +
				"Overall, this looks like an art and culture account.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Narrative(tt.total, tt.themes, tt.contentType, tt.sentiment)
			if got != tt.want {
				t.Errorf("Narrative() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestNarrativeDomainOrder(t *testing.T) {
	svc := New(nil)
	themes := []entity.Theme{{Name: "Fitness & Health", Strength: 3}}

	got := svc.Narrative(3, themes, "Fitness & Health Reviews & Recommendations", entity.SentimentNeutral)
	if !strings.Contains(got, "training routines") {
		t.Errorf("Expected the fitness sentence to win over review, got %q", got)
	}
	if strings.Contains(got, "opinions and recommendations") {
		t.Errorf("Expected only one domain sentence, got %q", got)
	}
}

func TestNarrativeClosingUsesPrimaryTheme(t *testing.T) {
	svc := New(nil)
	themes := []entity.Theme{{Name: "Lifestyle", Strength: 3}}

	got := svc.Narrative(3, themes, "Commercial Lifestyle Content", entity.SentimentNegative)
	if !strings.Contains(got, "oriented toward selling") {
		t.Errorf("Expected the commercial sentence from the content type, got %q", got)
	}
	if !strings.HasSuffix(got, "Overall, this looks like a lifestyle account.") {
		t.Errorf("Expected the lifestyle fallback closing, got %q", got)
	}
	if !strings.Contains(got, "leans negative") {
		t.Errorf("Expected the negative clause, got %q", got)
	}
}
