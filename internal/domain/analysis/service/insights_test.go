package service

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vadim/neo-insight/internal/domain/analysis/entity"
)

func TestInsightsWithoutThemes(t *testing.T) {
	svc := New(nil)

	got := svc.Insights("tutorial community viral", nil, entity.GeneralContentType)
	if len(got) != 1 || got[0] != diversityInsight {
		t.Errorf("Expected only the diversity note, got %v", got)
	}
}

func TestInsightsOrder(t *testing.T) {
	svc := New(nil)

	themes := []entity.Theme{
		{Name: "Automotive", Strength: 2, Keywords: []string{"sale", "price"}},
		{Name: "Lifestyle", Strength: 1, Keywords: []string{"beautiful"}},
	}
	got := svc.Insights("beautiful bmw m3 for sale, dm for price 🔥", themes, "Commercial Automotive Content")

	want := []string{
		"Strong focus on Automotive with 2 relevant mentions.",
		"Secondary focus on Lifestyle complements the primary theme.",
		"Content shows clear commercial intent with sales-oriented messaging.",
		"Top keywords for Automotive: sale, price.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Insights() =\n%q\nwant\n%q", got, want)
	}
}

func TestInsightsConditions(t *testing.T) {
	svc := New(nil)

	primary := entity.Theme{Name: "Fitness & Health", Strength: 10, Keywords: []string{"yoga", "workout", "fitness", "pilates"}}
	weak := entity.Theme{Name: "Lifestyle", Strength: 4, Keywords: []string{"home"}}
	food := entity.Theme{Name: "Food & Cooking", Strength: 3}
	travel := entity.Theme{Name: "Travel & Places", Strength: 2}

	tests := []struct {
		name        string
		text        string
		themes      []entity.Theme
		contentType string
		contains    string
		absent      string
	}{
		{
			name:        "secondary below half is skipped",
			themes:      []entity.Theme{primary, weak},
			contentType: "Fitness & Health Content",
			absent:      "Secondary focus",
		},
		{
			name:        "top three keywords",
			themes:      []entity.Theme{primary},
			contentType: "Fitness & Health Content",
			contains:    "Top keywords for Fitness & Health: yoga, workout, fitness.",
		},
		{
			name:        "educational content type",
			themes:      []entity.Theme{primary},
			contentType: "Educational Fitness & Health Content",
			contains:    "Content is built to educate",
		},
		{
			name:        "reviews content type",
			themes:      []entity.Theme{primary},
			contentType: "Fitness & Health Reviews & Recommendations",
			contains:    "Reviews and recommendations",
		},
		{
			name:        "inspirational content type",
			themes:      []entity.Theme{primary},
			contentType: "Inspirational Fitness & Health Content",
			contains:    "Inspirational messaging",
		},
		{
			name:        "more than three emotional words",
			text:        "amazing beautiful stunning perfect",
			themes:      []entity.Theme{primary},
			contentType: "Fitness & Health Content",
			contains:    "High emotional engagement",
		},
		{
			name:        "three emotional words are not enough",
			text:        "amazing beautiful stunning",
			themes:      []entity.Theme{primary},
			contentType: "Fitness & Health Content",
			absent:      "High emotional engagement",
		},
		{
			name:        "educational signals",
			text:        "quick tips for beginners",
			themes:      []entity.Theme{primary},
			contentType: "Fitness & Health Content",
			contains:    "step-by-step educational value",
		},
		{
			name:        "community signals",
			text:        "follow for more",
			themes:      []entity.Theme{primary},
			contentType: "Fitness & Health Content",
			contains:    "community-building focus",
		},
		{
			name:        "trend signals",
			text:        "this went viral",
			themes:      []entity.Theme{primary},
			contentType: "Fitness & Health Content",
			contains:    "awareness of current trends",
		},
		{
			name:        "multi-theme strategy",
			themes:      []entity.Theme{primary, weak, food, travel},
			contentType: "Fitness & Health Content",
			contains:    "Diverse content strategy spanning 4 distinct themes.",
		},
		{
			name:        "three themes are not diverse",
			themes:      []entity.Theme{primary, weak, food},
			contentType: "Fitness & Health Content",
			absent:      "Diverse content strategy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Insights(tt.text, tt.themes, tt.contentType)
			joined := strings.Join(got, "\n")
			if tt.contains != "" && !strings.Contains(joined, tt.contains) {
				t.Errorf("Expected an insight containing %q, got %q", tt.contains, got)
			}
			if tt.absent != "" && strings.Contains(joined, tt.absent) {
				t.Errorf("Expected no insight containing %q, got %q", tt.absent, got)
			}

			seen := make(map[string]bool)
			for _, s := range got {
				if seen[s] {
					t.Errorf("duplicate insight %q", s)
				}
				seen[s] = true
			}
		})
	}
}
