package service

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/vadim/neo-insight/internal/domain/analysis/entity"
	"github.com/vadim/neo-insight/internal/domain/analysis/lexicon"
)

func TestCategorize(t *testing.T) {
	svc := New(nil)

	tests := []struct {
		name   string
		tokens []string
		want   []entity.Theme
	}{
		{
			name:   "no tokens",
			tokens: nil,
			want:   []entity.Theme{},
		},
		{
			name:   "strength sums frequencies and ties keep category order",
			tokens: []string{"yoga", "pizza", "yoga", "workout", "zzzz"},
			want: []entity.Theme{
				{Name: "Fitness & Health", Strength: 3, Keywords: []string{"yoga", "workout"}},
				{Name: "Food & Cooking", Strength: 1, Keywords: []string{"pizza"}},
				{Name: "Lifestyle", Strength: 1, Keywords: []string{"zzzz"}},
			},
		},
		{
			name:   "unmatched tokens join lifestyle vocabulary",
			tokens: []string{"family", "qwerty", "qwerty"},
			want: []entity.Theme{
				{Name: "Lifestyle", Strength: 3, Keywords: []string{"qwerty", "family"}},
			},
		},
		{
			name:   "keywords ordered by frequency",
			tokens: []string{"sale", "porsche", "porsche", "engine", "porsche", "engine"},
			want: []entity.Theme{
				{Name: "Automotive", Strength: 6, Keywords: []string{"porsche", "engine", "sale"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Categorize(Count(tt.tokens))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Categorize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCategorizeUsesTopTwentyTokens(t *testing.T) {
	svc := New(nil)

	var tokens []string
	for i := 0; i < 25; i++ {
		tokens = append(tokens, fmt.Sprintf("token%02d", i))
	}
	// token24 is the most frequent and must survive the cut
	tokens = append(tokens, "token24")

	themes := svc.Categorize(Count(tokens))
	if len(themes) != 1 {
		t.Fatalf("Expected a single catch-all theme, got %d", len(themes))
	}
	if themes[0].Strength != 21 {
		t.Errorf("Expected strength 21 from the top 20 tokens, got %d", themes[0].Strength)
	}
	if themes[0].Keywords[0] != "token24" {
		t.Errorf("Expected token24 first, got %s", themes[0].Keywords[0])
	}
	for _, kw := range themes[0].Keywords {
		if kw == "token19" || kw == "token23" {
			t.Errorf("Expected %s to fall outside the top 20", kw)
		}
	}
}

func TestCategorizeOverlapPicksFirstListedCategory(t *testing.T) {
	lex := lexicon.New(lexicon.Lexicon{
		Categories: []lexicon.Category{
			{Name: "First", Keywords: []string{"shared"}},
			{Name: "Second", Keywords: []string{"shared", "other"}},
			{Name: lexicon.CatchAll},
		},
	})
	svc := New(lex)

	got := svc.Categorize(Count([]string{"shared", "other", "shared"}))
	want := []entity.Theme{
		{Name: "First", Strength: 2, Keywords: []string{"shared"}},
		{Name: "Second", Strength: 1, Keywords: []string{"other"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categorize() = %+v, want %+v", got, want)
	}
}

func TestCategorizeWithoutCatchAllDropsUnmatched(t *testing.T) {
	lex := lexicon.New(lexicon.Lexicon{
		Categories: []lexicon.Category{{Name: "Only", Keywords: []string{"known"}}},
	})
	svc := New(lex)

	got := svc.Categorize(Count([]string{"known", "unknown"}))
	if len(got) != 1 || got[0].Name != "Only" || got[0].Strength != 1 {
		t.Errorf("Expected only the matched category, got %+v", got)
	}
}
