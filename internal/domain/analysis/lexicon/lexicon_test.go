package lexicon

import (
	"strings"
	"testing"
)

func TestDefaultCategoryOrder(t *testing.T) {
	want := []string{
		"Beauty & Cosmetics", "Fitness & Health", "Travel & Places", "Food & Cooking",
		"Books & Reading", "Automotive", "Fashion & Style", "Technology", "Business & Finance",
		"Art & Culture", "Lifestyle", "Education", "Entertainment",
	}

	got := Default().Categories
	if len(got) != len(want) {
		t.Fatalf("Expected %d categories, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("category %d: expected %q, got %q", i, name, got[i].Name)
		}
	}

	if Default().CategoryIndex(CatchAll) < 0 {
		t.Errorf("catch-all category %q is not in the category list", CatchAll)
	}
}

func TestDefaultVocabulariesDoNotOverlap(t *testing.T) {
	seen := make(map[string]string)
	for _, c := range Default().Categories {
		for _, kw := range c.Keywords {
			if prev, ok := seen[kw]; ok {
				t.Errorf("keyword %q appears in both %q and %q", kw, prev, c.Name)
			}
			seen[kw] = c.Name
		}
	}
}

func TestDefaultVocabulariesAreNormalized(t *testing.T) {
	lex := Default()
	for _, c := range lex.Categories {
		for _, kw := range c.Keywords {
			if kw != strings.ToLower(kw) || strings.TrimSpace(kw) != kw {
				t.Errorf("keyword %q in %q is not lower-case and trimmed", kw, c.Name)
			}
			if lex.IsStopWord(kw) {
				t.Errorf("keyword %q in %q is also a stop word", kw, c.Name)
			}
		}
	}
}

func TestDefaultStopWords(t *testing.T) {
	lex := Default()
	if n := len(lex.StopWords); n < 55 || n > 70 {
		t.Errorf("Expected about 60 stop words, got %d", n)
	}

	tests := []struct {
		word string
		want bool
	}{
		{"this", true},
		{"that", true},
		{"would", true},
		{"should", true},
		{"yoga", false},
		{"fitness", false},
	}
	for _, tt := range tests {
		if got := lex.IsStopWord(tt.word); got != tt.want {
			t.Errorf("IsStopWord(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestDefaultVocabularySizes(t *testing.T) {
	lex := Default()

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"positive", len(lex.Positive), 10},
		{"negative", len(lex.Negative), 8},
		{"engagement", len(lex.EngagementWords), 7},
		{"emotional", len(lex.EmotionalWords), 6},
		{"emoji ranges", len(lex.EmojiRanges), 4},
		{"intents", len(lex.Intents), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Expected %d entries, got %d", tt.want, tt.got)
			}
		})
	}
}

func TestCategoriesFor(t *testing.T) {
	lex := New(Lexicon{
		Categories: []Category{
			{Name: "A", Keywords: []string{"shared", "alpha"}},
			{Name: "B", Keywords: []string{"beta", "shared"}},
		},
	})

	if got := lex.CategoriesFor("shared"); len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("Expected [0 1] for shared keyword, got %v", got)
	}
	if got := lex.CategoriesFor("gamma"); len(got) != 0 {
		t.Errorf("Expected no categories for unknown token, got %v", got)
	}
}

func TestEmojiRangeContains(t *testing.T) {
	r := RuneRange{Lo: 0x1F300, Hi: 0x1F5FF}

	if !r.Contains('🔥') {
		t.Error("Expected fire emoji inside symbols range")
	}
	if r.Contains('a') {
		t.Error("Expected ASCII letter outside symbols range")
	}
}
