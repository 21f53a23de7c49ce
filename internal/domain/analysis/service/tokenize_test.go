package service

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	svc := New(nil)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "punctuation splits words and short tokens drop",
			text: "This is a GREAT day, isn't it? #Yoga-time!",
			want: []string{"great", "yoga", "time"},
		},
		{
			name: "duplicates kept in first-occurrence order",
			text: "yoga yoga fitness yoga",
			want: []string{"yoga", "yoga", "fitness", "yoga"},
		},
		{
			name: "length boundary",
			text: "abc abcd",
			want: []string{"abcd"},
		},
		{
			name: "stop words removed",
			text: "that would have been something",
			want: []string{"something"},
		},
		{
			name: "underscore is a separator",
			text: "snake_case",
			want: []string{"snake", "case"},
		},
		{
			name: "digits are kept",
			text: "BMW M3 2024 edition",
			want: []string{"2024", "edition"},
		},
		{
			name: "non-ascii letters count as runes",
			text: "café naïve été",
			want: []string{"café", "naïve"},
		},
		{
			name: "emoji become separators",
			text: "sunset🔥beach",
			want: []string{"sunset", "beach"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Tokenize(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
