package entity

// Sentiment is the overall tone label of an analyzed batch
type Sentiment string

const (
	SentimentVeryPositive Sentiment = "Very Positive"
	SentimentPositive     Sentiment = "Positive"
	SentimentNegative     Sentiment = "Negative"
	SentimentNeutral      Sentiment = "Neutral"
)

// Engagement is the ordinal engagement-potential label
type Engagement string

const (
	EngagementVeryHigh Engagement = "Very High"
	EngagementHigh     Engagement = "High"
	EngagementMedium   Engagement = "Medium"
	EngagementLow      Engagement = "Low"
)

// GeneralContentType is the content type of a batch without themes
const GeneralContentType = "General Social Media Content"

// Theme is a named topical cluster found in the batch
type Theme struct {
	Name     string   `json:"name"`
	Strength int      `json:"strength"`
	Keywords []string `json:"keywords"`
}

// AnalysisResult is the aggregate analysis of a batch of posts.
// It is built once per analysis and never mutated afterwards.
type AnalysisResult struct {
	TotalPosts  int        `json:"total_posts"`
	PostCount   int        `json:"post_count"`
	ReelCount   int        `json:"reel_count"`
	Themes      []Theme    `json:"themes"`
	Sentiment   Sentiment  `json:"sentiment"`
	ContentType string     `json:"content_type"`
	Engagement  Engagement `json:"engagement"`
	KeyInsights []string   `json:"key_insights"`
	Summary     string     `json:"summary"`
}

// PrimaryTheme returns the strongest theme, if any
func (r *AnalysisResult) PrimaryTheme() (Theme, bool) {
	if len(r.Themes) == 0 {
		return Theme{}, false
	}
	return r.Themes[0], true
}
