package entity

// PostType represents the kind of Instagram item a post record came from
type PostType string

const (
	PostTypePost PostType = "post"
	PostTypeReel PostType = "reel"
)

// Post is a single extracted Instagram item
type Post struct {
	ID          string   `json:"id"`
	URL         string   `json:"url"`
	AltText     string   `json:"alt_text"`
	TextContent string   `json:"text_content"`
	Type        PostType `json:"type"`
	Index       int      `json:"index"`             // 1-based position in extraction order
	Summary     string   `json:"summary,omitempty"` // display summary, not read by the analyzer
}

// IsReel reports whether the post is a reel
func (p Post) IsReel() bool {
	return p.Type == PostTypeReel
}

// Normalize fills defaults for an incoming record
func (p *Post) Normalize(position int) {
	if p.Type == "" {
		p.Type = PostTypePost
	}
	if p.Index <= 0 {
		p.Index = position
	}
}

// Validate checks the record can be fed to the analyzer
func (p *Post) Validate() error {
	switch p.Type {
	case PostTypePost, PostTypeReel:
	default:
		return ErrInvalidPostType
	}
	if p.Index <= 0 {
		return ErrInvalidPostIndex
	}
	return nil
}
