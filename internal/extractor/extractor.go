// Package extractor finds Instagram posts and reels in saved page markup.
package extractor

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/vadim/neo-insight/internal/domain/analysis/entity"
)

const (
	// DefaultBaseURL prefixes relative post links
	DefaultBaseURL = "https://www.instagram.com"

	summaryLimit  = 200
	noDescription = "No description available"
)

var (
	postIDPattern = regexp.MustCompile(`/p/([^/]+)/`)
	reelIDPattern = regexp.MustCompile(`/reels?/([^/]+)/`)
)

// Extractor parses Instagram markup into post records
type Extractor struct {
	baseURL string
}

// Option configures an Extractor
type Option func(*Extractor)

// WithBaseURL sets the origin used to build absolute post URLs
func WithBaseURL(baseURL string) Option {
	return func(e *Extractor) {
		if baseURL != "" {
			e.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// New creates a new extractor
func New(opts ...Option) *Extractor {
	e := &Extractor{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// linkKind binds a link selector to the pattern that pulls the item ID out of it
type linkKind struct {
	selector string
	pattern  *regexp.Regexp
	postType entity.PostType
}

var linkKinds = []linkKind{
	{selector: `a[href^="/p/"]`, pattern: postIDPattern, postType: entity.PostTypePost},
	{selector: `a[href^="/reel"]`, pattern: reelIDPattern, postType: entity.PostTypeReel},
}

// Extract returns every post and then every reel linked from the document.
// Indexes are 1-based in that order; repeated IDs keep their first link.
func (e *Extractor) Extract(ctx context.Context, r io.Reader) ([]entity.Post, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrInvalidDocument, err)
	}

	seen := make(map[string]bool)
	var posts []entity.Post

	for _, kind := range linkKinds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc.Find(kind.selector).Each(func(_ int, a *goquery.Selection) {
			href, _ := a.Attr("href")
			m := kind.pattern.FindStringSubmatch(href)
			if m == nil {
				return
			}
			id := m[1]
			if seen[id] {
				return
			}
			seen[id] = true

			alt, _ := a.Find("img").First().Attr("alt")
			text := strings.TrimSpace(a.Text())

			posts = append(posts, entity.Post{
				ID:          id,
				URL:         e.baseURL + href,
				AltText:     alt,
				TextContent: text,
				Type:        kind.postType,
				Summary:     Summarize(alt, text),
			})
		})
	}

	if len(posts) == 0 {
		return nil, entity.ErrNoPosts
	}
	for i := range posts {
		posts[i].Index = i + 1
	}

	return posts, nil
}

// Summarize builds the display summary of a post: the alt text with
// whitespace collapsed and capped at 200 characters, else the text content
func Summarize(altText, textContent string) string {
	if alt := strings.Join(strings.Fields(altText), " "); alt != "" {
		if utf8.RuneCountInString(alt) > summaryLimit {
			return string([]rune(alt)[:summaryLimit]) + "..."
		}
		return alt
	}
	if text := strings.TrimSpace(textContent); text != "" {
		return text
	}
	return noDescription
}
