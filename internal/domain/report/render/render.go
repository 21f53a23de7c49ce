// Package render turns an analysis into a downloadable report document.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/jonreiter/govader"

	analysis "github.com/vadim/neo-insight/internal/domain/analysis/entity"
	"github.com/vadim/neo-insight/internal/domain/report/entity"
)

// toneThreshold is the VADER compound score needed to call a post positive or negative
const toneThreshold = 0.3

// Document is everything that goes into a rendered report
type Document struct {
	Title       string
	GeneratedAt time.Time
	Result      analysis.AnalysisResult
	Posts       []analysis.Post
}

// Renderer renders report documents in every supported format
type Renderer struct {
	html *template.Template
	tone *govader.SentimentIntensityAnalyzer
}

// New creates a new renderer
func New() (*Renderer, error) {
	tmpl, err := template.New("report").Parse(htmlTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing report template: %w", err)
	}

	return &Renderer{
		html: tmpl,
		tone: govader.NewSentimentIntensityAnalyzer(),
	}, nil
}

// Render renders doc in the given format
func (r *Renderer) Render(doc Document, format entity.Format) ([]byte, error) {
	if doc.Title == "" {
		doc.Title = entity.DefaultTitle
	}

	switch format {
	case entity.FormatHTML:
		return r.HTML(doc)
	case entity.FormatJSON:
		return r.JSON(doc)
	case entity.FormatText:
		return r.Text(doc), nil
	default:
		return nil, entity.ErrInvalidFormat
	}
}

type pageData struct {
	Title       string
	Date        string
	Result      analysis.AnalysisResult
	Items       []itemData
	HasInsights bool
}

type itemData struct {
	Label   string
	Index   int
	ID      string
	URL     string
	Summary string
	Tone    string
}

// HTML renders the standalone HTML report
func (r *Renderer) HTML(doc Document) ([]byte, error) {
	data := pageData{
		Title:       doc.Title,
		Date:        doc.GeneratedAt.Format("January 2, 2006 15:04"),
		Result:      doc.Result,
		Items:       make([]itemData, len(doc.Posts)),
		HasInsights: len(doc.Result.KeyInsights) > 0,
	}
	for i, p := range doc.Posts {
		data.Items[i] = itemData{
			Label:   itemLabel(p),
			Index:   p.Index,
			ID:      p.ID,
			URL:     p.URL,
			Summary: p.Summary,
			Tone:    r.Tone(p.AltText + " " + p.TextContent),
		}
	}

	var buf bytes.Buffer
	if err := r.html.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering html report: %w", err)
	}
	return buf.Bytes(), nil
}

type jsonDocument struct {
	Title       string                  `json:"title"`
	GeneratedAt time.Time               `json:"generated_at"`
	Result      analysis.AnalysisResult `json:"result"`
	Posts       []analysis.Post         `json:"posts"`
}

// JSON renders the report as indented JSON
func (r *Renderer) JSON(doc Document) ([]byte, error) {
	posts := doc.Posts
	if posts == nil {
		posts = []analysis.Post{}
	}

	out, err := json.MarshalIndent(jsonDocument{
		Title:       doc.Title,
		GeneratedAt: doc.GeneratedAt,
		Result:      doc.Result,
		Posts:       posts,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding json report: %w", err)
	}
	return out, nil
}

// Text renders a plain-text digest of the report
func (r *Renderer) Text(doc Document) []byte {
	res := doc.Result
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s\nGenerated %s\n\n", doc.Title, doc.GeneratedAt.Format("January 2, 2006 15:04")))
	buf.WriteString(fmt.Sprintf("Total posts: %d (%d posts, %d reels)\n", res.TotalPosts, res.PostCount, res.ReelCount))
	buf.WriteString(fmt.Sprintf("Sentiment: %s\n", res.Sentiment))
	buf.WriteString(fmt.Sprintf("Content type: %s\n", res.ContentType))
	buf.WriteString(fmt.Sprintf("Engagement: %s\n", res.Engagement))

	if len(res.Themes) > 0 {
		buf.WriteString("\nThemes:\n")
		for _, th := range res.Themes {
			buf.WriteString(fmt.Sprintf("  - %s (%d): %s\n", th.Name, th.Strength, strings.Join(th.Keywords, ", ")))
		}
	}

	if len(res.KeyInsights) > 0 {
		buf.WriteString("\nKey insights:\n")
		for _, in := range res.KeyInsights {
			buf.WriteString(fmt.Sprintf("  - %s\n", in))
		}
	}

	buf.WriteString(fmt.Sprintf("\nSummary:\n%s\n", res.Summary))

	if len(doc.Posts) > 0 {
		buf.WriteString("\nItems:\n")
		for _, p := range doc.Posts {
			buf.WriteString(fmt.Sprintf("  %s #%d: %s\n", itemLabel(p), p.Index, p.ID))
			if p.URL != "" {
				buf.WriteString(fmt.Sprintf("    %s\n", p.URL))
			}
			if p.Summary != "" {
				buf.WriteString(fmt.Sprintf("    %s\n", p.Summary))
			}
		}
	}

	return buf.Bytes()
}

// Tone labels the lexicon polarity of a single post's text
func (r *Renderer) Tone(text string) string {
	if strings.TrimSpace(text) == "" {
		return "neutral"
	}
	compound := r.tone.PolarityScores(text).Compound
	switch {
	case compound >= toneThreshold:
		return "positive"
	case compound <= -toneThreshold:
		return "negative"
	default:
		return "neutral"
	}
}

func itemLabel(p analysis.Post) string {
	if p.IsReel() {
		return "Reel"
	}
	return "Post"
}
