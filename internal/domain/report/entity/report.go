package entity

import (
	"strings"
	"time"

	analysis "github.com/vadim/neo-insight/internal/domain/analysis/entity"
)

// DefaultTitle is used for reports created without a title
const DefaultTitle = "Instagram Posts Summary"

// DefaultFilename is the base name of downloaded reports
const DefaultFilename = "instagram_posts_summary"

// Format represents a report rendering format
type Format string

const (
	FormatHTML Format = "html"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat parses a format name; empty selects HTML
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "html":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return "", ErrInvalidFormat
	}
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatText:
		return "text/plain; charset=utf-8"
	default:
		return "text/html; charset=utf-8"
	}
}

// Extension returns the file extension of the format, with the dot
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatText:
		return ".txt"
	default:
		return ".html"
	}
}

// Filename returns base with the format extension
func (f Format) Filename(base string) string {
	if base == "" {
		base = DefaultFilename
	}
	return base + f.Extension()
}

// Report is a saved analysis together with its rendered document
type Report struct {
	ID        string                  `json:"id"`
	Title     string                  `json:"title"`
	Result    analysis.AnalysisResult `json:"result"`
	Posts     []analysis.Post         `json:"posts,omitempty"`
	ObjectKey string                  `json:"object_key,omitempty"` // rendered HTML in object storage
	URL       string                  `json:"url,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

// HasDocument returns true if a rendered copy is kept in object storage
func (r *Report) HasDocument() bool {
	return r.ObjectKey != ""
}

// Validate validates the report before it is stored
func (r *Report) Validate() error {
	if r.ID == "" {
		return ErrEmptyReportID
	}
	if strings.TrimSpace(r.Title) == "" {
		return ErrEmptyTitle
	}
	if len(r.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if r.Result.PostCount+r.Result.ReelCount != r.Result.TotalPosts {
		return ErrInconsistentCounts
	}
	return nil
}

// MaxTitleLength is the longest accepted report title in bytes
const MaxTitleLength = 200
