package policy

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/vadim/neo-insight/internal/domain/analysis/entity"
	reportentity "github.com/vadim/neo-insight/internal/domain/report/entity"
	"github.com/vadim/neo-insight/internal/domain/report/render"
	reportservice "github.com/vadim/neo-insight/internal/domain/report/service"
	"github.com/vadim/neo-insight/internal/extractor"
)

// Analyzer runs the content analysis over a batch of posts
type Analyzer interface {
	Analyze(posts []entity.Post) entity.AnalysisResult
}

// PostExtractor finds posts in page markup
type PostExtractor interface {
	Extract(ctx context.Context, r io.Reader) ([]entity.Post, error)
}

// ReportSaver persists analyses as reports
type ReportSaver interface {
	Create(ctx context.Context, in reportservice.CreateInput) (*reportentity.Report, error)
	Enabled() bool
}

// DocumentRenderer renders report documents
type DocumentRenderer interface {
	Render(doc render.Document, format reportentity.Format) ([]byte, error)
}

// Snapshot is a completed analysis kept for later export
type Snapshot struct {
	Title      string
	Result     entity.AnalysisResult
	Posts      []entity.Post
	AnalyzedAt time.Time
}

// Policy orchestrates analysis use-cases
type Policy struct {
	analyzer  Analyzer
	extractor PostExtractor
	reports   ReportSaver
	renderer  DocumentRenderer
	maxPosts  int
	now       func() time.Time

	mu     sync.RWMutex
	latest *Snapshot
}

// New creates a new analysis policy. reports may be nil when persistence is disabled;
// maxPosts <= 0 means no limit.
func New(analyzer Analyzer, ex PostExtractor, reports ReportSaver, renderer DocumentRenderer, maxPosts int) *Policy {
	return &Policy{
		analyzer:  analyzer,
		extractor: ex,
		reports:   reports,
		renderer:  renderer,
		maxPosts:  maxPosts,
		now:       time.Now,
	}
}

// AnalyzeInput represents input for analyzing a batch of posts
type AnalyzeInput struct {
	Title string
	Posts []entity.Post
	Save  bool // If true, the analysis is saved as a report
}

// AnalyzeOutput represents output from analyzing posts
type AnalyzeOutput struct {
	Result entity.AnalysisResult
	Posts  []entity.Post
	Report *reportentity.Report // Set when the analysis was saved
}

// Analyze validates posts, runs the analysis and keeps it as the latest one
func (p *Policy) Analyze(ctx context.Context, in AnalyzeInput) (*AnalyzeOutput, error) {
	if p.maxPosts > 0 && len(in.Posts) > p.maxPosts {
		return nil, entity.ErrTooManyPosts
	}
	if in.Save && (p.reports == nil || !p.reports.Enabled()) {
		return nil, reportentity.ErrPersistenceDisabled
	}

	posts := make([]entity.Post, len(in.Posts))
	copy(posts, in.Posts)
	for i := range posts {
		posts[i].Normalize(i + 1)
		if err := posts[i].Validate(); err != nil {
			return nil, err
		}
		if posts[i].Summary == "" {
			posts[i].Summary = extractor.Summarize(posts[i].AltText, posts[i].TextContent)
		}
	}

	result := p.analyzer.Analyze(posts)

	p.mu.Lock()
	p.latest = &Snapshot{
		Title:      in.Title,
		Result:     result,
		Posts:      posts,
		AnalyzedAt: p.now(),
	}
	p.mu.Unlock()

	out := &AnalyzeOutput{Result: result, Posts: posts}
	if !in.Save {
		return out, nil
	}

	report, err := p.reports.Create(ctx, reportservice.CreateInput{
		Title:  in.Title,
		Result: result,
		Posts:  posts,
	})
	if err != nil {
		return nil, err
	}
	out.Report = report

	return out, nil
}

// AnalyzeDocumentInput represents input for analyzing a saved page
type AnalyzeDocumentInput struct {
	Title    string
	Document io.Reader
	Save     bool
}

// AnalyzeDocument extracts posts from page markup and analyzes them
func (p *Policy) AnalyzeDocument(ctx context.Context, in AnalyzeDocumentInput) (*AnalyzeOutput, error) {
	posts, err := p.extractor.Extract(ctx, in.Document)
	if err != nil {
		return nil, err
	}

	return p.Analyze(ctx, AnalyzeInput{
		Title: in.Title,
		Posts: posts,
		Save:  in.Save,
	})
}

// Latest returns the most recent analysis
func (p *Policy) Latest() (*Snapshot, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.latest == nil {
		return nil, entity.ErrNoAnalysis
	}
	snap := *p.latest
	return &snap, nil
}

// ExportOutput is a rendered document ready to be sent
type ExportOutput struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportLatest renders the most recent analysis in the given format
func (p *Policy) ExportLatest(format reportentity.Format) (*ExportOutput, error) {
	snap, err := p.Latest()
	if err != nil {
		return nil, err
	}

	content, err := p.renderer.Render(render.Document{
		Title:       snap.Title,
		GeneratedAt: snap.AnalyzedAt,
		Result:      snap.Result,
		Posts:       snap.Posts,
	}, format)
	if err != nil {
		return nil, err
	}

	return &ExportOutput{
		Content:     content,
		ContentType: format.ContentType(),
		Filename:    format.Filename(reportentity.DefaultFilename),
	}, nil
}
