package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	analysis "github.com/vadim/neo-insight/internal/domain/analysis/entity"
	"github.com/vadim/neo-insight/internal/domain/report/dao"
	"github.com/vadim/neo-insight/internal/domain/report/entity"
	"github.com/vadim/neo-insight/internal/domain/report/render"
	"github.com/vadim/neo-insight/internal/storage"
)

// ObjectStorage defines the interface for keeping rendered documents
type ObjectStorage interface {
	Upload(ctx context.Context, in storage.UploadInput) (*storage.UploadOutput, error)
	Download(ctx context.Context, key string) (*storage.DownloadOutput, error)
	Delete(ctx context.Context, key string) error
}

// Renderer renders report documents
type Renderer interface {
	Render(doc render.Document, format entity.Format) ([]byte, error)
}

// Service handles business logic for saved reports.
// A nil repository disables persistence; a nil storage keeps no rendered copies.
type Service struct {
	repo     dao.ReportRepository
	storage  ObjectStorage
	renderer Renderer
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a new report service
func New(repo dao.ReportRepository, store ObjectStorage, renderer Renderer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:     repo,
		storage:  store,
		renderer: renderer,
		logger:   logger,
		now:      time.Now,
	}
}

// Enabled returns true if reports can be saved
func (s *Service) Enabled() bool {
	return s.repo != nil
}

// CreateInput represents input for saving a report
type CreateInput struct {
	Title  string
	Result analysis.AnalysisResult
	Posts  []analysis.Post
}

// Create saves an analysis as a report
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Report, error) {
	if s.repo == nil {
		return nil, entity.ErrPersistenceDisabled
	}

	title := in.Title
	if title == "" {
		title = entity.DefaultTitle
	}

	r := &entity.Report{
		ID:        uuid.New().String(),
		Title:     title,
		Result:    in.Result,
		Posts:     in.Posts,
		CreatedAt: s.now().UTC(),
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if s.storage != nil {
		if err := s.uploadDocument(ctx, r); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, r); err != nil {
		if r.HasDocument() {
			s.deleteDocument(ctx, r)
		}
		return nil, fmt.Errorf("saving report: %w", err)
	}

	s.logger.Info("report saved", "id", r.ID, "posts", r.Result.TotalPosts, "stored", r.HasDocument())
	return r, nil
}

func (s *Service) uploadDocument(ctx context.Context, r *entity.Report) error {
	content, err := s.renderer.Render(documentOf(r), entity.FormatHTML)
	if err != nil {
		return err
	}

	out, err := s.storage.Upload(ctx, storage.UploadInput{
		Reader:      bytes.NewReader(content),
		ContentType: entity.FormatHTML.ContentType(),
		Size:        int64(len(content)),
		Filename:    entity.FormatHTML.Filename(entity.DefaultFilename),
	})
	if err != nil {
		return err
	}

	r.ObjectKey = out.Key
	r.URL = out.URL
	return nil
}

// Get retrieves a report by ID
func (s *Service) Get(ctx context.Context, id string) (*entity.Report, error) {
	if s.repo == nil {
		return nil, entity.ErrPersistenceDisabled
	}

	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, entity.ErrReportNotFound
	}
	return r, nil
}

// ListInput represents input for listing reports
type ListInput struct {
	Limit  int
	Offset int
}

// ListOutput represents output for listing reports
type ListOutput struct {
	Reports []entity.Report
	Total   int64
	Limit   int
	Offset  int
}

// List retrieves reports, newest first
func (s *Service) List(ctx context.Context, in ListInput) (*ListOutput, error) {
	if s.repo == nil {
		return nil, entity.ErrPersistenceDisabled
	}

	if in.Limit <= 0 {
		in.Limit = 20
	}
	if in.Limit > 100 {
		in.Limit = 100
	}
	if in.Offset < 0 {
		in.Offset = 0
	}

	reports, err := s.repo.List(ctx, dao.ListOptions{Limit: in.Limit, Offset: in.Offset})
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &ListOutput{
		Reports: reports,
		Total:   total,
		Limit:   in.Limit,
		Offset:  in.Offset,
	}, nil
}

// Delete removes a report and its stored document
func (s *Service) Delete(ctx context.Context, id string) error {
	r, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if r.HasDocument() {
		s.deleteDocument(ctx, r)
	}

	s.logger.Info("report deleted", "id", id)
	return nil
}

// PurgeBefore removes every report created before cutoff and returns how many were removed
func (s *Service) PurgeBefore(ctx context.Context, cutoff time.Time) (int, error) {
	if s.repo == nil {
		return 0, entity.ErrPersistenceDisabled
	}

	reports, err := s.repo.ListCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	purged := 0
	for i := range reports {
		r := &reports[i]
		if err := s.repo.Delete(ctx, r.ID); err != nil {
			s.logger.Error("failed to purge report", "id", r.ID, "error", err)
			continue
		}
		if r.HasDocument() {
			s.deleteDocument(ctx, r)
		}
		purged++
	}

	return purged, nil
}

// DownloadOutput is a report document ready to be sent
type DownloadOutput struct {
	Content     []byte
	ContentType string
	Filename    string
}

// Download returns the report document in the given format.
// HTML is served from object storage when a stored copy exists.
func (s *Service) Download(ctx context.Context, id string, format entity.Format) (*DownloadOutput, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &DownloadOutput{
		ContentType: format.ContentType(),
		Filename:    format.Filename(entity.DefaultFilename),
	}

	if format == entity.FormatHTML && r.HasDocument() && s.storage != nil {
		content, err := s.readDocument(ctx, r.ObjectKey)
		if err == nil {
			out.Content = content
			return out, nil
		}
		s.logger.Warn("stored report unavailable, rendering", "id", r.ID, "key", r.ObjectKey, "error", err)
	}

	content, err := s.renderer.Render(documentOf(r), format)
	if err != nil {
		return nil, err
	}
	out.Content = content
	return out, nil
}

func (s *Service) readDocument(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.storage.Download(ctx, key)
	if err != nil {
		return nil, err
	}
	defer obj.Body.Close()

	return io.ReadAll(obj.Body)
}

func (s *Service) deleteDocument(ctx context.Context, r *entity.Report) {
	if s.storage == nil {
		return
	}
	if err := s.storage.Delete(ctx, r.ObjectKey); err != nil {
		s.logger.Warn("failed to delete stored report", "id", r.ID, "key", r.ObjectKey, "error", err)
	}
}

func documentOf(r *entity.Report) render.Document {
	return render.Document{
		Title:       r.Title,
		GeneratedAt: r.CreatedAt,
		Result:      r.Result,
		Posts:       r.Posts,
	}
}
