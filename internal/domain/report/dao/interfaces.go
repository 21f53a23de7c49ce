package dao

import (
	"context"
	"time"

	"github.com/vadim/neo-insight/internal/domain/report/entity"
)

// ListOptions contains pagination options, newest reports first
type ListOptions struct {
	Limit  int
	Offset int
}

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	// Create inserts a new report
	Create(ctx context.Context, r *entity.Report) error

	// GetByID retrieves a report by its ID, nil when it does not exist
	GetByID(ctx context.Context, id string) (*entity.Report, error)

	// List retrieves reports, newest first
	List(ctx context.Context, opts ListOptions) ([]entity.Report, error)

	// Count returns the total number of reports
	Count(ctx context.Context) (int64, error)

	// Delete removes a report by ID
	Delete(ctx context.Context, id string) error

	// ListCreatedBefore retrieves reports created before cutoff
	ListCreatedBefore(ctx context.Context, cutoff time.Time) ([]entity.Report, error)
}
