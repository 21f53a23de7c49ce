package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vadim/neo-insight/internal/domain/report/entity"
)

// ReportPostgres implements report repository for PostgreSQL
type ReportPostgres struct {
	pool *pgxpool.Pool
}

// NewReportPostgres creates a new PostgreSQL report repository
func NewReportPostgres(pool *pgxpool.Pool) *ReportPostgres {
	return &ReportPostgres{pool: pool}
}

// Migrate creates the reports table if it does not exist
func (r *ReportPostgres) Migrate(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS analysis_reports (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			total_posts INTEGER NOT NULL,
			sentiment TEXT NOT NULL,
			content_type TEXT NOT NULL,
			engagement TEXT NOT NULL,
			result JSONB NOT NULL,
			posts JSONB NOT NULL,
			object_key TEXT,
			url TEXT,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_analysis_reports_created_at ON analysis_reports(created_at);
	`

	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrating analysis_reports: %w", err)
	}
	return nil
}

// Create inserts a new report
func (r *ReportPostgres) Create(ctx context.Context, rep *entity.Report) error {
	result, posts, err := encodeBody(rep)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO analysis_reports (id, title, total_posts, sentiment, content_type, engagement,
			result, posts, object_key, url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = r.pool.Exec(ctx, query,
		rep.ID,
		rep.Title,
		rep.Result.TotalPosts,
		rep.Result.Sentiment,
		rep.Result.ContentType,
		rep.Result.Engagement,
		result,
		posts,
		nullString(rep.ObjectKey),
		nullString(rep.URL),
		rep.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}

	return nil
}

// GetByID retrieves a report by ID
func (r *ReportPostgres) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	query := `
		SELECT id, title, result, posts, object_key, url, created_at
		FROM analysis_reports
		WHERE id = $1
	`

	rep, err := scanReport(r.pool.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting report: %w", err)
	}

	return rep, nil
}

// List retrieves reports, newest first
func (r *ReportPostgres) List(ctx context.Context, opts ListOptions) ([]entity.Report, error) {
	query := `
		SELECT id, title, result, posts, object_key, url, created_at
		FROM analysis_reports
		ORDER BY created_at DESC
	`
	args := []interface{}{}
	argNum := 1

	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argNum)
		args = append(args, opts.Limit)
		argNum++
	}
	if opts.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argNum)
		args = append(args, opts.Offset)
	}

	return r.queryReports(ctx, query, args...)
}

// Count returns the total number of reports
func (r *ReportPostgres) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM analysis_reports`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting reports: %w", err)
	}
	return count, nil
}

// Delete removes a report by ID
func (r *ReportPostgres) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM analysis_reports WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	return nil
}

// ListCreatedBefore retrieves reports created before cutoff
func (r *ReportPostgres) ListCreatedBefore(ctx context.Context, cutoff time.Time) ([]entity.Report, error) {
	query := `
		SELECT id, title, result, posts, object_key, url, created_at
		FROM analysis_reports
		WHERE created_at < $1
		ORDER BY created_at
	`
	return r.queryReports(ctx, query, cutoff)
}

func (r *ReportPostgres) queryReports(ctx context.Context, query string, args ...interface{}) ([]entity.Report, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	var reports []entity.Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}
		reports = append(reports, *rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reports: %w", err)
	}

	return reports, nil
}

func scanReport(row pgx.Row) (*entity.Report, error) {
	var rep entity.Report
	var result, posts []byte
	var objectKey, url *string

	if err := row.Scan(&rep.ID, &rep.Title, &result, &posts, &objectKey, &url, &rep.CreatedAt); err != nil {
		return nil, err
	}
	if objectKey != nil {
		rep.ObjectKey = *objectKey
	}
	if url != nil {
		rep.URL = *url
	}
	if err := decodeBody(&rep, result, posts); err != nil {
		return nil, err
	}

	return &rep, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
