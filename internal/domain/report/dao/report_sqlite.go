package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vadim/neo-insight/internal/domain/report/entity"
)

// ReportSQLite implements report repository on a local SQLite file
type ReportSQLite struct {
	db *sql.DB
}

// NewReportSQLite creates a new SQLite report repository
func NewReportSQLite(db *sql.DB) *ReportSQLite {
	return &ReportSQLite{db: db}
}

// Migrate creates the reports table if it does not exist
func (r *ReportSQLite) Migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS analysis_reports (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		total_posts INTEGER NOT NULL,
		sentiment TEXT NOT NULL,
		content_type TEXT NOT NULL,
		engagement TEXT NOT NULL,
		result TEXT NOT NULL,
		posts TEXT NOT NULL,
		object_key TEXT,
		url TEXT,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_analysis_reports_created_at ON analysis_reports(created_at);
	`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrating analysis_reports: %w", err)
	}
	return nil
}

// Create inserts a new report
func (r *ReportSQLite) Create(ctx context.Context, rep *entity.Report) error {
	result, posts, err := encodeBody(rep)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO analysis_reports (id, title, total_posts, sentiment, content_type, engagement,
			result, posts, object_key, url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rep.ID, rep.Title, rep.Result.TotalPosts, string(rep.Result.Sentiment), rep.Result.ContentType,
		string(rep.Result.Engagement), string(result), string(posts),
		nullString(rep.ObjectKey), nullString(rep.URL), rep.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}

	return nil
}

// GetByID retrieves a report by ID
func (r *ReportSQLite) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, result, posts, object_key, url, created_at
		FROM analysis_reports
		WHERE id = ?
	`, id)

	rep, err := scanSQLiteReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting report: %w", err)
	}

	return rep, nil
}

// List retrieves reports, newest first
func (r *ReportSQLite) List(ctx context.Context, opts ListOptions) ([]entity.Report, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = -1 // no limit
	}

	return r.queryReports(ctx, `
		SELECT id, title, result, posts, object_key, url, created_at
		FROM analysis_reports
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, limit, max(opts.Offset, 0))
}

// Count returns the total number of reports
func (r *ReportSQLite) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM analysis_reports`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting reports: %w", err)
	}
	return count, nil
}

// Delete removes a report by ID
func (r *ReportSQLite) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM analysis_reports WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	return nil
}

// ListCreatedBefore retrieves reports created before cutoff
func (r *ReportSQLite) ListCreatedBefore(ctx context.Context, cutoff time.Time) ([]entity.Report, error) {
	return r.queryReports(ctx, `
		SELECT id, title, result, posts, object_key, url, created_at
		FROM analysis_reports
		WHERE created_at < ?
		ORDER BY created_at
	`, cutoff.UnixNano())
}

func (r *ReportSQLite) queryReports(ctx context.Context, query string, args ...interface{}) ([]entity.Report, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	var reports []entity.Report
	for rows.Next() {
		rep, err := scanSQLiteReport(rows)
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

type sqlScanner interface {
	Scan(dest ...interface{}) error
}

func scanSQLiteReport(row sqlScanner) (*entity.Report, error) {
	var rep entity.Report
	var result, posts string
	var objectKey, url sql.NullString
	var createdAt int64

	if err := row.Scan(&rep.ID, &rep.Title, &result, &posts, &objectKey, &url, &createdAt); err != nil {
		return nil, err
	}
	rep.ObjectKey = objectKey.String
	rep.URL = url.String
	rep.CreatedAt = time.Unix(0, createdAt).UTC()

	if err := decodeBody(&rep, []byte(result), []byte(posts)); err != nil {
		return nil, err
	}

	return &rep, nil
}
