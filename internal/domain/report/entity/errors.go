package entity

import "errors"

// Domain errors for reports
var (
	// Validation errors
	ErrEmptyReportID      = errors.New("report ID is required")
	ErrEmptyTitle         = errors.New("report title is required")
	ErrTitleTooLong       = errors.New("report title exceeds maximum length of 200 characters")
	ErrInconsistentCounts = errors.New("post and reel counts do not add up to the total")
	ErrInvalidFormat      = errors.New("report format must be html, json or text")

	// Business logic errors
	ErrReportNotFound      = errors.New("report not found")
	ErrPersistenceDisabled = errors.New("report persistence is not configured")
)
