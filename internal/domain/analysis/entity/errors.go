package entity

import "errors"

// Domain errors for analysis
var (
	// Validation errors
	ErrInvalidPostType  = errors.New("post type must be post or reel")
	ErrInvalidPostIndex = errors.New("post index must be positive")
	ErrTooManyPosts     = errors.New("too many posts in one analysis")

	// Use-case errors
	ErrNoAnalysis      = errors.New("no analysis has been run yet")
	ErrInvalidDocument = errors.New("document could not be parsed")
	ErrNoPosts         = errors.New("document contains no post or reel links")
)
