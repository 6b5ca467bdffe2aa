package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")

	// Bookmark errors
	ErrBookmarkNotFound = errors.New("bookmark not found")

	// Like errors
	ErrAlreadyLiked = errors.New("bookmark already liked")

	// Movie catalog errors
	ErrMovieNotFound      = errors.New("movie not found")
	ErrCatalogUnavailable = errors.New("movie catalog not configured")
	ErrCatalogUpstream    = errors.New("movie catalog request failed")
)
