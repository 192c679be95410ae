package repository

import "errors"

// Sentinel kinds for standards-store errors.
var (
	ErrNotFound = errors.New("standard not found")
	ErrClosed   = errors.New("standards store closed")
)
