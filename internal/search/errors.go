package search

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrSearchTooLong   = errors.New("search text too long")
)
