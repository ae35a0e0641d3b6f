package domain

import "errors"

var (
	// ErrUnknownCatalog is returned when a catalog kind is not recognized
	ErrUnknownCatalog = errors.New("unknown catalog kind")

	// ErrInvalidCatalogEntry is returned when a catalog entry is missing required fields
	ErrInvalidCatalogEntry = errors.New("catalog entry missing id or name")

	// ErrDuplicateEntryID is returned when a catalog contains the same entry ID twice
	ErrDuplicateEntryID = errors.New("duplicate catalog entry id")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
