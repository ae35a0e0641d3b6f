package domain

// MatchCache memoizes the outcome of (catalog, normalized query) lookups so
// repeated queries skip the full catalog scan. Implementations must be safe
// for concurrent use.
type MatchCache interface {
	Get(kind CatalogKind, normalizedQuery string) (string, bool)
	Put(kind CatalogKind, normalizedQuery string, entryID string)
	Invalidate(kind CatalogKind)
	Size() int
}

// CatalogSource supplies catalog contents from an external store
// (file, database, ingestion pipeline)
type CatalogSource interface {
	Load(kind CatalogKind) ([]CatalogEntry, error)
}
