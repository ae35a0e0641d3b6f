package domain

// CatalogKind identifies one of the curated beverage reference catalogs.
type CatalogKind string

const (
	// CatalogAlcohol is the alcoholic beverage reference catalog
	CatalogAlcohol CatalogKind = "alcohol"

	// CatalogCaffeine is the caffeinated beverage reference catalog
	CatalogCaffeine CatalogKind = "caffeine"
)

// Valid reports whether k names a known catalog
func (k CatalogKind) Valid() bool {
	return k == CatalogAlcohol || k == CatalogCaffeine
}

// CatalogEntry is a single immutable record in a beverage catalog.
// Entries are assumed well-formed by the ingestion process; the matching
// core performs no validation of catalog content.
type CatalogEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand,omitempty"`
}
