package domain

// MatchResult represents the best candidate found in a single catalog scan
type MatchResult struct {
	EntryID string  `json:"entryId"`
	Score   float64 `json:"score"`
}

// BeverageKind classifies a mapped food product
type BeverageKind string

const (
	BeverageAlcohol  BeverageKind = "alcohol"
	BeverageCaffeine BeverageKind = "caffeine"
	BeverageNone     BeverageKind = "none"
)

// ProductMapping is the outcome of mapping a free-text product name against
// the beverage catalogs. Entry is nil when Kind is BeverageNone.
type ProductMapping struct {
	Kind  BeverageKind  `json:"kind"`
	Entry *CatalogEntry `json:"entry,omitempty"`
}
