package usecase

import (
	"log"
	"sync"

	"github.com/nutritrack/backend/internal/domain"
)

// catalogOrder fixes the lookup priority: alcohol before caffeine.
// The catalogs are disjoint in practice, so the order only decides
// pathological overlaps deterministically.
var catalogOrder = []domain.CatalogKind{domain.CatalogAlcohol, domain.CatalogCaffeine}

// BeverageServiceConfig holds configuration for the beverage service
type BeverageServiceConfig struct {
	MatchThreshold     float64
	EnableDebugLogging bool

	// Similarity overrides the matcher's scoring function (tests only)
	Similarity SimilarityFunc
}

// BeverageService classifies free-text product names against the alcohol and
// caffeine reference catalogs. It owns its catalog snapshots and match cache;
// UpdateCatalog is the only mutation entry point. The mutex covers both the
// snapshot pointers and the ordering of cache reads/writes against catalog
// replacement, so a lookup never caches a result from a superseded snapshot.
type BeverageService struct {
	mu                 sync.RWMutex
	catalogs           map[domain.CatalogKind][]domain.CatalogEntry
	cache              domain.MatchCache
	matcher            *Matcher
	enableDebugLogging bool
}

// NewBeverageService creates a beverage service with dependencies
func NewBeverageService(cache domain.MatchCache, config BeverageServiceConfig) *BeverageService {
	matcher := NewMatcher(MatcherConfig{
		Threshold:          config.MatchThreshold,
		EnableDebugLogging: config.EnableDebugLogging,
		Similarity:         config.Similarity,
	})

	return &BeverageService{
		catalogs:           make(map[domain.CatalogKind][]domain.CatalogEntry),
		cache:              cache,
		matcher:            matcher,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// MapFoodProduct decides whether a product name names an alcoholic or
// caffeinated beverage. The alcohol catalog is consulted first, then
// caffeine; the first match wins. Successful matches are memoized per
// (catalog, normalized query); negative results are not cached, so a miss
// recomputes on the next lookup. "No match" is a valid result, not an error:
// callers treat it as plain food.
func (s *BeverageService) MapFoodProduct(productName string) domain.ProductMapping {
	normalized := Normalize(productName)
	if normalized == "" {
		return domain.ProductMapping{Kind: domain.BeverageNone}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, kind := range catalogOrder {
		if entry := s.lookupLocked(kind, productName, normalized); entry != nil {
			return domain.ProductMapping{
				Kind:  beverageKindFor(kind),
				Entry: entry,
			}
		}
	}

	return domain.ProductMapping{Kind: domain.BeverageNone}
}

// lookupLocked resolves the query against one catalog: cache first, then a
// full matcher scan. Caller holds at least a read lock.
func (s *BeverageService) lookupLocked(kind domain.CatalogKind, productName, normalized string) *domain.CatalogEntry {
	entries := s.catalogs[kind]
	if len(entries) == 0 {
		return nil
	}

	if entryID, ok := s.cache.Get(kind, normalized); ok {
		if s.enableDebugLogging {
			log.Printf("[CACHE] hit: %s/%q -> %s", kind, normalized, entryID)
		}
		return findEntry(entries, entryID)
	}

	result := s.matcher.FindBestMatch(entries, productName)
	if result == nil {
		return nil
	}

	s.cache.Put(kind, normalized, result.EntryID)
	return findEntry(entries, result.EntryID)
}

// UpdateCatalog atomically replaces the in-memory catalog of the given kind
// and invalidates all cached results tied to it. The snapshot is copied so
// the caller cannot mutate it afterwards.
func (s *BeverageService) UpdateCatalog(kind domain.CatalogKind, entries []domain.CatalogEntry) error {
	if !kind.Valid() {
		return domain.ErrUnknownCatalog
	}

	snapshot := make([]domain.CatalogEntry, len(entries))
	copy(snapshot, entries)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalogs[kind] = snapshot
	s.cache.Invalidate(kind)

	if s.enableDebugLogging {
		log.Printf("[CATALOG] %s replaced: %d entries, cache invalidated", kind, len(snapshot))
	}

	return nil
}

// CatalogSize returns the number of entries in the given catalog snapshot
func (s *BeverageService) CatalogSize(kind domain.CatalogKind) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.catalogs[kind])
}

// CacheSize returns the number of memoized lookups across all catalogs
func (s *BeverageService) CacheSize() int {
	return s.cache.Size()
}

// findEntry locates a catalog entry by ID within a snapshot. The cache is
// invalidated on every catalog swap, so a cached ID always resolves; the nil
// return keeps the path total anyway.
func findEntry(entries []domain.CatalogEntry, entryID string) *domain.CatalogEntry {
	for i := range entries {
		if entries[i].ID == entryID {
			return &entries[i]
		}
	}
	return nil
}

// beverageKindFor maps a catalog kind to the beverage classification it implies
func beverageKindFor(kind domain.CatalogKind) domain.BeverageKind {
	switch kind {
	case domain.CatalogAlcohol:
		return domain.BeverageAlcohol
	case domain.CatalogCaffeine:
		return domain.BeverageCaffeine
	default:
		return domain.BeverageNone
	}
}
