package usecase

import (
	"log"

	"github.com/nutritrack/backend/internal/domain"
)

// defaultThreshold is the minimum admissible similarity score
const defaultThreshold = 0.6

// SimilarityFunc scores two raw product names in [0, 1]
type SimilarityFunc func(a, b string) float64

// MatcherConfig holds configuration for the matcher
type MatcherConfig struct {
	Threshold          float64
	EnableDebugLogging bool

	// Similarity overrides the scoring function; defaults to Similarity.
	// Tests use this to count catalog scans.
	Similarity SimilarityFunc
}

// Matcher scans a beverage catalog for the entry closest to a query name
type Matcher struct {
	threshold          float64
	enableDebugLogging bool
	similarity         SimilarityFunc
}

// NewMatcher creates a matcher with the given configuration
func NewMatcher(config MatcherConfig) *Matcher {
	threshold := config.Threshold
	if threshold <= 0 {
		threshold = defaultThreshold
	}

	similarity := config.Similarity
	if similarity == nil {
		similarity = Similarity
	}

	return &Matcher{
		threshold:          threshold,
		enableDebugLogging: config.EnableDebugLogging,
		similarity:         similarity,
	}
}

// FindBestMatch scans the whole catalog and returns the candidate with the
// highest similarity to the query name, or nil when no candidate scores
// strictly above the threshold. Each candidate is scored on its bare name
// and, when a brand is present, on its brand-qualified name; the better of
// the two counts. A candidate replaces the running best only on a strictly
// greater score, so exact ties keep the earliest-seen entry. No early exit:
// a later candidate can always score higher.
func (m *Matcher) FindBestMatch(entries []domain.CatalogEntry, queryName string) *domain.MatchResult {
	var best *domain.MatchResult
	bestScore := m.threshold

	for i := range entries {
		entry := &entries[i]

		score := m.similarity(queryName, entry.Name)
		if entry.Brand != "" {
			if branded := m.similarity(queryName, entry.Brand+" "+entry.Name); branded > score {
				score = branded
			}
		}

		if m.enableDebugLogging {
			log.Printf("[MATCH] candidate %q (%s) | score: %.3f", entry.Name, entry.ID, score)
		}

		if score > bestScore {
			bestScore = score
			best = &domain.MatchResult{
				EntryID: entry.ID,
				Score:   score,
			}
		}
	}

	if m.enableDebugLogging {
		if best != nil {
			log.Printf("[MATCH] best match: %s (score: %.3f)", best.EntryID, best.Score)
		} else {
			log.Printf("[MATCH] no candidate above threshold %.2f for %q", m.threshold, queryName)
		}
	}

	return best
}
