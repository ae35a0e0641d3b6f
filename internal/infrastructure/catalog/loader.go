package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nutritrack/backend/internal/domain"
)

// FileSource loads beverage catalogs from JSON files on disk. Each file
// holds a JSON array of catalog entries, produced by the external
// data-ingestion pipeline.
type FileSource struct {
	paths map[domain.CatalogKind]string
}

// Ensure FileSource implements CatalogSource
var _ domain.CatalogSource = (*FileSource)(nil)

// NewFileSource creates a file-backed catalog source
func NewFileSource(alcoholPath, caffeinePath string) *FileSource {
	return &FileSource{
		paths: map[domain.CatalogKind]string{
			domain.CatalogAlcohol:  alcoholPath,
			domain.CatalogCaffeine: caffeinePath,
		},
	}
}

// Load reads and validates the catalog file for the given kind
func (s *FileSource) Load(kind domain.CatalogKind) ([]domain.CatalogEntry, error) {
	path, ok := s.paths[kind]
	if !ok {
		return nil, domain.ErrUnknownCatalog
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s catalog: %w", kind, err)
	}

	var entries []domain.CatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode %s catalog: %w", kind, err)
	}

	if err := validateEntries(entries); err != nil {
		return nil, fmt.Errorf("invalid %s catalog: %w", kind, err)
	}

	return entries, nil
}

// validateEntries rejects entries the matching core assumes never exist:
// missing IDs or names, and duplicate IDs
func validateEntries(entries []domain.CatalogEntry) error {
	seen := make(map[string]bool, len(entries))
	for i, entry := range entries {
		if entry.ID == "" || entry.Name == "" {
			return fmt.Errorf("%w: entry %d", domain.ErrInvalidCatalogEntry, i)
		}
		if seen[entry.ID] {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateEntryID, entry.ID)
		}
		seen[entry.ID] = true
	}
	return nil
}
