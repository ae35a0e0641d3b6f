package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nutritrack/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSource_Load(t *testing.T) {
	alcoholPath := writeCatalogFile(t, "alcohol.json", `[
		{"id": "beer_001", "name": "Bud Light", "brand": "Anheuser-Busch"},
		{"id": "wine_001", "name": "Cabernet Sauvignon"}
	]`)
	caffeinePath := writeCatalogFile(t, "caffeine.json", `[
		{"id": "coffee_001", "name": "Cold Brew Coffee", "brand": "Starbucks"}
	]`)

	source := NewFileSource(alcoholPath, caffeinePath)

	t.Run("loads alcohol catalog", func(t *testing.T) {
		entries, err := source.Load(domain.CatalogAlcohol)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, "beer_001", entries[0].ID)
		assert.Equal(t, "Bud Light", entries[0].Name)
		assert.Equal(t, "Anheuser-Busch", entries[0].Brand)
		assert.Empty(t, entries[1].Brand)
	})

	t.Run("loads caffeine catalog", func(t *testing.T) {
		entries, err := source.Load(domain.CatalogCaffeine)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "coffee_001", entries[0].ID)
	})

	t.Run("rejects unknown catalog kind", func(t *testing.T) {
		_, err := source.Load(domain.CatalogKind("soda"))
		assert.ErrorIs(t, err, domain.ErrUnknownCatalog)
	})
}

func TestFileSource_LoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		source := NewFileSource("/nonexistent/alcohol.json", "/nonexistent/caffeine.json")
		_, err := source.Load(domain.CatalogAlcohol)
		assert.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := writeCatalogFile(t, "bad.json", `{"not": "an array"`)
		source := NewFileSource(path, path)
		_, err := source.Load(domain.CatalogAlcohol)
		assert.Error(t, err)
	})

	t.Run("entry missing name", func(t *testing.T) {
		path := writeCatalogFile(t, "noname.json", `[{"id": "beer_001"}]`)
		source := NewFileSource(path, path)
		_, err := source.Load(domain.CatalogAlcohol)
		assert.ErrorIs(t, err, domain.ErrInvalidCatalogEntry)
	})

	t.Run("entry missing id", func(t *testing.T) {
		path := writeCatalogFile(t, "noid.json", `[{"name": "Bud Light"}]`)
		source := NewFileSource(path, path)
		_, err := source.Load(domain.CatalogAlcohol)
		assert.ErrorIs(t, err, domain.ErrInvalidCatalogEntry)
	})

	t.Run("duplicate entry id", func(t *testing.T) {
		path := writeCatalogFile(t, "dup.json", `[
			{"id": "beer_001", "name": "Bud Light"},
			{"id": "beer_001", "name": "Bud Light Platinum"}
		]`)
		source := NewFileSource(path, path)
		_, err := source.Load(domain.CatalogAlcohol)
		assert.ErrorIs(t, err, domain.ErrDuplicateEntryID)
	})

	t.Run("empty array is valid", func(t *testing.T) {
		path := writeCatalogFile(t, "empty.json", `[]`)
		source := NewFileSource(path, path)
		entries, err := source.Load(domain.CatalogAlcohol)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
