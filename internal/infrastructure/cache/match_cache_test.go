package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/nutritrack/backend/internal/domain"
)

func TestMatchCache_PutAndGet(t *testing.T) {
	c := NewMatchCache()

	t.Run("stores and retrieves an entry", func(t *testing.T) {
		c.Put(domain.CatalogAlcohol, "bud light", "beer_001")

		got, ok := c.Get(domain.CatalogAlcohol, "bud light")
		if !ok {
			t.Fatal("expected cache hit")
		}
		if got != "beer_001" {
			t.Errorf("Get() = %v, want beer_001", got)
		}
	})

	t.Run("misses unknown query", func(t *testing.T) {
		if _, ok := c.Get(domain.CatalogAlcohol, "never seen"); ok {
			t.Error("expected cache miss")
		}
	})

	t.Run("catalog kinds are isolated", func(t *testing.T) {
		if _, ok := c.Get(domain.CatalogCaffeine, "bud light"); ok {
			t.Error("alcohol entry must not be visible under caffeine")
		}
	})

	t.Run("overwrites existing entry", func(t *testing.T) {
		c.Put(domain.CatalogAlcohol, "bud light", "beer_002")

		got, _ := c.Get(domain.CatalogAlcohol, "bud light")
		if got != "beer_002" {
			t.Errorf("Get() = %v, want beer_002 after overwrite", got)
		}
	})
}

func TestMatchCache_Invalidate(t *testing.T) {
	c := NewMatchCache()
	c.Put(domain.CatalogAlcohol, "bud light", "beer_001")
	c.Put(domain.CatalogAlcohol, "merlot", "wine_003")
	c.Put(domain.CatalogCaffeine, "cold brew", "coffee_001")

	c.Invalidate(domain.CatalogAlcohol)

	if _, ok := c.Get(domain.CatalogAlcohol, "bud light"); ok {
		t.Error("alcohol entry survived invalidation")
	}
	if _, ok := c.Get(domain.CatalogAlcohol, "merlot"); ok {
		t.Error("alcohol entry survived invalidation")
	}
	if _, ok := c.Get(domain.CatalogCaffeine, "cold brew"); !ok {
		t.Error("caffeine entry should survive alcohol invalidation")
	}
}

func TestMatchCache_Size(t *testing.T) {
	c := NewMatchCache()

	if c.Size() != 0 {
		t.Errorf("Size() = %d, want 0", c.Size())
	}

	c.Put(domain.CatalogAlcohol, "bud light", "beer_001")
	c.Put(domain.CatalogAlcohol, "merlot", "wine_003")
	c.Put(domain.CatalogCaffeine, "cold brew", "coffee_001")

	if c.Size() != 3 {
		t.Errorf("Size() = %d, want 3", c.Size())
	}

	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size() = %d after Clear, want 0", c.Size())
	}
}

func TestMatchCache_ConcurrentAccess(t *testing.T) {
	c := NewMatchCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			query := fmt.Sprintf("query-%d", n%10)
			c.Put(domain.CatalogAlcohol, query, fmt.Sprintf("entry-%d", n))
			c.Get(domain.CatalogAlcohol, query)
			if n%10 == 0 {
				c.Invalidate(domain.CatalogCaffeine)
			}
		}(i)
	}
	wg.Wait()

	if c.Size() == 0 {
		t.Error("expected surviving entries after concurrent writes")
	}
}
