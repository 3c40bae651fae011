package client

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/eyobt/suq-storefront/internal/taxonomy"
)

// ReferenceData is the category taxonomy as served by the API, prefetched in
// one pass for navigation and filter rendering.
type ReferenceData struct {
	Categories    []taxonomy.Category
	SubCategories map[string][]taxonomy.SubCategory
}

// FetchReferenceData prefetches categories and the sub-categories of every
// known category concurrently. Each fetch is fail-soft on its own; anything
// that comes back empty falls back to the static taxonomy tables, so the
// result is always complete.
func (c *Client) FetchReferenceData(ctx context.Context) ReferenceData {
	g, ctx := errgroup.WithContext(ctx)

	var cats []taxonomy.Category
	g.Go(func() error {
		cats = c.FetchCategories(ctx)
		return nil
	})

	subs := make([][]taxonomy.SubCategory, len(taxonomy.Categories))
	for i, cat := range taxonomy.Categories {
		g.Go(func() error {
			subs[i] = c.FetchSubCategories(ctx, cat.Name)
			return nil
		})
	}

	// Fetches never return errors, only empty fallbacks.
	_ = g.Wait()

	if len(cats) == 0 {
		cats = taxonomy.Categories
	}

	byName := make(map[string][]taxonomy.SubCategory, len(taxonomy.Categories))
	for i, cat := range taxonomy.Categories {
		if len(subs[i]) == 0 {
			byName[cat.Name] = taxonomy.SubCategories[cat.Name]
			continue
		}
		byName[cat.Name] = subs[i]
	}

	return ReferenceData{Categories: cats, SubCategories: byName}
}
