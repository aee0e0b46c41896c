package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func categorySlugSet() map[string]bool {
	known := map[string]bool{}
	for _, c := range categorySeeds {
		known[c.Slug] = true
	}
	return known
}

func TestCategorySeedsHaveUniqueSlugs(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range categorySeeds {
		assert.False(t, seen[c.Slug], "duplicate category slug %q", c.Slug)
		seen[c.Slug] = true
		assert.NotEmpty(t, c.Name)
		assert.Greater(t, c.SortOrder, 0)
	}
}

func TestLegacyMetadataReferencesSeededCategories(t *testing.T) {
	known := categorySlugSet()

	for _, v := range vibeSeeds {
		assert.True(t, known[v.Category], "vibe %q references unknown category %q", v.Name, v.Category)
		assert.GreaterOrEqual(t, v.SortOrder, 0)
	}
	for _, o := range occasionSeeds {
		assert.True(t, known[o.Category], "occasion %q references unknown category %q", o.Name, o.Category)
		assert.GreaterOrEqual(t, o.DiscountPct, 0.0)
		assert.LessOrEqual(t, o.DiscountPct, 100.0)
	}
	for _, h := range hashtagSeeds {
		assert.True(t, known[h.Category], "hashtag %q references unknown category %q", h.Tag, h.Category)
		assert.GreaterOrEqual(t, h.Popularity, int64(0))
	}
}

func TestSomeCategoriesHaveNoMetadata(t *testing.T) {
	// Consolidation's skip path needs categories with zero legacy rows.
	withMetadata := map[string]bool{}
	for _, v := range vibeSeeds {
		withMetadata[v.Category] = true
	}
	for _, o := range occasionSeeds {
		withMetadata[o.Category] = true
	}
	for _, h := range hashtagSeeds {
		withMetadata[h.Category] = true
	}

	bare := 0
	for _, c := range categorySeeds {
		if !withMetadata[c.Slug] {
			bare++
		}
	}
	assert.Greater(t, bare, 0, "expected at least one category without legacy metadata")
}

func TestBrandSeedsIncludeOrphanCategory(t *testing.T) {
	// The skip-with-warning path in seedBrands depends on one such row.
	known := categorySlugSet()
	orphans := 0
	seen := map[string]bool{}
	for _, b := range brandSeeds {
		assert.False(t, seen[b.Slug], "duplicate brand slug %q", b.Slug)
		seen[b.Slug] = true
		if !known[b.Category] {
			orphans++
		}
	}
	assert.Equal(t, 1, orphans)
}

func TestOfferSeedsReferenceSeededBrands(t *testing.T) {
	brands := map[string]bool{}
	for _, b := range brandSeeds {
		brands[b.Slug] = true
	}
	flash := 0
	for _, o := range offerSeeds {
		assert.True(t, brands[o.Brand], "offer %q references unknown brand %q", o.Title, o.Brand)
		assert.Greater(t, o.ValidDays, 0)
		if o.FlashSale {
			flash++
		}
	}
	assert.Greater(t, flash, 0, "flash-sale step needs at least one flash offer")
}

func TestCouponCodesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range couponSeeds {
		assert.False(t, seen[c.Code], "duplicate coupon code %q", c.Code)
		seen[c.Code] = true
		assert.Greater(t, c.MaxRedemptions, 0)
	}
}

func TestSearchQuerySeedsSatisfyReadinessCheck(t *testing.T) {
	assert.GreaterOrEqual(t, int64(len(searchQuerySeeds)), int64(searchPassMin),
		"seeded search history must clear the readiness pass bar")

	seen := map[string]bool{}
	for _, q := range searchQuerySeeds {
		assert.False(t, seen[q], "duplicate search query %q", q)
		seen[q] = true
	}
}

func TestNearbyActivityKindsAreKnown(t *testing.T) {
	valid := map[string]bool{"purchase": true, "redeem": true, "save": true}
	for _, a := range nearbyActivitySeeds {
		assert.True(t, valid[a.Kind], "unknown activity kind %q", a.Kind)
		assert.NotEmpty(t, a.Store)
		assert.NotEmpty(t, a.Zone)
	}
}

func TestClearListCoversSeededCollections(t *testing.T) {
	// Admins are deliberately not cleared: wiping the ops account on a
	// reseed would lock operators out.
	assert.NotContains(t, seededCollections, "admins")
	assert.Contains(t, seededCollections, "categories")
	assert.Contains(t, seededCollections, "categoryvibes")
	assert.Contains(t, seededCollections, "searchhistories")
	assert.Contains(t, seededCollections, "nearbyactivities")
}
