package jobs

import (
	"testing"

	"dealspot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func objectID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return id
}

func TestProjectVibesOrdersBySortOrder(t *testing.T) {
	// Legacy insertion order has sortOrder 2 before 1; the embedded array
	// must come out ascending regardless.
	rows := []models.CategoryVibe{
		{
			ID:           objectID(t, "650000000000000000000002"),
			ItemID:       "vibe-rooftop",
			CategorySlug: "food-dining",
			Name:         "Rooftop",
			SortOrder:    2,
			IsActive:     true,
		},
		{
			ID:           objectID(t, "650000000000000000000001"),
			ItemID:       "vibe-cozy",
			CategorySlug: "food-dining",
			Name:         "Cozy",
			SortOrder:    1,
			IsActive:     true,
		},
	}

	entries := ProjectVibes(rows)

	require.Len(t, entries, 2)
	assert.Equal(t, "Cozy", entries[0].Name)
	assert.Equal(t, "Rooftop", entries[1].Name)
}

func TestProjectVibesBreaksTiesByRowID(t *testing.T) {
	rows := []models.CategoryVibe{
		{ID: objectID(t, "650000000000000000000009"), ItemID: "b", Name: "Second", SortOrder: 1},
		{ID: objectID(t, "650000000000000000000001"), ItemID: "a", Name: "First", SortOrder: 1},
	}

	entries := ProjectVibes(rows)

	require.Len(t, entries, 2)
	assert.Equal(t, "First", entries[0].Name)
	assert.Equal(t, "Second", entries[1].Name)
}

func TestProjectVibesDropsBookkeepingFields(t *testing.T) {
	rows := []models.CategoryVibe{
		{
			ID:           objectID(t, "650000000000000000000001"),
			ItemID:       "vibe-cozy",
			CategorySlug: "food-dining",
			Name:         "Cozy",
			Icon:         "🕯️",
			Color:        "#8D6E63",
			SortOrder:    3,
			IsActive:     true,
		},
	}

	entries := ProjectVibes(rows)

	require.Len(t, entries, 1)
	// Only the stable id and display fields survive the projection.
	assert.Equal(t, models.VibeEntry{
		ItemID: "vibe-cozy",
		Name:   "Cozy",
		Icon:   "🕯️",
		Color:  "#8D6E63",
	}, entries[0])
}

func TestProjectVibesIsIdempotent(t *testing.T) {
	rows := []models.CategoryVibe{
		{ID: objectID(t, "650000000000000000000002"), ItemID: "b", Name: "B", SortOrder: 2},
		{ID: objectID(t, "650000000000000000000001"), ItemID: "a", Name: "A", SortOrder: 1},
	}

	first := ProjectVibes(rows)
	second := ProjectVibes(rows)

	assert.Equal(t, first, second)
}

func TestProjectVibesEmptyInput(t *testing.T) {
	assert.Empty(t, ProjectVibes(nil))
	assert.Empty(t, ProjectVibes([]models.CategoryVibe{}))
}

func TestProjectOccasionsKeepsDiscount(t *testing.T) {
	rows := []models.CategoryOccasion{
		{
			ID:           objectID(t, "650000000000000000000001"),
			ItemID:       "occ-birthday",
			CategorySlug: "food-dining",
			Name:         "Birthday Dinner",
			Icon:         "🎂",
			DiscountPct:  25,
			SortOrder:    1,
		},
	}

	entries := ProjectOccasions(rows)

	require.Len(t, entries, 1)
	assert.Equal(t, models.OccasionEntry{
		ItemID:      "occ-birthday",
		Name:        "Birthday Dinner",
		Icon:        "🎂",
		DiscountPct: 25,
	}, entries[0])
}

func TestProjectHashtagsOrderAndShape(t *testing.T) {
	rows := []models.CategoryHashtag{
		{ID: objectID(t, "650000000000000000000002"), ItemID: "h2", Tag: "#brunchgoals", Popularity: 9800, SortOrder: 2},
		{ID: objectID(t, "650000000000000000000001"), ItemID: "h1", Tag: "#hiddengems", Popularity: 12400, IsTrending: true, SortOrder: 1},
	}

	entries := ProjectHashtags(rows)

	require.Len(t, entries, 2)
	assert.Equal(t, "#hiddengems", entries[0].Tag)
	assert.True(t, entries[0].IsTrending)
	assert.Equal(t, "#brunchgoals", entries[1].Tag)
	assert.False(t, entries[1].IsTrending)
}

// Rows missing sortOrder decode as 0 and must sort ahead of explicit orders,
// with the original row id keeping re-runs stable.
func TestProjectVibesMissingSortOrderComesFirst(t *testing.T) {
	rows := []models.CategoryVibe{
		{ID: objectID(t, "650000000000000000000005"), ItemID: "ordered", Name: "Ordered", SortOrder: 1},
		{ID: objectID(t, "650000000000000000000003"), ItemID: "unordered", Name: "Unordered"},
	}

	entries := ProjectVibes(rows)

	require.Len(t, entries, 2)
	assert.Equal(t, "Unordered", entries[0].Name)
}

func TestMalformedLegacyRowFailsValidation(t *testing.T) {
	// Missing categorySlug and name must be rejected at the read boundary
	// instead of silently projecting zero values.
	row := models.CategoryVibe{ItemID: "orphan"}
	assert.Error(t, validate.Struct(row))

	valid := models.CategoryVibe{ItemID: "ok", CategorySlug: "food-dining", Name: "Cozy"}
	assert.NoError(t, validate.Struct(valid))
}
