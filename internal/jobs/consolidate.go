package jobs

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"dealspot/internal/models"
	"dealspot/pkg/database"
	"dealspot/pkg/logger"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

// CategoryOutcome records what consolidation did to a single category.
type CategoryOutcome struct {
	Slug      string
	Vibes     int
	Occasions int
	Hashtags  int
	Skipped   bool
	Err       string
}

// ConsolidateResult is the final tally of a consolidation run.
type ConsolidateResult struct {
	Migrated int
	Skipped  int
	Errored  int
	Outcomes []CategoryOutcome
}

// Consolidate folds active legacy vibe/occasion/hashtag rows into embedded
// arrays on their owning categories. A failure on one category is recorded
// and the batch moves on; only the initial category listing is fatal.
func Consolidate(ctx context.Context, db *mongo.Database) (*ConsolidateResult, error) {
	cursor, err := db.Collection(database.Categories).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	result := &ConsolidateResult{}
	for _, category := range categories {
		outcome := consolidateCategory(ctx, db, category.Slug)
		result.Outcomes = append(result.Outcomes, outcome)
		switch {
		case outcome.Err != "":
			result.Errored++
			logger.WithFields(map[string]interface{}{
				"category": category.Slug,
				"error":    outcome.Err,
			}).Error("category consolidation failed")
		case outcome.Skipped:
			result.Skipped++
			logger.Debugf("category %s has no active metadata rows, skipped", category.Slug)
		default:
			result.Migrated++
			logger.Infof("migrated %s: %d vibes, %d occasions, %d hashtags",
				category.Slug, outcome.Vibes, outcome.Occasions, outcome.Hashtags)
		}
	}

	return result, nil
}

func consolidateCategory(ctx context.Context, db *mongo.Database, slug string) CategoryOutcome {
	outcome := CategoryOutcome{Slug: slug}

	vibes, err := fetchVibes(ctx, db, slug)
	if err != nil {
		outcome.Err = err.Error()
		return outcome
	}
	occasions, err := fetchOccasions(ctx, db, slug)
	if err != nil {
		outcome.Err = err.Error()
		return outcome
	}
	hashtags, err := fetchHashtags(ctx, db, slug)
	if err != nil {
		outcome.Err = err.Error()
		return outcome
	}

	embVibes := ProjectVibes(vibes)
	embOccasions := ProjectOccasions(occasions)
	embHashtags := ProjectHashtags(hashtags)

	// A category with no rows in any of the three collections is left
	// untouched; a partial overwrite would wipe fields it already has.
	if len(embVibes) == 0 && len(embOccasions) == 0 && len(embHashtags) == 0 {
		outcome.Skipped = true
		return outcome
	}

	update := bson.M{"$set": bson.M{
		"vibes":            embVibes,
		"occasions":        embOccasions,
		"trendingHashtags": embHashtags,
		"updated_at":       time.Now(),
	}}
	if _, err := db.Collection(database.Categories).UpdateOne(ctx, bson.M{"slug": slug}, update); err != nil {
		outcome.Err = fmt.Sprintf("failed to update category: %v", err)
		return outcome
	}

	outcome.Vibes = len(embVibes)
	outcome.Occasions = len(embOccasions)
	outcome.Hashtags = len(embHashtags)
	return outcome
}

// legacySort orders rows the way they must appear embedded. Rows missing
// sortOrder decode as 0 and therefore come first; ties are broken by the
// original row id so re-runs produce identical arrays.
var legacySort = bson.D{{Key: "sortOrder", Value: 1}, {Key: "_id", Value: 1}}

func fetchVibes(ctx context.Context, db *mongo.Database, slug string) ([]models.CategoryVibe, error) {
	cursor, err := db.Collection(database.CategoryVibes).Find(ctx,
		bson.M{"categorySlug": slug, "isActive": true},
		options.Find().SetSort(legacySort))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vibes: %w", err)
	}
	var rows []models.CategoryVibe
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode vibes: %w", err)
	}
	for _, row := range rows {
		if err := validate.Struct(row); err != nil {
			return nil, fmt.Errorf("malformed vibe row %s: %w", row.ID.Hex(), err)
		}
	}
	return rows, nil
}

func fetchOccasions(ctx context.Context, db *mongo.Database, slug string) ([]models.CategoryOccasion, error) {
	cursor, err := db.Collection(database.CategoryOccasions).Find(ctx,
		bson.M{"categorySlug": slug, "isActive": true},
		options.Find().SetSort(legacySort))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch occasions: %w", err)
	}
	var rows []models.CategoryOccasion
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode occasions: %w", err)
	}
	for _, row := range rows {
		if err := validate.Struct(row); err != nil {
			return nil, fmt.Errorf("malformed occasion row %s: %w", row.ID.Hex(), err)
		}
	}
	return rows, nil
}

func fetchHashtags(ctx context.Context, db *mongo.Database, slug string) ([]models.CategoryHashtag, error) {
	cursor, err := db.Collection(database.CategoryHashtags).Find(ctx,
		bson.M{"categorySlug": slug, "isActive": true},
		options.Find().SetSort(legacySort))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hashtags: %w", err)
	}
	var rows []models.CategoryHashtag
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode hashtags: %w", err)
	}
	for _, row := range rows {
		if err := validate.Struct(row); err != nil {
			return nil, fmt.Errorf("malformed hashtag row %s: %w", row.ID.Hex(), err)
		}
	}
	return rows, nil
}

// ProjectVibes sorts rows by (sortOrder, row id) and strips them down to the
// embedded shape. Sorting here rather than trusting query order keeps the
// ordering invariant enforceable in one place.
func ProjectVibes(rows []models.CategoryVibe) []models.VibeEntry {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].SortOrder != rows[j].SortOrder {
			return rows[i].SortOrder < rows[j].SortOrder
		}
		return rows[i].ID.Hex() < rows[j].ID.Hex()
	})
	entries := make([]models.VibeEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.Embedded())
	}
	return entries
}

func ProjectOccasions(rows []models.CategoryOccasion) []models.OccasionEntry {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].SortOrder != rows[j].SortOrder {
			return rows[i].SortOrder < rows[j].SortOrder
		}
		return rows[i].ID.Hex() < rows[j].ID.Hex()
	})
	entries := make([]models.OccasionEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.Embedded())
	}
	return entries
}

func ProjectHashtags(rows []models.CategoryHashtag) []models.HashtagEntry {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].SortOrder != rows[j].SortOrder {
			return rows[i].SortOrder < rows[j].SortOrder
		}
		return rows[i].ID.Hex() < rows[j].ID.Hex()
	})
	entries := make([]models.HashtagEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.Embedded())
	}
	return entries
}

// RenderConsolidation prints the per-category breakdown and the final tally.
func (r *ConsolidateResult) Render(w io.Writer) {
	title := "CATEGORY CONSOLIDATION REPORT"
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("=", len(title)))
	for _, o := range r.Outcomes {
		switch {
		case o.Err != "":
			fmt.Fprintf(w, "❌ %-24s error: %s\n", o.Slug, o.Err)
		case o.Skipped:
			fmt.Fprintf(w, "⏭️  %-24s skipped (no active metadata rows)\n", o.Slug)
		default:
			fmt.Fprintf(w, "✅ %-24s %d vibes, %d occasions, %d hashtags\n",
				o.Slug, o.Vibes, o.Occasions, o.Hashtags)
		}
	}
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", len(title)))
	fmt.Fprintf(w, "Summary: %d migrated, %d skipped, %d errored (%d categories)\n",
		r.Migrated, r.Skipped, r.Errored, len(r.Outcomes))
}
