package jobs

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"dealspot/internal/config"
	"dealspot/internal/models"
	"dealspot/pkg/database"
	"dealspot/pkg/logger"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// seededCollections are the collections --clear wipes, in wipe order.
var seededCollections = []string{
	database.Categories,
	database.CategoryVibes,
	database.CategoryOccasions,
	database.CategoryHashtags,
	database.Stores,
	database.Brands,
	database.Offers,
	database.FlashSales,
	database.Coupons,
	database.SearchHistories,
	database.NearbyActivities,
}

// SeedStep tallies one seeding step.
type SeedStep struct {
	Name          string
	Inserted      int
	Warnings      int
	AlreadySeeded bool
}

// SeedResult is the outcome of a full seed run.
type SeedResult struct {
	Cleared map[string]int64
	Steps   []SeedStep
}

// Inserted sums documents inserted across all steps.
func (r *SeedResult) Inserted() int {
	total := 0
	for _, s := range r.Steps {
		total += s.Inserted
	}
	return total
}

// Seed loads the reference dataset. Each step is idempotent: when the target
// collection already has documents the step is left alone, so a re-run
// without --clear never duplicates data.
func Seed(ctx context.Context, db *mongo.Database, admin config.AdminConfig, clear bool) (*SeedResult, error) {
	result := &SeedResult{Cleared: map[string]int64{}}

	if clear {
		logger.LogJobStep("seed", "clearing seeded collections")
		for _, name := range seededCollections {
			deleted, err := db.Collection(name).DeleteMany(ctx, bson.M{})
			if err != nil {
				return nil, fmt.Errorf("failed to clear %s: %w", name, err)
			}
			result.Cleared[name] = deleted.DeletedCount
			logger.Infof("cleared %s: %d documents removed", name, deleted.DeletedCount)
		}
	}

	logger.LogJobStep("seed", "ensuring collections and indexes")
	for _, name := range seededCollections {
		if err := database.EnsureCollection(ctx, db, name); err != nil {
			return nil, fmt.Errorf("failed to ensure collection %s: %w", name, err)
		}
	}
	if err := database.EnsureIndexes(ctx, db); err != nil {
		return nil, err
	}

	steps := []struct {
		name string
		run  func(context.Context, *mongo.Database) (SeedStep, error)
	}{
		{"categories", seedCategories},
		{"category metadata", seedCategoryMetadata},
		{"stores", seedStores},
		{"brands", seedBrands},
		{"offers & flash sales", seedOffers},
		{"coupons", seedCoupons},
		{"search history", seedSearchHistory},
		{"nearby activity", seedNearbyActivity},
	}
	for _, step := range steps {
		logger.LogJobStep("seed", step.name)
		stepResult, err := step.run(ctx, db)
		if err != nil {
			return nil, fmt.Errorf("seed step %q failed: %w", step.name, err)
		}
		result.Steps = append(result.Steps, stepResult)
	}

	adminStep, err := seedAdmin(ctx, db, admin)
	if err != nil {
		return nil, fmt.Errorf("seed step \"ops admin\" failed: %w", err)
	}
	result.Steps = append(result.Steps, adminStep)

	return result, nil
}

func collectionEmpty(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	count, err := db.Collection(name).CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, fmt.Errorf("failed to count %s: %w", name, err)
	}
	return count == 0, nil
}

func seedCategories(ctx context.Context, db *mongo.Database) (SeedStep, error) {
	step := SeedStep{Name: "categories"}
	empty, err := collectionEmpty(ctx, db, database.Categories)
	if err != nil {
		return step, err
	}
	if !empty {
		step.AlreadySeeded = true
		logger.Infof("categories already seeded, skipping")
		return step, nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(categorySeeds))
	for _, seed := range categorySeeds {
		docs = append(docs, models.Category{
			Slug:      seed.Slug,
			Name:      seed.Name,
			Icon:      seed.Icon,
			Color:     seed.Color,
			SortOrder: seed.SortOrder,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	if _, err := db.Collection(database.Categories).InsertMany(ctx, docs); err != nil {
		return step, fmt.Errorf("failed to insert categories: %w", err)
	}
	step.Inserted = len(docs)
	return step, nil
}

// seedCategoryMetadata writes the legacy per-category rows the consolidation
// job later folds into the category documents.
func seedCategoryMetadata(ctx context.Context, db *mongo.Database) (SeedStep, error) {
	step := SeedStep{Name: "category metadata"}
	empty, err := collectionEmpty(ctx, db, database.CategoryVibes)
	if err != nil {
		return step, err
	}
	if !empty {
		step.AlreadySeeded = true
		logger.Infof("category metadata already seeded, skipping")
		return step, nil
	}

	now := time.Now()

	vibes := make([]interface{}, 0, len(vibeSeeds))
	for _, seed := range vibeSeeds {
		vibes = append(vibes, models.CategoryVibe{
			ItemID:       uuid.NewString(),
			CategorySlug: seed.Category,
			Name:         seed.Name,
			Icon:         seed.Icon,
			Color:        seed.Color,
			IsActive:     seed.Active,
			SortOrder:    seed.SortOrder,
			CreatedAt:    now,
		})
	}
	if _, err := db.Collection(database.CategoryVibes).InsertMany(ctx, vibes); err != nil {
		return step, fmt.Errorf("failed to insert vibes: %w", err)
	}
	step.Inserted += len(vibes)

	occasions := make([]interface{}, 0, len(occasionSeeds))
	for _, seed := range occasionSeeds {
		occasions = append(occasions, models.CategoryOccasion{
			ItemID:       uuid.NewString(),
			CategorySlug: seed.Category,
			Name:         seed.Name,
			Icon:         seed.Icon,
			DiscountPct:  seed.DiscountPct,
			IsActive:     seed.Active,
			SortOrder:    seed.SortOrder,
			CreatedAt:    now,
		})
	}
	if _, err := db.Collection(database.CategoryOccasions).InsertMany(ctx, occasions); err != nil {
		return step, fmt.Errorf("failed to insert occasions: %w", err)
	}
	step.Inserted += len(occasions)

	hashtags := make([]interface{}, 0, len(hashtagSeeds))
	for _, seed := range hashtagSeeds {
		hashtags = append(hashtags, models.CategoryHashtag{
			ItemID:       uuid.NewString(),
			CategorySlug: seed.Category,
			Tag:          seed.Tag,
			Popularity:   seed.Popularity,
			IsTrending:   seed.Trending,
			IsActive:     seed.Active,
			SortOrder:    seed.SortOrder,
			CreatedAt:    now,
		})
	}
	if _, err := db.Collection(database.CategoryHashtags).InsertMany(ctx, hashtags); err != nil {
		return step, fmt.Errorf("failed to insert hashtags: %w", err)
	}
	step.Inserted += len(hashtags)

	return step, nil
}

// seedStores inserts stores bare: no payment methods and no coordinates.
// The backfill job fills those in, which keeps the two jobs exercising the
// same paths production data went through.
func seedStores(ctx context.Context, db *mongo.Database) (SeedStep, error) {
	step := SeedStep{Name: "stores"}
	empty, err := collectionEmpty(ctx, db, database.Stores)
	if err != nil {
		return step, err
	}
	if !empty {
		step.AlreadySeeded = true
		logger.Infof("stores already seeded, skipping")
		return step, nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(storeSeeds))
	for _, seed := range storeSeeds {
		docs = append(docs, models.Store{
			Name:         seed.Name,
			CategorySlug: seed.Category,
			City:         seed.City,
			Zone:         seed.Zone,
			CashbackPct:  seed.CashbackPct,
			Tags:         []string{},
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	if _, err := db.Collection(database.Stores).InsertMany(ctx, docs); err != nil {
		return step, fmt.Errorf("failed to insert stores: %w", err)
	}
	step.Inserted = len(docs)
	return step, nil
}

func seedBrands(ctx context.Context, db *mongo.Database) (SeedStep, error) {
	step := SeedStep{Name: "brands"}
	empty, err := collectionEmpty(ctx, db, database.Brands)
	if err != nil {
		return step, err
	}
	if !empty {
		step.AlreadySeeded = true
		logger.Infof("brands already seeded, skipping")
		return step, nil
	}

	known := map[string]bool{}
	for _, c := range categorySeeds {
		known[c.Slug] = true
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(brandSeeds))
	for _, seed := range brandSeeds {
		if !known[seed.Category] {
			step.Warnings++
			logger.Warnf("brand %s references unseeded category %q, skipping", seed.Slug, seed.Category)
			continue
		}
		docs = append(docs, models.Brand{
			Name:         seed.Name,
			Slug:         seed.Slug,
			CategorySlug: seed.Category,
			Logo:         fmt.Sprintf("https://cdn.dealspot.app/brands/%s.png", seed.Slug),
			IsFeatured:   seed.Featured,
			CreatedAt:    now,
		})
	}
	if _, err := db.Collection(database.Brands).InsertMany(ctx, docs); err != nil {
		return step, fmt.Errorf("failed to insert brands: %w", err)
	}
	step.Inserted = len(docs)
	return step, nil
}

// seedOffers inserts offers and builds flash sales out of the flash-flagged
// ones in the same step so the sale always references real offer ids.
func seedOffers(ctx context.Context, db *mongo.Database) (SeedStep, error) {
	step := SeedStep{Name: "offers & flash sales"}
	empty, err := collectionEmpty(ctx, db, database.Offers)
	if err != nil {
		return step, err
	}
	if !empty {
		step.AlreadySeeded = true
		logger.Infof("offers already seeded, skipping")
		return step, nil
	}

	now := time.Now()
	var flashOfferIDs []string
	for _, seed := range offerSeeds {
		offer := models.Offer{
			Title:        seed.Title,
			BrandSlug:    seed.Brand,
			CategorySlug: seed.Category,
			DiscountPct:  seed.DiscountPct,
			ValidFrom:    now,
			ValidTo:      now.AddDate(0, 0, seed.ValidDays),
			IsFlashSale:  seed.FlashSale,
			CreatedAt:    now,
		}
		inserted, err := db.Collection(database.Offers).InsertOne(ctx, offer)
		if err != nil {
			return step, fmt.Errorf("failed to insert offer %q: %w", seed.Title, err)
		}
		step.Inserted++
		if seed.FlashSale {
			if id, ok := inserted.InsertedID.(primitive.ObjectID); ok {
				flashOfferIDs = append(flashOfferIDs, id.Hex())
			}
		}
	}

	if len(flashOfferIDs) > 0 {
		sale := models.FlashSale{
			Title:      "Midweek Flash Sale",
			OfferIDs:   flashOfferIDs,
			StartsAt:   now,
			EndsAt:     now.Add(48 * time.Hour),
			StockLimit: 500,
			CreatedAt:  now,
		}
		if _, err := db.Collection(database.FlashSales).InsertOne(ctx, sale); err != nil {
			return step, fmt.Errorf("failed to insert flash sale: %w", err)
		}
		step.Inserted++
	}
	return step, nil
}

func seedCoupons(ctx context.Context, db *mongo.Database) (SeedStep, error) {
	step := SeedStep{Name: "coupons"}
	empty, err := collectionEmpty(ctx, db, database.Coupons)
	if err != nil {
		return step, err
	}
	if !empty {
		step.AlreadySeeded = true
		logger.Infof("coupons already seeded, skipping")
		return step, nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(couponSeeds))
	for _, seed := range couponSeeds {
		docs = append(docs, models.Coupon{
			Code:           seed.Code,
			Description:    seed.Description,
			DiscountPct:    seed.DiscountPct,
			MaxRedemptions: seed.MaxRedemptions,
			ExpiresAt:      now.AddDate(0, 0, seed.ExpiresInDays),
			CreatedAt:      now,
		})
	}
	if _, err := db.Collection(database.Coupons).InsertMany(ctx, docs); err != nil {
		return step, fmt.Errorf("failed to insert coupons: %w", err)
	}
	step.Inserted = len(docs)
	return step, nil
}

func seedSearchHistory(ctx context.Context, db *mongo.Database) (SeedStep, error) {
	step := SeedStep{Name: "search history"}
	empty, err := collectionEmpty(ctx, db, database.SearchHistories)
	if err != nil {
		return step, err
	}
	if !empty {
		step.AlreadySeeded = true
		logger.Infof("search history already seeded, skipping")
		return step, nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(searchQuerySeeds))
	for i, query := range searchQuerySeeds {
		docs = append(docs, models.SearchHistory{
			Query: query,
			// Popularity tapers down the list so the trending surface
			// has a stable, deterministic order.
			Count:          int64(500 - i*7),
			LastSearchedAt: now.Add(-time.Duration(i) * time.Minute),
		})
	}
	if _, err := db.Collection(database.SearchHistories).InsertMany(ctx, docs); err != nil {
		return step, fmt.Errorf("failed to insert search history: %w", err)
	}
	step.Inserted = len(docs)
	return step, nil
}

func seedNearbyActivity(ctx context.Context, db *mongo.Database) (SeedStep, error) {
	step := SeedStep{Name: "nearby activity"}
	empty, err := collectionEmpty(ctx, db, database.NearbyActivities)
	if err != nil {
		return step, err
	}
	if !empty {
		step.AlreadySeeded = true
		logger.Infof("nearby activity already seeded, skipping")
		return step, nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(nearbyActivitySeeds))
	for i, seed := range nearbyActivitySeeds {
		docs = append(docs, models.NearbyActivity{
			StoreName: seed.Store,
			Zone:      seed.Zone,
			Kind:      seed.Kind,
			CreatedAt: now.Add(-time.Duration(i*23) * time.Minute),
		})
	}
	if _, err := db.Collection(database.NearbyActivities).InsertMany(ctx, docs); err != nil {
		return step, fmt.Errorf("failed to insert nearby activity: %w", err)
	}
	step.Inserted = len(docs)
	return step, nil
}

// seedAdmin provisions the ops account. The password only ever comes from
// the environment; with no ADMIN_PASSWORD set the step is skipped.
func seedAdmin(ctx context.Context, db *mongo.Database, admin config.AdminConfig) (SeedStep, error) {
	step := SeedStep{Name: "ops admin"}
	if admin.Password == "" {
		step.Warnings++
		logger.Warnf("ADMIN_PASSWORD not set, ops admin not seeded")
		return step, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return step, fmt.Errorf("failed to hash admin password: %w", err)
	}

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"password":   string(hashed),
			"role":       "ops",
			"isActive":   true,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}
	result, err := db.Collection(database.Admins).UpdateOne(ctx,
		bson.M{"email": admin.Email}, update, options.Update().SetUpsert(true))
	if err != nil {
		return step, fmt.Errorf("failed to upsert ops admin: %w", err)
	}
	if result.UpsertedCount > 0 {
		step.Inserted = 1
	} else {
		step.AlreadySeeded = true
	}
	return step, nil
}

// Render prints the per-step breakdown and the final tally.
func (r *SeedResult) Render(w io.Writer) {
	title := "SEED REPORT"
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("=", len(title)))
	if len(r.Cleared) > 0 {
		for _, name := range seededCollections {
			fmt.Fprintf(w, "🧹 %-24s %d documents cleared\n", name, r.Cleared[name])
		}
		fmt.Fprintf(w, "%s\n", strings.Repeat("-", len(title)))
	}
	for _, s := range r.Steps {
		switch {
		case s.AlreadySeeded && s.Inserted == 0:
			fmt.Fprintf(w, "⏭️  %-24s already seeded\n", s.Name)
		case s.Warnings > 0:
			fmt.Fprintf(w, "⚠️  %-24s %d inserted, %d warnings\n", s.Name, s.Inserted, s.Warnings)
		default:
			fmt.Fprintf(w, "✅ %-24s %d inserted\n", s.Name, s.Inserted)
		}
	}
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", len(title)))
	fmt.Fprintf(w, "Summary: %d documents inserted across %d steps\n", r.Inserted(), len(r.Steps))
}
