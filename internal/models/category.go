package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is the consumer-facing category document. The embedded slices are
// written by the consolidation job; insertion order controls display order.
type Category struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug             string             `bson:"slug" json:"slug"`
	Name             string             `bson:"name" json:"name"`
	Icon             string             `bson:"icon" json:"icon"`
	Color            string             `bson:"color" json:"color"`
	SortOrder        int                `bson:"sortOrder" json:"sort_order"`
	IsActive         bool               `bson:"isActive" json:"is_active"`
	Vibes            []VibeEntry        `bson:"vibes,omitempty" json:"vibes,omitempty"`
	Occasions        []OccasionEntry    `bson:"occasions,omitempty" json:"occasions,omitempty"`
	TrendingHashtags []HashtagEntry     `bson:"trendingHashtags,omitempty" json:"trending_hashtags,omitempty"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}

// VibeEntry is the embedded projection of a CategoryVibe row.
type VibeEntry struct {
	ItemID string `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Icon   string `bson:"icon" json:"icon"`
	Color  string `bson:"color" json:"color"`
}

// OccasionEntry is the embedded projection of a CategoryOccasion row.
type OccasionEntry struct {
	ItemID      string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Icon        string  `bson:"icon" json:"icon"`
	DiscountPct float64 `bson:"discountPct" json:"discount_pct"`
}

// HashtagEntry is the embedded projection of a CategoryHashtag row.
type HashtagEntry struct {
	ItemID     string `bson:"id" json:"id"`
	Tag        string `bson:"tag" json:"tag"`
	Popularity int64  `bson:"popularity" json:"popularity"`
	IsTrending bool   `bson:"isTrending" json:"is_trending"`
}

// Legacy per-category metadata rows. One row per (categorySlug, item); the
// consolidation job folds active rows into the owning category and drops the
// bookkeeping fields (isActive, sortOrder, row id) from the embedded shape.

type CategoryVibe struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ItemID       string             `bson:"itemId" json:"item_id" validate:"required"`
	CategorySlug string             `bson:"categorySlug" json:"category_slug" validate:"required"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	Icon         string             `bson:"icon" json:"icon"`
	Color        string             `bson:"color" json:"color"`
	IsActive     bool               `bson:"isActive" json:"is_active"`
	SortOrder    int                `bson:"sortOrder" json:"sort_order" validate:"gte=0"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

type CategoryOccasion struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ItemID       string             `bson:"itemId" json:"item_id" validate:"required"`
	CategorySlug string             `bson:"categorySlug" json:"category_slug" validate:"required"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	Icon         string             `bson:"icon" json:"icon"`
	DiscountPct  float64            `bson:"discountPct" json:"discount_pct" validate:"gte=0,lte=100"`
	IsActive     bool               `bson:"isActive" json:"is_active"`
	SortOrder    int                `bson:"sortOrder" json:"sort_order" validate:"gte=0"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

type CategoryHashtag struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ItemID       string             `bson:"itemId" json:"item_id" validate:"required"`
	CategorySlug string             `bson:"categorySlug" json:"category_slug" validate:"required"`
	Tag          string             `bson:"tag" json:"tag" validate:"required"`
	Popularity   int64              `bson:"popularity" json:"popularity" validate:"gte=0"`
	IsTrending   bool               `bson:"isTrending" json:"is_trending"`
	IsActive     bool               `bson:"isActive" json:"is_active"`
	SortOrder    int                `bson:"sortOrder" json:"sort_order" validate:"gte=0"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// Embedded returns the projection written onto the owning category.
func (v CategoryVibe) Embedded() VibeEntry {
	return VibeEntry{
		ItemID: v.ItemID,
		Name:   v.Name,
		Icon:   v.Icon,
		Color:  v.Color,
	}
}

func (o CategoryOccasion) Embedded() OccasionEntry {
	return OccasionEntry{
		ItemID:      o.ItemID,
		Name:        o.Name,
		Icon:        o.Icon,
		DiscountPct: o.DiscountPct,
	}
}

func (h CategoryHashtag) Embedded() HashtagEntry {
	return HashtagEntry{
		ItemID:     h.ItemID,
		Tag:        h.Tag,
		Popularity: h.Popularity,
		IsTrending: h.IsTrending,
	}
}
