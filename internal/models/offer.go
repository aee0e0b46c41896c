package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Brand struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Slug         string             `bson:"slug" json:"slug"`
	CategorySlug string             `bson:"categorySlug" json:"category_slug"`
	Logo         string             `bson:"logo" json:"logo"`
	IsFeatured   bool               `bson:"isFeatured" json:"is_featured"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

type Offer struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	BrandSlug    string             `bson:"brandSlug" json:"brand_slug"`
	CategorySlug string             `bson:"categorySlug" json:"category_slug"`
	DiscountPct  float64            `bson:"discountPct" json:"discount_pct"`
	ValidFrom    time.Time          `bson:"validFrom" json:"valid_from"`
	ValidTo      time.Time          `bson:"validTo" json:"valid_to"`
	IsFlashSale  bool               `bson:"isFlashSale" json:"is_flash_sale"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

type FlashSale struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	OfferIDs   []string           `bson:"offerIds" json:"offer_ids"`
	StartsAt   time.Time          `bson:"startsAt" json:"starts_at"`
	EndsAt     time.Time          `bson:"endsAt" json:"ends_at"`
	StockLimit int                `bson:"stockLimit" json:"stock_limit"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

type Coupon struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code           string             `bson:"code" json:"code"`
	Description    string             `bson:"description" json:"description"`
	DiscountPct    float64            `bson:"discountPct" json:"discount_pct"`
	MaxRedemptions int                `bson:"maxRedemptions" json:"max_redemptions"`
	ExpiresAt      time.Time          `bson:"expiresAt" json:"expires_at"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

// SearchHistory is an aggregated social-proof stat: how often a query was
// searched and when it was last seen.
type SearchHistory struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Query          string             `bson:"query" json:"query"`
	Count          int64              `bson:"count" json:"count"`
	LastSearchedAt time.Time          `bson:"lastSearchedAt" json:"last_searched_at"`
}

// NearbyActivity is a recent-activity event shown as social proof
// ("someone in Deira just redeemed an offer").
type NearbyActivity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StoreName string             `bson:"storeName" json:"store_name"`
	Zone      string             `bson:"zone" json:"zone"`
	Kind      string             `bson:"kind" json:"kind"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
}
