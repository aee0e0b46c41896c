package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is a merchant location. Latitude/Longitude stay nil until the
// coordinate backfill runs, which is what the readiness check measures.
type Store struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	CategorySlug    string             `bson:"categorySlug" json:"category_slug"`
	City            string             `bson:"city" json:"city"`
	Zone            string             `bson:"zone" json:"zone"`
	Latitude        *float64           `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude       *float64           `bson:"longitude,omitempty" json:"longitude,omitempty"`
	PaymentMethods  []string           `bson:"paymentMethods" json:"payment_methods"`
	SupportsBNPL    bool               `bson:"supportsBNPL" json:"supports_bnpl"`
	CashbackPct     float64            `bson:"cashbackPct" json:"cashback_pct"`
	IsExclusiveZone bool               `bson:"isExclusiveZone" json:"is_exclusive_zone"`
	Tags            []string           `bson:"tags" json:"tags"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

// AdminUser is the ops account the seed job provisions.
type AdminUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role"`
	IsActive  bool               `bson:"isActive" json:"is_active"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
