package jobs

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"dealspot/internal/models"
	"dealspot/pkg/database"
	"dealspot/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// basePaymentMethods is what every store accepts at minimum.
var basePaymentMethods = []string{"card", "cash", "wallet"}

// bnplCashbackPct: stores running a rich cashback program are the ones
// enrolled with the BNPL providers, so they get the extra method.
const bnplCashbackPct = 10

// cityCenters maps a store's city to fallback coordinates used when the
// store never got geocoded.
var cityCenters = map[string][2]float64{
	"dubai":          {25.2048, 55.2708},
	"abu dhabi":      {24.4539, 54.3773},
	"sharjah":        {25.3463, 55.4209},
	"ajman":          {25.4052, 55.5136},
	"al ain":         {24.2075, 55.7447},
	"ras al khaimah": {25.8007, 55.9762},
	"fujairah":       {25.1288, 56.3265},
}

// exclusiveZones are the zones where the app runs zone-exclusive deals.
var exclusiveZones = []string{"downtown-dubai", "dubai-marina", "jbr", "business-bay"}

// StepResult tallies one backfill step.
type StepResult struct {
	Name    string
	Updated int
	Skipped int
	Errored int
}

// BackfillResult is the combined outcome of a backfill run.
type BackfillResult struct {
	Steps []StepResult
}

func (r *BackfillResult) Updated() int {
	total := 0
	for _, s := range r.Steps {
		total += s.Updated
	}
	return total
}

func (r *BackfillResult) Skipped() int {
	total := 0
	for _, s := range r.Steps {
		total += s.Skipped
	}
	return total
}

func (r *BackfillResult) Errored() int {
	total := 0
	for _, s := range r.Steps {
		total += s.Errored
	}
	return total
}

// Backfill patches up store documents in place: payment methods, coordinates
// and exclusive-zone tags. Each step is an idempotent overwrite, so an
// interrupted run is resumed by simply running the job again.
func Backfill(ctx context.Context, db *mongo.Database) (*BackfillResult, error) {
	result := &BackfillResult{}

	steps := []struct {
		name string
		run  func(context.Context, *mongo.Database) (StepResult, error)
	}{
		{"payment methods", backfillPaymentMethods},
		{"store coordinates", backfillCoordinates},
		{"exclusive zones", backfillExclusiveZones},
	}

	for _, step := range steps {
		logger.LogJobStep("backfill", step.name)
		stepResult, err := step.run(ctx, db)
		if err != nil {
			return nil, fmt.Errorf("backfill step %q failed: %w", step.name, err)
		}
		result.Steps = append(result.Steps, stepResult)
	}

	return result, nil
}

// PaymentMethodsFor returns the methods a store with no payment data should
// carry, and whether it qualifies for deferred payment.
func PaymentMethodsFor(cashbackPct float64) (methods []string, supportsBNPL bool) {
	methods = append(methods, basePaymentMethods...)
	if cashbackPct >= bnplCashbackPct {
		methods = append(methods, "bnpl")
		supportsBNPL = true
	}
	return methods, supportsBNPL
}

func backfillPaymentMethods(ctx context.Context, db *mongo.Database) (StepResult, error) {
	result := StepResult{Name: "payment methods"}
	stores := db.Collection(database.Stores)

	filter := bson.M{"$or": bson.A{
		bson.M{"paymentMethods": bson.M{"$exists": false}},
		bson.M{"paymentMethods": nil},
		bson.M{"paymentMethods": bson.A{}},
	}}
	cursor, err := stores.Find(ctx, filter)
	if err != nil {
		return result, fmt.Errorf("failed to list stores without payment methods: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var store models.Store
		if err := cursor.Decode(&store); err != nil {
			result.Errored++
			logger.WithError(err).Error("failed to decode store")
			continue
		}

		methods, supportsBNPL := PaymentMethodsFor(store.CashbackPct)
		update := bson.M{"$set": bson.M{
			"paymentMethods": methods,
			"supportsBNPL":   supportsBNPL || store.SupportsBNPL,
			"updated_at":     time.Now(),
		}}
		if _, err := stores.UpdateByID(ctx, store.ID, update); err != nil {
			result.Errored++
			logger.WithError(err).Errorf("failed to backfill payment methods for %s", store.Name)
			continue
		}
		result.Updated++
	}
	return result, cursor.Err()
}

// CityCenter looks up fallback coordinates for a store's city.
func CityCenter(city string) (lat, lng float64, ok bool) {
	center, ok := cityCenters[strings.ToLower(strings.TrimSpace(city))]
	if !ok {
		return 0, 0, false
	}
	return center[0], center[1], true
}

func backfillCoordinates(ctx context.Context, db *mongo.Database) (StepResult, error) {
	result := StepResult{Name: "store coordinates"}
	stores := db.Collection(database.Stores)

	filter := bson.M{"$or": bson.A{
		bson.M{"latitude": bson.M{"$exists": false}},
		bson.M{"latitude": nil},
		bson.M{"longitude": bson.M{"$exists": false}},
		bson.M{"longitude": nil},
	}}
	cursor, err := stores.Find(ctx, filter)
	if err != nil {
		return result, fmt.Errorf("failed to list stores without coordinates: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var store models.Store
		if err := cursor.Decode(&store); err != nil {
			result.Errored++
			logger.WithError(err).Error("failed to decode store")
			continue
		}

		lat, lng, ok := CityCenter(store.City)
		if !ok {
			result.Skipped++
			logger.Warnf("store %s has unknown city %q, coordinates not backfilled", store.Name, store.City)
			continue
		}

		update := bson.M{"$set": bson.M{
			"latitude":   lat,
			"longitude":  lng,
			"updated_at": time.Now(),
		}}
		if _, err := stores.UpdateByID(ctx, store.ID, update); err != nil {
			result.Errored++
			logger.WithError(err).Errorf("failed to backfill coordinates for %s", store.Name)
			continue
		}
		result.Updated++
	}
	return result, cursor.Err()
}

// InExclusiveZone reports whether a zone runs zone-exclusive deals.
func InExclusiveZone(zone string) bool {
	zone = strings.ToLower(strings.TrimSpace(zone))
	for _, z := range exclusiveZones {
		if z == zone {
			return true
		}
	}
	return false
}

func backfillExclusiveZones(ctx context.Context, db *mongo.Database) (StepResult, error) {
	result := StepResult{Name: "exclusive zones"}

	// $addToSet keeps the tag list duplicate-free across re-runs.
	updateResult, err := db.Collection(database.Stores).UpdateMany(ctx,
		bson.M{"zone": bson.M{"$in": exclusiveZones}},
		bson.M{
			"$set":      bson.M{"isExclusiveZone": true, "updated_at": time.Now()},
			"$addToSet": bson.M{"tags": "exclusive"},
		})
	if err != nil {
		return result, fmt.Errorf("failed to tag exclusive zones: %w", err)
	}

	result.Updated = int(updateResult.ModifiedCount)
	result.Skipped = int(updateResult.MatchedCount - updateResult.ModifiedCount)
	return result, nil
}

// Render prints the per-step breakdown and the final tally.
func (r *BackfillResult) Render(w io.Writer) {
	title := "STORE BACKFILL REPORT"
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("=", len(title)))
	for _, s := range r.Steps {
		fmt.Fprintf(w, "✅ %-20s %d updated, %d skipped, %d errored\n", s.Name, s.Updated, s.Skipped, s.Errored)
	}
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", len(title)))
	fmt.Fprintf(w, "Summary: %d updated, %d skipped, %d errored\n", r.Updated(), r.Skipped(), r.Errored())
}
