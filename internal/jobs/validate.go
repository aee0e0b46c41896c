package jobs

import (
	"context"
	"fmt"
	"time"

	"dealspot/internal/report"
	"dealspot/pkg/database"
	"dealspot/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Readiness thresholds. The consuming app is considered launch-ready when
// every check below lands on pass.
const (
	bnplPassMin     = 20
	bnplWarnMin     = 10
	searchPassMin   = 50
	searchWarnMin   = 20
	cashbackPassMin = 50
	cashbackWarnMin = 20
	cashbackMinPct  = 10
	coordsPassPct   = 90.0
	coordsWarnPct   = 70.0
	activityWindow  = 24 * time.Hour
)

// Validate runs the fixed battery of readiness checks in order. Checks are
// read-only and independent; a query failure marks that one check as failed
// and the battery continues.
func Validate(ctx context.Context, db *mongo.Database) []report.Check {
	checks := []func(context.Context, *mongo.Database) report.Check{
		checkPaymentMethodCoverage,
		checkBNPLStores,
		checkSearchHistory,
		checkNearbyActivity,
		checkCashbackStores,
		checkCoordinateCoverage,
	}

	results := make([]report.Check, 0, len(checks))
	for _, check := range checks {
		result := check(ctx, db)
		logger.WithFields(map[string]interface{}{
			"check":    result.Name,
			"status":   result.Status,
			"measured": result.Measured,
			"target":   result.Target,
		}).Debug("readiness check evaluated")
		results = append(results, result)
	}
	return results
}

func failedCheck(name string, err error) report.Check {
	return report.Check{
		Name:    name,
		Status:  report.StatusFail,
		Message: fmt.Sprintf("query failed: %v", err),
	}
}

// coveredPaymentFilter matches stores whose paymentMethods array has at
// least one element. Matching on element 0 keeps null and [] out: a store
// inserted before the backfill carries paymentMethods: null, and null
// satisfies both $exists and $ne:[].
var coveredPaymentFilter = bson.M{"paymentMethods.0": bson.M{"$exists": true}}

// checkPaymentMethodCoverage requires every store to carry a non-empty
// payment-methods list.
func checkPaymentMethodCoverage(ctx context.Context, db *mongo.Database) report.Check {
	const name = "payment-method coverage"
	stores := db.Collection(database.Stores)

	total, err := stores.CountDocuments(ctx, bson.M{})
	if err != nil {
		return failedCheck(name, err)
	}
	covered, err := stores.CountDocuments(ctx, coveredPaymentFilter)
	if err != nil {
		return failedCheck(name, err)
	}

	return report.Check{
		Name:     name,
		Status:   report.ClassifyExact(covered, total),
		Message:  fmt.Sprintf("%s of stores carry payment methods", report.CoveragePct(covered, total)),
		Measured: covered,
		Target:   total,
	}
}

// checkBNPLStores counts stores flagged for deferred-payment support.
func checkBNPLStores(ctx context.Context, db *mongo.Database) report.Check {
	const name = "bnpl store count"

	count, err := db.Collection(database.Stores).CountDocuments(ctx, bson.M{"supportsBNPL": true})
	if err != nil {
		return failedCheck(name, err)
	}

	return report.Check{
		Name:     name,
		Status:   report.ClassifyThresholds(count, bnplPassMin, bnplWarnMin),
		Message:  fmt.Sprintf("%d stores support buy-now-pay-later", count),
		Measured: count,
		Target:   bnplPassMin,
	}
}

// checkSearchHistory wants enough seeded search-history records to make the
// trending-searches surface look alive.
func checkSearchHistory(ctx context.Context, db *mongo.Database) report.Check {
	const name = "search-history depth"
	histories := db.Collection(database.SearchHistories)

	total, err := histories.CountDocuments(ctx, bson.M{})
	if err != nil {
		return failedCheck(name, err)
	}
	queries, err := histories.Distinct(ctx, "query", bson.M{})
	if err != nil {
		return failedCheck(name, err)
	}

	return report.Check{
		Name:     name,
		Status:   report.ClassifyThresholds(total, searchPassMin, searchWarnMin),
		Message:  fmt.Sprintf("%d entries across %d distinct queries", total, len(queries)),
		Measured: total,
		Target:   searchPassMin,
	}
}

// checkNearbyActivity requires at least one activity event inside the
// current period (last 24 hours).
func checkNearbyActivity(ctx context.Context, db *mongo.Database) report.Check {
	const name = "nearby activity"

	since := time.Now().Add(-activityWindow)
	count, err := db.Collection(database.NearbyActivities).CountDocuments(ctx, bson.M{
		"createdAt": bson.M{"$gte": since},
	})
	if err != nil {
		return failedCheck(name, err)
	}

	return report.Check{
		Name:     name,
		Status:   report.ClassifyExistence(count),
		Message:  fmt.Sprintf("%d activity events in the last 24h", count),
		Measured: count,
		Target:   1,
	}
}

// checkCashbackStores counts stores with a cashback rate of at least 10%.
func checkCashbackStores(ctx context.Context, db *mongo.Database) report.Check {
	const name = "high-cashback stores"

	count, err := db.Collection(database.Stores).CountDocuments(ctx, bson.M{
		"cashbackPct": bson.M{"$gte": cashbackMinPct},
	})
	if err != nil {
		return failedCheck(name, err)
	}

	return report.Check{
		Name:     name,
		Status:   report.ClassifyThresholds(count, cashbackPassMin, cashbackWarnMin),
		Message:  fmt.Sprintf("%d stores offer ≥%d%% cashback", count, cashbackMinPct),
		Measured: count,
		Target:   cashbackPassMin,
	}
}

// checkCoordinateCoverage measures how many stores have geographic
// coordinates after the backfill.
func checkCoordinateCoverage(ctx context.Context, db *mongo.Database) report.Check {
	const name = "coordinate coverage"
	stores := db.Collection(database.Stores)

	total, err := stores.CountDocuments(ctx, bson.M{})
	if err != nil {
		return failedCheck(name, err)
	}
	located, err := stores.CountDocuments(ctx, bson.M{
		"latitude":  bson.M{"$exists": true, "$ne": nil},
		"longitude": bson.M{"$exists": true, "$ne": nil},
	})
	if err != nil {
		return failedCheck(name, err)
	}

	return report.Check{
		Name:     name,
		Status:   report.ClassifyCoverage(located, total, coordsPassPct, coordsWarnPct),
		Message:  fmt.Sprintf("%s of stores have coordinates", report.CoveragePct(located, total)),
		Measured: located,
		Target:   total,
	}
}
