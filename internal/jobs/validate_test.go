package jobs

import (
	"testing"

	"dealspot/internal/models"
	"dealspot/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPaymentCoverageFullIsPass(t *testing.T) {
	assert.Equal(t, report.StatusPass, report.ClassifyExact(100, 100))
}

// A store document written before the payment-method backfill carries
// paymentMethods as an explicit null, not a missing field. Null satisfies
// both $exists:true and $ne:[], so the coverage check must not count
// covered stores that way.
func TestFreshStoreCarriesNullPaymentMethods(t *testing.T) {
	raw, err := bson.Marshal(models.Store{Name: "Saffron Kitchen"})
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))

	val, present := doc["paymentMethods"]
	require.True(t, present)
	assert.Nil(t, val)
}

// Matching on the first array element is the one filter shape that null,
// a missing field and an empty array all fail, while any store with at
// least one method matches.
func TestCoveredPaymentFilterRequiresFirstElement(t *testing.T) {
	assert.Equal(t, bson.M{"paymentMethods.0": bson.M{"$exists": true}}, coveredPaymentFilter)
}

func TestPaymentCoveragePartial(t *testing.T) {
	assert.Equal(t, report.StatusWarning, report.ClassifyExact(60, 100))
	assert.Equal(t, report.StatusFail, report.ClassifyExact(30, 100))
}

func TestBNPLThresholds(t *testing.T) {
	// 15 stores: above the warning floor of 10 but below the pass bar of 20.
	assert.Equal(t, report.StatusWarning, report.ClassifyThresholds(15, bnplPassMin, bnplWarnMin))
	assert.Equal(t, report.StatusPass, report.ClassifyThresholds(20, bnplPassMin, bnplWarnMin))
	assert.Equal(t, report.StatusFail, report.ClassifyThresholds(9, bnplPassMin, bnplWarnMin))
}

func TestSearchHistoryThresholds(t *testing.T) {
	assert.Equal(t, report.StatusPass, report.ClassifyThresholds(53, searchPassMin, searchWarnMin))
	assert.Equal(t, report.StatusWarning, report.ClassifyThresholds(25, searchPassMin, searchWarnMin))
	assert.Equal(t, report.StatusFail, report.ClassifyThresholds(5, searchPassMin, searchWarnMin))
}

func TestNearbyActivityExistence(t *testing.T) {
	assert.Equal(t, report.StatusFail, report.ClassifyExistence(0))
	assert.Equal(t, report.StatusPass, report.ClassifyExistence(1))
}

func TestCashbackThresholds(t *testing.T) {
	assert.Equal(t, report.StatusPass, report.ClassifyThresholds(50, cashbackPassMin, cashbackWarnMin))
	assert.Equal(t, report.StatusWarning, report.ClassifyThresholds(24, cashbackPassMin, cashbackWarnMin))
	assert.Equal(t, report.StatusFail, report.ClassifyThresholds(3, cashbackPassMin, cashbackWarnMin))
}

func TestCoordinateCoverageBands(t *testing.T) {
	assert.Equal(t, report.StatusPass, report.ClassifyCoverage(90, 100, coordsPassPct, coordsWarnPct))
	assert.Equal(t, report.StatusWarning, report.ClassifyCoverage(75, 100, coordsPassPct, coordsWarnPct))
	assert.Equal(t, report.StatusFail, report.ClassifyCoverage(40, 100, coordsPassPct, coordsWarnPct))
	assert.Equal(t, report.StatusFail, report.ClassifyCoverage(0, 0, coordsPassPct, coordsWarnPct))
}

func TestFailedCheckShape(t *testing.T) {
	check := failedCheck("coordinate coverage", assert.AnError)
	assert.Equal(t, report.StatusFail, check.Status)
	assert.Contains(t, check.Message, "query failed")
	assert.Equal(t, "coordinate coverage", check.Name)
}
