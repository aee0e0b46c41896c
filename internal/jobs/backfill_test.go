package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethodsForLowCashback(t *testing.T) {
	methods, bnpl := PaymentMethodsFor(5)

	assert.Equal(t, []string{"card", "cash", "wallet"}, methods)
	assert.False(t, bnpl)
}

func TestPaymentMethodsForHighCashback(t *testing.T) {
	methods, bnpl := PaymentMethodsFor(12)

	assert.Equal(t, []string{"card", "cash", "wallet", "bnpl"}, methods)
	assert.True(t, bnpl)
}

func TestPaymentMethodsForBoundary(t *testing.T) {
	_, bnpl := PaymentMethodsFor(10)
	assert.True(t, bnpl, "10 percent cashback is the enrollment floor")

	_, bnpl = PaymentMethodsFor(9.9)
	assert.False(t, bnpl)
}

func TestPaymentMethodsForDoesNotShareBackingArray(t *testing.T) {
	first, _ := PaymentMethodsFor(0)
	first[0] = "mutated"

	second, _ := PaymentMethodsFor(0)
	assert.Equal(t, "card", second[0])
}

func TestCityCenterKnownCity(t *testing.T) {
	lat, lng, ok := CityCenter("Dubai")

	require.True(t, ok)
	assert.InDelta(t, 25.2048, lat, 0.0001)
	assert.InDelta(t, 55.2708, lng, 0.0001)
}

func TestCityCenterNormalizesInput(t *testing.T) {
	_, _, ok := CityCenter("  ABU DHABI ")
	assert.True(t, ok)
}

func TestCityCenterUnknownCity(t *testing.T) {
	_, _, ok := CityCenter("Atlantis")
	assert.False(t, ok)
}

func TestInExclusiveZone(t *testing.T) {
	assert.True(t, InExclusiveZone("downtown-dubai"))
	assert.True(t, InExclusiveZone(" Dubai-Marina "))
	assert.False(t, InExclusiveZone("al-majaz"))
	assert.False(t, InExclusiveZone(""))
}
