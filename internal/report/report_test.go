package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	checks := []Check{
		{Name: "a", Status: StatusPass},
		{Name: "b", Status: StatusWarning},
		{Name: "c", Status: StatusFail},
		{Name: "d", Status: StatusPass},
	}

	summary := Summarize(checks)

	assert.Equal(t, 2, summary.Passed)
	assert.Equal(t, 1, summary.Warnings)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 4, summary.Total())
	assert.True(t, summary.HasFailures())
}

func TestSummaryWithoutFailures(t *testing.T) {
	summary := Summarize([]Check{
		{Status: StatusPass},
		{Status: StatusWarning},
	})
	assert.False(t, summary.HasFailures())
}

func TestRenderListsChecksInOrder(t *testing.T) {
	var buf bytes.Buffer
	checks := []Check{
		{Name: "payment-method coverage", Status: StatusPass, Measured: 100, Target: 100, Message: "100.0% of stores carry payment methods"},
		{Name: "bnpl store count", Status: StatusWarning, Measured: 15, Target: 20, Message: "15 stores support buy-now-pay-later"},
		{Name: "nearby activity", Status: StatusFail, Measured: 0, Target: 1, Message: "0 activity events in the last 24h"},
	}

	summary := Render(&buf, "READINESS REPORT", checks)
	out := buf.String()

	assert.Contains(t, out, "READINESS REPORT")
	assert.Contains(t, out, "payment-method coverage")
	assert.Contains(t, out, "bnpl store count")
	assert.Contains(t, out, "nearby activity")
	assert.Contains(t, out, "Summary: 1 passed, 1 warnings, 1 failed (3 checks)")
	assert.Less(t, indexOf(out, "payment-method coverage"), indexOf(out, "bnpl store count"))
	assert.True(t, summary.HasFailures())
}

func indexOf(haystack, needle string) int {
	return bytes.Index([]byte(haystack), []byte(needle))
}

func TestRenderIsDeterministic(t *testing.T) {
	checks := []Check{
		{Name: "a", Status: StatusPass, Measured: 1, Target: 1, Message: "ok"},
		{Name: "b", Status: StatusFail, Measured: 0, Target: 1, Message: "missing"},
	}

	var first, second bytes.Buffer
	Render(&first, "REPORT", checks)
	Render(&second, "REPORT", checks)

	assert.Equal(t, first.String(), second.String())
}

func TestClassifyExact(t *testing.T) {
	assert.Equal(t, StatusPass, ClassifyExact(100, 100))
	assert.Equal(t, StatusWarning, ClassifyExact(50, 100))
	assert.Equal(t, StatusFail, ClassifyExact(49, 100))
	assert.Equal(t, StatusFail, ClassifyExact(5, 0))
	assert.Equal(t, StatusPass, ClassifyExact(0, 0))
}

func TestClassifyThresholds(t *testing.T) {
	assert.Equal(t, StatusPass, ClassifyThresholds(20, 20, 10))
	assert.Equal(t, StatusWarning, ClassifyThresholds(10, 20, 10))
	assert.Equal(t, StatusFail, ClassifyThresholds(9, 20, 10))
}

func TestClassifyExistence(t *testing.T) {
	assert.Equal(t, StatusPass, ClassifyExistence(7))
	assert.Equal(t, StatusFail, ClassifyExistence(0))
	assert.Equal(t, StatusFail, ClassifyExistence(-1))
}

func TestClassifyCoverage(t *testing.T) {
	assert.Equal(t, StatusPass, ClassifyCoverage(95, 100, 90, 70))
	assert.Equal(t, StatusPass, ClassifyCoverage(90, 100, 90, 70))
	assert.Equal(t, StatusWarning, ClassifyCoverage(70, 100, 90, 70))
	assert.Equal(t, StatusFail, ClassifyCoverage(69, 100, 90, 70))
	assert.Equal(t, StatusFail, ClassifyCoverage(0, 0, 90, 70))
}

func TestCoveragePct(t *testing.T) {
	assert.Equal(t, "100.0%", CoveragePct(100, 100))
	assert.Equal(t, "62.5%", CoveragePct(5, 8))
	assert.Equal(t, "0.0%", CoveragePct(0, 0))
}
