// Package report holds the pass/warning/fail classification and console
// rendering shared by the maintenance jobs.
package report

import (
	"fmt"
	"io"
	"strings"
)

// Status classifies a single readiness check.
type Status string

const (
	StatusPass    Status = "pass"
	StatusWarning Status = "warning"
	StatusFail    Status = "fail"
)

// Check is one named readiness check result.
type Check struct {
	Name     string `json:"name"`
	Status   Status `json:"status"`
	Message  string `json:"message"`
	Measured int64  `json:"measured"`
	Target   int64  `json:"target"`
}

// Summary tallies a report.
type Summary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

func (s Summary) Total() int {
	return s.Passed + s.Warnings + s.Failed
}

// HasFailures reports whether any check ended up in the fail state, which is
// what drives a non-zero exit from the validation job.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Summarize tallies checks in order.
func Summarize(checks []Check) Summary {
	var s Summary
	for _, c := range checks {
		switch c.Status {
		case StatusPass:
			s.Passed++
		case StatusWarning:
			s.Warnings++
		case StatusFail:
			s.Failed++
		}
	}
	return s
}

func statusIcon(status Status) string {
	switch status {
	case StatusPass:
		return "✅"
	case StatusWarning:
		return "⚠️"
	default:
		return "❌"
	}
}

// Render writes the ordered check report plus the aggregate tally.
func Render(w io.Writer, title string, checks []Check) Summary {
	summary := Summarize(checks)

	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("=", len(title)))
	for _, c := range checks {
		fmt.Fprintf(w, "%s %-28s %-7s %6d/%-6d %s\n",
			statusIcon(c.Status), c.Name, c.Status, c.Measured, c.Target, c.Message)
	}
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", len(title)))
	fmt.Fprintf(w, "Summary: %d passed, %d warnings, %d failed (%d checks)\n",
		summary.Passed, summary.Warnings, summary.Failed, summary.Total())

	return summary
}

// Classifiers. Every check in the battery maps onto one of these families.

// ClassifyExact passes only on an exact match; below the target the generic
// ratio rule applies (at least half of target is a warning).
func ClassifyExact(measured, target int64) Status {
	if measured == target {
		return StatusPass
	}
	return classifyRatio(measured, target)
}

// ClassifyThresholds passes at or above passMin and warns at or above warnMin.
func ClassifyThresholds(measured, passMin, warnMin int64) Status {
	switch {
	case measured >= passMin:
		return StatusPass
	case measured >= warnMin:
		return StatusWarning
	default:
		return StatusFail
	}
}

// ClassifyExistence passes when anything at all was found.
func ClassifyExistence(measured int64) Status {
	if measured > 0 {
		return StatusPass
	}
	return StatusFail
}

// ClassifyCoverage classifies measured/total against percentage bands.
// An empty population counts as zero coverage.
func ClassifyCoverage(measured, total int64, passPct, warnPct float64) Status {
	if total <= 0 {
		return StatusFail
	}
	pct := float64(measured) / float64(total) * 100
	switch {
	case pct >= passPct:
		return StatusPass
	case pct >= warnPct:
		return StatusWarning
	default:
		return StatusFail
	}
}

func classifyRatio(measured, target int64) Status {
	if target <= 0 {
		return StatusFail
	}
	ratio := float64(measured) / float64(target)
	switch {
	case ratio >= 1.0:
		return StatusPass
	case ratio >= 0.5:
		return StatusWarning
	default:
		return StatusFail
	}
}

// CoveragePct formats measured/total as a percentage for check messages.
func CoveragePct(measured, total int64) string {
	if total <= 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(measured)/float64(total)*100)
}
