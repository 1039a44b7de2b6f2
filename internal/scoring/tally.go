package scoring

import (
	"math"
	"time"
)

// tally accumulates weighted check results for a single scorer.
type tally struct {
	achieved float64
	maximum  float64
}

// check counts weight toward the maximum unconditionally and toward the
// achieved total only when ok holds.
func (t *tally) check(weight float64, ok bool) {
	t.maximum += weight
	if ok {
		t.achieved += weight
	}
}

// tiered counts weight toward the maximum and awards full weight, half
// weight, or nothing. Used for threshold checks such as certificate expiry
// windows and domain age.
func (t *tally) tiered(weight float64, full, half bool) {
	t.maximum += weight
	switch {
	case full:
		t.achieved += weight
	case half:
		t.achieved += weight / 2
	}
}

// score converts the tally into a 0-10 score rounded to one decimal.
// An empty tally scores 0.
func (t *tally) score() float64 {
	if t.maximum == 0 {
		return 0
	}
	return round1(t.achieved / t.maximum * 10)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// dateLayouts are the formats upstream signal providers use for date fields.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// parseDate parses a date string in any of the known provider formats.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
