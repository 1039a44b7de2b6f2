package scoring

import (
	"strings"
	"time"
)

// OverallScore derives a single 0-10 score from an arbitrary signal bundle
// without category-specific knowledge. It walks every top-level section and
// that section's immediate fields (one level of nesting, no deep recursion)
// and awards one point per field that looks healthy:
//
//   - booleans earn a point when true
//   - non-empty strings earn a point, except that a field whose name
//     contains "valid" holding a parseable date only earns it while the
//     date is still in the future
//   - non-empty arrays earn a point, except that a field whose name
//     contains "blocklists" must have no element with isBlocked set
//   - objects earn a point when at least one of their own values is truthy
//
// Number fields and nulls count toward the maximum but never earn a point.
// This is a best-effort heuristic for response shapes not covered by a
// dedicated scorer; the only domain knowledge is the name sniffing above.
func OverallScore(bundle map[string]any) float64 {
	var total, max float64

	for name, section := range bundle {
		fields, ok := section.(map[string]any)
		if !ok {
			// Scalar or array at the top level is graded as a field itself.
			max++
			if fieldHealthy(name, section) {
				total++
			}
			continue
		}
		for fieldName, value := range fields {
			max++
			if fieldHealthy(fieldName, value) {
				total++
			}
		}
	}

	if max == 0 {
		return 0
	}
	return round1(total / max * 10)
}

func fieldHealthy(name string, value any) bool {
	lower := strings.ToLower(name)

	switch v := value.(type) {
	case bool:
		return v
	case string:
		if v == "" {
			return false
		}
		if strings.Contains(lower, "valid") {
			if ts, ok := parseDate(v); ok {
				return ts.After(time.Now())
			}
		}
		return true
	case []any:
		if len(v) == 0 {
			return false
		}
		if strings.Contains(lower, "blocklists") {
			return noBlockedEntries(v)
		}
		return true
	case map[string]any:
		for _, sub := range v {
			if truthy(sub) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func noBlockedEntries(entries []any) bool {
	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		if blocked, _ := entry["isBlocked"].(bool); blocked {
			return false
		}
	}
	return true
}

func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	case nil:
		return false
	default:
		return true
	}
}
