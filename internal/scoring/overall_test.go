package scoring

import (
	"testing"
	"time"
)

func TestOverallScore(t *testing.T) {
	tests := []struct {
		name   string
		bundle map[string]any
		want   float64
	}{
		{
			name:   "empty bundle",
			bundle: map[string]any{},
			want:   0,
		},
		{
			name: "one true one false flag",
			bundle: map[string]any{
				"sectionA": map[string]any{"flagTrue": true, "flagFalse": false},
			},
			want: 5,
		},
		{
			name: "strings and arrays",
			bundle: map[string]any{
				"dns": map[string]any{
					"provider": "cloudflare",
					"records":  []any{"a", "aaaa"},
					"notes":    "",
					"spare":    []any{},
				},
			},
			want: 5,
		},
		{
			name: "numbers never earn points",
			bundle: map[string]any{
				"ports": map[string]any{"openCount": float64(3), "filtered": true},
			},
			want: 5,
		},
		{
			name: "nested object with one truthy value",
			bundle: map[string]any{
				"hosting": map[string]any{
					"provider": map[string]any{"name": "", "managed": true},
				},
			},
			want: 10,
		},
		{
			name: "nested object with no truthy values",
			bundle: map[string]any{
				"hosting": map[string]any{
					"provider": map[string]any{"name": "", "managed": false},
				},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverallScore(tt.bundle); got != tt.want {
				t.Errorf("OverallScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverallScoreValidDateSniffing(t *testing.T) {
	future := time.Now().Add(90 * 24 * time.Hour).Format(time.RFC3339)
	past := time.Now().Add(-90 * 24 * time.Hour).Format(time.RFC3339)

	bundle := map[string]any{
		"ssl": map[string]any{"validUntil": future},
	}
	if got := OverallScore(bundle); got != 10 {
		t.Errorf("future valid date = %v, want 10", got)
	}

	bundle["ssl"] = map[string]any{"validUntil": past}
	if got := OverallScore(bundle); got != 0 {
		t.Errorf("expired valid date = %v, want 0", got)
	}

	// A "valid" field that is not a date falls back to the plain
	// non-empty-string rule.
	bundle["ssl"] = map[string]any{"validationMethod": "dns-01"}
	if got := OverallScore(bundle); got != 10 {
		t.Errorf("non-date valid field = %v, want 10", got)
	}
}

func TestOverallScoreBlocklistSniffing(t *testing.T) {
	clean := map[string]any{
		"reputation": map[string]any{
			"blocklists": []any{
				map[string]any{"name": "spamhaus", "isBlocked": false},
				map[string]any{"name": "surbl", "isBlocked": false},
			},
		},
	}
	if got := OverallScore(clean); got != 10 {
		t.Errorf("clean blocklists = %v, want 10", got)
	}

	listed := map[string]any{
		"reputation": map[string]any{
			"blocklists": []any{
				map[string]any{"name": "spamhaus", "isBlocked": true},
			},
		},
	}
	if got := OverallScore(listed); got != 0 {
		t.Errorf("blocked entry = %v, want 0", got)
	}
}
